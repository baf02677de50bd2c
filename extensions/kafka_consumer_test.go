/*
 * Copyright (c) 2026 TFG Co <backend@tfgco.com>
 * Author: TFG Co <backend@tfgco.com>
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 */

package extensions

import (
	"context"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	pauseErrors "github.com/topfreegames/pausepoc/errors"
	"github.com/topfreegames/pausepoc/interfaces"
	"github.com/topfreegames/pausepoc/mocks"
	. "github.com/topfreegames/pausepoc/testing"
)

var _ = Describe("Kafka Consumer", func() {
	logger, hook := test.NewNullLogger()
	logger.Level = logrus.DebugLevel
	topic := "flaky-input-topic"
	partition := kafka.TopicPartition{Topic: &topic, Partition: 0}

	var kafkaConsumerClientMock *mocks.KafkaConsumerClientMock
	var consumer *KafkaConsumer
	var handler *recordingHandler
	var loopErr chan error
	var loopDone chan struct{}

	startConsuming := func() {
		c, h := consumer, handler
		errs := make(chan error, 1)
		done := make(chan struct{})
		loopErr, loopDone = errs, done
		go func() {
			defer GinkgoRecover()
			defer close(done)
			errs <- c.ConsumeLoop(context.Background(), h)
		}()
		Eventually(c.IsRunning).Should(BeTrue())
	}

	assign := func(partitions ...kafka.TopicPartition) {
		kafkaConsumerClientMock.EventsChan <- kafka.AssignedPartitions{Partitions: partitions}
		Eventually(kafkaConsumerClientMock.Assigned).Should(HaveLen(len(partitions)))
	}

	BeforeEach(func() {
		hook.Reset()
		kafkaConsumerClientMock = mocks.NewKafkaConsumerClientMock()
		handler = &recordingHandler{}
		config := viper.New()
		config.Set("kafka.topic-name", topic)
		config.Set("kafka.brokers", "localhost:9941")
		config.Set("kafka.consumer.group-id", "testGroup")
		config.Set("kafka.consumer.listener-id", "test-listener")
		config.Set("kafka.consumer.pollTimeoutMs", 10)

		var err error
		consumer, err = NewKafkaConsumer(config, logger, kafkaConsumerClientMock)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		consumer.StopConsuming()
		if loopDone != nil {
			Eventually(loopDone).Should(BeClosed())
		}
		Expect(consumer.IsRunning()).To(BeFalse())
		loopErr, loopDone = nil, nil
	})

	Describe("[Unit]", func() {
		Describe("Creating new client", func() {
			It("should return configured client", func() {
				Expect(consumer.Brokers).To(Equal("localhost:9941"))
				Expect(consumer.Topics).To(Equal([]string{topic}))
				Expect(consumer.ConsumerGroup).To(Equal("testGroup"))
				Expect(consumer.ListenerID).To(Equal("test-listener"))
				Expect(consumer.PollTimeoutMs).To(Equal(10))
				Expect(consumer.Consumer).To(Equal(kafkaConsumerClientMock))
				Expect(consumer.IsRunning()).To(BeFalse())
				Expect(consumer.IsPaused()).To(BeFalse())
			})
		})

		Describe("Stop consuming", func() {
			It("should stop the consume loop", func() {
				startConsuming()
				consumer.StopConsuming()
				Eventually(loopErr).Should(Receive(BeNil()))
				Expect(consumer.IsRunning()).To(BeFalse())
				Expect(hook.AllEntries()).To(ContainLogMessage("consume loop stopped"))
			})

			It("should deliver the result of each run to its own caller", func() {
				startConsuming()
				firstErr, firstDone := loopErr, loopDone
				consumer.StopConsuming()
				Eventually(firstDone).Should(BeClosed())
				Expect(firstErr).To(Receive(BeNil()))

				startConsuming()
				Expect(loopErr).NotTo(BeIdenticalTo(firstErr))
				consumer.StopConsuming()
				Eventually(loopDone).Should(BeClosed())
				Expect(loopErr).To(Receive(BeNil()))
				Expect(firstErr).NotTo(Receive())
			})

			It("should stop when the context is done", func() {
				ctx, cancel := context.WithCancel(context.Background())
				done := make(chan error, 1)
				go func() {
					done <- consumer.ConsumeLoop(ctx, handler)
				}()
				Eventually(consumer.IsRunning).Should(BeTrue())
				cancel()
				Eventually(done).Should(Receive(BeNil()))
				Expect(consumer.IsRunning()).To(BeFalse())
			})
		})

		Describe("Consume loop", func() {
			It("should fail if subscribing to topic fails", func() {
				kafkaConsumerClientMock.Error = fmt.Errorf("could not subscribe")
				err := consumer.ConsumeLoop(context.Background(), handler)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("could not subscribe"))
				Expect(consumer.IsRunning()).To(BeFalse())
			})

			It("should subscribe to topic", func() {
				startConsuming()
				Eventually(kafkaConsumerClientMock.Subscriptions).Should(ConsistOf(topic))
				Expect(hook.AllEntries()).To(ContainLogMessage("successfully subscribed to topics"))
			})

			It("should assign and revoke partitions", func() {
				startConsuming()
				assign(partition)
				Expect(kafkaConsumerClientMock.Assigned()).To(ContainElement(partition))

				kafkaConsumerClientMock.EventsChan <- kafka.RevokedPartitions{Partitions: []kafka.TopicPartition{partition}}
				Eventually(kafkaConsumerClientMock.Assigned).Should(BeEmpty())
			})

			It("should hand messages to the handler and store acknowledged offsets", func() {
				kafkaConsumerClientMock.AddMessage(topic, 0, "k1", "v1")
				kafkaConsumerClientMock.AddMessage(topic, 0, "k2", "v2")
				startConsuming()
				assign(partition)

				Eventually(handler.Offsets).Should(Equal([]int64{0, 1}))
				records := handler.Records()
				Expect(records[0]).To(Equal(interfaces.Record{Topic: topic, Partition: 0, Offset: 0, Key: "k1", Value: "v1"}))
				Eventually(func() kafka.Offset {
					offset, _ := kafkaConsumerClientMock.StoredOffset(topic, 0)
					return offset
				}).Should(Equal(kafka.Offset(2)))
			})

			It("should not store offsets of messages that were not acknowledged", func() {
				handler.setHandle(func(interfaces.Record, interfaces.Acknowledgment) error {
					return nil
				})
				kafkaConsumerClientMock.AddMessage(topic, 0, "k1", "v1")
				startConsuming()
				assign(partition)

				Eventually(handler.Offsets).Should(Equal([]int64{0}))
				Consistently(kafkaConsumerClientMock.GetStoredMessages, 50*time.Millisecond).Should(BeEmpty())
			})

			It("should redeliver a message that failed with a retryable error", func() {
				attempts := 0
				handler.setHandle(func(r interfaces.Record, ack interfaces.Acknowledgment) error {
					attempts++
					if attempts == 1 {
						return pauseErrors.NewUnavailableError("down")
					}
					return ack.Acknowledge()
				})
				kafkaConsumerClientMock.AddMessage(topic, 0, "k1", "v1")
				startConsuming()
				assign(partition)

				Eventually(handler.Offsets).Should(Equal([]int64{0, 0}))
				Expect(kafkaConsumerClientMock.GetSeeks()).To(HaveLen(1))
				Expect(kafkaConsumerClientMock.GetSeeks()[0].Offset).To(Equal(kafka.Offset(0)))
				Eventually(kafkaConsumerClientMock.GetStoredMessages).Should(HaveLen(1))
				Expect(hook.AllEntries()).To(ContainLogMessage("message not processed, it will be redelivered"))
			})

			It("should not rewind a message that failed with a non retryable error", func() {
				handler.setHandle(func(interfaces.Record, interfaces.Acknowledgment) error {
					return fmt.Errorf("boom")
				})
				kafkaConsumerClientMock.AddMessage(topic, 0, "k1", "v1")
				kafkaConsumerClientMock.AddMessage(topic, 0, "k2", "v2")
				startConsuming()
				assign(partition)

				Eventually(handler.Offsets).Should(Equal([]int64{0, 1}))
				Eventually(hook.AllEntries).Should(ContainLogMessage("error handling message"))
				Expect(kafkaConsumerClientMock.GetSeeks()).To(BeEmpty())
			})

			It("should stop on fatal errors", func() {
				startConsuming()
				kafkaConsumerClientMock.EventsChan <- kafka.NewError(kafka.ErrFatal, "fatal", true)
				Eventually(loopErr).Should(Receive(HaveOccurred()))
				Expect(consumer.IsRunning()).To(BeFalse())
			})

			It("should keep consuming after non fatal errors", func() {
				startConsuming()
				kafkaConsumerClientMock.EventsChan <- kafka.NewError(kafka.ErrTransport, "broker down", false)
				Eventually(hook.AllEntries).Should(ContainLogMessage("Error in Kafka connection."))
				Consistently(consumer.IsRunning, 50*time.Millisecond).Should(BeTrue())
			})
		})

		Describe("Pause and resume", func() {
			It("should pause every assigned partition", func() {
				startConsuming()
				assign(partition)

				Expect(consumer.Pause()).To(Succeed())
				Expect(consumer.IsPaused()).To(BeTrue())
				Expect(kafkaConsumerClientMock.IsPartitionPaused(topic, 0)).To(BeTrue())
			})

			It("should not deliver messages while paused", func() {
				startConsuming()
				assign(partition)
				Expect(consumer.Pause()).To(Succeed())

				kafkaConsumerClientMock.AddMessage(topic, 0, "k1", "v1")
				Consistently(handler.Records, 50*time.Millisecond).Should(BeEmpty())

				Expect(consumer.Resume()).To(Succeed())
				Expect(consumer.IsPaused()).To(BeFalse())
				Eventually(handler.Offsets).Should(Equal([]int64{0}))
			})

			It("should discard and rewind messages fetched before the pause took effect", func() {
				first := kafkaConsumerClientMock.AddMessage(topic, 0, "k1", "v1")
				second := kafkaConsumerClientMock.AddMessage(topic, 0, "k2", "v2")
				startConsuming()
				Expect(consumer.Pause()).To(Succeed())
				assign(partition)

				kafkaConsumerClientMock.EventsChan <- first
				kafkaConsumerClientMock.EventsChan <- second
				Eventually(kafkaConsumerClientMock.GetSeeks).Should(HaveLen(1))
				Consistently(kafkaConsumerClientMock.GetSeeks, 50*time.Millisecond).Should(HaveLen(1))
				Expect(kafkaConsumerClientMock.GetSeeks()[0].Offset).To(Equal(kafka.Offset(0)))
				Expect(handler.Records()).To(BeEmpty())

				Expect(consumer.Resume()).To(Succeed())
				Eventually(handler.Offsets).Should(Equal([]int64{0, 1}))
			})

			It("should pause partitions assigned while paused", func() {
				startConsuming()
				Expect(consumer.Pause()).To(Succeed())
				assign(partition)
				Eventually(func() bool {
					return kafkaConsumerClientMock.IsPartitionPaused(topic, 0)
				}).Should(BeTrue())
			})

			It("should return error if pausing fails", func() {
				startConsuming()
				assign(partition)
				kafkaConsumerClientMock.SetPauseError(fmt.Errorf("pause failed"))

				err := consumer.Pause()
				Expect(err).To(MatchError("pause failed"))
				Expect(consumer.IsPaused()).To(BeFalse())
				Expect(hook.AllEntries()).To(ContainLogMessage("error pausing partitions"))
			})

			It("should stay paused if resuming fails", func() {
				startConsuming()
				assign(partition)
				Expect(consumer.Pause()).To(Succeed())
				kafkaConsumerClientMock.SetResumeError(fmt.Errorf("resume failed"))

				err := consumer.Resume()
				Expect(err).To(MatchError("resume failed"))
				Expect(consumer.IsPaused()).To(BeTrue())
			})
		})

		Describe("Cleanup", func() {
			It("should stop consuming and close the client", func() {
				startConsuming()
				Expect(consumer.Cleanup()).To(Succeed())
				Expect(consumer.IsRunning()).To(BeFalse())
				Expect(kafkaConsumerClientMock.IsClosed()).To(BeTrue())
			})
		})
	})
})
