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
	"os"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/interfaces"
	"github.com/topfreegames/pausepoc/mocks"
	. "github.com/topfreegames/pausepoc/testing"
	"github.com/topfreegames/pausepoc/util"
)

// silentProducerClientMock never sends a delivery report
type silentProducerClientMock struct {
	*mocks.KafkaProducerClientMock
}

func (s *silentProducerClientMock) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	return nil
}

var _ = Describe("KafkaProducer Extension", func() {
	var config *viper.Viper
	var mockProducer *mocks.KafkaProducerClientMock
	logger, hook := test.NewNullLogger()
	logger.Level = logrus.DebugLevel
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "../config/test.yaml"
	}

	BeforeEach(func() {
		var err error
		config, err = util.NewViperWithConfigFile(configFile)
		Expect(err).NotTo(HaveOccurred())
		mockProducer = mocks.NewKafkaProducerClientMock()
		hook.Reset()
	})

	Describe("[Unit]", func() {
		Describe("Creating new producer", func() {
			It("should read topics and timeout from config", func() {
				producer, err := NewKafkaProducer(config, logger, mockProducer)
				Expect(err).NotTo(HaveOccurred())
				defer producer.Cleanup()
				Expect(producer.SinkTopic).To(Equal("flaky-output-topic"))
				Expect(producer.SourceTopic).To(Equal("flaky-input-topic"))
				Expect(producer.DeliveryTimeout).To(Equal(time.Second))
			})
		})

		Describe("Forwarding records", func() {
			It("should publish the record unchanged to the sink topic", func() {
				producer, err := NewKafkaProducer(config, logger, mockProducer)
				Expect(err).NotTo(HaveOccurred())
				defer producer.Cleanup()

				key := uuid.NewString()
				err = producer.Forward(context.Background(), interfaces.Record{
					Topic: "flaky-input-topic",
					Key:   key,
					Value: "hello",
				})
				Expect(err).NotTo(HaveOccurred())

				messages := mockProducer.Messages()
				Expect(messages).To(HaveLen(1))
				Expect(*messages[0].TopicPartition.Topic).To(Equal("flaky-output-topic"))
				Expect(string(messages[0].Key)).To(Equal(key))
				Expect(string(messages[0].Value)).To(Equal("hello"))
			})

			It("should return error if producing fails", func() {
				producer, err := NewKafkaProducer(config, logger, mockProducer)
				Expect(err).NotTo(HaveOccurred())
				defer producer.Cleanup()
				mockProducer.SetProduceError(fmt.Errorf("queue full"))

				err = producer.Forward(context.Background(), interfaces.Record{Value: "hello"})
				Expect(err).To(MatchError("queue full"))
				Expect(hook.AllEntries()).To(ContainLogMessage("error producing message"))
			})

			It("should return error if the delivery report has an error", func() {
				producer, err := NewKafkaProducer(config, logger, mockProducer)
				Expect(err).NotTo(HaveOccurred())
				defer producer.Cleanup()
				mockProducer.SetDeliveryError(kafka.NewError(kafka.ErrMsgTimedOut, "timed out", false))

				err = producer.Forward(context.Background(), interfaces.Record{Value: "hello"})
				Expect(err).To(HaveOccurred())
				Expect(mockProducer.Messages()).To(BeEmpty())
				Expect(hook.AllEntries()).To(ContainLogMessage("message was not delivered"))
			})

			It("should time out waiting for the delivery report", func() {
				config.Set("kafka.producer.deliveryTimeoutMs", 20)
				silent := &silentProducerClientMock{mockProducer}
				producer, err := NewKafkaProducer(config, logger, silent)
				Expect(err).NotTo(HaveOccurred())
				defer producer.Cleanup()

				err = producer.Forward(context.Background(), interfaces.Record{Value: "hello"})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("waiting for delivery report"))
			})
		})

		Describe("Sending test records", func() {
			It("should publish to the source topic and return the partition", func() {
				producer, err := NewKafkaProducer(config, logger, mockProducer)
				Expect(err).NotTo(HaveOccurred())
				defer producer.Cleanup()

				tp, err := producer.Send(context.Background(), "defaultKey", "msg")
				Expect(err).NotTo(HaveOccurred())
				Expect(*tp.Topic).To(Equal("flaky-input-topic"))
				Expect(tp.Offset).To(Equal(kafka.Offset(0)))

				tp, err = producer.Send(context.Background(), "defaultKey", "msg")
				Expect(err).NotTo(HaveOccurred())
				Expect(tp.Offset).To(Equal(kafka.Offset(1)))
			})
		})

		Describe("Kafka responses", func() {
			It("should log failed deliveries", func() {
				producer, err := NewKafkaProducer(config, logger, mockProducer)
				Expect(err).NotTo(HaveOccurred())
				defer producer.Cleanup()
				testTopic := "ttopic"
				producer.Producer.Events() <- &kafka.Message{
					TopicPartition: kafka.TopicPartition{
						Topic: &testTopic,
						Error: fmt.Errorf("broker down"),
					},
				}
				Eventually(hook.AllEntries).Should(ContainLogMessage("error delivering message to kafka"))
			})
		})

		Describe("Cleanup", func() {
			It("should close the producer", func() {
				producer, err := NewKafkaProducer(config, logger, mockProducer)
				Expect(err).NotTo(HaveOccurred())
				producer.Cleanup()
				Expect(mockProducer.Closed).To(BeTrue())
			})
		})
	})

	Describe("[Integration]", func() {
		Describe("Creating new producer", func() {
			It("should return a client", func() {
				kafkaProducer, err := NewKafkaProducer(config, logger)
				Expect(err).NotTo(HaveOccurred())
				defer kafkaProducer.Cleanup()
				Expect(kafkaProducer.Producer).NotTo(BeNil())
				Expect(kafkaProducer.Config).NotTo(BeNil())
				Expect(kafkaProducer.Logger).NotTo(BeNil())
			})
		})
	})
})
