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
	"sync"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	pauseErrors "github.com/topfreegames/pausepoc/errors"
	"github.com/topfreegames/pausepoc/interfaces"
	"go.uber.org/atomic"
)

// KafkaConsumer polls the source topic and hands every record to a MessageHandler.
// Offsets are stored only when the handler acknowledges a record, and a record
// that fails with a retryable error is fetched again from its offset.
type KafkaConsumer struct {
	Brokers             string
	Config              *viper.Viper
	Consumer            interfaces.KafkaConsumerClient
	ConsumerGroup       string
	ListenerID          string
	Logger              *logrus.Logger
	messagesReceived    int64
	OffsetResetStrategy string
	PollTimeoutMs       int
	run                 *atomic.Bool
	SessionTimeout      int
	Topics              []string

	mu      sync.Mutex
	paused  bool
	rewinds map[partitionKey]kafka.Offset
}

var _ interfaces.ConsumptionManager = &KafkaConsumer{}

// NewKafkaConsumer for creating a new KafkaConsumer instance
func NewKafkaConsumer(
	config *viper.Viper,
	logger *logrus.Logger,
	clientOrNil ...interfaces.KafkaConsumerClient,
) (*KafkaConsumer, error) {
	q := &KafkaConsumer{
		Config:           config,
		Logger:           logger,
		messagesReceived: 0,
		run:              atomic.NewBool(false),
		rewinds:          map[partitionKey]kafka.Offset{},
	}
	var client interfaces.KafkaConsumerClient
	if len(clientOrNil) == 1 {
		client = clientOrNil[0]
	}
	err := q.configure(client)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (q *KafkaConsumer) loadConfigurationDefaults() {
	q.Config.SetDefault("kafka.brokers", "localhost:9092")
	q.Config.SetDefault("kafka.topic-name", "flaky-input-topic")
	q.Config.SetDefault("kafka.consumer.group-id", "pause-poc-group")
	q.Config.SetDefault("kafka.consumer.listener-id", "flaky-consumer")
	q.Config.SetDefault("kafka.consumer.sessionTimeout", 6000)
	q.Config.SetDefault("kafka.consumer.offsetResetStrategy", "earliest")
	q.Config.SetDefault("kafka.consumer.pollTimeoutMs", 100)
}

func (q *KafkaConsumer) configure(client interfaces.KafkaConsumerClient) error {
	q.loadConfigurationDefaults()
	q.OffsetResetStrategy = q.Config.GetString("kafka.consumer.offsetResetStrategy")
	q.Brokers = q.Config.GetString("kafka.brokers")
	q.ConsumerGroup = q.Config.GetString("kafka.consumer.group-id")
	q.ListenerID = q.Config.GetString("kafka.consumer.listener-id")
	q.SessionTimeout = q.Config.GetInt("kafka.consumer.sessionTimeout")
	q.PollTimeoutMs = q.Config.GetInt("kafka.consumer.pollTimeoutMs")
	q.Topics = []string{q.Config.GetString("kafka.topic-name")}

	err := q.configureConsumer(client)
	if err != nil {
		return err
	}
	return nil
}

func (q *KafkaConsumer) configureConsumer(client interfaces.KafkaConsumerClient) error {
	l := q.Logger.WithFields(logrus.Fields{
		"method":                          "configureConsumer",
		"bootstrap.servers":               q.Brokers,
		"group.id":                        q.ConsumerGroup,
		"session.timeout.ms":              q.SessionTimeout,
		"go.application.rebalance.enable": true,
		"enable.auto.commit":              true,
		"enable.auto.offset.store":        false,
		"auto.offset.reset":               q.OffsetResetStrategy,
		"topics":                          q.Topics,
		"listenerId":                      q.ListenerID,
	})
	l.Debug("configuring kafka consumer")

	if client == nil {
		c, err := kafka.NewConsumer(kafkaConfigMap(q.Config, kafka.ConfigMap{
			"bootstrap.servers":               q.Brokers,
			"group.id":                        q.ConsumerGroup,
			"session.timeout.ms":              q.SessionTimeout,
			"go.application.rebalance.enable": true,
			"enable.auto.commit":              true,
			"enable.auto.offset.store":        false,
			"auto.offset.reset":               q.OffsetResetStrategy,
		}))
		if err != nil {
			l.WithError(err).Error("error configuring kafka consumer")
			return err
		}
		q.Consumer = c
	} else {
		q.Consumer = client
	}
	l.Info("kafka consumer configured")
	return nil
}

// StopConsuming stops consuming messages from the queue
func (q *KafkaConsumer) StopConsuming() {
	q.run.Store(false)
}

// IsRunning reports whether the consume loop is running
func (q *KafkaConsumer) IsRunning() bool {
	return q.run.Load()
}

// IsPaused reports whether fetching is paused
func (q *KafkaConsumer) IsPaused() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.paused
}

// Pause stops fetching from every assigned partition
func (q *KafkaConsumer) Pause() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	l := q.Logger.WithFields(logrus.Fields{
		"method":     "Pause",
		"listenerId": q.ListenerID,
	})

	partitions, err := q.Consumer.Assignment()
	if err != nil {
		l.WithError(err).Error("error getting assigned partitions")
		return err
	}
	err = q.Consumer.Pause(partitions)
	if err != nil {
		l.WithError(err).Error("error pausing partitions")
		return err
	}
	q.paused = true
	q.rewinds = map[partitionKey]kafka.Offset{}
	l.WithField("partitions", fmt.Sprintf("%v", partitions)).Warn("consumer paused")
	return nil
}

// Resume restarts fetching from every assigned partition
func (q *KafkaConsumer) Resume() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	l := q.Logger.WithFields(logrus.Fields{
		"method":     "Resume",
		"listenerId": q.ListenerID,
	})

	partitions, err := q.Consumer.Assignment()
	if err != nil {
		l.WithError(err).Error("error getting assigned partitions")
		return err
	}
	err = q.Consumer.Resume(partitions)
	if err != nil {
		l.WithError(err).Error("error resuming partitions")
		return err
	}
	q.paused = false
	q.rewinds = map[partitionKey]kafka.Offset{}
	l.WithField("partitions", fmt.Sprintf("%v", partitions)).Info("consumer resumed")
	return nil
}

// ConsumeLoop polls the queue and calls handler for each record, one at a time,
// until StopConsuming is called or ctx is done
func (q *KafkaConsumer) ConsumeLoop(ctx context.Context, handler interfaces.MessageHandler) error {
	q.run.Store(true)
	l := q.Logger.WithFields(logrus.Fields{
		"method": "ConsumeLoop",
		"topics": q.Topics,
	})

	err := q.Consumer.SubscribeTopics(q.Topics, nil)
	if err != nil {
		l.WithError(err).Error("error subscribing to topics")
		q.StopConsuming()
		return err
	}

	l.Info("successfully subscribed to topics")

	for q.run.Load() {
		if ctx.Err() != nil {
			q.StopConsuming()
			break
		}

		ev := q.Consumer.Poll(q.PollTimeoutMs)
		switch e := ev.(type) {
		case nil:
		case kafka.AssignedPartitions:
			err = q.assignPartitions(e.Partitions)
			if err != nil {
				q.StopConsuming()
				return err
			}
		case kafka.RevokedPartitions:
			err = q.unassignPartitions()
			if err != nil {
				q.StopConsuming()
				return err
			}
		case *kafka.Message:
			q.receiveMessage(ctx, handler, e)
		case kafka.PartitionEOF:
			q.handlePartitionEOF(ev)
		case kafka.OffsetsCommitted:
			q.handleOffsetsCommitted(ev)
		case kafka.Error:
			q.handleError(e)
			if e.IsFatal() {
				q.StopConsuming()
				return e
			}
		default:
			q.handleUnrecognized(e)
		}
	}

	l.Info("consume loop stopped")
	return nil
}

func (q *KafkaConsumer) assignPartitions(partitions []kafka.TopicPartition) error {
	l := q.Logger.WithFields(logrus.Fields{
		"method":     "assignPartitions",
		"partitions": fmt.Sprintf("%v", partitions),
	})

	l.Debug("Assigning partitions...")
	err := q.Consumer.Assign(partitions)
	if err != nil {
		l.WithError(err).Error("error assigning partitions")
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.paused {
		// partitions assigned during a pause start paused as well
		err = q.Consumer.Pause(partitions)
		if err != nil {
			l.WithError(err).Error("error pausing assigned partitions")
			return err
		}
	}
	l.Info("Partitions assigned.")
	return nil
}

func (q *KafkaConsumer) unassignPartitions() error {
	l := q.Logger.WithFields(logrus.Fields{
		"method": "unassignPartitions",
	})

	l.Debug("Unassigning partitions...")
	err := q.Consumer.Unassign()
	if err != nil {
		l.WithError(err).Error("error revoking partitions")
		return err
	}
	l.Info("Partitions unassigned.")
	return nil
}

func (q *KafkaConsumer) receiveMessage(ctx context.Context, handler interfaces.MessageHandler, msg *kafka.Message) {
	l := q.Logger.WithFields(logrus.Fields{
		"method":    "receiveMessage",
		"partition": fmt.Sprintf("%v", msg.TopicPartition),
	})

	q.messagesReceived++
	if q.messagesReceived%1000 == 0 {
		l.Infof("messages from kafka: %d", q.messagesReceived)
	}

	if q.IsPaused() {
		// fetched before the pause took effect
		q.rewind(msg)
		l.Debug("discarding message fetched while paused")
		return
	}

	err := handler.Handle(ctx, toRecord(msg), &kafkaAcknowledgment{consumer: q.Consumer, message: msg})
	if err == nil {
		return
	}
	if pauseErrors.IsRetryable(err) {
		q.rewind(msg)
		l.WithError(err).Warn("message not processed, it will be redelivered")
		return
	}
	l.WithError(err).Error("error handling message")
}

// rewind makes msg the next message fetched from its partition. While paused
// only the lowest offset seen per partition is kept.
func (q *KafkaConsumer) rewind(msg *kafka.Message) {
	q.mu.Lock()
	defer q.mu.Unlock()

	key := keyOf(msg.TopicPartition)
	if q.paused {
		if offset, ok := q.rewinds[key]; ok && offset <= msg.TopicPartition.Offset {
			return
		}
		q.rewinds[key] = msg.TopicPartition.Offset
	}

	tp := kafka.TopicPartition{
		Topic:     msg.TopicPartition.Topic,
		Partition: msg.TopicPartition.Partition,
		Offset:    msg.TopicPartition.Offset,
	}
	err := q.Consumer.Seek(tp, 0)
	if err != nil {
		q.Logger.WithFields(logrus.Fields{
			"method":    "rewind",
			"partition": fmt.Sprintf("%v", tp),
		}).WithError(err).Error("error seeking partition")
	}
}

func (q *KafkaConsumer) handlePartitionEOF(ev kafka.Event) {
	l := q.Logger.WithFields(logrus.Fields{
		"method":    "handlePartitionEOF",
		"partition": fmt.Sprintf("%v", ev),
	})

	l.Debugf("Reached partition EOF.")
}

func (q *KafkaConsumer) handleOffsetsCommitted(ev kafka.Event) {
	l := q.Logger.WithFields(logrus.Fields{
		"method":    "handleOffsetsCommitted",
		"partition": fmt.Sprintf("%v", ev),
	})

	l.Debugf("Offsets committed successfully.")
}

func (q *KafkaConsumer) handleError(err kafka.Error) {
	l := q.Logger.WithFields(logrus.Fields{
		"method": "handleError",
		"fatal":  err.IsFatal(),
	})
	l.WithError(err).Error("Error in Kafka connection.")
}

func (q *KafkaConsumer) handleUnrecognized(ev kafka.Event) {
	l := q.Logger.WithFields(logrus.Fields{
		"method": "handleUnrecognized",
		"event":  fmt.Sprintf("%v", ev),
	})
	l.Warn("Kafka event not recognized.")
}

// Cleanup closes kafka consumer connection
func (q *KafkaConsumer) Cleanup() error {
	if q.run.Load() {
		q.StopConsuming()
	}
	if q.Consumer != nil {
		err := q.Consumer.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

type kafkaAcknowledgment struct {
	consumer interfaces.KafkaConsumerClient
	message  *kafka.Message
}

// Acknowledge stores the offset of the message, it is committed by the auto commit
func (a *kafkaAcknowledgment) Acknowledge() error {
	_, err := a.consumer.StoreMessage(a.message)
	return err
}
