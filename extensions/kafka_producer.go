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
	raven "github.com/getsentry/raven-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/interfaces"
	"github.com/topfreegames/pausepoc/util"
)

// KafkaProducer publishes records and waits for the broker delivery report
type KafkaProducer struct {
	Brokers         string
	Config          *viper.Viper
	DeliveryTimeout time.Duration
	Logger          *logrus.Logger
	Producer        interfaces.KafkaProducerClient
	SinkTopic       string
	SourceTopic     string
}

var _ interfaces.Forwarder = &KafkaProducer{}

// NewKafkaProducer for creating a new KafkaProducer instance
func NewKafkaProducer(config *viper.Viper, logger *logrus.Logger, clientOrNil ...interfaces.KafkaProducerClient) (*KafkaProducer, error) {
	q := &KafkaProducer{
		Config: config,
		Logger: logger,
	}
	var producer interfaces.KafkaProducerClient
	if len(clientOrNil) == 1 {
		producer = clientOrNil[0]
	}
	err := q.configure(producer)
	return q, err
}

func (q *KafkaProducer) loadConfigurationDefaults() {
	q.Config.SetDefault("kafka.brokers", "localhost:9092")
	q.Config.SetDefault("kafka.topic-name", "flaky-input-topic")
	q.Config.SetDefault("kafka.sink-topic", "flaky-output-topic")
	q.Config.SetDefault("kafka.producer.deliveryTimeoutMs", 10000)
}

func (q *KafkaProducer) configure(producer interfaces.KafkaProducerClient) error {
	q.loadConfigurationDefaults()
	q.Brokers = q.Config.GetString("kafka.brokers")
	q.SinkTopic = q.Config.GetString("kafka.sink-topic")
	q.SourceTopic = q.Config.GetString("kafka.topic-name")
	q.DeliveryTimeout = time.Duration(q.Config.GetInt("kafka.producer.deliveryTimeoutMs")) * time.Millisecond
	l := q.Logger.WithFields(logrus.Fields{
		"brokers":   q.Brokers,
		"sinkTopic": q.SinkTopic,
	})
	l.Debug("configuring kafka producer")

	if producer == nil {
		p, err := kafka.NewProducer(kafkaConfigMap(q.Config, kafka.ConfigMap{
			"bootstrap.servers":  q.Brokers,
			"acks":               "all",
			"enable.idempotence": true,
		}))
		if err != nil {
			l.WithError(err).Error("error configuring kafka producer client")
			return err
		}
		q.Producer = p
	} else {
		q.Producer = producer
	}
	go q.listenForKafkaResponses()
	l.Info("kafka producer initialized")
	return nil
}

// listenForKafkaResponses drains events that are not delivery reports of Produce
func (q *KafkaProducer) listenForKafkaResponses() {
	l := q.Logger.WithFields(logrus.Fields{
		"method": "listenForKafkaResponses",
	})
	for e := range q.Producer.Events() {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				raven.CaptureError(ev.TopicPartition.Error, map[string]string{
					"version":   util.Version,
					"extension": "kafka-producer",
				})
				l.WithError(ev.TopicPartition.Error).Error("error delivering message to kafka")
			}
		case kafka.Error:
			l.WithError(ev).Error("kafka producer error")
		default:
			l.WithField("event", ev).Debug("ignored kafka response event")
		}
	}
}

// Produce publishes value to topic and blocks until the broker acknowledges it
func (q *KafkaProducer) Produce(ctx context.Context, topic, key, value string) (kafka.TopicPartition, error) {
	l := q.Logger.WithFields(logrus.Fields{
		"method": "Produce",
		"topic":  topic,
		"key":    key,
	})

	deliveryChan := make(chan kafka.Event, 1)
	m := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(key),
		Value: []byte(value),
	}
	err := q.Producer.Produce(m, deliveryChan)
	if err != nil {
		l.WithError(err).Error("error producing message")
		return kafka.TopicPartition{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, q.DeliveryTimeout)
	defer cancel()
	select {
	case e := <-deliveryChan:
		report, ok := e.(*kafka.Message)
		if !ok {
			return kafka.TopicPartition{}, fmt.Errorf("unexpected delivery event: %v", e)
		}
		if report.TopicPartition.Error != nil {
			l.WithError(report.TopicPartition.Error).Error("message was not delivered")
			return report.TopicPartition, report.TopicPartition.Error
		}
		l.WithFields(logrus.Fields{
			"partition": report.TopicPartition.Partition,
			"offset":    report.TopicPartition.Offset,
		}).Debug("delivered message to topic")
		return report.TopicPartition, nil
	case <-ctx.Done():
		l.WithError(ctx.Err()).Error("timed out waiting for delivery report")
		return kafka.TopicPartition{}, fmt.Errorf("waiting for delivery report: %w", ctx.Err())
	}
}

// Send publishes a test record to the source topic
func (q *KafkaProducer) Send(ctx context.Context, key, value string) (kafka.TopicPartition, error) {
	return q.Produce(ctx, q.SourceTopic, key, value)
}

// Forward publishes record unchanged to the sink topic
func (q *KafkaProducer) Forward(ctx context.Context, record interfaces.Record) error {
	_, err := q.Produce(ctx, q.SinkTopic, record.Key, record.Value)
	return err
}

// Cleanup flushes pending messages and closes the producer
func (q *KafkaProducer) Cleanup() {
	if q.Producer == nil {
		return
	}
	remaining := q.Producer.Flush(int(q.DeliveryTimeout / time.Millisecond))
	if remaining > 0 {
		q.Logger.WithField("remaining", remaining).Warn("producer closed with undelivered messages")
	}
	q.Producer.Close()
}
