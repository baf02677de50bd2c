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
	"strings"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/interfaces"
)

// TopicProvisioner creates the source and sink topics
type TopicProvisioner struct {
	Admin             interfaces.KafkaAdminClient
	Brokers           string
	Config            *viper.Viper
	Logger            *logrus.Logger
	Partitions        int
	ReplicationFactor int
	Timeout           time.Duration
	Topics            []string
}

// NewTopicProvisioner returns a new TopicProvisioner
func NewTopicProvisioner(config *viper.Viper, logger *logrus.Logger, clientOrNil ...interfaces.KafkaAdminClient) (*TopicProvisioner, error) {
	p := &TopicProvisioner{
		Config: config,
		Logger: logger,
	}
	var client interfaces.KafkaAdminClient
	if len(clientOrNil) == 1 {
		client = clientOrNil[0]
	}
	err := p.configure(client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *TopicProvisioner) loadConfigurationDefaults() {
	p.Config.SetDefault("kafka.brokers", "localhost:9092")
	p.Config.SetDefault("kafka.topic-name", "flaky-input-topic")
	p.Config.SetDefault("kafka.sink-topic", "flaky-output-topic")
	p.Config.SetDefault("kafka.provision.partitions", 1)
	p.Config.SetDefault("kafka.provision.replicationFactor", 1)
	p.Config.SetDefault("kafka.provision.timeoutMs", 30000)
}

func (p *TopicProvisioner) configure(client interfaces.KafkaAdminClient) error {
	p.loadConfigurationDefaults()
	p.Brokers = p.Config.GetString("kafka.brokers")
	p.Partitions = p.Config.GetInt("kafka.provision.partitions")
	p.ReplicationFactor = p.Config.GetInt("kafka.provision.replicationFactor")
	p.Timeout = time.Duration(p.Config.GetInt("kafka.provision.timeoutMs")) * time.Millisecond
	p.Topics = []string{
		p.Config.GetString("kafka.topic-name"),
		p.Config.GetString("kafka.sink-topic"),
	}

	if client != nil {
		p.Admin = client
		return nil
	}
	a, err := kafka.NewAdminClient(kafkaConfigMap(p.Config, kafka.ConfigMap{
		"bootstrap.servers": p.Brokers,
	}))
	if err != nil {
		p.Logger.WithError(err).Error("error configuring kafka admin client")
		return err
	}
	p.Admin = a
	return nil
}

// Provision creates the topics, topics that already exist are left untouched
func (p *TopicProvisioner) Provision(ctx context.Context) error {
	l := p.Logger.WithFields(logrus.Fields{
		"method": "Provision",
		"topics": p.Topics,
	})

	specs := make([]kafka.TopicSpecification, 0, len(p.Topics))
	for _, topic := range p.Topics {
		specs = append(specs, kafka.TopicSpecification{
			Topic:             topic,
			NumPartitions:     p.Partitions,
			ReplicationFactor: p.ReplicationFactor,
		})
	}

	results, err := p.Admin.CreateTopics(ctx, specs, kafka.SetAdminOperationTimeout(p.Timeout))
	if err != nil {
		l.WithError(err).Error("error creating topics")
		return err
	}

	failed := []string{}
	for _, result := range results {
		switch result.Error.Code() {
		case kafka.ErrNoError:
			l.WithField("topic", result.Topic).Info("topic created")
		case kafka.ErrTopicAlreadyExists:
			l.WithField("topic", result.Topic).Debug("topic already exists")
		default:
			l.WithField("topic", result.Topic).WithError(result.Error).Error("could not create topic")
			failed = append(failed, fmt.Sprintf("%s: %s", result.Topic, result.Error.Error()))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("could not create topics: %s", strings.Join(failed, ", "))
	}
	return nil
}

// Close closes the admin client
func (p *TopicProvisioner) Close() {
	if p.Admin != nil {
		p.Admin.Close()
	}
}
