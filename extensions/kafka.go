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
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/interfaces"
)

// kafkaConfigMap returns base merged with the librdkafka overrides in kafka.extra.
// Overrides never replace keys set in base.
func kafkaConfigMap(config *viper.Viper, base kafka.ConfigMap) *kafka.ConfigMap {
	configMap := kafka.ConfigMap{}
	for k, v := range config.GetStringMapString("kafka.extra") {
		configMap[k] = v
	}
	for k, v := range base {
		configMap[k] = v
	}
	return &configMap
}

func toRecord(msg *kafka.Message) interfaces.Record {
	record := interfaces.Record{
		Partition: msg.TopicPartition.Partition,
		Offset:    int64(msg.TopicPartition.Offset),
		Key:       string(msg.Key),
		Value:     string(msg.Value),
	}
	if msg.TopicPartition.Topic != nil {
		record.Topic = *msg.TopicPartition.Topic
	}
	return record
}

type partitionKey struct {
	topic     string
	partition int32
}

func keyOf(tp kafka.TopicPartition) partitionKey {
	k := partitionKey{partition: tp.Partition}
	if tp.Topic != nil {
		k.topic = *tp.Topic
	}
	return k
}
