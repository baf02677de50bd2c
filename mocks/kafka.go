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

package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

func partitionKey(topic *string, partition int32) string {
	t := ""
	if topic != nil {
		t = *topic
	}
	return fmt.Sprintf("%s[%d]", t, partition)
}

// KafkaProducerClientMock should be used for tests that need to send messages to Kafka
type KafkaProducerClientMock struct {
	mu            sync.Mutex
	EventsChan    chan kafka.Event
	SentMessages  []*kafka.Message
	ProduceError  error
	DeliveryError error
	Closed        bool
	offsets       map[string]kafka.Offset
}

// NewKafkaProducerClientMock creates a new instance
func NewKafkaProducerClientMock() *KafkaProducerClientMock {
	return &KafkaProducerClientMock{
		EventsChan:   make(chan kafka.Event, 100),
		SentMessages: []*kafka.Message{},
		offsets:      map[string]kafka.Offset{},
	}
}

// SetProduceError makes Produce fail with err
func (k *KafkaProducerClientMock) SetProduceError(err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.ProduceError = err
}

// SetDeliveryError makes delivery reports carry err
func (k *KafkaProducerClientMock) SetDeliveryError(err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.DeliveryError = err
}

// Messages returns the messages produced so far
func (k *KafkaProducerClientMock) Messages() []*kafka.Message {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]*kafka.Message{}, k.SentMessages...)
}

// Produce records msg and sends the delivery report to deliveryChan, or to
// Events when deliveryChan is nil
func (k *KafkaProducerClientMock) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	k.mu.Lock()
	if k.ProduceError != nil {
		err := k.ProduceError
		k.mu.Unlock()
		return err
	}
	report := *msg
	report.TopicPartition.Error = k.DeliveryError
	if report.TopicPartition.Partition == kafka.PartitionAny {
		report.TopicPartition.Partition = 0
	}
	if k.DeliveryError == nil {
		key := partitionKey(report.TopicPartition.Topic, report.TopicPartition.Partition)
		report.TopicPartition.Offset = k.offsets[key]
		k.offsets[key]++
		k.SentMessages = append(k.SentMessages, &report)
	}
	k.mu.Unlock()

	if deliveryChan != nil {
		deliveryChan <- &report
	} else {
		k.EventsChan <- &report
	}
	return nil
}

// Events returns the mock events channel
func (k *KafkaProducerClientMock) Events() chan kafka.Event {
	return k.EventsChan
}

// Flush mock
func (k *KafkaProducerClientMock) Flush(timeoutMs int) int {
	return 0
}

// Close closes the events channel
func (k *KafkaProducerClientMock) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.Closed {
		k.Closed = true
		close(k.EventsChan)
	}
}

// KafkaConsumerClientMock serves messages appended with AddMessage from an
// in memory log, honoring Assign, Pause, Resume and Seek
type KafkaConsumerClientMock struct {
	mu                 sync.Mutex
	SubscribedTopics   map[string]interface{}
	EventsChan         chan kafka.Event
	AssignedPartitions []kafka.TopicPartition
	Seeks              []kafka.TopicPartition
	StoredMessages     []*kafka.Message
	Closed             bool
	Error              error
	PauseError         error
	ResumeError        error
	PauseCalls         int
	ResumeCalls        int
	log                map[string][]*kafka.Message
	positions          map[string]kafka.Offset
	paused             map[string]bool
	stored             map[string]kafka.Offset
}

// NewKafkaConsumerClientMock creates a new instance
func NewKafkaConsumerClientMock(errorOrNil ...error) *KafkaConsumerClientMock {
	var err error
	if len(errorOrNil) == 1 {
		err = errorOrNil[0]
	}
	return &KafkaConsumerClientMock{
		SubscribedTopics:   map[string]interface{}{},
		EventsChan:         make(chan kafka.Event, 100),
		AssignedPartitions: []kafka.TopicPartition{},
		Seeks:              []kafka.TopicPartition{},
		StoredMessages:     []*kafka.Message{},
		Error:              err,
		log:                map[string][]*kafka.Message{},
		positions:          map[string]kafka.Offset{},
		paused:             map[string]bool{},
		stored:             map[string]kafka.Offset{},
	}
}

// AddMessage appends a message to the partition log
func (k *KafkaConsumerClientMock) AddMessage(topic string, partition int32, key, value string) *kafka.Message {
	k.mu.Lock()
	defer k.mu.Unlock()
	pk := partitionKey(&topic, partition)
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: partition,
			Offset:    kafka.Offset(len(k.log[pk])),
		},
		Key:   []byte(key),
		Value: []byte(value),
	}
	k.log[pk] = append(k.log[pk], msg)
	return msg
}

// SetPauseError makes Pause fail with err
func (k *KafkaConsumerClientMock) SetPauseError(err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.PauseError = err
}

// SetResumeError makes Resume fail with err
func (k *KafkaConsumerClientMock) SetResumeError(err error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.ResumeError = err
}

//SubscribeTopics mock
func (k *KafkaConsumerClientMock) SubscribeTopics(topics []string, callback kafka.RebalanceCb) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.Error != nil {
		return k.Error
	}
	for _, topic := range topics {
		k.SubscribedTopics[topic] = callback
	}
	return nil
}

//Poll returns queued events first, then the next message of an assigned
//partition that is not paused
func (k *KafkaConsumerClientMock) Poll(timeoutMs int) kafka.Event {
	select {
	case ev := <-k.EventsChan:
		return ev
	default:
	}
	if msg := k.next(); msg != nil {
		return msg
	}
	select {
	case ev := <-k.EventsChan:
		return ev
	case <-time.After(time.Duration(timeoutMs) * time.Millisecond):
		return nil
	}
}

func (k *KafkaConsumerClientMock) next() *kafka.Message {
	k.mu.Lock()
	defer k.mu.Unlock()
	for _, tp := range k.AssignedPartitions {
		pk := partitionKey(tp.Topic, tp.Partition)
		if k.paused[pk] {
			continue
		}
		pos := k.positions[pk]
		if int(pos) < len(k.log[pk]) {
			k.positions[pk] = pos + 1
			return k.log[pk][pos]
		}
	}
	return nil
}

//Assign mock
func (k *KafkaConsumerClientMock) Assign(partitions []kafka.TopicPartition) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.Error != nil {
		return k.Error
	}
	k.AssignedPartitions = partitions
	for _, tp := range partitions {
		pk := partitionKey(tp.Topic, tp.Partition)
		if offset, ok := k.stored[pk]; ok {
			k.positions[pk] = offset
		}
	}
	return nil
}

//Unassign mock
func (k *KafkaConsumerClientMock) Unassign() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.Error != nil {
		return k.Error
	}
	k.AssignedPartitions = []kafka.TopicPartition{}
	return nil
}

//Assignment mock
func (k *KafkaConsumerClientMock) Assignment() ([]kafka.TopicPartition, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.Error != nil {
		return nil, k.Error
	}
	return append([]kafka.TopicPartition{}, k.AssignedPartitions...), nil
}

//Pause mock
func (k *KafkaConsumerClientMock) Pause(partitions []kafka.TopicPartition) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.PauseCalls++
	if k.PauseError != nil {
		return k.PauseError
	}
	for _, tp := range partitions {
		k.paused[partitionKey(tp.Topic, tp.Partition)] = true
	}
	return nil
}

//Resume mock
func (k *KafkaConsumerClientMock) Resume(partitions []kafka.TopicPartition) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.ResumeCalls++
	if k.ResumeError != nil {
		return k.ResumeError
	}
	for _, tp := range partitions {
		delete(k.paused, partitionKey(tp.Topic, tp.Partition))
	}
	return nil
}

//Seek mock
func (k *KafkaConsumerClientMock) Seek(partition kafka.TopicPartition, timeoutMs int) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.Error != nil {
		return k.Error
	}
	k.Seeks = append(k.Seeks, partition)
	k.positions[partitionKey(partition.Topic, partition.Partition)] = partition.Offset
	return nil
}

//StoreMessage mock
func (k *KafkaConsumerClientMock) StoreMessage(msg *kafka.Message) ([]kafka.TopicPartition, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.Error != nil {
		return nil, k.Error
	}
	k.StoredMessages = append(k.StoredMessages, msg)
	tp := msg.TopicPartition
	tp.Offset++
	k.stored[partitionKey(tp.Topic, tp.Partition)] = tp.Offset
	return []kafka.TopicPartition{tp}, nil
}

//Close mock
func (k *KafkaConsumerClientMock) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.Error != nil {
		return k.Error
	}
	k.Closed = true
	return nil
}

// Subscriptions returns the subscribed topics
func (k *KafkaConsumerClientMock) Subscriptions() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	topics := make([]string, 0, len(k.SubscribedTopics))
	for topic := range k.SubscribedTopics {
		topics = append(topics, topic)
	}
	return topics
}

// Assigned returns the assigned partitions
func (k *KafkaConsumerClientMock) Assigned() []kafka.TopicPartition {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]kafka.TopicPartition{}, k.AssignedPartitions...)
}

// IsClosed reports whether Close was called
func (k *KafkaConsumerClientMock) IsClosed() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.Closed
}

// IsPartitionPaused reports whether the partition is paused
func (k *KafkaConsumerClientMock) IsPartitionPaused(topic string, partition int32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.paused[partitionKey(&topic, partition)]
}

// StoredOffset returns the next offset stored for the partition
func (k *KafkaConsumerClientMock) StoredOffset(topic string, partition int32) (kafka.Offset, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	offset, ok := k.stored[partitionKey(&topic, partition)]
	return offset, ok
}

// GetSeeks returns the seeks issued so far
func (k *KafkaConsumerClientMock) GetSeeks() []kafka.TopicPartition {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]kafka.TopicPartition{}, k.Seeks...)
}

// GetStoredMessages returns the messages whose offsets were stored
func (k *KafkaConsumerClientMock) GetStoredMessages() []*kafka.Message {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]*kafka.Message{}, k.StoredMessages...)
}

// GetPauseCalls returns how many times Pause was called
func (k *KafkaConsumerClientMock) GetPauseCalls() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.PauseCalls
}

// GetResumeCalls returns how many times Resume was called
func (k *KafkaConsumerClientMock) GetResumeCalls() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.ResumeCalls
}

// KafkaAdminClientMock records created topics
type KafkaAdminClientMock struct {
	mu       sync.Mutex
	Created  []kafka.TopicSpecification
	Existing map[string]bool
	Failing  map[string]kafka.ErrorCode
	Error    error
	Closed   bool
}

// NewKafkaAdminClientMock creates a new instance
func NewKafkaAdminClientMock() *KafkaAdminClientMock {
	return &KafkaAdminClientMock{
		Created:  []kafka.TopicSpecification{},
		Existing: map[string]bool{},
		Failing:  map[string]kafka.ErrorCode{},
	}
}

//CreateTopics mock
func (k *KafkaAdminClientMock) CreateTopics(
	ctx context.Context,
	topics []kafka.TopicSpecification,
	options ...kafka.CreateTopicsAdminOption,
) ([]kafka.TopicResult, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.Error != nil {
		return nil, k.Error
	}
	results := make([]kafka.TopicResult, 0, len(topics))
	for _, spec := range topics {
		result := kafka.TopicResult{Topic: spec.Topic, Error: kafka.NewError(kafka.ErrNoError, "", false)}
		switch {
		case k.Existing[spec.Topic]:
			result.Error = kafka.NewError(kafka.ErrTopicAlreadyExists, "Topic already exists", false)
		case k.Failing[spec.Topic] != kafka.ErrNoError:
			result.Error = kafka.NewError(k.Failing[spec.Topic], "could not create topic", false)
		default:
			k.Existing[spec.Topic] = true
			k.Created = append(k.Created, spec)
		}
		results = append(results, result)
	}
	return results, nil
}

//Close mock
func (k *KafkaAdminClientMock) Close() {
	k.Closed = true
}
