package interfaces

import "context"

// Record is a message read from the source topic
type Record struct {
	Topic     string
	Partition int32
	Offset    int64
	Key       string
	Value     string
}

// Acknowledgment confirms a record so it is not redelivered
type Acknowledgment interface {
	Acknowledge() error
}

// MessageHandler handles records polled by a consumer. A retryable error
// returned by Handle makes the consumer redeliver the record.
type MessageHandler interface {
	Handle(ctx context.Context, record Record, ack Acknowledgment) error
}

// Forwarder sends records to the sink topic
type Forwarder interface {
	Forward(ctx context.Context, record Record) error
}
