package interfaces

import "time"

// StatsDClient is the subset of the datadog statsd client we use
type StatsDClient interface {
	Incr(string, []string, float64) error
	Gauge(string, float64, []string, float64) error
	Timing(string, time.Duration, []string, float64) error
	Close() error
}

// StatsReporter reports pipeline and flow control metrics
type StatsReporter interface {
	HandleMessageProcessed(topic string)
	HandleMessageFailed(topic, reason string)
	HandleMessageForwarded(topic string, latency time.Duration)
	HandleConsumerPaused(listenerID string)
	HandleConsumerResumed(listenerID string)
	HandleResumeRescheduled(listenerID string)
	HandleSchedulingFailure(listenerID, operation string)
	HandleDedupFailure(topic string)
	ReportGoStats(numGoRoutines int, allocatedAndNotFreed, heapObjects, nextGCBytes, pauseGCNano uint64)
}
