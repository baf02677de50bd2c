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
	"fmt"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/interfaces"
)

// StatsD for sending metrics
type StatsD struct {
	Client interfaces.StatsDClient
	Config *viper.Viper
	Logger *logrus.Logger
}

var _ interfaces.StatsReporter = &StatsD{}

// NewStatsD for creating a new StatsD instance
func NewStatsD(config *viper.Viper, logger *logrus.Logger, clientOrNil ...interfaces.StatsDClient) (*StatsD, error) {
	q := &StatsD{
		Config: config,
		Logger: logger,
	}
	var client interfaces.StatsDClient
	if len(clientOrNil) == 1 {
		client = clientOrNil[0]
	}
	err := q.configure(client)
	return q, err
}

func (s *StatsD) loadConfigurationDefaults() {
	s.Config.SetDefault("stats.statsd.host", "localhost:8125")
	s.Config.SetDefault("stats.statsd.prefix", "pausepoc.")
	s.Config.SetDefault("stats.statsd.buflen", 1)
}

func (s *StatsD) configure(client interfaces.StatsDClient) error {
	s.loadConfigurationDefaults()

	host := s.Config.GetString("stats.statsd.host")
	prefix := s.Config.GetString("stats.statsd.prefix")
	buflen := s.Config.GetInt("stats.statsd.buflen")

	l := s.Logger.WithFields(logrus.Fields{
		"host":   host,
		"prefix": prefix,
		"buflen": buflen,
	})

	if client == nil {
		ddClient, err := statsd.NewBuffered(host, buflen)
		if err != nil {
			l.WithError(err).Error("Error configuring statsd client.")
			return err
		}
		ddClient.Namespace = prefix
		client = ddClient
	}

	s.Client = client
	l.Info("StatsD client configured")
	return nil
}

//HandleMessageProcessed counts acknowledged messages
func (s *StatsD) HandleMessageProcessed(topic string) {
	s.Client.Incr("processed", []string{fmt.Sprintf("topic:%s", topic)}, 1)
}

//HandleMessageFailed counts each type of failure
func (s *StatsD) HandleMessageFailed(topic, reason string) {
	s.Client.Incr("failed", []string{fmt.Sprintf("topic:%s", topic), fmt.Sprintf("reason:%s", reason)}, 1)
}

//HandleMessageForwarded counts forwarded messages and times the sink delivery
func (s *StatsD) HandleMessageForwarded(topic string, latency time.Duration) {
	tags := []string{fmt.Sprintf("topic:%s", topic)}
	s.Client.Incr("forwarded", tags, 1)
	s.Client.Timing("forward_latency", latency, tags, 1)
}

//HandleConsumerPaused counts pauses
func (s *StatsD) HandleConsumerPaused(listenerID string) {
	s.Client.Incr("consumer_paused", []string{fmt.Sprintf("listener:%s", listenerID)}, 1)
	s.Client.Gauge("consumer_paused_state", 1, []string{fmt.Sprintf("listener:%s", listenerID)}, 1)
}

//HandleConsumerResumed counts resumes
func (s *StatsD) HandleConsumerResumed(listenerID string) {
	s.Client.Incr("consumer_resumed", []string{fmt.Sprintf("listener:%s", listenerID)}, 1)
	s.Client.Gauge("consumer_paused_state", 0, []string{fmt.Sprintf("listener:%s", listenerID)}, 1)
}

//HandleResumeRescheduled counts pause signals that extended the cooldown
func (s *StatsD) HandleResumeRescheduled(listenerID string) {
	s.Client.Incr("resume_rescheduled", []string{fmt.Sprintf("listener:%s", listenerID)}, 1)
}

//HandleSchedulingFailure counts pauses or resumes that could not be applied
func (s *StatsD) HandleSchedulingFailure(listenerID, operation string) {
	s.Client.Incr("scheduling_failure", []string{fmt.Sprintf("listener:%s", listenerID), fmt.Sprintf("operation:%s", operation)}, 1)
}

//HandleDedupFailure counts dedup store errors
func (s *StatsD) HandleDedupFailure(topic string) {
	s.Client.Incr("dedup_failed", []string{fmt.Sprintf("topic:%s", topic)}, 1)
}

//ReportGoStats reports go stats in statsd
func (s *StatsD) ReportGoStats(
	numGoRoutines int,
	allocatedAndNotFreed, heapObjects, nextGCBytes, pauseGCNano uint64,
) {
	s.Client.Gauge("num_goroutine", float64(numGoRoutines), nil, 1)
	s.Client.Gauge("allocated_not_freed", float64(allocatedAndNotFreed), nil, 1)
	s.Client.Gauge("heap_objects", float64(heapObjects), nil, 1)
	s.Client.Gauge("next_gc_bytes", float64(nextGCBytes), nil, 1)
	s.Client.Timing("pause_gc", time.Duration(pauseGCNano), nil, 1)
}

//Cleanup closes statsd connection
func (s *StatsD) Cleanup() error {
	return s.Client.Close()
}
