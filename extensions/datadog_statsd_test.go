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
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/mocks"
	"github.com/topfreegames/pausepoc/util"
)

var _ = Describe("StatsD Extension", func() {
	var config *viper.Viper
	var mockClient *mocks.StatsDClientMock
	logger, hook := test.NewNullLogger()
	BeforeEach(func() {
		var err error
		config, err = util.NewViperWithConfigFile("../config/test.yaml")
		Expect(err).NotTo(HaveOccurred())
		mockClient = mocks.NewStatsDClientMock()
		hook.Reset()
	})

	Describe("[Unit]", func() {
		Describe("Handling Message Processed", func() {
			It("should increment counter in statsd", func() {
				statsd, err := NewStatsD(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				defer statsd.Cleanup()

				statsd.HandleMessageProcessed("flaky-input-topic")
				statsd.HandleMessageProcessed("flaky-input-topic")
				Expect(mockClient.Count["processed"]).To(Equal(2))
				Expect(mockClient.Tags["processed"]).To(ConsistOf("topic:flaky-input-topic"))
			})
		})

		Describe("Handling Message Failure", func() {
			It("should increment counter tagged with the reason", func() {
				statsd, err := NewStatsD(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				defer statsd.Cleanup()

				statsd.HandleMessageFailed("flaky-input-topic", "downstream_unavailable")
				statsd.HandleMessageFailed("flaky-input-topic", "downstream_unavailable")

				Expect(mockClient.Count["failed"]).To(Equal(2))
				Expect(mockClient.Tags["failed"]).To(ContainElement("reason:downstream_unavailable"))
			})
		})

		Describe("Handling Message Forwarded", func() {
			It("should increment counter and time the delivery", func() {
				statsd, err := NewStatsD(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				defer statsd.Cleanup()

				statsd.HandleMessageForwarded("flaky-input-topic", 15*time.Millisecond)
				Expect(mockClient.Count["forwarded"]).To(Equal(1))
				Expect(mockClient.Timings["forward_latency"]).To(Equal(15 * time.Millisecond))
			})
		})

		Describe("Handling flow control", func() {
			It("should report pauses and resumes", func() {
				statsd, err := NewStatsD(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				defer statsd.Cleanup()

				statsd.HandleConsumerPaused("flaky-consumer")
				Expect(mockClient.Count["consumer_paused"]).To(Equal(1))
				Expect(mockClient.Gauges["consumer_paused_state"]).To(BeEquivalentTo(1))

				statsd.HandleResumeRescheduled("flaky-consumer")
				statsd.HandleResumeRescheduled("flaky-consumer")
				Expect(mockClient.Count["resume_rescheduled"]).To(Equal(2))

				statsd.HandleConsumerResumed("flaky-consumer")
				Expect(mockClient.Count["consumer_resumed"]).To(Equal(1))
				Expect(mockClient.Gauges["consumer_paused_state"]).To(BeEquivalentTo(0))
			})

			It("should report scheduling failures tagged with the operation", func() {
				statsd, err := NewStatsD(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				defer statsd.Cleanup()

				statsd.HandleSchedulingFailure("flaky-consumer", "pause")
				Expect(mockClient.Count["scheduling_failure"]).To(Equal(1))
				Expect(mockClient.Tags["scheduling_failure"]).To(ConsistOf("listener:flaky-consumer", "operation:pause"))
			})
		})

		Describe("Handling dedup failures", func() {
			It("should increment counter in statsd", func() {
				statsd, err := NewStatsD(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				defer statsd.Cleanup()

				statsd.HandleDedupFailure("flaky-input-topic")
				Expect(mockClient.Count["dedup_failed"]).To(Equal(1))
			})
		})

		Describe("Reporting Go Stats", func() {
			It("should report go stats in statsd", func() {
				statsd, err := NewStatsD(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				defer statsd.Cleanup()

				statsd.ReportGoStats(1, 2, 3, 4, 5000000)
				statsd.ReportGoStats(2, 3, 4, 5, 6000000)

				Expect(mockClient.Gauges["num_goroutine"]).To(BeEquivalentTo(2))
				Expect(mockClient.Gauges["allocated_not_freed"]).To(BeEquivalentTo(3))
				Expect(mockClient.Gauges["heap_objects"]).To(BeEquivalentTo(4))
				Expect(mockClient.Gauges["next_gc_bytes"]).To(BeEquivalentTo(5))
				Expect(mockClient.Timings["pause_gc"]).To(Equal(6 * time.Millisecond))
			})
		})

		Describe("Cleanup", func() {
			It("should close the client", func() {
				statsd, err := NewStatsD(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				Expect(statsd.Cleanup()).To(Succeed())
				Expect(mockClient.Closed).To(BeTrue())
			})
		})
	})

	Describe("[Integration]", func() {
		Describe("Creating new client", func() {
			It("should return connected client", func() {
				statsd, err := NewStatsD(config, logger)
				Expect(err).NotTo(HaveOccurred())
				Expect(statsd).NotTo(BeNil())
				Expect(statsd.Client).NotTo(BeNil())
				defer statsd.Cleanup()

				Expect(statsd.Config).NotTo(BeNil())
				Expect(statsd.Logger).NotTo(BeNil())
			})
		})
	})
})
