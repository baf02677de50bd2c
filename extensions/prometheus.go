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
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/interfaces"
)

// Prometheus exposes the consumer metrics for scraping
type Prometheus struct {
	Config   *viper.Viper
	Logger   *logrus.Logger
	Registry *prometheus.Registry

	processed         *prometheus.CounterVec
	failed            *prometheus.CounterVec
	forwarded         *prometheus.CounterVec
	forwardLatency    *prometheus.HistogramVec
	paused            *prometheus.CounterVec
	resumed           *prometheus.CounterVec
	rescheduled       *prometheus.CounterVec
	schedulingFailure *prometheus.CounterVec
	dedupFailure      *prometheus.CounterVec
	pausedState       *prometheus.GaugeVec
	goroutines        prometheus.Gauge
	allocated         prometheus.Gauge
	heapObjects       prometheus.Gauge
	nextGC            prometheus.Gauge
	pauseGC           prometheus.Gauge
}

var _ interfaces.StatsReporter = &Prometheus{}

// NewPrometheus creates the collectors on a dedicated registry
func NewPrometheus(config *viper.Viper, logger *logrus.Logger) (*Prometheus, error) {
	p := &Prometheus{
		Config:   config,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}
	err := p.configure()
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Prometheus) loadConfigurationDefaults() {
	p.Config.SetDefault("stats.prometheus.namespace", "pausepoc")
}

func (p *Prometheus) configure() error {
	p.loadConfigurationDefaults()
	ns := p.Config.GetString("stats.prometheus.namespace")

	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: name, Help: help}, labels)
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: ns, Name: name, Help: help})
	}

	p.processed = counter("messages_processed_total", "Messages processed and acknowledged.", "topic")
	p.failed = counter("messages_failed_total", "Messages that failed processing.", "topic", "reason")
	p.forwarded = counter("messages_forwarded_total", "Messages delivered to the sink topic.", "topic")
	p.forwardLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: ns,
		Name:      "forward_latency_seconds",
		Help:      "Time waiting for the sink delivery report.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"topic"})
	p.paused = counter("consumer_paused_total", "Consumer pauses.", "listener")
	p.resumed = counter("consumer_resumed_total", "Consumer resumes.", "listener")
	p.rescheduled = counter("resume_rescheduled_total", "Pause signals that extended the cooldown.", "listener")
	p.schedulingFailure = counter("scheduling_failures_total", "Pauses or resumes that could not be applied.", "listener", "operation")
	p.dedupFailure = counter("dedup_failures_total", "Dedup store errors.", "topic")
	p.pausedState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: ns,
		Name:      "consumer_paused",
		Help:      "1 while the consumer is paused.",
	}, []string{"listener"})
	p.goroutines = gauge("num_goroutine", "Number of goroutines.")
	p.allocated = gauge("allocated_not_freed_bytes", "Bytes allocated and not yet freed.")
	p.heapObjects = gauge("heap_objects", "Number of allocated heap objects.")
	p.nextGC = gauge("next_gc_bytes", "Target heap size of the next GC cycle.")
	p.pauseGC = gauge("pause_gc_nanoseconds", "Cumulative GC pause time.")

	collectors := []prometheus.Collector{
		p.processed, p.failed, p.forwarded, p.forwardLatency,
		p.paused, p.resumed, p.rescheduled, p.schedulingFailure,
		p.dedupFailure, p.pausedState,
		p.goroutines, p.allocated, p.heapObjects, p.nextGC, p.pauseGC,
	}
	for _, c := range collectors {
		if err := p.Registry.Register(c); err != nil {
			p.Logger.WithError(err).Error("error registering prometheus collector")
			return err
		}
	}
	p.Logger.WithField("namespace", ns).Info("Prometheus reporter configured")
	return nil
}

// Handler serves the registry in the text exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})
}

//HandleMessageProcessed counts acknowledged messages
func (p *Prometheus) HandleMessageProcessed(topic string) {
	p.processed.WithLabelValues(topic).Inc()
}

//HandleMessageFailed counts each type of failure
func (p *Prometheus) HandleMessageFailed(topic, reason string) {
	p.failed.WithLabelValues(topic, reason).Inc()
}

//HandleMessageForwarded counts forwarded messages and observes the sink delivery time
func (p *Prometheus) HandleMessageForwarded(topic string, latency time.Duration) {
	p.forwarded.WithLabelValues(topic).Inc()
	p.forwardLatency.WithLabelValues(topic).Observe(latency.Seconds())
}

//HandleConsumerPaused counts pauses
func (p *Prometheus) HandleConsumerPaused(listenerID string) {
	p.paused.WithLabelValues(listenerID).Inc()
	p.pausedState.WithLabelValues(listenerID).Set(1)
}

//HandleConsumerResumed counts resumes
func (p *Prometheus) HandleConsumerResumed(listenerID string) {
	p.resumed.WithLabelValues(listenerID).Inc()
	p.pausedState.WithLabelValues(listenerID).Set(0)
}

//HandleResumeRescheduled counts pause signals that extended the cooldown
func (p *Prometheus) HandleResumeRescheduled(listenerID string) {
	p.rescheduled.WithLabelValues(listenerID).Inc()
}

//HandleSchedulingFailure counts pauses or resumes that could not be applied
func (p *Prometheus) HandleSchedulingFailure(listenerID, operation string) {
	p.schedulingFailure.WithLabelValues(listenerID, operation).Inc()
}

//HandleDedupFailure counts dedup store errors
func (p *Prometheus) HandleDedupFailure(topic string) {
	p.dedupFailure.WithLabelValues(topic).Inc()
}

//ReportGoStats sets the go runtime gauges
func (p *Prometheus) ReportGoStats(
	numGoRoutines int,
	allocatedAndNotFreed, heapObjects, nextGCBytes, pauseGCNano uint64,
) {
	p.goroutines.Set(float64(numGoRoutines))
	p.allocated.Set(float64(allocatedAndNotFreed))
	p.heapObjects.Set(float64(heapObjects))
	p.nextGC.Set(float64(nextGCBytes))
	p.pauseGC.Set(float64(pauseGCNano))
}
