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

package pipeline

import (
	"context"
	"time"

	raven "github.com/getsentry/raven-go"
	"github.com/sirupsen/logrus"
	pauseErrors "github.com/topfreegames/pausepoc/errors"
	"github.com/topfreegames/pausepoc/interfaces"
	"github.com/topfreegames/pausepoc/util"
)

// Pipeline processes records from the source topic and forwards them to the sink topic
type Pipeline struct {
	Logger         *logrus.Logger
	client         interfaces.DownstreamClient
	forwarder      interfaces.Forwarder
	controller     interfaces.FlowController
	dedup          interfaces.Dedup
	statsReporters []interfaces.StatsReporter
}

var _ interfaces.MessageHandler = &Pipeline{}

// NewPipeline for creating a new Pipeline instance
func NewPipeline(
	client interfaces.DownstreamClient,
	forwarder interfaces.Forwarder,
	controller interfaces.FlowController,
	statsReporters []interfaces.StatsReporter,
	logger *logrus.Logger,
	dedupOrNil ...interfaces.Dedup,
) *Pipeline {
	p := &Pipeline{
		Logger:         logger,
		client:         client,
		forwarder:      forwarder,
		controller:     controller,
		statsReporters: statsReporters,
	}
	if len(dedupOrNil) == 1 {
		p.dedup = dedupOrNil[0]
	}
	return p
}

// Handle processes a record. The record is acknowledged only after it was
// forwarded to the sink, or when processing failed with a non retryable error.
// A retryable error pauses the consumer and is returned so the record is redelivered.
func (p *Pipeline) Handle(ctx context.Context, record interfaces.Record, ack interfaces.Acknowledgment) error {
	l := p.Logger.WithFields(logrus.Fields{
		"method":    "Handle",
		"topic":     record.Topic,
		"partition": record.Partition,
		"offset":    record.Offset,
		"key":       record.Key,
	})
	l.WithField("value", record.Value).Info("received message")

	result, err := p.client.Process(record.Key, record.Value)
	if err != nil {
		statsReporterMessageFailed(p.statsReporters, record.Topic, pauseErrors.Reason(err))
		if pauseErrors.IsRetryable(err) {
			l.WithError(err).Error("service unavailable for message, initiating consumer pause")
			p.controller.Pause()
			return err
		}

		l.WithError(err).Error("unexpected error processing message, acknowledging to skip it")
		raven.CaptureError(err, map[string]string{
			"version":   util.Version,
			"extension": "pipeline",
			"topic":     record.Topic,
		})
		p.acknowledge(l, ack)
		return nil
	}
	l.WithField("result", result).Info("message processed successfully")

	err = p.forward(ctx, l, record)
	if err != nil {
		l.WithError(err).Error("could not forward message to sink, initiating consumer pause")
		statsReporterMessageFailed(p.statsReporters, record.Topic, "sink_unavailable")
		p.controller.Pause()
		return pauseErrors.NewUnavailableError("could not forward message to sink", err)
	}

	p.acknowledge(l, ack)
	statsReporterMessageProcessed(p.statsReporters, record.Topic)
	return nil
}

func (p *Pipeline) forward(ctx context.Context, l *logrus.Entry, record interfaces.Record) error {
	if p.dedup != nil && p.dedup.IsForwarded(ctx, record) {
		l.Info("message already forwarded to sink, skipping forward")
		return nil
	}

	before := time.Now()
	err := p.forwarder.Forward(ctx, record)
	if err != nil {
		return err
	}
	statsReporterMessageForwarded(p.statsReporters, record.Topic, time.Since(before))

	if p.dedup != nil {
		p.dedup.MarkForwarded(ctx, record)
	}
	return nil
}

func (p *Pipeline) acknowledge(l *logrus.Entry, ack interfaces.Acknowledgment) {
	// a failed ack only means the record may be delivered again
	if err := ack.Acknowledge(); err != nil {
		l.WithError(err).Error("could not acknowledge message")
	}
}
