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

package flowcontrol

import (
	"fmt"
	"sync"
	"time"

	raven "github.com/getsentry/raven-go"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	pauseErrors "github.com/topfreegames/pausepoc/errors"
	"github.com/topfreegames/pausepoc/interfaces"
	"github.com/topfreegames/pausepoc/util"
)

// Controller pauses a consumer subscription when the downstream dependency
// fails and resumes it after a fixed cooldown.
//
// State and the pending resume timer are guarded by mu. At most one resume
// timer is pending and one is always pending while the state is not Running.
type Controller struct {
	Config         *viper.Viper
	ListenerID     string
	PauseDuration  time.Duration
	Logger         *logrus.Logger
	registry       interfaces.ConsumptionRegistry
	statsReporters []interfaces.StatsReporter
	clock          clockwork.Clock

	mu         sync.Mutex
	state      State
	timer      clockwork.Timer
	generation uint64
	resumeAt   time.Time
}

var _ interfaces.FlowController = &Controller{}

// Status is a snapshot of the controller
type Status struct {
	ListenerID    string
	State         State
	PendingResume bool
	ResumeAt      time.Time
}

// NewController for creating a new Controller instance
func NewController(
	config *viper.Viper,
	registry interfaces.ConsumptionRegistry,
	statsReporters []interfaces.StatsReporter,
	logger *logrus.Logger,
	clockOrNil ...clockwork.Clock,
) (*Controller, error) {
	c := &Controller{
		Config:         config,
		Logger:         logger,
		registry:       registry,
		statsReporters: statsReporters,
		state:          Running,
	}
	if len(clockOrNil) == 1 && clockOrNil[0] != nil {
		c.clock = clockOrNil[0]
	} else {
		c.clock = clockwork.NewRealClock()
	}
	err := c.configure()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) loadConfigurationDefaults() {
	c.Config.SetDefault("kafka.consumer.listener-id", "flaky-consumer")
	c.Config.SetDefault("kafka.consumer.pause-duration-ms", 30000)
}

func (c *Controller) configure() error {
	c.loadConfigurationDefaults()
	c.ListenerID = c.Config.GetString("kafka.consumer.listener-id")
	pauseDurationMs := c.Config.GetInt64("kafka.consumer.pause-duration-ms")
	if pauseDurationMs < 0 {
		return fmt.Errorf("kafka.consumer.pause-duration-ms must not be negative, got %d", pauseDurationMs)
	}
	c.PauseDuration = time.Duration(pauseDurationMs) * time.Millisecond

	c.Logger.WithFields(logrus.Fields{
		"method":        "configure",
		"listenerId":    c.ListenerID,
		"pauseDuration": c.PauseDuration,
	}).Info("flow controller configured")
	return nil
}

// Pause stops consumption after a downstream failure. Repeated calls while a
// pause is active do not pause the subscription again, they push the resume
// deadline forward.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	l := c.Logger.WithFields(logrus.Fields{
		"method":     "Pause",
		"listenerId": c.ListenerID,
	})

	if c.state == PauseRequested || c.state == Paused {
		l.WithField("state", c.state).Info("consumer is already paused or pause requested, rescheduling resume")
		c.scheduleResume()
		statsReporterResumeRescheduled(c.statsReporters, c.ListenerID)
		return
	}

	manager, ok := c.registry.ConsumptionManager(c.ListenerID)
	if !ok || !manager.IsRunning() {
		l.Info("consumer is not running or not found, no action to pause")
		statsReporterSchedulingFailure(c.statsReporters, c.ListenerID, "pause")
		return
	}

	c.state = PauseRequested
	l.WithField("pauseDuration", c.PauseDuration).Warn("pausing consumer")
	if err := manager.Pause(); err != nil {
		c.state = Running
		c.reportSchedulingFailure(l, "pause", pauseErrors.NewSchedulingError("could not pause consumer", err))
		return
	}
	c.state = Paused
	c.scheduleResume()
	statsReporterConsumerPaused(c.statsReporters, c.ListenerID)
}

// Resume restarts consumption. It is called by the resume timer and does
// nothing unless the controller is Paused.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resume()
}

func (c *Controller) resume() {
	l := c.Logger.WithFields(logrus.Fields{
		"method":     "Resume",
		"listenerId": c.ListenerID,
	})

	if c.state != Paused {
		l.WithField("state", c.state).Debug("consumer is not paused, nothing to resume")
		return
	}

	manager, ok := c.registry.ConsumptionManager(c.ListenerID)
	if !ok || !manager.IsPaused() {
		l.Warn("could not resume consumer, not found or not paused")
		c.cancelResume()
		c.state = Running
		statsReporterSchedulingFailure(c.statsReporters, c.ListenerID, "resume")
		return
	}

	if err := manager.Resume(); err != nil {
		// still paused, so a resume must stay pending
		c.scheduleResume()
		c.reportSchedulingFailure(l, "resume", pauseErrors.NewSchedulingError("could not resume consumer", err))
		return
	}

	c.cancelResume()
	c.state = Running
	statsReporterConsumerResumed(c.statsReporters, c.ListenerID)
	l.Info("consumer resumed")
}

// scheduleResume replaces the pending resume timer. Must hold mu.
func (c *Controller) scheduleResume() {
	c.cancelResume()
	generation := c.generation
	c.resumeAt = c.clock.Now().Add(c.PauseDuration)
	c.timer = c.clock.AfterFunc(c.PauseDuration, func() {
		c.onResumeTimer(generation)
	})

	c.Logger.WithFields(logrus.Fields{
		"method":     "scheduleResume",
		"listenerId": c.ListenerID,
		"resumeAt":   c.resumeAt,
	}).Info("scheduled consumer resume")
}

// cancelResume stops the pending timer. A callback of the stopped timer that
// is already running sees a different generation and returns. Must hold mu.
func (c *Controller) cancelResume() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.resumeAt = time.Time{}
	c.generation++
}

func (c *Controller) onResumeTimer(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	c.timer = nil
	c.resume()
}

func (c *Controller) reportSchedulingFailure(l *logrus.Entry, operation string, err error) {
	l.WithError(err).Error("could not apply consumer " + operation)
	raven.CaptureError(err, map[string]string{
		"version":    util.Version,
		"extension":  "flow-controller",
		"listenerId": c.ListenerID,
		"operation":  operation,
	})
	statsReporterSchedulingFailure(c.statsReporters, c.ListenerID, operation)
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Status returns the current state and the pending resume deadline
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		ListenerID:    c.ListenerID,
		State:         c.state,
		PendingResume: c.timer != nil,
		ResumeAt:      c.resumeAt,
	}
}

// Close cancels the pending resume timer
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelResume()
}
