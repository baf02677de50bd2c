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

package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	raven "github.com/getsentry/raven-go"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/downstream"
	"github.com/topfreegames/pausepoc/extensions"
	"github.com/topfreegames/pausepoc/flowcontrol"
	"github.com/topfreegames/pausepoc/interfaces"
	"github.com/topfreegames/pausepoc/pipeline"
	"github.com/topfreegames/pausepoc/util"
	"go.uber.org/atomic"
)

// Clients replaces the clients the service would otherwise create
type Clients struct {
	KafkaConsumer interfaces.KafkaConsumerClient
	KafkaProducer interfaces.KafkaProducerClient
	KafkaAdmin    interfaces.KafkaAdminClient
	StatsD        interfaces.StatsDClient
	Clock         clockwork.Clock
}

// Service wires the consumer, the flow controller and the pipeline
type Service struct {
	Config                  *viper.Viper
	Consumer                *extensions.KafkaConsumer
	Control                 *ControlServer
	Controller              *flowcontrol.Controller
	Dedup                   *extensions.Dedup
	GracefulShutdownTimeout int
	Health                  *downstream.HealthGate
	Logger                  *logrus.Logger
	Pipeline                *pipeline.Pipeline
	Producer                *extensions.KafkaProducer
	Provisioner             *extensions.TopicProvisioner
	Registry                *extensions.ConsumerRegistry
	StatsReporters          []interfaces.StatsReporter
	StatsFlushInterval      time.Duration
	clients                 Clients
	run                     *atomic.Bool
	stopChannel             chan struct{}
	stopOnce                sync.Once
}

// NewService for creating a new Service instance
func NewService(config *viper.Viper, logger *logrus.Logger, clientsOrNil ...Clients) (*Service, error) {
	s := &Service{
		Config:      config,
		Logger:      logger,
		run:         atomic.NewBool(false),
		stopChannel: make(chan struct{}),
	}
	if len(clientsOrNil) == 1 {
		s.clients = clientsOrNil[0]
	}
	err := s.configure()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) loadConfigurationDefaults() {
	s.Config.SetDefault("gracefulShutdownTimeout", 10)
	s.Config.SetDefault("stats.reporters", []string{})
	s.Config.SetDefault("stats.flush.s", 30)
	s.Config.SetDefault("kafka.provision.enabled", false)
	s.Config.SetDefault("dedup.enabled", false)
	s.Config.SetDefault("dedup.ttl", "24h")
}

func (s *Service) configure() error {
	l := s.Logger.WithFields(logrus.Fields{
		"method": "configure",
	})
	s.loadConfigurationDefaults()
	s.configureSentry()
	s.GracefulShutdownTimeout = s.Config.GetInt("gracefulShutdownTimeout")
	s.StatsFlushInterval = time.Duration(s.Config.GetInt("stats.flush.s")) * time.Second
	if s.StatsFlushInterval <= 0 {
		return fmt.Errorf("stats.flush.s must be positive, got %d", s.Config.GetInt("stats.flush.s"))
	}

	reporters, err := configureStatsReporters(s.Config, s.Logger, s.clients.StatsD)
	if err != nil {
		l.WithError(err).Error("could not configure stats reporters")
		return fmt.Errorf("could not configure stats reporters: %w", err)
	}
	s.StatsReporters = reporters

	if s.Config.GetBool("kafka.provision.enabled") {
		p, err := extensions.NewTopicProvisioner(s.Config, s.Logger, s.clients.KafkaAdmin)
		if err != nil {
			return fmt.Errorf("could not create topic provisioner: %w", err)
		}
		s.Provisioner = p
	}

	s.Consumer, err = extensions.NewKafkaConsumer(s.Config, s.Logger, s.clients.KafkaConsumer)
	if err != nil {
		return fmt.Errorf("could not create kafka consumer: %w", err)
	}
	s.Registry = extensions.NewConsumerRegistry()
	s.Registry.Register(s.Consumer.ListenerID, s.Consumer)

	s.Producer, err = extensions.NewKafkaProducer(s.Config, s.Logger, s.clients.KafkaProducer)
	if err != nil {
		return fmt.Errorf("could not create kafka producer: %w", err)
	}

	s.Controller, err = flowcontrol.NewController(s.Config, s.Registry, s.StatsReporters, s.Logger, s.clients.Clock)
	if err != nil {
		return fmt.Errorf("could not create flow controller: %w", err)
	}

	var dedup interfaces.Dedup
	if s.Config.GetBool("dedup.enabled") {
		ttl, err := time.ParseDuration(s.Config.GetString("dedup.ttl"))
		if err != nil {
			return fmt.Errorf("invalid dedup.ttl: %w", err)
		}
		d := extensions.NewDedup(ttl, s.Config, s.StatsReporters, s.Logger)
		s.Dedup = &d
		dedup = d
	}

	s.Health = downstream.NewHealthGate(s.Logger)
	s.Pipeline = pipeline.NewPipeline(
		downstream.NewClient(s.Health, s.Logger),
		s.Producer,
		s.Controller,
		s.StatsReporters,
		s.Logger,
		dedup,
	)

	if p, ok := prometheusReporter(s.StatsReporters); ok {
		s.Control = NewControlServer(s.Config, s.Logger, s.Health, s.Producer, s.Controller, p.Handler())
	} else {
		s.Control = NewControlServer(s.Config, s.Logger, s.Health, s.Producer, s.Controller)
	}

	l.Info("service configured")
	return nil
}

func (s *Service) configureSentry() {
	l := s.Logger.WithFields(logrus.Fields{
		"source":    "service",
		"operation": "configureSentry",
	})

	sentryURL := s.Config.GetString("sentry.url")
	if sentryURL != "" {
		raven.SetDSN(sentryURL)
		l.Info("Configured sentry successfully.")
	}
}

// Start runs the service until a signal arrives, ctx is done or Stop is called
func (s *Service) Start(ctx context.Context) error {
	s.run.Store(true)
	l := s.Logger.WithFields(logrus.Fields{
		"method": "start",
	})
	l.Info("starting pausepoc...")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.Provisioner != nil {
		err := s.Provisioner.Provision(ctx)
		if err != nil {
			l.WithError(err).Error("could not provision topics, continuing with existing ones")
		}
	}

	err := s.Control.Start()
	if err != nil {
		return err
	}

	var consuming sync.WaitGroup
	consumeErr := make(chan error, 1)
	consuming.Add(1)
	go func() {
		defer consuming.Done()
		consumeErr <- s.Consumer.ConsumeLoop(ctx, s.Pipeline)
	}()
	go s.reportGoStats(ctx)

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigchan)

	var loopErr error
	select {
	case sig := <-sigchan:
		l.Warnf("caught signal %v: terminating", sig)
	case <-ctx.Done():
		l.Warn("context done: terminating")
	case <-s.stopChannel:
		l.Warn("Stop channel closed")
	case loopErr = <-consumeErr:
		if loopErr != nil {
			l.WithError(loopErr).Error("consume loop failed: terminating")
			raven.CaptureError(loopErr, map[string]string{
				"version": util.Version,
				"source":  "service",
			})
		}
	}
	s.run.Store(false)

	s.Consumer.StopConsuming()
	timeout := time.Duration(s.GracefulShutdownTimeout) * time.Second
	GracefulShutdown(s.Logger, &consuming, timeout)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()
	err = s.Control.Shutdown(shutdownCtx)
	if err != nil {
		l.WithError(err).Warn("could not shut down control server")
	}
	cancel()
	s.Cleanup()
	return loopErr
}

// Stop makes Start return
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChannel)
	})
}

// IsRunning reports whether Start is running
func (s *Service) IsRunning() bool {
	return s.run.Load()
}

// Cleanup cancels the pending resume and closes every client
func (s *Service) Cleanup() {
	l := s.Logger.WithFields(logrus.Fields{
		"method": "Cleanup",
	})
	s.Controller.Close()
	s.Registry.Unregister(s.Consumer.ListenerID)
	err := s.Consumer.Cleanup()
	if err != nil {
		l.WithError(err).Warn("could not close kafka consumer")
	}
	s.Producer.Cleanup()
	if s.Provisioner != nil {
		s.Provisioner.Close()
	}
	if s.Dedup != nil {
		err = s.Dedup.Close()
		if err != nil {
			l.WithError(err).Warn("could not close dedup store")
		}
	}
	for _, r := range s.StatsReporters {
		if c, ok := r.(interface{ Cleanup() error }); ok {
			err = c.Cleanup()
			if err != nil {
				l.WithError(err).Warn("could not clean up stats reporter")
			}
		}
	}
}

func (s *Service) reportGoStats(ctx context.Context) {
	ticker := time.NewTicker(s.StatsFlushInterval)
	defer ticker.Stop()
	for {
		num := runtime.NumGoroutine()
		m := &runtime.MemStats{}
		runtime.ReadMemStats(m)
		gcTime := m.PauseNs[(m.NumGC+255)%256]
		for _, statsReporter := range s.StatsReporters {
			statsReporter.ReportGoStats(
				num,
				m.Alloc, m.HeapObjects, m.NextGC,
				gcTime,
			)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
