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
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/flowcontrol"
)

// Availability is the downstream flag toggled by the control surface
type Availability interface {
	SetUnavailable(unavailable bool)
	IsUnavailable() bool
}

// Sender publishes test records to the source topic
type Sender interface {
	Send(ctx context.Context, key, value string) (kafka.TopicPartition, error)
}

// StatusProvider reports the flow controller state
type StatusProvider interface {
	Status() flowcontrol.Status
}

type apiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type consumerStatusResponse struct {
	ListenerID    string     `json:"listenerId"`
	State         string     `json:"state"`
	PendingResume bool       `json:"pendingResume"`
	ResumeAt      *time.Time `json:"resumeAt,omitempty"`
}

// ControlServer is the HTTP surface used to drive the demo
type ControlServer struct {
	Address      string
	Config       *viper.Viper
	Logger       *logrus.Logger
	availability Availability
	sender       Sender
	status       StatusProvider
	metrics      http.Handler
	server       *http.Server
	listener     net.Listener
}

// NewControlServer for creating a new ControlServer instance, metricsOrNil is
// mounted on /metrics when set
func NewControlServer(
	config *viper.Viper,
	logger *logrus.Logger,
	availability Availability,
	sender Sender,
	status StatusProvider,
	metricsOrNil ...http.Handler,
) *ControlServer {
	config.SetDefault("control.address", ":8080")
	s := &ControlServer{
		Address:      config.GetString("control.address"),
		Config:       config,
		Logger:       logger,
		availability: availability,
		sender:       sender,
		status:       status,
	}
	if len(metricsOrNil) == 1 {
		s.metrics = metricsOrNil[0]
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the routes of the control surface
func (s *ControlServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /control/service/unavailable", s.setUnavailableHandler)
	mux.HandleFunc("GET /control/service/status", s.serviceStatusHandler)
	mux.HandleFunc("POST /control/send", s.sendHandler)
	mux.HandleFunc("GET /control/consumer/status", s.consumerStatusHandler)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}
	return mux
}

// Start listens on Address and serves in the background
func (s *ControlServer) Start() error {
	l := s.Logger.WithFields(logrus.Fields{
		"method":  "Start",
		"address": s.Address,
	})
	listener, err := net.Listen("tcp", s.Address)
	if err != nil {
		l.WithError(err).Error("could not start control server")
		return err
	}
	s.listener = listener
	go func() {
		err := s.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.WithError(err).Error("control server stopped")
		}
	}()
	l.WithField("listening", listener.Addr().String()).Info("control server started")
	return nil
}

// Addr returns the address the server is listening on
func (s *ControlServer) Addr() string {
	if s.listener == nil {
		return s.Address
	}
	return s.listener.Addr().String()
}

// Shutdown stops accepting requests and waits for the in flight ones
func (s *ControlServer) Shutdown(ctx context.Context) error {
	if s.listener == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *ControlServer) setUnavailableHandler(w http.ResponseWriter, r *http.Request) {
	unavailable, err := strconv.ParseBool(r.URL.Query().Get("unavailable"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Status:  "error",
			Message: "query parameter unavailable must be a boolean",
		})
		return
	}
	s.availability.SetUnavailable(unavailable)
	writeJSON(w, http.StatusOK, apiResponse{
		Status:  "success",
		Message: fmt.Sprintf("Simulated service unavailable status set to: %t", unavailable),
	})
}

func (s *ControlServer) serviceStatusHandler(w http.ResponseWriter, r *http.Request) {
	if s.availability.IsUnavailable() {
		writeJSON(w, http.StatusServiceUnavailable, apiResponse{
			Status:  "unavailable",
			Message: "Simulated service is currently unavailable",
		})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Status:  "available",
		Message: "Simulated service is currently available",
	})
}

func (s *ControlServer) sendHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("message") {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Status:  "error",
			Message: "query parameter message is required",
		})
		return
	}
	message := query.Get("message")
	key := query.Get("key")
	if key == "" {
		key = "defaultKey"
	}

	tp, err := s.sender.Send(r.Context(), key, message)
	if err != nil {
		s.Logger.WithFields(logrus.Fields{
			"method": "sendHandler",
			"key":    key,
		}).WithError(err).Error("could not send message")
		writeJSON(w, http.StatusInternalServerError, apiResponse{
			Status:  "error",
			Message: fmt.Sprintf("could not send message: %s", err.Error()),
		})
		return
	}
	topic := ""
	if tp.Topic != nil {
		topic = *tp.Topic
	}
	writeJSON(w, http.StatusOK, apiResponse{
		Status:  "sent",
		Message: fmt.Sprintf("Message '%s' sent to topic '%s'", message, topic),
	})
}

func (s *ControlServer) consumerStatusHandler(w http.ResponseWriter, r *http.Request) {
	status := s.status.Status()
	res := consumerStatusResponse{
		ListenerID:    status.ListenerID,
		State:         status.State.String(),
		PendingResume: status.PendingResume,
	}
	if status.PendingResume {
		resumeAt := status.ResumeAt
		res.ResumeAt = &resumeAt
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
