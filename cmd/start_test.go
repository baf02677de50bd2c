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

package cmd

import (
	"fmt"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/config"
	"github.com/topfreegames/pausepoc/mocks"
	"github.com/topfreegames/pausepoc/service"
)

var _ = Describe("Start", func() {
	cfg := "../config/test.yaml"

	var vConfig *viper.Viper
	var cfgStruct *config.Config
	var clients service.Clients

	BeforeEach(func() {
		var err error
		cfgStruct, vConfig, err = config.NewConfigAndViper(cfg)
		Expect(err).NotTo(HaveOccurred())
		clients = service.Clients{
			KafkaConsumer: mocks.NewKafkaConsumerClientMock(),
			KafkaProducer: mocks.NewKafkaProducerClientMock(),
			StatsD:        mocks.NewStatsDClientMock(),
		}
	})

	Describe("[Unit]", func() {
		It("Should return service without errors", func() {
			cfgStruct.Log.Level = "info"
			svc, err := startService(false, false, vConfig, cfgStruct, clients)
			Expect(err).NotTo(HaveOccurred())
			Expect(svc).NotTo(BeNil())
			defer svc.Cleanup()
			Expect(svc.Logger.Level).To(Equal(logrus.InfoLevel))
			Expect(fmt.Sprintf("%T", svc.Logger.Formatter)).To(Equal(fmt.Sprintf("%T", &logrus.TextFormatter{})))
			Expect(svc.Consumer.ListenerID).To(Equal("flaky-consumer"))
		})

		It("Should set log to json format", func() {
			svc, err := startService(false, true, vConfig, cfgStruct, clients)
			Expect(err).NotTo(HaveOccurred())
			defer svc.Cleanup()
			Expect(fmt.Sprintf("%T", svc.Logger.Formatter)).To(Equal(fmt.Sprintf("%T", &logrus.JSONFormatter{})))
		})

		It("Should set log to debug", func() {
			cfgStruct.Log.Level = "error"
			svc, err := startService(true, false, vConfig, cfgStruct, clients)
			Expect(err).NotTo(HaveOccurred())
			defer svc.Cleanup()
			Expect(svc.Logger.Level).To(Equal(logrus.DebugLevel))
		})

		It("Should use the configured log level", func() {
			cfgStruct.Log.Level = "warn"
			svc, err := startService(false, false, vConfig, cfgStruct, clients)
			Expect(err).NotTo(HaveOccurred())
			defer svc.Cleanup()
			Expect(svc.Logger.Level).To(Equal(logrus.WarnLevel))
		})

		It("Should return error if a stats reporter is unknown", func() {
			vConfig.Set("stats.reporters", []string{"graphite"})
			svc, err := startService(false, false, vConfig, cfgStruct, clients)
			Expect(svc).To(BeNil())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Stats Reporter not available"))
		})
	})
})
