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
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/extensions"
	"github.com/topfreegames/pausepoc/mocks"
	"github.com/topfreegames/pausepoc/util"
)

var _ = Describe("Reporters", func() {
	var config *viper.Viper
	var mockClient *mocks.StatsDClientMock
	logger, hook := test.NewNullLogger()

	BeforeEach(func() {
		var err error
		configFile := os.Getenv("CONFIG_FILE")
		if configFile == "" {
			configFile = "../config/test.yaml"
		}
		config, err = util.NewViperWithConfigFile(configFile)
		Expect(err).NotTo(HaveOccurred())
		mockClient = mocks.NewStatsDClientMock()
		hook.Reset()
	})

	Describe("[Unit]", func() {
		Describe("Configuring stats reporters", func() {
			It("should return stats reporter list", func() {
				reporters, err := configureStatsReporters(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				Expect(reporters).To(HaveLen(2))
				Expect(reporters[0]).To(BeAssignableToTypeOf(&extensions.StatsD{}))
				Expect(reporters[1]).To(BeAssignableToTypeOf(&extensions.Prometheus{}))
			})

			It("should use the given statsd client", func() {
				config.Set("stats.reporters", []string{"statsd"})
				reporters, err := configureStatsReporters(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				reporters[0].HandleConsumerPaused("flaky-consumer")
				Expect(mockClient.Counter("consumer_paused")).To(Equal(1))
			})

			It("should return an error if stats reporter is not available", func() {
				config.Set("stats.reporters", []string{"notAvailable"})
				reporters, err := configureStatsReporters(config, logger, mockClient)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(Equal("failed to initialize notAvailable. Stats Reporter not available"))
				Expect(reporters).To(BeNil())
			})

			It("should find the prometheus reporter", func() {
				reporters, err := configureStatsReporters(config, logger, mockClient)
				Expect(err).NotTo(HaveOccurred())
				p, ok := prometheusReporter(reporters)
				Expect(ok).To(BeTrue())
				Expect(p).NotTo(BeNil())

				_, ok = prometheusReporter(reporters[:1])
				Expect(ok).To(BeFalse())
			})
		})
	})
})
