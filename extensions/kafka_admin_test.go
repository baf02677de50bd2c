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
	"context"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/mocks"
	. "github.com/topfreegames/pausepoc/testing"
	"github.com/topfreegames/pausepoc/util"
)

var _ = Describe("Topic Provisioner", func() {
	var config *viper.Viper
	var mockAdmin *mocks.KafkaAdminClientMock
	logger, hook := test.NewNullLogger()

	BeforeEach(func() {
		var err error
		config, err = util.NewViperWithConfigFile("../config/test.yaml")
		Expect(err).NotTo(HaveOccurred())
		mockAdmin = mocks.NewKafkaAdminClientMock()
		hook.Reset()
	})

	Describe("[Unit]", func() {
		It("should create the source and sink topics with one partition", func() {
			p, err := NewTopicProvisioner(config, logger, mockAdmin)
			Expect(err).NotTo(HaveOccurred())

			Expect(p.Provision(context.Background())).To(Succeed())
			Expect(mockAdmin.Created).To(ConsistOf(
				kafka.TopicSpecification{Topic: "flaky-input-topic", NumPartitions: 1, ReplicationFactor: 1},
				kafka.TopicSpecification{Topic: "flaky-output-topic", NumPartitions: 1, ReplicationFactor: 1},
			))
		})

		It("should succeed if topics already exist", func() {
			mockAdmin.Existing["flaky-input-topic"] = true
			p, err := NewTopicProvisioner(config, logger, mockAdmin)
			Expect(err).NotTo(HaveOccurred())

			Expect(p.Provision(context.Background())).To(Succeed())
			Expect(p.Provision(context.Background())).To(Succeed())
			Expect(mockAdmin.Created).To(HaveLen(1))
		})

		It("should return error if a topic could not be created", func() {
			mockAdmin.Failing["flaky-output-topic"] = kafka.ErrInvalidReplicationFactor
			p, err := NewTopicProvisioner(config, logger, mockAdmin)
			Expect(err).NotTo(HaveOccurred())

			err = p.Provision(context.Background())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("flaky-output-topic"))
			Expect(hook.AllEntries()).To(ContainLogMessage("could not create topic"))
		})

		It("should return error if the admin request fails", func() {
			mockAdmin.Error = fmt.Errorf("no brokers")
			p, err := NewTopicProvisioner(config, logger, mockAdmin)
			Expect(err).NotTo(HaveOccurred())

			Expect(p.Provision(context.Background())).To(MatchError("no brokers"))
		})

		It("should close the admin client", func() {
			p, err := NewTopicProvisioner(config, logger, mockAdmin)
			Expect(err).NotTo(HaveOccurred())
			p.Close()
			Expect(mockAdmin.Closed).To(BeTrue())
		})
	})
})
