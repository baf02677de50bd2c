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
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/config"
	"github.com/topfreegames/pausepoc/extensions"
	"github.com/topfreegames/pausepoc/interfaces"
)

func loadConfig() (*viper.Viper, *logrus.Logger, error) {
	cfg, vConfig, err := config.NewConfigAndViper(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	return vConfig, newLogger(debug, json, cfg.Log.Level), nil
}

func provisionTopics(
	ctx context.Context,
	out io.Writer,
	vConfig *viper.Viper,
	logger *logrus.Logger,
	clientOrNil ...interfaces.KafkaAdminClient,
) error {
	provisioner, err := extensions.NewTopicProvisioner(vConfig, logger, clientOrNil...)
	if err != nil {
		return err
	}
	defer provisioner.Close()

	err = provisioner.Provision(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Topics ready: %v\n", provisioner.Topics)
	return nil
}

// provisionCmd represents the provision command
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "creates the source and sink topics",
	Long:  `creates the source and sink topics, topics that already exist are left untouched`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vConfig, log, err := loadConfig()
		if err != nil {
			return err
		}
		return provisionTopics(context.Background(), cmd.OutOrStdout(), vConfig, log)
	},
}

func init() {
	RootCmd.AddCommand(provisionCmd)
}
