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

	raven "github.com/getsentry/raven-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/config"
	"github.com/topfreegames/pausepoc/service"
	"github.com/topfreegames/pausepoc/util"
)

func startService(
	debug, json bool,
	vConfig *viper.Viper,
	config *config.Config,
	clients service.Clients,
) (*service.Service, error) {
	log := newLogger(debug, json, config.Log.Level)
	return service.NewService(vConfig, log, clients)
}

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "starts consuming",
	Long: `starts consuming the source topic, forwarding processed records to the
sink topic and serving the control API`,
	Run: func(cmd *cobra.Command, args []string) {
		config, vConfig, err := config.NewConfigAndViper(cfgFile)
		if err != nil {
			panic(err)
		}

		svc, err := startService(debug, json, vConfig, config, service.Clients{})
		if err != nil {
			raven.CaptureErrorAndWait(err, map[string]string{
				"version": util.Version,
				"cmd":     "start",
			})
			panic(err)
		}
		err = svc.Start(context.Background())
		if err != nil {
			svc.Logger.WithError(err).Fatal("service stopped with error")
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
