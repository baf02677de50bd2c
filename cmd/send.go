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
	"github.com/topfreegames/pausepoc/extensions"
	"github.com/topfreegames/pausepoc/interfaces"
)

var sendKey string

func sendMessages(
	ctx context.Context,
	out io.Writer,
	vConfig *viper.Viper,
	logger *logrus.Logger,
	key string,
	messages []string,
	clientOrNil ...interfaces.KafkaProducerClient,
) error {
	producer, err := extensions.NewKafkaProducer(vConfig, logger, clientOrNil...)
	if err != nil {
		return err
	}
	defer producer.Cleanup()

	for _, message := range messages {
		tp, err := producer.Send(ctx, key, message)
		if err != nil {
			return fmt.Errorf("could not send message '%s': %w", message, err)
		}
		fmt.Fprintf(out, "Message '%s' sent to topic '%s' at offset %v\n", message, producer.SourceTopic, tp.Offset)
	}
	return nil
}

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send [message...]",
	Short: "publishes test messages to the source topic",
	Long:  `publishes each argument as a message to the source topic and waits for the delivery report`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vConfig, log, err := loadConfig()
		if err != nil {
			return err
		}
		return sendMessages(context.Background(), cmd.OutOrStdout(), vConfig, log, sendKey, args)
	},
}

func init() {
	sendCmd.Flags().StringVarP(&sendKey, "key", "k", "defaultKey", "message key")
	RootCmd.AddCommand(sendCmd)
}
