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

package downstream

import (
	"fmt"

	"github.com/sirupsen/logrus"
	pauseErrors "github.com/topfreegames/pausepoc/errors"
	"github.com/topfreegames/pausepoc/interfaces"
)

// Client simulates a call to the downstream dependency
type Client struct {
	health interfaces.HealthChecker
	logger *logrus.Logger
}

var _ interfaces.DownstreamClient = &Client{}

// NewClient returns a client that fails while health reports the dependency unavailable
func NewClient(health interfaces.HealthChecker, logger *logrus.Logger) *Client {
	return &Client{
		health: health,
		logger: logger,
	}
}

// Process handles a single record value. It has no side effects when it fails.
func (c *Client) Process(key, value string) (string, error) {
	l := c.logger.WithFields(logrus.Fields{
		"method": "Process",
		"key":    key,
	})

	if c.health.IsUnavailable() {
		l.Warn("downstream service is unavailable (503)")
		return "", pauseErrors.NewUnavailableError("service temporarily unavailable (503)")
	}

	l.WithField("value", value).Debug("message processed by downstream service")
	return fmt.Sprintf("Processed: %s", value), nil
}
