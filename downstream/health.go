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
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// HealthGate holds whether the downstream dependency currently accepts work.
// It is written by the control surface and read by the Client.
type HealthGate struct {
	unavailable *atomic.Bool
	logger      *logrus.Logger
}

// NewHealthGate returns an available gate
func NewHealthGate(logger *logrus.Logger) *HealthGate {
	return &HealthGate{
		unavailable: atomic.NewBool(false),
		logger:      logger,
	}
}

// SetUnavailable flips the gate
func (g *HealthGate) SetUnavailable(unavailable bool) {
	g.unavailable.Store(unavailable)
	g.logger.WithFields(logrus.Fields{
		"method":    "SetUnavailable",
		"available": !unavailable,
	}).Info("downstream availability changed")
}

// IsUnavailable returns the last value written by SetUnavailable
func (g *HealthGate) IsUnavailable() bool {
	return g.unavailable.Load()
}
