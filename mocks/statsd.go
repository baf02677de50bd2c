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

package mocks

import (
	"sync"
	"time"
)

//StatsDClientMock records metrics sent to StatsD
type StatsDClientMock struct {
	mu         sync.Mutex
	Count      map[string]int
	Gauges     map[string]float64
	Timings    map[string]time.Duration
	Tags       map[string][]string
	Closed     bool
	CloseError error
}

//NewStatsDClientMock creates a new instance
func NewStatsDClientMock() *StatsDClientMock {
	return &StatsDClientMock{
		Closed:  false,
		Count:   map[string]int{},
		Gauges:  map[string]float64{},
		Timings: map[string]time.Duration{},
		Tags:    map[string][]string{},
	}
}

//Incr stores the new count in a map
func (m *StatsDClientMock) Incr(bucket string, tags []string, rate float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Count[bucket]++
	m.Tags[bucket] = tags
	return nil
}

//Gauge stores the value in a map
func (m *StatsDClientMock) Gauge(bucket string, value float64, tags []string, rate float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gauges[bucket] = value
	m.Tags[bucket] = tags
	return nil
}

//Timing stores the duration in a map
func (m *StatsDClientMock) Timing(bucket string, value time.Duration, tags []string, rate float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Timings[bucket] = value
	m.Tags[bucket] = tags
	return nil
}

//Close records that it is closed
func (m *StatsDClientMock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return m.CloseError
}

//Counter returns the count of bucket
func (m *StatsDClientMock) Counter(bucket string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Count[bucket]
}
