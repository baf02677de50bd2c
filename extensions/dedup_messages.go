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
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/interfaces"
)

// Dedup remembers which records were already delivered to the sink, so a
// record redelivered after a lost acknowledgment is not forwarded twice
type Dedup struct {
	redis          *redis.Client
	ttl            time.Duration
	statsReporters []interfaces.StatsReporter
	l              *logrus.Entry
}

var _ interfaces.Dedup = Dedup{}

// NewDedup creates a redis backed Dedup
func NewDedup(ttl time.Duration, config *viper.Viper, statsReporters []interfaces.StatsReporter, logger *logrus.Logger) Dedup {
	config.SetDefault("dedup.redis.host", "localhost")
	config.SetDefault("dedup.redis.port", 6379)
	config.SetDefault("dedup.redis.db", 1)
	config.SetDefault("dedup.tls.disabled", true)

	host := config.GetString("dedup.redis.host")
	port := config.GetInt("dedup.redis.port")
	pwd := config.GetString("dedup.redis.password")
	disableTLS := config.GetBool("dedup.tls.disabled")

	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: pwd,
		DB:       config.GetInt("dedup.redis.db"),
	}
	if !disableTLS {
		opts.TLSConfig = &tls.Config{}
	}

	return Dedup{
		redis:          redis.NewClient(opts),
		ttl:            ttl,
		statsReporters: statsReporters,
		l: logger.WithFields(logrus.Fields{
			"extension": "Dedup",
			"ttl":       ttl,
		}),
	}
}

// IsForwarded reports whether record was already delivered. Errors answer
// false so the record is forwarded again rather than dropped.
func (d Dedup) IsForwarded(ctx context.Context, record interfaces.Record) bool {
	key := recordKey(record)
	n, err := d.redis.Exists(ctx, key).Result()
	if err != nil {
		d.l.WithFields(logrus.Fields{
			"error": err,
			"key":   key,
			"topic": record.Topic,
		}).Error("Failed to check message dedup in Redis")
		statsReporterDedupFailure(d.statsReporters, record.Topic)
		return false
	}
	return n > 0
}

// MarkForwarded records that record was delivered
func (d Dedup) MarkForwarded(ctx context.Context, record interfaces.Record) {
	key := recordKey(record)
	err := d.redis.Set(ctx, key, "1", d.ttl).Err()
	if err != nil {
		d.l.WithFields(logrus.Fields{
			"error": err,
			"key":   key,
			"topic": record.Topic,
		}).Error("Failed to mark message as forwarded in Redis")
		statsReporterDedupFailure(d.statsReporters, record.Topic)
	}
}

// Close closes the redis client
func (d Dedup) Close() error {
	return d.redis.Close()
}

func recordKey(record interfaces.Record) string {
	return "forwarded:" + Sha256Hex(fmt.Sprintf("%s|%d|%d", record.Topic, record.Partition, record.Offset), record.Value)
}

// Sha256Hex hashes id and msg together
func Sha256Hex(id, msg string) string {
	h := sha256.New()
	h.Write([]byte(fmt.Sprintf("%s|%s", id, msg)))
	return hex.EncodeToString(h.Sum(nil))
}
