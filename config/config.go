package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/topfreegames/pausepoc/util"
)

type (
	// Config is the typed view of the settings the service starts with.
	Config struct {
		Kafka                   Kafka
		Stats                   Stats
		Dedup                   Dedup
		Control                 Control
		Sentry                  Sentry
		Log                     Log
		GracefulShutdownTimeout int
	}

	Kafka struct {
		Brokers   string
		TopicName string `mapstructure:"topic-name"`
		SinkTopic string `mapstructure:"sink-topic"`
		Consumer  Consumer
		Producer  Producer
		Provision Provision
		Extra     map[string]string
	}

	Consumer struct {
		GroupID             string `mapstructure:"group-id"`
		ListenerID          string `mapstructure:"listener-id"`
		PauseDurationMs     int    `mapstructure:"pause-duration-ms"`
		SessionTimeout      int
		OffsetResetStrategy string
		PollTimeoutMs       int
	}

	Producer struct {
		DeliveryTimeoutMs int
	}

	Provision struct {
		Enabled           bool
		Partitions        int
		ReplicationFactor int
	}

	Stats struct {
		Reporters []string
		Flush     Flush
	}

	Flush struct {
		S int
	}

	Dedup struct {
		Enabled bool
		TTL     string
	}

	Control struct {
		Address string
	}

	Sentry struct {
		URL string
	}

	Log struct {
		Level string
	}
)

// NewConfigAndViper returns a new Config object and the corresponding viper instance.
func NewConfigAndViper(configFile string) (*Config, *viper.Viper, error) {
	v, err := util.NewViperWithConfigFile(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading config file from %s: %s", configFile, err)
	}
	SetDefaults(v)

	config := &Config{}
	if err := v.Unmarshal(config, decodeHookFunc()); err != nil {
		return nil, nil, fmt.Errorf("error unmarshalling config: %s", err)
	}
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}

	return config, v, nil
}

// SetDefaults registers the defaults of the keys read at startup
func SetDefaults(v *viper.Viper) {
	v.SetDefault("kafka.brokers", "localhost:9092")
	v.SetDefault("kafka.topic-name", "flaky-input-topic")
	v.SetDefault("kafka.sink-topic", "flaky-output-topic")
	v.SetDefault("kafka.consumer.group-id", "pause-poc-group")
	v.SetDefault("kafka.consumer.listener-id", "flaky-consumer")
	v.SetDefault("kafka.consumer.pause-duration-ms", 30000)
	v.SetDefault("kafka.provision.enabled", true)
	v.SetDefault("stats.reporters", []string{})
	v.SetDefault("stats.flush.s", 5)
	v.SetDefault("dedup.enabled", false)
	v.SetDefault("dedup.ttl", "24h")
	v.SetDefault("control.address", ":8080")
	v.SetDefault("gracefulShutdownTimeout", 30)
	v.SetDefault("log.level", "info")
	v.BindEnv("kafka.extra")
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	if c.Kafka.TopicName == "" {
		return fmt.Errorf("kafka.topic-name must be set")
	}
	if c.Kafka.Consumer.ListenerID == "" {
		return fmt.Errorf("kafka.consumer.listener-id must be set")
	}
	if c.Kafka.Consumer.PauseDurationMs < 0 {
		return fmt.Errorf("kafka.consumer.pause-duration-ms must not be negative, got %d", c.Kafka.Consumer.PauseDurationMs)
	}
	return nil
}

// GetReporters returns the stats reporters names, trimmed
func (c *Config) GetReporters() []string {
	res := make([]string, 0, len(c.Stats.Reporters))
	for _, r := range c.Stats.Reporters {
		for _, a := range strings.Split(r, ",") {
			if a = strings.TrimSpace(a); a != "" {
				res = append(res, a)
			}
		}
	}
	return res
}

func decodeHookFunc() viper.DecoderConfigOption {
	hooks := mapstructure.ComposeDecodeHookFunc(
		StringToMapStringHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	return viper.DecodeHook(hooks)
}

// StringToMapStringHookFunc decodes a JSON object string, as set through an
// environment variable, into a map[string]string
func StringToMapStringHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Map {
			return data, nil
		}

		if t.Key().Kind() != reflect.String || t.Elem().Kind() != reflect.String {
			return data, nil
		}

		raw := data.(string)
		if raw == "" {
			return map[string]string{}, nil
		}

		m := map[string]string{}
		err := json.Unmarshal([]byte(raw), &m)
		return m, err
	}
}
