// Package config loads and validates ember-api configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	EventBusMemory = "memory"
	EventBusKafka  = "kafka"
)

var (
	ErrInvalidPort      = errors.New("port must be between 1 and 65535")
	ErrInvalidLogFormat = errors.New("log format must be text or json")
	ErrInvalidLogLevel  = errors.New("log level must be debug, info, warn or error")
	ErrInvalidEventBus  = errors.New("event bus type must be memory or kafka")
	ErrNoKafkaBrokers   = errors.New("kafka event bus requires at least one broker")
)

// Config is the root application configuration.
type Config struct {
	Server         ServerConfig   `yaml:"server"`
	Log            LogConfig      `yaml:"log"`
	EventBus       EventBusConfig `yaml:"event_bus"`
	Tracing        TracingConfig  `yaml:"tracing"`
	StrictPayloads bool           `yaml:"strict_payloads"`
}

// ServerConfig describes HTTP server settings.
type ServerConfig struct {
	Port int        `yaml:"port"`
	CORS CORSConfig `yaml:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// EventBusConfig selects where settings change events are published.
type EventBusConfig struct {
	Type  string      `yaml:"type"`
	Kafka KafkaConfig `yaml:"kafka"`
}

type KafkaConfig struct {
	Brokers       []string `yaml:"brokers"`
	ConsumerGroup string   `yaml:"consumer_group"`
}

type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// Default returns the configuration used when no file or flag overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port: 9091,
			CORS: CORSConfig{AllowedOrigins: []string{"*"}},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		EventBus: EventBusConfig{
			Type: EventBusMemory,
			Kafka: KafkaConfig{
				ConsumerGroup: "ember",
			},
		},
		Tracing: TracingConfig{
			ServiceName: "ember-api",
		},
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, ErrInvalidPort)
	}

	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		errs = append(errs, ErrInvalidLogFormat)
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		errs = append(errs, ErrInvalidLogLevel)
	}

	switch c.EventBus.Type {
	case EventBusMemory:
	case EventBusKafka:
		if len(c.EventBus.Kafka.Brokers) == 0 {
			errs = append(errs, ErrNoKafkaBrokers)
		}
	default:
		errs = append(errs, ErrInvalidEventBus)
	}

	return errors.Join(errs...)
}
