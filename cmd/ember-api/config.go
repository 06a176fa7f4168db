package main

import (
	"github.com/emberhq/ember/pkg/config"
	cli "github.com/urfave/cli/v3"
)

// resolveConfig layers the configuration: defaults, then the YAML file when
// one is given, then every flag set on the command line or environment.
func resolveConfig(command *cli.Command) (config.Config, error) {
	cfg := config.Default()

	if path := command.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}

		cfg = loaded
	}

	if command.IsSet("port") {
		cfg.Server.Port = command.Int("port")
	}

	if command.IsSet("log-level") {
		cfg.Log.Level = command.String("log-level")
	}

	if command.IsSet("log-format") {
		cfg.Log.Format = command.String("log-format")
	}

	if command.IsSet("event-bus") {
		cfg.EventBus.Type = command.String("event-bus")
	}

	if command.IsSet("kafka-brokers") {
		cfg.EventBus.Kafka.Brokers = command.StringSlice("kafka-brokers")
	}

	if command.IsSet("strict-payloads") {
		cfg.StrictPayloads = command.Bool("strict-payloads")
	}

	if command.IsSet("tracing") {
		cfg.Tracing.Enabled = command.Bool("tracing")
	}

	return cfg, cfg.Validate()
}
