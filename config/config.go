package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// WebhookConfig defines the webhook endpoint configuration.
type WebhookConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ExamplesConfig defines the example batch parameters.
type ExamplesConfig struct {
	PauseSeconds int `yaml:"pause_seconds"`
}

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Config is the top-level configuration struct.
type Config struct {
	Webhook  WebhookConfig  `yaml:"webhook"`
	Examples ExamplesConfig `yaml:"examples"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AppConfig holds the loaded configuration.
var AppConfig = Default()

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Config {
	return &Config{
		Webhook:  WebhookConfig{TimeoutSeconds: 300},
		Examples: ExamplesConfig{PauseSeconds: 2},
		Logging:  LoggingConfig{Level: "info", Format: "text", Output: "stderr"},
	}
}

// LoadConfig loads the configuration from the given yaml file into AppConfig.
// With an empty path it looks for "config.yaml" in the working directory and
// silently keeps the defaults when that file does not exist; an explicitly
// named file must exist and parse.
func LoadConfig(path string) error {
	explicit := path != ""
	if !explicit {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			AppConfig = Default()
			return nil
		}
		return fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("could not parse config file at %s: %w", path, err)
	}

	AppConfig = cfg
	return nil
}
