// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "MOONA_LOG_LEVEL"

// LevelTrace is below slog.LevelDebug for maximum verbosity.
const LevelTrace = slog.LevelDebug - 4

// Config is the serving configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Serve   ServeConfig   `yaml:"serve"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// ServeConfig configures connection serving.
type ServeConfig struct {
	RecoverPanics      bool   `yaml:"recover_panics"`
	FailureContentType string `yaml:"failure_content_type"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Log:     LogConfig{Level: "INFO"},
		Metrics: MetricsConfig{Namespace: "moona"},
		Serve:   ServeConfig{FailureContentType: contentTypeText},
	}
}

// ParseConfig decodes YAML data over the defaults, applies environment
// overrides and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "config validation")
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading config file %s", path)
	}
	return ParseConfig(data)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return errors.New("metrics.namespace is required when metrics are enabled")
	}
	if c.Serve.FailureContentType == "" {
		return errors.New("serve.failure_content_type must not be empty")
	}
	return nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel converts a level name to a slog.Level. Names are matched
// case-insensitively; an empty name is INFO.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level %q", s)
	}
}
