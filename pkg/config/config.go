// Package config holds the runtime configuration of the command layer.
//
// Configuration starts from DefaultConfig, is overlaid with the keys present
// in an optional TOML file and finally with ARSDK_* environment variables:
//
//	[codec]
//	strings = "length-prefixed"
//	max_payload_size = 1024
//	strict_multiset = false
//
//	[capture]
//	path = "/var/log/arsdk/drone.alog"
//	console = false
//	max_payload = 256
//	text = true
//
//	[log]
//	level = "info"
//	format = "text"
//
//	[metrics]
//	enabled = true
//	namespace = "arsdk"
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ARSDK_"

// Config is the runtime configuration.
type Config struct {
	Codec   CodecConfig   `envPrefix:"CODEC_"`
	Capture CaptureConfig `envPrefix:"CAPTURE_"`
	Log     LogConfig     `envPrefix:"LOG_"`
	Metrics MetricsConfig `envPrefix:"METRICS_"`
}

// CodecConfig configures argument encoding.
type CodecConfig struct {
	// Strings is "length-prefixed" or "nul-terminated".
	Strings        string `env:"STRINGS"`
	MaxPayloadSize int    `env:"MAX_PAYLOAD_SIZE"`
	StrictMultiset bool   `env:"STRICT_MULTISET"`
}

// CaptureConfig configures command capture.
type CaptureConfig struct {
	// Path of the capture file. Empty disables file capture.
	Path string `env:"PATH"`

	// Console writes captured events to the operational logger.
	Console bool `env:"CONSOLE"`

	// MaxPayload limits captured payload bytes per command.
	MaxPayload int `env:"MAX_PAYLOAD"`

	// Text adds the formatted command to captured events.
	Text bool `env:"TEXT"`
}

// LogConfig configures operational logging.
type LogConfig struct {
	Level  string `env:"LEVEL"`
	Format string `env:"FORMAT"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `env:"ENABLED"`
	Namespace string `env:"NAMESPACE"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Codec: CodecConfig{
			Strings: wire.StringLengthPrefixed.String(),
		},
		Capture: CaptureConfig{
			MaxPayload: 256,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Namespace: "arsdk",
		},
	}
}

type fileConfig struct {
	Codec struct {
		Strings        string `toml:"strings"`
		MaxPayloadSize int    `toml:"max_payload_size"`
		StrictMultiset bool   `toml:"strict_multiset"`
	} `toml:"codec"`
	Capture struct {
		Path       string `toml:"path"`
		Console    bool   `toml:"console"`
		MaxPayload int    `toml:"max_payload"`
		Text       bool   `toml:"text"`
	} `toml:"capture"`
	Log struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"log"`
	Metrics struct {
		Enabled   bool   `toml:"enabled"`
		Namespace string `toml:"namespace"`
	} `toml:"metrics"`
}

// Load builds the configuration from the defaults, the TOML file at path
// (skipped when path is empty) and the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("load config: unknown keys %s", strings.Join(keys, ", "))
	}

	if meta.IsDefined("codec", "strings") {
		c.Codec.Strings = strings.TrimSpace(raw.Codec.Strings)
	}
	if meta.IsDefined("codec", "max_payload_size") {
		c.Codec.MaxPayloadSize = raw.Codec.MaxPayloadSize
	}
	if meta.IsDefined("codec", "strict_multiset") {
		c.Codec.StrictMultiset = raw.Codec.StrictMultiset
	}

	if meta.IsDefined("capture", "path") {
		c.Capture.Path = strings.TrimSpace(raw.Capture.Path)
	}
	if meta.IsDefined("capture", "console") {
		c.Capture.Console = raw.Capture.Console
	}
	if meta.IsDefined("capture", "max_payload") {
		c.Capture.MaxPayload = raw.Capture.MaxPayload
	}
	if meta.IsDefined("capture", "text") {
		c.Capture.Text = raw.Capture.Text
	}

	if meta.IsDefined("log", "level") {
		c.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "format") {
		c.Log.Format = strings.TrimSpace(raw.Log.Format)
	}

	if meta.IsDefined("metrics", "enabled") {
		c.Metrics.Enabled = raw.Metrics.Enabled
	}
	if meta.IsDefined("metrics", "namespace") {
		c.Metrics.Namespace = strings.TrimSpace(raw.Metrics.Namespace)
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	var errs []error
	if _, err := wire.ParseStringEncoding(c.Codec.Strings); err != nil {
		errs = append(errs, fmt.Errorf("codec.strings: %w", err))
	}
	if c.Codec.MaxPayloadSize < 0 {
		errs = append(errs, errors.New("codec.max_payload_size must not be negative"))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		errs = append(errs, errors.New("metrics.namespace is required when metrics are enabled"))
	}
	return errors.Join(errs...)
}

// CodecOptions converts the codec section to wire options.
func (c Config) CodecOptions() wire.Options {
	enc, err := wire.ParseStringEncoding(c.Codec.Strings)
	if err != nil {
		enc = wire.StringLengthPrefixed
	}
	return wire.Options{
		Strings:        enc,
		MaxPayloadSize: c.Codec.MaxPayloadSize,
		StrictMultiset: c.Codec.StrictMultiset,
	}
}
