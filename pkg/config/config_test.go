package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arsdk-protocol/arsdk-go/pkg/cmditf"
	"github.com/arsdk-protocol/arsdk-go/pkg/cmditf/mocks"
	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/features"
	"github.com/arsdk-protocol/arsdk-go/pkg/log"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arsdk.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, wire.DefaultOptions(), cfg.CodecOptions())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverlaysDefinedKeys(t *testing.T) {
	path := writeConfig(t, `
[codec]
strings = "nul-terminated"
strict_multiset = true

[capture]
text = true

[metrics]
enabled = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nul-terminated", cfg.Codec.Strings)
	assert.True(t, cfg.Codec.StrictMultiset)
	assert.Zero(t, cfg.Codec.MaxPayloadSize)
	assert.True(t, cfg.Capture.Text)
	// untouched keys keep their defaults
	assert.Equal(t, 256, cfg.Capture.MaxPayload)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "arsdk", cfg.Metrics.Namespace)

	opts := cfg.CodecOptions()
	assert.Equal(t, wire.StringNulTerminated, opts.Strings)
	assert.True(t, opts.StrictMultiset)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "warn"
format = "json"
`)
	t.Setenv("ARSDK_LOG_LEVEL", "debug")
	t.Setenv("ARSDK_CODEC_MAX_PAYLOAD_SIZE", "512")
	t.Setenv("ARSDK_CAPTURE_CONSOLE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 512, cfg.Codec.MaxPayloadSize)
	assert.True(t, cfg.Capture.Console)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[codec\n"},
		{"unknown key", "[codec]\ncompression = true\n"},
		{"bad strings", "[codec]\nstrings = \"utf16\"\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad format", "[log]\nformat = \"xml\"\n"},
		{"negative size", "[codec]\nmax_payload_size = -1\n"},
		{"metrics without namespace", "[metrics]\nenabled = true\nnamespace = \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("ARSDK_CODEC_MAX_PAYLOAD_SIZE", "lots")
	_, err := Load("")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "v", entry["k"])
}

func TestNewMetrics(t *testing.T) {
	cfg := DefaultConfig()
	assert.Nil(t, cfg.NewMetrics())

	cfg.Metrics.Enabled = true
	assert.NotNil(t, cfg.NewMetrics())
}

func TestOpenCapture(t *testing.T) {
	cfg := DefaultConfig()

	capture, closer, err := cfg.OpenCapture(nil)
	require.NoError(t, err)
	assert.IsType(t, log.NoopLogger{}, capture)
	assert.NoError(t, closer.Close())

	cfg.Capture.Path = filepath.Join(t.TempDir(), "capture.alog")
	capture, closer, err = cfg.OpenCapture(nil)
	require.NoError(t, err)
	assert.IsType(t, &log.FileLogger{}, capture)

	capture.Log(log.Event{SessionID: "s"})
	require.NoError(t, closer.Close())

	r, err := log.NewReader(cfg.Capture.Path)
	require.NoError(t, err)
	defer r.Close()
	events, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, events, 1)

	cfg.Capture.Console = true
	var buf bytes.Buffer
	capture, closer, err = cfg.OpenCapture(DefaultConfig().NewLogger(&buf))
	require.NoError(t, err)
	defer closer.Close()
	assert.IsType(t, &log.MultiLogger{}, capture)
}

func TestOpenCaptureBadPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capture.Path = filepath.Join(t.TempDir(), "no", "such", "dir", "capture.alog")
	_, _, err := cfg.OpenCapture(nil)
	assert.Error(t, err)
}

func TestNewInterface(t *testing.T) {
	path := filepath.Join(t.TempDir(), "link.alog")
	cfg := DefaultConfig()
	cfg.Codec.Strings = wire.StringNulTerminated.String()
	cfg.Capture.Path = path
	cfg.Capture.Text = true

	sender := mocks.NewMockSender(t)
	sender.EXPECT().
		Send(mock.Anything, desc.BufferAck, mock.Anything).
		Run(func(frame wire.Frame, _ desc.BufferType, _ cmditf.StatusFunc) {
			// NUL-terminated string from the configured codec
			assert.Equal(t, []byte{'f', 'r', 0}, frame.Payload)
		}).
		Return(nil).
		Once()

	itf, closer, err := cfg.NewInterface(features.MustTable(), sender, cfg.NewLogger(&bytes.Buffer{}), nil)
	require.NoError(t, err)
	require.NoError(t, features.SendCommonSettingsCountry(itf, nil, "fr"))
	require.NoError(t, closer.Close())

	r, err := log.NewReader(path)
	require.NoError(t, err)
	defer r.Close()
	events, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, itf.SessionID(), events[0].SessionID)
	assert.Equal(t, "common.Settings.Country | code='fr'", events[0].Command.Text)
}
