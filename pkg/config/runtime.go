package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/arsdk-protocol/arsdk-go/pkg/cmditf"
	"github.com/arsdk-protocol/arsdk-go/pkg/desc"
	"github.com/arsdk-protocol/arsdk-go/pkg/log"
	"github.com/arsdk-protocol/arsdk-go/pkg/metrics"
	"github.com/arsdk-protocol/arsdk-go/pkg/wire"
)

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, err
	}
	return level, nil
}

// NewLogger builds the operational logger described by the log section.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewMetrics returns the metric set, or nil when metrics are disabled.
func (c Config) NewMetrics() *metrics.Metrics {
	if !c.Metrics.Enabled {
		return nil
	}
	return metrics.NewMetrics(c.Metrics.Namespace)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenCapture builds the capture logger. The returned closer releases the
// capture file, if any. With capture disabled it returns a NoopLogger.
func (c Config) OpenCapture(console *slog.Logger) (log.Logger, io.Closer, error) {
	var loggers []log.Logger
	var closer io.Closer = nopCloser{}

	if c.Capture.Path != "" {
		fl, err := log.NewFileLogger(c.Capture.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open capture: %w", err)
		}
		loggers = append(loggers, fl)
		closer = fl
	}
	if c.Capture.Console && console != nil {
		loggers = append(loggers, log.NewSlogAdapter(console))
	}

	switch len(loggers) {
	case 0:
		return log.NoopLogger{}, closer, nil
	case 1:
		return loggers[0], closer, nil
	default:
		return log.NewMultiLogger(loggers...), closer, nil
	}
}

// NewInterface builds the command interface of one link from the
// configuration. m may be nil. The closer releases the capture file and must
// be called when the link goes away.
func (c Config) NewInterface(table *desc.Table, sender cmditf.Sender, logger *slog.Logger, m *metrics.Metrics) (*cmditf.Interface, io.Closer, error) {
	capture, closer, err := c.OpenCapture(logger)
	if err != nil {
		return nil, nil, err
	}
	itf, err := cmditf.New(cmditf.Config{
		Table:          table,
		Sender:         sender,
		Codec:          wire.NewCodec(c.CodecOptions()),
		Capture:        capture,
		CapturePayload: c.Capture.MaxPayload,
		CaptureText:    c.Capture.Text,
		Logger:         logger,
		Metrics:        m,
	})
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return itf, closer, nil
}
