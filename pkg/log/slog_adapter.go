package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes captured events to an slog.Logger at debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates an adapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes event as a single "capture" record.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Command != nil:
		c := event.Command
		attrs = append(attrs,
			slog.String("id", c.ID.String()),
			slog.Int("size", c.Size),
			slog.String("buffer", c.BufferType.String()),
		)
		if c.Name != "" {
			attrs = append(attrs, slog.String("command", c.Name))
		}
		if c.Text != "" {
			attrs = append(attrs, slog.String("text", c.Text))
		}
		if c.Truncated {
			attrs = append(attrs, slog.Bool("truncated", true))
		}
	case event.SendStatus != nil:
		s := event.SendStatus
		attrs = append(attrs,
			slog.String("id", s.ID.String()),
			slog.String("command", s.Name),
			slog.String("status", s.Status),
			slog.Bool("done", s.Done),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error", event.Error.Message),
		)
		if event.Error.Command != "" {
			attrs = append(attrs, slog.String("command", event.Error.Command))
		}
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "capture", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
