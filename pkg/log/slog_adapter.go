package log

import (
	"context"
	"log/slog"
	"strings"
)

// SlogAdapter writes payload events to an slog.Logger.
// Encoded networks are logged at Debug level, rejected ones at Warn.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("scheme", event.Scheme),
		slog.String("outcome", event.Outcome.String()),
		slog.String("ssid", event.SSID),
	}

	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}
	if event.Network != "" {
		attrs = append(attrs, slog.String("network", event.Network))
	}

	level := slog.LevelDebug
	switch event.Outcome {
	case OutcomeEncoded:
		attrs = append(attrs, slog.Int("payload_len", event.PayloadLen))
	case OutcomeRejected:
		level = slog.LevelWarn
		if len(event.Missing) > 0 {
			attrs = append(attrs, slog.String("missing", strings.Join(event.Missing, ",")))
		}
		if event.Error != "" {
			attrs = append(attrs, slog.String("error", event.Error))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "payload", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
