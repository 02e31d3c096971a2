// Package notify renders workflow notifications. The service has no toast
// surface of its own; messages land in the structured log where the console
// frontend (or an operator) picks them up.
package notify

import (
	"context"
	"log/slog"
)

// SlogSink implements ports.NotificationSink on a structured logger.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink writing to the given logger.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Success(ctx context.Context, message string) {
	s.logger.InfoContext(ctx, message, "kind", "success")
}

func (s *SlogSink) Warning(ctx context.Context, message string) {
	s.logger.WarnContext(ctx, message, "kind", "warning")
}

func (s *SlogSink) Error(ctx context.Context, message string) {
	s.logger.ErrorContext(ctx, message, "kind", "error")
}
