package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webcite"
)

// Ensure LoggingService implements webcite.CitationService.
var _ webcite.CitationService = (*LoggingService)(nil)

// LoggingService wraps a CitationService with per-request outcome logging.
type LoggingService struct {
	next   webcite.CitationService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next webcite.CitationService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Generate delegates to the wrapped service and logs the result.
func (s *LoggingService) Generate(ctx context.Context, rawURL string) (string, error) {
	begin := time.Now()
	record, err := s.next.Generate(ctx, rawURL)
	if err != nil {
		s.logger.Warn("citation generation failed",
			"url", rawURL,
			"code", webcite.ErrorCode(err),
			"error", webcite.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return "", err
	}

	s.logger.Info("citation generated",
		"url", rawURL,
		"bytes", len(record),
		"duration", time.Since(begin),
	)
	return record, nil
}
