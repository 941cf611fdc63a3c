// Package slog provides log/slog-based logging decorators for webcite
// interfaces. Decorators wrap an inner implementation and observe the
// cascade without changing its behavior.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webcite"
)

// Ensure LoggingResolver implements webcite.DOIResolver.
var _ webcite.DOIResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a DOIResolver with debug logging for registry
// lookups. Lookup errors are logged here because the orchestrator absorbs
// them silently.
type LoggingResolver struct {
	next   webcite.DOIResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next webcite.DOIResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, rawURL string) (string, error) {
	begin := time.Now()
	record, err := r.next.Resolve(ctx, rawURL)

	switch {
	case err != nil:
		r.logger.Warn("DOI lookup failed",
			"url", rawURL,
			"error", webcite.ErrorMessage(err),
			"duration", time.Since(begin),
		)
	case record != "":
		r.logger.Info("found BibTeX via DOI content negotiation",
			"url", rawURL,
			"duration", time.Since(begin),
		)
	default:
		r.logger.Debug("DOI method not applicable, falling back to scraping",
			"url", rawURL,
			"duration", time.Since(begin),
		)
	}

	return record, err
}
