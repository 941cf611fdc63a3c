package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/webcite"
	"github.com/fwojciec/webcite/mock"
	webciteslog "github.com/fwojciec/webcite/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("logs a registry hit with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DOIResolver{
			ResolveFn: func(ctx context.Context, rawURL string) (string, error) {
				return "@misc{x}", nil
			},
		}

		resolver := webciteslog.NewLoggingResolver(inner, logger)
		record, err := resolver.Resolve(context.Background(), "https://doi.org/10.1000/xyz")

		require.NoError(t, err)
		assert.Equal(t, "@misc{x}", record)
		output := buf.String()
		assert.Contains(t, output, "found BibTeX via DOI content negotiation")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs lookup errors without suppressing them", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DOIResolver{
			ResolveFn: func(ctx context.Context, rawURL string) (string, error) {
				return "", webcite.Errorf(webcite.EUNAVAILABLE, "registry unreachable")
			},
		}

		resolver := webciteslog.NewLoggingResolver(inner, logger)
		_, err := resolver.Resolve(context.Background(), "https://doi.org/10.1000/xyz")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "DOI lookup failed")
		assert.Contains(t, buf.String(), "registry unreachable")
	})

	t.Run("misses are logged at debug only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.DOIResolver{
			ResolveFn: func(ctx context.Context, rawURL string) (string, error) {
				return "", nil
			},
		}

		resolver := webciteslog.NewLoggingResolver(inner, logger)
		record, err := resolver.Resolve(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, record)
		assert.Contains(t, buf.String(), "falling back to scraping")
	})
}
