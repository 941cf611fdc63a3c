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

func TestLoggingService_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs success with record size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CitationService{
			GenerateFn: func(ctx context.Context, rawURL string) (string, error) {
				return "@misc{Doe2024Hi,\n}", nil
			},
		}

		svc := webciteslog.NewLoggingService(inner, logger)
		record, err := svc.Generate(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.NotEmpty(t, record)
		output := buf.String()
		assert.Contains(t, output, "citation generated")
		assert.Contains(t, output, "bytes=")
	})

	t.Run("logs failure with error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CitationService{
			GenerateFn: func(ctx context.Context, rawURL string) (string, error) {
				return "", webcite.Errorf(webcite.ENOTFOUND, "could not find a title for the page")
			},
		}

		svc := webciteslog.NewLoggingService(inner, logger)
		_, err := svc.Generate(context.Background(), "https://example.com/post")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "citation generation failed")
		assert.Contains(t, output, "code=not_found")
	})
}
