package mock

import (
	"context"

	"github.com/fwojciec/webcite"
)

var _ webcite.CitationService = (*CitationService)(nil)

// CitationService is a mock implementation of webcite.CitationService.
type CitationService struct {
	GenerateFn func(ctx context.Context, rawURL string) (string, error)
}

func (s *CitationService) Generate(ctx context.Context, rawURL string) (string, error) {
	return s.GenerateFn(ctx, rawURL)
}
