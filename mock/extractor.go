package mock

import "github.com/fwojciec/webcite"

var _ webcite.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of webcite.MetadataExtractor.
type MetadataExtractor struct {
	ExtractFn func(html string) *webcite.Metadata
}

func (e *MetadataExtractor) Extract(html string) *webcite.Metadata {
	return e.ExtractFn(html)
}
