// Package cite orchestrates the citation extraction cascade: DOI registry
// lookup first, then page scraping with extractors tried in order of
// reliability, ending in BibTeX record assembly.
package cite

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/webcite"
)

// Ensure Generator implements webcite.CitationService at compile time.
var _ webcite.CitationService = (*Generator)(nil)

// Generator produces BibTeX records for URLs. It holds no per-request
// state; a single Generator serves concurrent requests.
type Generator struct {
	// Resolver short-circuits the pipeline for DOI links. Optional.
	Resolver webcite.DOIResolver

	// Fetcher retrieves the page body for the scraping path.
	Fetcher webcite.Fetcher

	// Extractors are tried in order; the first non-nil result wins.
	// Adding a strategy means appending to this list.
	Extractors []webcite.MetadataExtractor

	// Now supplies the access timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewGenerator creates a Generator with the given resolver, fetcher and
// extractor cascade.
func NewGenerator(resolver webcite.DOIResolver, fetcher webcite.Fetcher, extractors ...webcite.MetadataExtractor) *Generator {
	return &Generator{
		Resolver:   resolver,
		Fetcher:    fetcher,
		Extractors: extractors,
		Now:        time.Now,
	}
}

// Generate runs the cascade for rawURL and returns BibTeX text.
//
// A DOI registry hit is returned verbatim without touching the page.
// Resolver errors are absorbed: a failed lookup falls through to scraping
// like any non-DOI URL. Fetch errors propagate (EUNAVAILABLE or ENOTFOUND
// from the fetcher), an unparseable URL is EINVALID, and a page with no
// extractable title is ENOTFOUND.
func (g *Generator) Generate(ctx context.Context, rawURL string) (string, error) {
	if g.Resolver != nil {
		if record, err := g.Resolver.Resolve(ctx, rawURL); err == nil && record != "" {
			return record, nil
		}
	}

	html, err := g.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", webcite.Errorf(webcite.EINVALID, "invalid URL provided: %v", err)
	}

	meta := g.extract(html)
	if meta == nil || meta.Title == "" {
		return "", webcite.Errorf(webcite.ENOTFOUND, "could not find a title for the page")
	}

	now := g.Now
	if now == nil {
		now = time.Now
	}

	return webcite.FormatRecord(meta, rawURL, parsed.Hostname(), now()), nil
}

// extract runs the cascade and returns the first non-nil result.
func (g *Generator) extract(html string) *webcite.Metadata {
	for _, e := range g.Extractors {
		if meta := e.Extract(html); meta != nil {
			return meta
		}
	}
	return nil
}
