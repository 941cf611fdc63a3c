package webcite

import "context"

// Metadata holds the bibliographic fields extracted from a web page.
// Empty strings mean "unknown". An empty Title is terminal for the whole
// pipeline; Author and Year degrade to placeholder key parts instead.
type Metadata struct {
	Title  string
	Author string
	Year   string
}

// Fetcher retrieves the raw HTML body of a URL.
type Fetcher interface {
	// Fetch issues a GET and returns the response body.
	// A failed request returns an EUNAVAILABLE error; a non-2xx status
	// returns ENOTFOUND. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// DOIResolver retrieves a native BibTeX record for DOI links.
type DOIResolver interface {
	// Resolve returns the registry's BibTeX text when the URL is a DOI
	// link and the registry produced a usable record. A non-DOI URL or an
	// unusable registry response returns ("", nil); the caller treats any
	// error the same as no result and falls through to page scraping.
	Resolve(ctx context.Context, rawURL string) (string, error)
}

// MetadataExtractor extracts bibliographic metadata from an HTML document.
// Implementations are tried in order of reliability; a nil result means
// "nothing found here, try the next strategy" and is not an error.
type MetadataExtractor interface {
	Extract(html string) *Metadata
}

// CitationService generates a BibTeX record for a URL.
type CitationService interface {
	// Generate runs the extraction cascade and returns BibTeX text.
	// Failures carry one of three codes: EUNAVAILABLE (request failed),
	// EINVALID (URL cannot be parsed), ENOTFOUND (nothing citable).
	Generate(ctx context.Context, rawURL string) (string, error)
}
