package http

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/fwojciec/webcite"
)

// DefaultRegistry is the DOI registry queried for BibTeX records.
const DefaultRegistry = "https://doi.org"

// bibtexAccept asks the registry for a BibTeX representation via content
// negotiation.
const bibtexAccept = "application/x-bibtex; charset=utf-8"

// doiPattern matches DOI links in their common spellings, capturing the
// DOI suffix. The scheme and "dx." prefix are optional.
var doiPattern = regexp.MustCompile(`^(?:https?://)?(?:dx\.)?doi\.org/(.+)`)

// Ensure Resolver implements webcite.DOIResolver at compile time.
var _ webcite.DOIResolver = (*Resolver)(nil)

// Resolver detects DOI links and retrieves native BibTeX from the
// registry. Registry records are pre-formatted by the publisher and
// strictly more trustworthy than scraped metadata, so callers
// short-circuit on a hit.
type Resolver struct {
	client   *Client
	registry string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithRegistry overrides the DOI registry base URL. Used in tests.
func WithRegistry(baseURL string) ResolverOption {
	return func(r *Resolver) {
		r.registry = strings.TrimRight(baseURL, "/")
	}
}

// NewResolver creates a Resolver on top of a shared Client.
func NewResolver(client *Client, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client:   client,
		registry: DefaultRegistry,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the registry's BibTeX body verbatim when rawURL is a
// DOI link and the registry answers 2xx with a body that starts with '@'.
// A non-DOI URL or an unusable response returns ("", nil). Transport
// failures are returned as EUNAVAILABLE errors, but per the cascade
// contract callers treat them the same as a miss.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (string, error) {
	caps := doiPattern.FindStringSubmatch(rawURL)
	if caps == nil {
		return "", nil
	}

	header := http.Header{}
	header.Set("Accept", bibtexAccept)

	resp, err := r.client.get(ctx, r.registry+"/"+caps[1], header)
	if err != nil {
		return "", webcite.Errorf(webcite.EUNAVAILABLE, "DOI lookup failed: %v", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", webcite.Errorf(webcite.EUNAVAILABLE, "DOI lookup failed: %v", err)
	}

	// The record is returned verbatim, but acceptance looks past leading
	// whitespace: some registries pad the body before the '@'.
	text := string(body)
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed[0] != '@' {
		return "", nil
	}

	return text, nil
}
