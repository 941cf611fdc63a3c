package http

import (
	"context"
	"io"
	"net/http"

	"github.com/fwojciec/webcite"
)

// Ensure Fetcher implements webcite.Fetcher at compile time.
var _ webcite.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs over plain HTTP. It does not
// execute JavaScript; pages that render their metadata client-side will
// fall through to whatever static tags are present.
type Fetcher struct {
	client *Client
}

// NewFetcher creates a Fetcher on top of a shared Client.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch retrieves the body of the given URL. A transport failure returns
// an EUNAVAILABLE error; a non-2xx status returns ENOTFOUND, since a page
// that refuses to serve content has nothing to extract.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.get(ctx, url, nil)
	if err != nil {
		return "", webcite.Errorf(webcite.EUNAVAILABLE, "failed to fetch the URL: %v", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", webcite.Errorf(webcite.ENOTFOUND, "URL returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", webcite.Errorf(webcite.EUNAVAILABLE, "failed to read response body: %v", err)
	}

	return string(body), nil
}

// isSuccess reports whether the status code is in the 2xx range.
func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
