package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/webcite"
	webcitehttp "github.com/fwojciec/webcite/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	newResolver := func(registry string) *webcitehttp.Resolver {
		return webcitehttp.NewResolver(webcitehttp.NewClient(), webcitehttp.WithRegistry(registry))
	}

	t.Run("returns registry BibTeX verbatim", func(t *testing.T) {
		t.Parallel()

		const record = "@article{foo123, title={X}}"

		var gotAccept, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAccept = r.Header.Get("Accept")
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(record))
		}))
		defer server.Close()

		got, err := newResolver(server.URL).Resolve(context.Background(), "https://doi.org/10.1000/xyz")
		require.NoError(t, err)
		assert.Equal(t, record, got)
		assert.Equal(t, "application/x-bibtex; charset=utf-8", gotAccept)
		assert.Equal(t, "/10.1000/xyz", gotPath)
	})

	t.Run("matches scheme-less and dx-prefixed DOI links", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("@misc{x}"))
		}))
		defer server.Close()

		for _, u := range []string{
			"doi.org/10.1000/xyz",
			"http://dx.doi.org/10.1000/xyz",
			"https://dx.doi.org/10.1000/xyz",
		} {
			got, err := newResolver(server.URL).Resolve(context.Background(), u)
			require.NoError(t, err, u)
			assert.Equal(t, "@misc{x}", got, u)
		}
	})

	t.Run("non-DOI URL is a silent miss", func(t *testing.T) {
		t.Parallel()

		r := webcitehttp.NewResolver(webcitehttp.NewClient(), webcitehttp.WithRegistry("http://127.0.0.1:0"))

		got, err := r.Resolve(context.Background(), "https://example.com/post")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("non-success status is a miss, not an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such DOI", http.StatusNotFound)
		}))
		defer server.Close()

		got, err := newResolver(server.URL).Resolve(context.Background(), "https://doi.org/10.1000/xyz")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("body not starting with @ is a miss", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not bibtex</html>"))
		}))
		defer server.Close()

		got, err := newResolver(server.URL).Resolve(context.Background(), "https://doi.org/10.1000/xyz")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty body is a miss", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("   \n  "))
		}))
		defer server.Close()

		got, err := newResolver(server.URL).Resolve(context.Background(), "https://doi.org/10.1000/xyz")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("transport failure surfaces as unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newResolver(server.URL).Resolve(context.Background(), "https://doi.org/10.1000/xyz")
		require.Error(t, err)
		assert.Equal(t, webcite.EUNAVAILABLE, webcite.ErrorCode(err))
	})
}
