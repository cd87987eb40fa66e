package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	titulareshttp "github.com/dfgomezp/titulares/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte("<html><body>portada</body></html>"))
		}))
		defer srv.Close()

		f := titulareshttp.NewFetcher()
		defer f.Close()

		got, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>portada</body></html>", got)
	})

	t.Run("sends a browser-like user agent", func(t *testing.T) {
		t.Parallel()

		var ua string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			ua = r.UserAgent()
		}))
		defer srv.Close()

		f := titulareshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, titulareshttp.DefaultUserAgent, ua)
	})

	t.Run("user agent can be overridden", func(t *testing.T) {
		t.Parallel()

		var ua string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			ua = r.UserAgent()
		}))
		defer srv.Close()

		f := titulareshttp.NewFetcher(titulareshttp.WithUserAgent("titulares-test"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "titulares-test", ua)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusServiceUnavailable)
		}))
		defer srv.Close()

		f := titulareshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 503")
	})

	t.Run("context cancellation aborts the request", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		f := titulareshttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Fetch(ctx, srv.URL)

		assert.Error(t, err)
	})
}
