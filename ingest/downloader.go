// Package ingest downloads the configured news sites' front pages and
// stores them as raw HTML objects for later processing.
package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dfgomezp/titulares"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond limits outbound requests. One request per second
// keeps the downloader polite toward the source servers.
const DefaultRequestsPerSecond = 1.0

// Downloader fetches each configured site and writes the raw HTML to the
// object store under a date-stamped key.
type Downloader struct {
	Fetcher titulares.Fetcher
	Store   titulares.ObjectStore
	Logger  *slog.Logger

	// Concurrency bounds parallel site fetches. Defaults to 2.
	Concurrency int

	// Now supplies the date embedded in raw object keys.
	// Defaults to time.Now.
	Now func() time.Time

	limiter     *rate.Limiter
	limiterOnce sync.Once
}

// NewDownloader creates a Downloader with the given collaborators.
func NewDownloader(fetcher titulares.Fetcher, store titulares.ObjectStore, logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Downloader{
		Fetcher: fetcher,
		Store:   store,
		Logger:  logger,
		Now:     time.Now,
	}
}

// Download fetches every site and stores the raw HTML. Per-site failures
// are recorded in the result map, not propagated; the error is non-nil only
// when the context is canceled. The result maps each source to whether its
// download and store both succeeded.
func (d *Downloader) Download(ctx context.Context, sites []titulares.Site) (map[titulares.Source]bool, error) {
	d.limiterOnce.Do(func() {
		d.limiter = rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1)
	})

	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = 2
	}

	var mu sync.Mutex
	results := make(map[titulares.Source]bool, len(sites))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, site := range sites {
		site := site
		g.Go(func() error {
			ok := d.downloadSite(ctx, site)
			mu.Lock()
			results[site.Source] = ok
			mu.Unlock()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// downloadSite fetches one site and stores the body. Returns false on any
// failure after logging it.
func (d *Downloader) downloadSite(ctx context.Context, site titulares.Site) bool {
	if err := d.limiter.Wait(ctx); err != nil {
		return false
	}

	d.Logger.Info("downloading site", "source", string(site.Source), "url", site.URL)

	html, err := d.Fetcher.Fetch(ctx, site.URL)
	if err != nil {
		d.Logger.Error("failed to download site",
			"source", string(site.Source),
			"url", site.URL,
			"error", err,
		)
		return false
	}

	key := titulares.RawObjectKey(site.Source, d.now())
	if err := d.Store.PutObject(ctx, key, []byte(html), "text/html"); err != nil {
		d.Logger.Error("failed to store raw HTML",
			"source", string(site.Source),
			"key", key,
			"error", titulares.ErrorMessage(err),
		)
		return false
	}

	d.Logger.Info("raw HTML stored", "source", string(site.Source), "key", key, "bytes", len(html))
	return true
}

func (d *Downloader) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}
