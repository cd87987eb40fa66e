// Package process provides the headline pipeline driver. It coordinates
// reading raw HTML objects, extraction, CSV serialization, and writing the
// partitioned output objects.
package process

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dfgomezp/titulares"
	"github.com/google/uuid"
)

// rawDateRE matches the date the downloader embeds in raw object keys,
// e.g. headlines/raw/eltiempo-2024-03-05.html.
var rawDateRE = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\.html$`)

// Processor drives one processing run over a set of stored documents.
type Processor struct {
	Store      titulares.ObjectStore
	Extractor  titulares.HeadlineExtractor
	Serializer titulares.BatchSerializer
	Logger     *slog.Logger

	// Now supplies the partition date when the object key carries none.
	// Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of one processing run.
type Result struct {
	Processed int // documents extracted, serialized, and written
	Skipped   int // non-HTML keys and unsupported or undecodable documents
	Failed    int // storage reads or writes that failed
	Headlines int // total headlines across processed documents
}

// NewProcessor creates a Processor with the given collaborators.
func NewProcessor(store titulares.ObjectStore, extractor titulares.HeadlineExtractor, serializer titulares.BatchSerializer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Store:      store,
		Extractor:  extractor,
		Serializer: serializer,
		Logger:     logger,
		Now:        time.Now,
	}
}

// Run processes every referenced document. Per-document failures are
// absorbed: an unsupported source, an undecodable payload, or a storage
// failure skips that document and the run continues. The returned error is
// non-nil only for run-level misuse (no collaborators wired).
func (p *Processor) Run(ctx context.Context, refs []titulares.ObjectRef) (*Result, error) {
	if p.Store == nil || p.Extractor == nil || p.Serializer == nil {
		return nil, titulares.Errorf(titulares.EINTERNAL, "processor is missing collaborators")
	}

	logger := p.Logger.With("run_id", uuid.NewString())
	result := &Result{}

	for _, ref := range refs {
		if !strings.HasSuffix(strings.ToLower(ref.Key), ".html") {
			logger.Info("object is not HTML, skipping", "bucket", ref.Bucket, "key", ref.Key)
			result.Skipped++
			continue
		}

		html, err := p.Store.GetObject(ctx, ref.Key)
		if err != nil {
			logger.Error("failed to read object",
				"bucket", ref.Bucket,
				"key", ref.Key,
				"error", titulares.ErrorMessage(err),
			)
			result.Failed++
			continue
		}

		doc := &titulares.SourceDocument{
			Bucket:      ref.Bucket,
			ObjectKey:   ref.Key,
			HTML:        html,
			RetrievedAt: p.retrievedAt(ref.Key),
		}

		batch, err := p.Extractor.Extract(doc)
		if err != nil {
			logger.Info("document skipped",
				"key", ref.Key,
				"reason", titulares.ErrorCode(err),
				"error", titulares.ErrorMessage(err),
			)
			result.Skipped++
			continue
		}

		data, err := p.Serializer.Serialize(batch)
		if err != nil {
			logger.Error("failed to serialize batch", "key", ref.Key, "error", err)
			result.Failed++
			continue
		}

		outKey := titulares.PartitionKey(batch.Source, batch.RetrievedAt)
		if err := p.Store.PutObject(ctx, outKey, data, "text/csv"); err != nil {
			logger.Error("failed to write output",
				"key", outKey,
				"error", titulares.ErrorMessage(err),
			)
			result.Failed++
			continue
		}

		result.Processed++
		result.Headlines += len(batch.Headlines)
		logger.Info("document processed",
			"key", ref.Key,
			"out_key", outKey,
			"source", string(batch.Source),
			"headlines", len(batch.Headlines),
			"content_hash", xxhash.Sum64(html),
		)
	}

	logger.Info("run finished",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"headlines", result.Headlines,
	)
	return result, nil
}

// retrievedAt recovers the download date embedded in a raw object key,
// falling back to the current date for keys without one.
func (p *Processor) retrievedAt(key string) time.Time {
	if m := rawDateRE.FindStringSubmatch(key); m != nil {
		if t, err := time.Parse("2006-01-02", m[1]); err == nil {
			return t
		}
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}
	return now()
}
