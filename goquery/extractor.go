package goquery

import (
	"unicode/utf8"

	"github.com/dfgomezp/titulares"
)

var _ titulares.HeadlineExtractor = (*Extractor)(nil)

// Extractor turns a raw source document into a batch of normalized
// headlines: it validates the payload, resolves the site adapter from the
// object key, runs extraction, and normalizes every title before the batch
// leaves this component.
type Extractor struct {
	registry   titulares.AdapterRegistry
	normalizer titulares.TitleNormalizer
}

// NewExtractor creates a new Extractor.
func NewExtractor(registry titulares.AdapterRegistry, normalizer titulares.TitleNormalizer) *Extractor {
	return &Extractor{
		registry:   registry,
		normalizer: normalizer,
	}
}

// Extract processes one source document. A document with zero matching
// article nodes yields an empty batch, not an error.
func (e *Extractor) Extract(doc *titulares.SourceDocument) (*titulares.Batch, error) {
	if !utf8.Valid(doc.HTML) {
		return nil, titulares.Errorf(titulares.EINVALID, "object %q is not valid UTF-8", doc.ObjectKey)
	}

	adapter, err := e.registry.Resolve(doc.ObjectKey)
	if err != nil {
		return nil, err
	}

	headlines, err := adapter.ExtractHeadlines(string(doc.HTML))
	if err != nil {
		return nil, err
	}

	for i := range headlines {
		headlines[i].Title = e.normalizer.Normalize(headlines[i].Title)
	}

	return &titulares.Batch{
		Source:      adapter.Source(),
		RetrievedAt: doc.RetrievedAt,
		Headlines:   headlines,
	}, nil
}
