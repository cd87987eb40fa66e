package mock

import "github.com/dfgomezp/titulares"

var _ titulares.HeadlineExtractor = (*HeadlineExtractor)(nil)

// HeadlineExtractor is a mock implementation of titulares.HeadlineExtractor.
type HeadlineExtractor struct {
	ExtractFn func(doc *titulares.SourceDocument) (*titulares.Batch, error)
}

func (e *HeadlineExtractor) Extract(doc *titulares.SourceDocument) (*titulares.Batch, error) {
	return e.ExtractFn(doc)
}

var _ titulares.TitleNormalizer = (*TitleNormalizer)(nil)

// TitleNormalizer is a mock implementation of titulares.TitleNormalizer.
type TitleNormalizer struct {
	NormalizeFn func(raw string) string
}

func (n *TitleNormalizer) Normalize(raw string) string {
	return n.NormalizeFn(raw)
}

var _ titulares.BatchSerializer = (*BatchSerializer)(nil)

// BatchSerializer is a mock implementation of titulares.BatchSerializer.
type BatchSerializer struct {
	SerializeFn func(batch *titulares.Batch) ([]byte, error)
}

func (s *BatchSerializer) Serialize(batch *titulares.Batch) ([]byte, error) {
	return s.SerializeFn(batch)
}
