// Package csv serializes headline batches as delimited text using
// encoding/csv.
package csv

import (
	"bytes"
	"encoding/csv"

	"github.com/dfgomezp/titulares"
)

// Ensure Serializer implements titulares.BatchSerializer at compile time.
var _ titulares.BatchSerializer = (*Serializer)(nil)

// header is the fixed first row of every output table.
var header = []string{"Categoria", "Titular", "Enlace"}

// Serializer encodes a batch as UTF-8 CSV with a fixed header row.
type Serializer struct{}

// NewSerializer creates a new Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize writes the header followed by one row per headline in batch
// order. Embedded delimiters, quotes, and newlines are quoted per RFC 4180.
// An empty batch produces a header-only table.
func (s *Serializer) Serialize(batch *titulares.Batch) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, titulares.Errorf(titulares.EINTERNAL, "failed to write CSV header: %v", err)
	}
	for _, h := range batch.Headlines {
		if err := w.Write([]string{h.Category, h.Title, h.Link}); err != nil {
			return nil, titulares.Errorf(titulares.EINTERNAL, "failed to write CSV row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, titulares.Errorf(titulares.EINTERNAL, "failed to flush CSV: %v", err)
	}
	return buf.Bytes(), nil
}
