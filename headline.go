package titulares

import "time"

// Headline represents one extracted news item.
type Headline struct {
	// Category is the first path segment of the link after the host.
	// Empty when the link has no path segments.
	Category string `json:"category"`

	// Title is the normalized headline text. Never null; may be empty
	// when the source text normalized to nothing.
	Title string `json:"title"`

	// Link is the absolute URL of the article.
	Link string `json:"link"`
}

// Validate returns an error if the headline contains invalid fields.
func (h *Headline) Validate() error {
	if h.Link == "" {
		return Errorf(EINVALID, "headline link required")
	}
	return nil
}

// SourceDocument is one raw HTML payload to process.
type SourceDocument struct {
	// Bucket identifies the storage location the document was read from.
	Bucket string

	// ObjectKey is the storage key of the document. The source is resolved
	// from it by substring match, so keys like
	// "headlines/raw/eltiempo-2024-03-05.html" select the eltiempo adapter.
	ObjectKey string

	// HTML is the raw page content. Must be valid UTF-8.
	HTML []byte

	// RetrievedAt is the date used for output partitioning.
	RetrievedAt time.Time
}

// Batch is the ordered set of headlines extracted from one source document.
type Batch struct {
	Source      Source
	RetrievedAt time.Time

	// Headlines preserves extraction order. Empty is valid: a page with no
	// matching nodes produces a header-only table.
	Headlines []Headline
}

// ObjectRef identifies one stored document in a document-available
// notification.
type ObjectRef struct {
	Bucket string
	Key    string
}

// HeadlineExtractor turns a raw source document into a batch of headlines.
// Every emitted title is already normalized when the batch is returned.
type HeadlineExtractor interface {
	// Extract parses the document, resolves the site adapter from the
	// object key, and extracts headlines. Returns EUNSUPPORTED when no
	// adapter matches and EINVALID when the payload is not decodable.
	Extract(doc *SourceDocument) (*Batch, error)
}

// TitleNormalizer cleans headline text into plain ASCII.
type TitleNormalizer interface {
	Normalize(raw string) string
}

// BatchSerializer encodes a batch as delimited text.
type BatchSerializer interface {
	Serialize(batch *Batch) ([]byte, error)
}
