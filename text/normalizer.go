// Package text provides the title normalizer built on golang.org/x/text.
package text

import (
	"strings"
	"unicode"

	"github.com/dfgomezp/titulares"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ensure Normalizer implements titulares.TitleNormalizer at compile time.
var _ titulares.TitleNormalizer = (*Normalizer)(nil)

// Normalizer cleans headline text into plain ASCII. The transform is total
// and idempotent: applying it twice yields the same string.
type Normalizer struct {
	stripMarks transform.Transformer
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		stripMarks: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))),
	}
}

// Normalize applies, in order: canonical decomposition, removal of combining
// marks, removal of everything that is not an ASCII letter, ASCII digit, or
// whitespace, and finally comma-to-space substitution. The last step is
// redundant with the character filter but kept as a guard against the CSV
// delimiter leaking into field values.
func (n *Normalizer) Normalize(raw string) string {
	s, _, err := transform.String(n.stripMarks, raw)
	if err != nil {
		// Best effort: filter the input as-is rather than failing.
		s = raw
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	return strings.ReplaceAll(b.String(), ",", " ")
}
