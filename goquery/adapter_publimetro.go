package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dfgomezp/titulares"
)

var _ titulares.SiteAdapter = (*PublimetroAdapter)(nil)

// publimetroBaseURL is the prefix for relative article links on
// publimetro.co.
const publimetroBaseURL = "https://www.publimetro.co"

// PublimetroAdapter extracts headlines from www.publimetro.co front pages.
//
// Unlike eltiempo, publimetro nests the anchor directly inside the heading
// element, so the anchor supplies both the display text and the href. The
// headings carry the c-heading marker class.
type PublimetroAdapter struct{}

// NewPublimetroAdapter creates a new PublimetroAdapter.
func NewPublimetroAdapter() *PublimetroAdapter {
	return &PublimetroAdapter{}
}

// Source returns the source this adapter handles.
func (a *PublimetroAdapter) Source() titulares.Source {
	return titulares.SourcePublimetro
}

// ExtractHeadlines parses the page and returns headlines in document order.
func (a *PublimetroAdapter) ExtractHeadlines(html string) ([]titulares.Headline, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, titulares.Errorf(titulares.EINVALID, "failed to parse HTML: %v", err)
	}

	var headlines []titulares.Headline
	doc.Find("h2.c-heading, h3.c-heading").Each(func(_ int, heading *goquery.Selection) {
		anchor := heading.Find("a[href]").First()
		if anchor.Length() == 0 {
			return
		}

		href, _ := anchor.Attr("href")
		link := resolveLink(publimetroBaseURL, href)

		headlines = append(headlines, titulares.Headline{
			Category: categoryFrom(link),
			Title:    strings.TrimSpace(anchor.Text()),
			Link:     link,
		})
	})

	return headlines, nil
}
