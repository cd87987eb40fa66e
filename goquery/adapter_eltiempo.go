package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dfgomezp/titulares"
)

var _ titulares.SiteAdapter = (*ElTiempoAdapter)(nil)

// elTiempoBaseURL is the prefix for relative article links on eltiempo.com.
const elTiempoBaseURL = "https://www.eltiempo.com"

// ElTiempoAdapter extracts headlines from www.eltiempo.com front pages.
//
// Each article lives in an <article> container holding a heading (h2 or h3)
// and an anchor. Promotional blocks reuse the <article> container without
// the full structure; those are skipped, not reported.
type ElTiempoAdapter struct{}

// NewElTiempoAdapter creates a new ElTiempoAdapter.
func NewElTiempoAdapter() *ElTiempoAdapter {
	return &ElTiempoAdapter{}
}

// Source returns the source this adapter handles.
func (a *ElTiempoAdapter) Source() titulares.Source {
	return titulares.SourceElTiempo
}

// ExtractHeadlines parses the page and returns headlines in document order.
func (a *ElTiempoAdapter) ExtractHeadlines(html string) ([]titulares.Headline, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, titulares.Errorf(titulares.EINVALID, "failed to parse HTML: %v", err)
	}

	var headlines []titulares.Headline
	doc.Find("article").Each(func(_ int, article *goquery.Selection) {
		heading := article.Find("h2, h3").First()
		anchor := article.Find("a[href]").First()
		if heading.Length() == 0 || anchor.Length() == 0 {
			return
		}

		href, _ := anchor.Attr("href")
		link := resolveLink(elTiempoBaseURL, href)

		headlines = append(headlines, titulares.Headline{
			Category: categoryFrom(link),
			Title:    strings.TrimSpace(heading.Text()),
			Link:     link,
		})
	})

	return headlines, nil
}
