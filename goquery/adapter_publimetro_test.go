package goquery_test

import (
	"testing"

	"github.com/dfgomezp/titulares"
	"github.com/dfgomezp/titulares/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublimetroAdapter_ExtractHeadlines(t *testing.T) {
	t.Parallel()

	adapter := goquery.NewPublimetroAdapter()

	t.Run("takes both title and link from the nested anchor", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h2 class="c-heading"><a href="/noticias/caso-judicial-2024/">Caso judicial del año</a></h2>
			<h3 class="c-heading"><a href="https://www.publimetro.co/deportes/final-copa/">Final de la copa</a></h3>
		</body></html>`

		got, err := adapter.ExtractHeadlines(html)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, titulares.Headline{
			Category: "noticias",
			Title:    "Caso judicial del año",
			Link:     "https://www.publimetro.co/noticias/caso-judicial-2024/",
		}, got[0])
		assert.Equal(t, titulares.Headline{
			Category: "deportes",
			Title:    "Final de la copa",
			Link:     "https://www.publimetro.co/deportes/final-copa/",
		}, got[1])
	})

	t.Run("heading without a marker class is ignored", func(t *testing.T) {
		t.Parallel()

		html := `<h2><a href="/entretenimiento/nota/">Sin marcador</a></h2>`

		got, err := adapter.ExtractHeadlines(html)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("heading without an anchor is skipped", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<h2 class="c-heading">Sin enlace</h2>
			<h2 class="c-heading"><a href="/mundo/nota/">Con enlace</a></h2>
		</body>`

		got, err := adapter.ExtractHeadlines(html)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Con enlace", got[0].Title)
	})

	t.Run("document with no matching nodes yields an empty batch", func(t *testing.T) {
		t.Parallel()

		got, err := adapter.ExtractHeadlines("<html><body></body></html>")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
