package goquery_test

import (
	"testing"

	"github.com/dfgomezp/titulares"
	"github.com/dfgomezp/titulares/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElTiempoAdapter_ExtractHeadlines(t *testing.T) {
	t.Parallel()

	adapter := goquery.NewElTiempoAdapter()

	t.Run("extracts title link and category from article nodes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<article>
				<h2>Reforma pensional avanza</h2>
				<a href="/politica/reforma-pensional-avanza-12345">leer</a>
			</article>
			<article>
				<h3>Resultados de la fecha</h3>
				<a href="https://www.eltiempo.com/deportes/resultados-fecha-9">leer</a>
			</article>
		</body></html>`

		got, err := adapter.ExtractHeadlines(html)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, titulares.Headline{
			Category: "politica",
			Title:    "Reforma pensional avanza",
			Link:     "https://www.eltiempo.com/politica/reforma-pensional-avanza-12345",
		}, got[0])
		assert.Equal(t, titulares.Headline{
			Category: "deportes",
			Title:    "Resultados de la fecha",
			Link:     "https://www.eltiempo.com/deportes/resultados-fecha-9",
		}, got[1])
	})

	t.Run("relative href is resolved against the base URL", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>Mundo</h2><a href="/mundo/articulo-1">x</a></article>`

		got, err := adapter.ExtractHeadlines(html)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "https://www.eltiempo.com/mundo/articulo-1", got[0].Link)
		assert.Equal(t, "mundo", got[0].Category)
	})

	t.Run("link with no path segments has empty category", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>Portada</h2><a href="https://x.com">x</a></article>`

		got, err := adapter.ExtractHeadlines(html)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "", got[0].Category)
	})

	t.Run("article without a link is skipped", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<article><h2>Sin enlace</h2></article>
			<article><h2>Con enlace</h2><a href="/cultura/nota-2">x</a></article>
		</body>`

		got, err := adapter.ExtractHeadlines(html)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Con enlace", got[0].Title)
	})

	t.Run("article without a heading is skipped", func(t *testing.T) {
		t.Parallel()

		html := `<article><a href="/promo">promo</a></article>`

		got, err := adapter.ExtractHeadlines(html)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("document with no articles yields an empty batch", func(t *testing.T) {
		t.Parallel()

		got, err := adapter.ExtractHeadlines("<html><body><p>nada</p></body></html>")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("heading text is trimmed", func(t *testing.T) {
		t.Parallel()

		html := `<article><h2>
			Espacios alrededor
		</h2><a href="/vida/nota">x</a></article>`

		got, err := adapter.ExtractHeadlines(html)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Espacios alrededor", got[0].Title)
	})
}
