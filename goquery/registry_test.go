package goquery_test

import (
	"testing"

	"github.com/dfgomezp/titulares"
	"github.com/dfgomezp/titulares/goquery"
	"github.com/dfgomezp/titulares/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("matches source identifier as substring of the object key", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewDefaultRegistry()

		adapter, err := registry.Resolve("headlines/raw/eltiempo-2024-03-05.html")

		require.NoError(t, err)
		assert.Equal(t, titulares.SourceElTiempo, adapter.Source())
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewDefaultRegistry()

		adapter, err := registry.Resolve("headlines/raw/ElTiempo-2024-03-05.HTML")

		require.NoError(t, err)
		assert.Equal(t, titulares.SourceElTiempo, adapter.Source())
	})

	t.Run("resolves publimetro", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewDefaultRegistry()

		adapter, err := registry.Resolve("publimetro-2024-03-05.html")

		require.NoError(t, err)
		assert.Equal(t, titulares.SourcePublimetro, adapter.Source())
	})

	t.Run("unknown identifier returns EUNSUPPORTED", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewDefaultRegistry()

		adapter, err := registry.Resolve("headlines/raw/elespectador-2024-03-05.html")

		require.Error(t, err)
		assert.Nil(t, adapter)
		assert.Equal(t, titulares.EUNSUPPORTED, titulares.ErrorCode(err))
	})

	t.Run("register replaces an existing adapter", func(t *testing.T) {
		t.Parallel()

		replacement := &mock.SiteAdapter{
			SourceFn: func() titulares.Source { return titulares.SourceElTiempo },
		}

		registry := goquery.NewDefaultRegistry()
		registry.Register(titulares.SourceElTiempo, replacement)

		adapter, err := registry.Resolve("eltiempo.html")

		require.NoError(t, err)
		assert.Same(t, replacement, adapter)
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	t.Run("returns sources in registration order", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewDefaultRegistry()

		got := registry.List()

		assert.Equal(t, []titulares.Source{titulares.SourceElTiempo, titulares.SourcePublimetro}, got)
	})

	t.Run("empty registry lists nothing", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry()

		assert.Empty(t, registry.List())
	})
}
