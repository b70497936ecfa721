package catalogsync

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjrsolutions/cjrweb/internal/catalog"
	"github.com/cjrsolutions/cjrweb/internal/config"
	"github.com/cjrsolutions/cjrweb/internal/registry"
)

func TestRegister(t *testing.T) {
	t.Run("embedded catalog by default", func(t *testing.T) {
		reg := registry.New(&config.Config{})
		m := New(Dependencies{Fs: afero.NewMemMapFs()})

		require.NoError(t, m.Register(reg))
		store, ok := registry.Get(reg, StoreKey)
		require.True(t, ok)
		assert.Equal(t, catalog.MustDefault().Len(), store.Current().Len())
	})

	t.Run("operator file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/etc/cjr/catalog.yaml", catalog.Embedded(), 0o644))
		reg := registry.New(&config.Config{CatalogPath: "/etc/cjr/catalog.yaml"})

		require.NoError(t, New(Dependencies{Fs: fs}).Register(reg))
		store := registry.MustGet(reg, StoreKey)
		_, ok := store.Current().Resolve("rf-microondas")
		assert.True(t, ok)
	})

	t.Run("missing file stops startup", func(t *testing.T) {
		reg := registry.New(&config.Config{CatalogPath: "/nope.yaml"})
		err := New(Dependencies{Fs: afero.NewMemMapFs()}).Register(reg)
		require.Error(t, err)
		_, ok := registry.Get(reg, StoreKey)
		assert.False(t, ok)
	})

	t.Run("inconsistent catalog stops startup", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		broken := []byte(`
services:
  - icon: antenna
    title: RF
    description: Radio.
    features: [Uno]
    slug: rf
details: {}
`)
		require.NoError(t, afero.WriteFile(fs, "/c.yaml", broken, 0o644))
		reg := registry.New(&config.Config{CatalogPath: "/c.yaml"})
		assert.Error(t, New(Dependencies{Fs: fs}).Register(reg))
	})
}

func TestBootWithoutWatch(t *testing.T) {
	reg := registry.New(&config.Config{})
	m := New(Dependencies{Fs: afero.NewMemMapFs()})
	require.NoError(t, m.Register(reg))

	require.NoError(t, m.Boot(context.Background(), nil, reg))
	assert.Nil(t, m.watcher)
	assert.NoError(t, m.Shutdown(context.Background()))
}
