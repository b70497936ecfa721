package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjrsolutions/cjrweb/internal/catalog"
)

// run executes the root command against a MemMapFs and returns its output.
func run(t *testing.T, files map[string][]byte, args ...string) (string, error) {
	t.Helper()

	mem := afero.NewMemMapFs()
	for name, data := range files {
		require.NoError(t, afero.WriteFile(mem, name, data, 0o644))
	}
	previousFs := fs
	fs = mem
	catalogPath = ""
	listOutputFormat = "table"
	t.Cleanup(func() { fs = previousFs })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	c := catalog.MustDefault()

	t.Run("embedded catalog", func(t *testing.T) {
		out, err := run(t, nil, "version")
		require.NoError(t, err)
		want := fmt.Sprintf("cjr-cli v%s\ncatalog: embedded (%d services, %d unlisted pages)\n", version, c.Len(), len(c.Orphans()))
		assert.Equal(t, want, out)
	})

	t.Run("catalog file", func(t *testing.T) {
		out, err := run(t, map[string][]byte{"/srv/catalog.yaml": catalog.Embedded()}, "version", "--catalog", "/srv/catalog.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, fmt.Sprintf("catalog: /srv/catalog.yaml (%d services", c.Len()))
	})

	t.Run("missing catalog is reported", func(t *testing.T) {
		out, err := run(t, nil, "version", "--catalog", "/srv/missing.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "cjr-cli v"+version)
		assert.Contains(t, out, "catalog: /srv/missing.yaml (unavailable:")
	})
}

func TestCatalogList(t *testing.T) {
	out, err := run(t, nil, "catalog", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+catalog.MustDefault().Len())
	assert.Contains(t, lines[2], catalog.MustDefault().Summaries()[0].Slug)
}

func TestCatalogList_JSON(t *testing.T) {
	out, err := run(t, nil, "catalog", "list", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"slug": "rf-microondas"`)
	assert.Contains(t, out, `"count": 9`)
}

func TestCatalogList_UnknownFormat(t *testing.T) {
	_, err := run(t, nil, "catalog", "list", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestCatalogShow(t *testing.T) {
	out, err := run(t, nil, "catalog", "show", "rf-microondas")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Servicios de RF y Microondas")
	assert.Contains(t, out, "process:")

	_, err = run(t, nil, "catalog", "show", "not-a-real-service")
	assert.ErrorContains(t, err, "not found")
}

func TestCatalogValidate(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		out, err := run(t, nil, "catalog", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "embedded catalog is valid")
		assert.Contains(t, out, "Services: 9")
	})

	t.Run("file argument", func(t *testing.T) {
		out, err := run(t, map[string][]byte{"/srv/catalog.yaml": catalog.Embedded()}, "catalog", "validate", "/srv/catalog.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "/srv/catalog.yaml is valid")
	})

	t.Run("broken file", func(t *testing.T) {
		broken := strings.Replace(string(catalog.Embedded()), "slug: rf-microondas", "slug: RF Microondas", 1)
		out, err := run(t, map[string][]byte{"/srv/catalog.yaml": []byte(broken)}, "catalog", "validate", "/srv/catalog.yaml")
		require.Error(t, err)
		assert.Contains(t, out, "Catalog validation failed")
	})
}

func TestEvents(t *testing.T) {
	out, err := run(t, nil, "events")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog.reloaded")
	assert.Contains(t, out, "contact.submitted")
}

func TestRoutes(t *testing.T) {
	t.Setenv("CONTACT_DELIVERY", "mailto")

	out, err := run(t, nil, "routes")
	require.NoError(t, err)
	for _, want := range []string{
		"GET /servicios/:serviceSlug",
		"POST /contacto",
		"GET /contacto/estado",
		"GET /health",
	} {
		assert.Contains(t, out, want)
	}
}

func TestServices(t *testing.T) {
	t.Setenv("CONTACT_DELIVERY", "mailto")

	out, err := run(t, nil, "services")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog.store")
	assert.Contains(t, out, "*catalog.Store")
	assert.Contains(t, out, "contact.sessions")
}
