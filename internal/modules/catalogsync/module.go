// Package catalogsync loads the service catalog at startup and, when asked
// to, keeps it in sync with its file on disk.
package catalogsync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"

	"github.com/cjrsolutions/cjrweb/internal/catalog"
	"github.com/cjrsolutions/cjrweb/internal/module"
	"github.com/cjrsolutions/cjrweb/internal/pubsub"
	"github.com/cjrsolutions/cjrweb/internal/registry"
)

// StoreKey locates the catalog store in the registry.
var StoreKey = registry.Key[*catalog.Store](registry.CatalogStoreKey)

// CatalogModule owns the catalog store and its file watcher.
type CatalogModule struct {
	module.BaseModule
	fs        afero.Fs
	publisher pubsub.Publisher
	watcher   *catalog.Watcher
}

// Dependencies holds the services required by the CatalogModule.
type Dependencies struct {
	// Fs is where CATALOG_PATH is read from. Nil means the OS file system.
	Fs        afero.Fs
	Publisher pubsub.Publisher
}

// New creates a new CatalogModule instance.
func New(deps Dependencies) *CatalogModule {
	fs := deps.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &CatalogModule{fs: fs, publisher: deps.Publisher}
}

// Name returns the module name.
func (m *CatalogModule) Name() string {
	return "catalog"
}

// Register loads and validates the catalog. A broken catalog stops startup.
func (m *CatalogModule) Register(reg *registry.Registry) error {
	path := reg.Config().GetCatalogPath()

	c, err := catalog.Load(m.fs, path)
	if err != nil {
		return fmt.Errorf("failed to load service catalog: %w", err)
	}
	for _, slug := range c.Orphans() {
		slog.Warn("Service detail has no listing entry and is reachable by URL only", "slug", slug)
	}

	registry.Set(reg, StoreKey, catalog.NewStore(c))

	source := path
	if source == "" {
		source = "embedded"
	}
	slog.Info("Service catalog loaded", "source", source, "services", c.Len())
	return nil
}

// Boot starts the hot reload watcher when CATALOG_WATCH is set.
func (m *CatalogModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	if !cfg.GetCatalogWatch() {
		return nil
	}

	store := registry.MustGet(reg, StoreKey)
	m.watcher = catalog.NewWatcher(m.fs, cfg.GetCatalogPath(), store, m.publisher)
	return m.watcher.Start(ctx)
}

// Shutdown stops the watcher.
func (m *CatalogModule) Shutdown(ctx context.Context) error {
	if m.watcher == nil {
		return nil
	}
	slog.Info("Stopping catalog watcher...")
	return m.watcher.Stop()
}
