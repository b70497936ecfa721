// Package marketing serves the informational pages: home, about, the
// services listing and each service's detail page.
package marketing

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/cjrsolutions/cjrweb/internal/module"
	"github.com/cjrsolutions/cjrweb/internal/modules/catalogsync"
	"github.com/cjrsolutions/cjrweb/internal/registry"
	"github.com/cjrsolutions/cjrweb/internal/site"
)

// MarketingModule implements the module.Module interface.
type MarketingModule struct {
	module.BaseModule
	shell *site.Shell
}

// Dependencies holds the services required by the MarketingModule.
type Dependencies struct {
	Shell *site.Shell
}

// New creates a new MarketingModule instance.
func New(deps Dependencies) *MarketingModule {
	return &MarketingModule{shell: deps.Shell}
}

// Name returns the module name.
func (m *MarketingModule) Name() string {
	return "marketing"
}

// Boot registers the page routes. The catalog module must have registered
// the store.
func (m *MarketingModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	h := NewHandler(m.shell, registry.MustGet(reg, catalogsync.StoreKey))

	g.GET("/", h.Home)
	g.GET("/nosotros", h.About)
	g.GET("/servicios", h.Services)
	g.GET("/servicios/:serviceSlug", h.ServiceDetail)

	slog.Debug("Marketing routes registered")
	return nil
}
