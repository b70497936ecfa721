// Package quote serves the contact page and its quote request form.
package quote

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/cjrsolutions/cjrweb/internal/contact"
	"github.com/cjrsolutions/cjrweb/internal/domain"
	"github.com/cjrsolutions/cjrweb/internal/middleware"
	"github.com/cjrsolutions/cjrweb/internal/module"
	"github.com/cjrsolutions/cjrweb/internal/modules/catalogsync"
	"github.com/cjrsolutions/cjrweb/internal/pubsub"
	"github.com/cjrsolutions/cjrweb/internal/registry"
	"github.com/cjrsolutions/cjrweb/internal/site"
	"github.com/cjrsolutions/cjrweb/web/src/templates/pages"
)

// SessionsKey locates the per-visitor form machines in the registry.
var SessionsKey = registry.Key[*contact.Sessions](registry.ContactSessionsKey)

// QuoteModule implements the module.Module interface.
type QuoteModule struct {
	module.BaseModule
	shell     *site.Shell
	submitter domain.ContactSubmitter
	publisher pubsub.Publisher
	sessions  *contact.Sessions
}

// Dependencies holds the services required by the QuoteModule.
type Dependencies struct {
	Shell     *site.Shell
	Submitter domain.ContactSubmitter
	Publisher pubsub.Publisher
}

// New creates a new QuoteModule instance.
func New(deps Dependencies) *QuoteModule {
	return &QuoteModule{
		shell:     deps.Shell,
		submitter: deps.Submitter,
		publisher: deps.Publisher,
	}
}

// Name returns the module name.
func (m *QuoteModule) Name() string {
	return "quote"
}

// Register creates the visitor form sessions.
func (m *QuoteModule) Register(reg *registry.Registry) error {
	cfg := reg.Config()
	opts := contact.Options{SubmitDelay: cfg.GetSubmitDelay(), StatusReset: cfg.GetStatusReset()}
	m.sessions = contact.NewSessions(m.submitter, opts, cfg.GetContactSessionTTL())
	registry.Set(reg, SessionsKey, m.sessions)
	return nil
}

// Boot registers the contact routes and starts evicting idle forms.
func (m *QuoteModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	h := NewHandler(HandlerConfig{
		Shell:     m.shell,
		Store:     registry.MustGet(reg, catalogsync.StoreKey),
		Sessions:  m.sessions,
		Publisher: m.publisher,
		Delivery:  cfg.GetContactDelivery(),
		Options:   contact.Options{SubmitDelay: cfg.GetSubmitDelay(), StatusReset: cfg.GetStatusReset()},
	})

	g.GET(pages.ContactPath, h.Show, middleware.Visitor)
	g.POST(pages.ContactPath, h.Submit, middleware.RateLimiter(cfg.GetRateLimitPerMinute()), middleware.Visitor)
	g.GET(pages.ContactStatePath, h.State, middleware.Visitor)

	m.sessions.Start(ctx)
	slog.Debug("Contact routes registered", "delivery", cfg.GetContactDelivery())
	return nil
}

// Shutdown closes every form, cancelling their pending timers.
func (m *QuoteModule) Shutdown(ctx context.Context) error {
	slog.Info("Closing contact forms...", "open", m.sessions.Len())
	m.sessions.Close()
	return nil
}
