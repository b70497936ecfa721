// Package announcer writes an audit log line for every catalog reload and
// contact submission published on the event bus.
package announcer

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/cjrsolutions/cjrweb/internal/catalog"
	"github.com/cjrsolutions/cjrweb/internal/contact"
	"github.com/cjrsolutions/cjrweb/internal/module"
	"github.com/cjrsolutions/cjrweb/internal/pubsub"
	"github.com/cjrsolutions/cjrweb/internal/registry"
)

// AnnouncerModule turns bus events into audit log records.
type AnnouncerModule struct {
	module.BaseModule
	subscriber pubsub.Subscriber
	logger     *slog.Logger
	cancel     context.CancelFunc
}

// Dependencies holds the services required by the AnnouncerModule.
type Dependencies struct {
	Subscriber pubsub.Subscriber
	// Logger receives the audit records. Nil means slog.Default().
	Logger *slog.Logger
}

// New creates a new AnnouncerModule instance.
func New(deps Dependencies) *AnnouncerModule {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AnnouncerModule{
		subscriber: deps.Subscriber,
		logger:     logger.With("component", "audit"),
	}
}

// Name returns the module name.
func (m *AnnouncerModule) Name() string {
	return "announcer"
}

// Boot subscribes to the audited events.
func (m *AnnouncerModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	ctx, m.cancel = context.WithCancel(ctx)

	if err := pubsub.Subscribe(ctx, m.subscriber, catalog.Reloaded, m.onCatalogReloaded); err != nil {
		m.cancel()
		return err
	}
	if err := pubsub.Subscribe(ctx, m.subscriber, contact.Submitted, m.onContactSubmitted); err != nil {
		m.cancel()
		return err
	}

	slog.Info("AnnouncerModule subscribed", "events", []string{catalog.Reloaded.Name(), contact.Submitted.Name()})
	return nil
}

// Shutdown ends the subscriptions.
func (m *AnnouncerModule) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

func (m *AnnouncerModule) onCatalogReloaded(ctx context.Context, source string, e catalog.ReloadedEvent) error {
	m.logger.Info("catalog reloaded",
		"event", catalog.Reloaded.Name(),
		"path", e.Path,
		"services", e.Services,
		"orphans", len(e.Orphans),
	)
	return nil
}

func (m *AnnouncerModule) onContactSubmitted(ctx context.Context, source string, e contact.SubmittedEvent) error {
	m.logger.Info("contact submitted",
		"event", contact.Submitted.Name(),
		"visitor", e.VisitorID,
		"service", e.Service,
		"delivery", e.Delivery,
		"handed_off", e.HandedOff,
		"at", e.At,
	)
	return nil
}
