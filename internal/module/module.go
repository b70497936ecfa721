package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cjrsolutions/cjrweb/internal/registry"
	"github.com/labstack/echo/v4"
)

// Module defines the contract for a self-contained application feature.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register is called during application startup to register the module's
	// services with the central registry.
	Register(reg *registry.Registry) error

	// Boot is called after all modules have registered their services.
	// This is the phase for setting up routes and starting background processes.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown is called during graceful application shutdown.
	// This is the phase for cleaning up resources and stopping background processes.
	Shutdown(ctx context.Context) error
}

// BaseModule provides default no-op implementations for Module methods.
// Modules can embed this to avoid implementing methods they don't need.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}

// RegisterAll runs Register on every module in order and stops at the first
// failure.
func RegisterAll(mods []Module, reg *registry.Registry) error {
	for _, m := range mods {
		if err := m.Register(reg); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	return nil
}

// BootAll runs Boot on every module in order with a group rooted at "".
func BootAll(ctx context.Context, e *echo.Echo, mods []Module, reg *registry.Registry) error {
	for _, m := range mods {
		if err := m.Boot(ctx, e.Group(""), reg); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("module booted", "module", m.Name())
	}
	return nil
}

// ShutdownAll runs Shutdown in reverse boot order. Every module is given the
// chance to stop; the errors are joined.
func ShutdownAll(ctx context.Context, mods []Module) error {
	var errs []error
	for i := len(mods) - 1; i >= 0; i-- {
		if err := mods[i].Shutdown(ctx); err != nil {
			slog.Error("module shutdown failed", "module", mods[i].Name(), "error", err)
			errs = append(errs, fmt.Errorf("shutdown module %s: %w", mods[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}
