package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cjrsolutions/cjrweb/internal/app"
	"github.com/cjrsolutions/cjrweb/internal/config"
	"github.com/cjrsolutions/cjrweb/internal/domain"
	"github.com/cjrsolutions/cjrweb/internal/email"
	"github.com/cjrsolutions/cjrweb/internal/logging"
	"github.com/cjrsolutions/cjrweb/internal/pubsub"
	"github.com/cjrsolutions/cjrweb/internal/registry"
	"github.com/cjrsolutions/cjrweb/internal/rendering"
	"github.com/cjrsolutions/cjrweb/internal/server"
	"github.com/cjrsolutions/cjrweb/internal/site"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// config.New loads .env, so the logger can see LOG_FORMAT and LOG_LEVEL.
	cfg := config.New()
	logging.New()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	ps := pubsub.NewWatermillBridge()
	defer ps.Close()

	submitter, err := email.NewContactSubmitter(cfg)
	if err != nil {
		return err
	}

	renderer := rendering.NewUniversalRenderer()
	company := domain.DefaultCompany(cfg.GetContactAddress(), cfg.GetContactPhones()...)
	shell := site.NewShell(renderer, company, cfg.GetAppBaseURL())

	s, err := server.New(server.Dependencies{
		Config:   cfg,
		Renderer: renderer,
		Shell:    shell,
	})
	if err != nil {
		return err
	}

	modules := app.NewModules(app.Dependencies{
		Publisher:  ps,
		Subscriber: ps,
		Shell:      shell,
		Submitter:  submitter,
	})
	if err := s.InitModules(ctx, modules, registry.New(cfg)); err != nil {
		return err
	}
	s.RegisterRoutes()

	return s.Start(ctx)
}
