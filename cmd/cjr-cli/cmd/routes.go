package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

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

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the HTTP routes the server registers",
	Long: `Boot every module against an unstarted server and print the resulting
routes. Nothing listens and no request is served.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer quietLogs()()

		wired, err := wireApp(cmd.Context())
		if err != nil {
			return err
		}
		for _, r := range wired.routes {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

// quietLogs silences the default logger while modules boot and returns the
// function that restores it.
func quietLogs() func() {
	previous := slog.Default()
	slog.SetDefault(logging.Build(io.Discard, "text", "error"))
	return func() { slog.SetDefault(previous) }
}

// wiring is what an unstarted application exposes for inspection.
type wiring struct {
	routes   []string
	services []registry.Service
}

// wireApp wires the application the way cmd/server does, without starting
// it, and returns its route table and registry contents.
func wireApp(parent context.Context) (wiring, error) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cfg := config.FromEnv()
	cfg.CatalogPath = catalogPath
	cfg.CatalogWatch = false

	submitter, err := email.NewContactSubmitter(cfg)
	if err != nil {
		return wiring{}, err
	}

	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	renderer := rendering.NewUniversalRenderer()
	shell := site.NewShell(renderer, domain.DefaultCompany(cfg.ContactAddress, cfg.ContactPhones...), cfg.AppBaseURL)

	s, err := server.New(server.Dependencies{Config: cfg, Renderer: renderer, Shell: shell})
	if err != nil {
		return wiring{}, err
	}

	mods := app.NewModules(app.Dependencies{
		Publisher:  bus,
		Subscriber: bus,
		Shell:      shell,
		Submitter:  submitter,
		Fs:         fs,
	})
	reg := registry.New(cfg)
	if err := s.InitModules(ctx, mods, reg); err != nil {
		return wiring{}, err
	}
	defer s.Shutdown(ctx)
	s.RegisterRoutes()

	return wiring{routes: s.Routes(), services: reg.Services()}, nil
}
