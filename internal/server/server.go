package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/cjrsolutions/cjrweb/internal/config"
	appmiddleware "github.com/cjrsolutions/cjrweb/internal/middleware"
	"github.com/cjrsolutions/cjrweb/internal/module"
	"github.com/cjrsolutions/cjrweb/internal/registry"
	"github.com/cjrsolutions/cjrweb/internal/rendering"
	"github.com/cjrsolutions/cjrweb/internal/site"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Dependencies holds everything New needs to build a Server.
type Dependencies struct {
	Config   config.Provider
	Renderer rendering.Renderer
	Shell    *site.Shell
	// Echo is optional. Tests may pass their own instance.
	Echo *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     config.Provider
	shell   *site.Shell
	modules []module.Module
}

// New creates a new Server instance with the middleware chain, session store
// and error handling in place. Routes are added by InitModules and
// RegisterRoutes.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Shell == nil {
		return nil, errors.New("server: shell is required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.RequestLogger())
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	setupErrorHandling(e, deps.Shell)

	return &Server{
		E:     e,
		Cfg:   deps.Config,
		shell: deps.Shell,
	}, nil
}

// InitModules registers every module's services and then boots them in
// order. The modules are remembered for Shutdown.
func (s *Server) InitModules(ctx context.Context, mods []module.Module, reg *registry.Registry) error {
	if err := module.RegisterAll(mods, reg); err != nil {
		return err
	}
	s.modules = mods
	return module.BootAll(ctx, s.E, mods, reg)
}
