package server

import (
	"net/http"
	"slices"
	"strings"

	"github.com/cjrsolutions/cjrweb/web"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the routes that belong to no module.
func (s *Server) RegisterRoutes() {
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

// Routes lists the registered routes as sorted "METHOD path" lines, skipping
// echo's internal entries.
func (s *Server) Routes() []string {
	var out []string
	for _, r := range s.E.Routes() {
		if strings.HasPrefix(r.Method, "echo_") {
			continue
		}
		out = append(out, r.Method+" "+r.Path)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
