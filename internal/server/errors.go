package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	appmiddleware "github.com/cjrsolutions/cjrweb/internal/middleware"
	"github.com/cjrsolutions/cjrweb/internal/site"
	"github.com/cjrsolutions/cjrweb/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the central HTTPErrorHandler. Known HTTP errors
// get echo's default response, except 404 which renders the not-found page
// when a shell is available. Anything else is logged with a stack trace and
// answered with 500.
func setupErrorHandling(e *echo.Echo, shell *site.Shell) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := appmiddleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Internal != nil {
				logger.Warn("HTTP error", "status", he.Code, "error", he.Internal, "path", c.Request().URL.Path)
			}
			if he.Code == http.StatusNotFound && shell != nil && c.Request().Method != http.MethodHead {
				renderErr := shell.Page(c, http.StatusNotFound, pages.NotFoundMeta(), pages.NotFound())
				if renderErr == nil {
					return
				}
				logger.Error("Failed to render not found page", "error", renderErr)
			}
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		e.DefaultHTTPErrorHandler(err, c)
	}
}
