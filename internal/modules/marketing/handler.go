package marketing

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cjrsolutions/cjrweb/internal/catalog"
	"github.com/cjrsolutions/cjrweb/internal/middleware"
	"github.com/cjrsolutions/cjrweb/internal/site"
	"github.com/cjrsolutions/cjrweb/web/src/templates/pages"
)

// ServicesPath is where unknown service slugs are sent.
const ServicesPath = "/servicios"

// Handler serves the informational pages.
type Handler struct {
	shell *site.Shell
	store *catalog.Store
}

// NewHandler creates a Handler reading the catalog from store.
func NewHandler(shell *site.Shell, store *catalog.Store) *Handler {
	return &Handler{shell: shell, store: store}
}

func (h *Handler) Home(c echo.Context) error {
	return h.shell.Page(c, http.StatusOK, pages.HomeMeta(), pages.Home())
}

func (h *Handler) About(c echo.Context) error {
	return h.shell.Page(c, http.StatusOK, pages.AboutMeta(), pages.About(h.shell.Company()))
}

// Services renders the listing of the catalog in effect.
func (h *Handler) Services(c echo.Context) error {
	summaries := h.store.Current().Summaries()
	return h.shell.Page(c, http.StatusOK, pages.ServicesMeta(), pages.Services(summaries, h.shell.Company()))
}

// ServiceDetail renders the service named by the slug, or redirects to the
// listing when no such service exists.
func (h *Handler) ServiceDetail(c echo.Context) error {
	slug := c.Param("serviceSlug")

	detail, ok := h.store.Current().Resolve(slug)
	if !ok {
		middleware.FromContext(c.Request().Context()).Debug("Unknown service slug, redirecting to listing", "slug", slug)
		return c.Redirect(http.StatusFound, ServicesPath)
	}
	return h.shell.Page(c, http.StatusOK, pages.ServiceDetailMeta(detail), pages.ServiceDetail(detail, h.shell.Company()))
}
