// Package site renders pages inside the shared layout for the feature modules.
package site

import (
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/cjrsolutions/cjrweb/internal/domain"
	"github.com/cjrsolutions/cjrweb/internal/rendering"
	"github.com/cjrsolutions/cjrweb/web/src/templates/layouts"
)

// Shell wraps page bodies in the document layout.
type Shell struct {
	renderer rendering.Renderer
	company  domain.Company
	baseURL  string
}

// NewShell creates a Shell. baseURL is the public origin used for canonical
// links, e.g. "https://cjrsolutions.pe".
func NewShell(renderer rendering.Renderer, company domain.Company, baseURL string) *Shell {
	return &Shell{renderer: renderer, company: company, baseURL: baseURL}
}

// Company returns the contact details shown across the site.
func (s *Shell) Company() domain.Company {
	return s.company
}

// Page renders body as a full document. The canonical URL is derived from
// the request path.
func (s *Shell) Page(c echo.Context, status int, meta layouts.Meta, body g.Node) error {
	meta.Path = c.Request().URL.Path
	meta.BaseURL = s.baseURL
	chrome := layouts.Chrome{Company: s.company, Path: meta.Path}
	return s.renderer.RenderPage(c, status, layouts.Base(meta, chrome, body))
}

// Fragment renders node alone, for htmx swaps.
func (s *Shell) Fragment(c echo.Context, status int, node g.Node) error {
	return s.renderer.RenderPage(c, status, node)
}
