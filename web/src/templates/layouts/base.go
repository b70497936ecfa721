package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/cjrsolutions/cjrweb/internal/domain"
	"github.com/cjrsolutions/cjrweb/internal/view"
	"github.com/cjrsolutions/cjrweb/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Script and stylesheet locations.
const (
	HTMXScript          = "https://unpkg.com/htmx.org@2.0.4"
	GSAPScript          = "https://cdn.jsdelivr.net/npm/gsap@3.12.5/dist/gsap.min.js"
	ScrollTriggerScript = "https://cdn.jsdelivr.net/npm/gsap@3.12.5/dist/ScrollTrigger.min.js"
	TailwindScript      = "https://cdn.tailwindcss.com"
)

// Chrome is what the layout needs besides the page itself.
type Chrome struct {
	Company domain.Company
	// Path is the current request path, used to highlight the navigation.
	Path string
}

// Base wraps a page body in the document shell: head with SEO tags,
// navigation, footer and scripts.
func Base(meta Meta, chrome Chrome, body g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html>\n<html lang=\"es\">"); err != nil {
			return err
		}
		if err := head(meta).Render(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<body class="min-h-screen bg-slate-50">`); err != nil {
			return err
		}

		shell := g.Group([]g.Node{
			components.Navbar(chrome.Path),
			h.Main(h.ID("contenido-principal"), body),
			components.Footer(chrome.Company),
			h.Script(h.Src("/static/js/site.js"), h.Defer()),
		})
		if err := view.AdaptGomponentToTempl(shell).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func head(meta Meta) g.Node {
	canonical := meta.Canonical()
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(meta.FullTitle())),
		h.Meta(h.Name("description"), h.Content(meta.Summary())),
		h.Link(h.Rel("canonical"), h.Href(canonical)),
		h.Meta(g.Attr("property", "og:type"), h.Content("website")),
		h.Meta(g.Attr("property", "og:site_name"), h.Content(SiteName)),
		h.Meta(g.Attr("property", "og:title"), h.Content(meta.FullTitle())),
		h.Meta(g.Attr("property", "og:description"), h.Content(meta.Summary())),
		h.Meta(g.Attr("property", "og:url"), h.Content(canonical)),
		g.If(meta.Image != "", h.Meta(g.Attr("property", "og:image"), h.Content(meta.Image))),
		h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
		h.Script(h.Src(TailwindScript)),
		h.Script(h.Src("/static/js/tailwind.config.js")),
		h.Script(h.Src(HTMXScript), h.Defer()),
		h.Script(h.Src(GSAPScript), h.Defer()),
		h.Script(h.Src(ScrollTriggerScript), h.Defer()),
	)
}
