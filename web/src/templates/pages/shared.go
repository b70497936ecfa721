// Package pages holds the bodies of the site's pages. Each page is a
// gomponents tree wrapped in a #page container carrying its animation batch;
// the shared layout is applied by the caller.
package pages

import (
	"github.com/cjrsolutions/cjrweb/internal/domain"
	c "github.com/cjrsolutions/cjrweb/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// pageHero is the dark gradient banner at the top of the inner pages.
func pageHero(contentClass, title string, lead string, extra ...g.Node) g.Node {
	return h.Section(
		h.Class("relative pt-32 pb-20 bg-gradient-to-br from-slate-900 via-blue-900 to-slate-800 text-white overflow-hidden"),
		h.Div(h.Class("tech-grid absolute inset-0 opacity-10"), h.Aria("hidden", "true")),
		h.Div(h.Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class(contentClass+" text-center max-w-4xl mx-auto"),
				h.H1(h.Class("text-4xl lg:text-6xl font-bold mb-6 leading-tight"), g.Text(title)),
				h.P(h.Class("text-xl lg:text-2xl text-gray-300 leading-relaxed"), g.Text(lead)),
				g.Group(extra),
			),
		),
	)
}

// sectionHeading is the centered title and lead used by content sections.
func sectionHeading(title, lead string) g.Node {
	return h.Div(h.Class("text-center mb-16"),
		h.H2(h.Class("text-3xl lg:text-5xl font-bold text-gray-900 mb-6"), g.Text(title)),
		g.If(lead != "", h.P(h.Class("text-xl text-gray-600 max-w-3xl mx-auto leading-relaxed"), g.Text(lead))),
	)
}

// ctaSection is the closing call to action of a page. It is the #cta
// scroll trigger of every batch.
func ctaSection(contentClass, title, text string, buttons ...g.Node) g.Node {
	return h.Section(h.ID("cta"), h.Class("py-20 bg-gradient-primary text-white"),
		h.Div(h.Class(contentClass+" max-w-4xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			h.H2(h.Class("text-3xl lg:text-5xl font-bold mb-6"), g.Text(title)),
			h.P(h.Class("text-xl text-primary-50 mb-10 leading-relaxed"), g.Text(text)),
			h.Div(h.Class("flex flex-col sm:flex-row gap-4 justify-center"), g.Group(buttons)),
		),
	)
}

func primaryWhiteButton(href, label string, icon domain.IconRef) g.Node {
	return h.A(h.Href(href),
		h.Class("inline-flex items-center justify-center px-8 py-4 bg-white text-primary-600 rounded-lg font-semibold text-lg transition-all duration-200 hover:scale-105 hover:shadow-xl"),
		g.Text(label),
		g.If(icon != "", c.IconNode(icon, "ml-2 h-5 w-5")),
	)
}

func outlineWhiteButton(href, label string, icon domain.IconRef) g.Node {
	return h.A(h.Href(href),
		h.Class("inline-flex items-center justify-center px-8 py-4 border-2 border-white/40 text-white rounded-lg font-semibold text-lg transition-all duration-200 hover:bg-white/10 hover:border-white/60"),
		g.If(icon != "", c.IconNode(icon, "mr-2 h-5 w-5")),
		g.Text(label),
	)
}
