package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NavLink is one entry of the main navigation.
type NavLink struct {
	Label string
	Path  string
}

// MainNav lists the site's sections in display order.
var MainNav = []NavLink{
	{Label: "Inicio", Path: "/"},
	{Label: "Nosotros", Path: "/nosotros"},
	{Label: "Servicios", Path: "/servicios"},
	{Label: "Contacto", Path: "/contacto"},
}

// IsActive reports whether link should be highlighted for currentPath.
// Section links stay active on their sub-pages.
func (l NavLink) IsActive(currentPath string) bool {
	if l.Path == "/" {
		return currentPath == "/"
	}
	return currentPath == l.Path || strings.HasPrefix(currentPath, l.Path+"/")
}

// Navbar renders the fixed top navigation.
func Navbar(currentPath string) g.Node {
	return h.Nav(
		h.Class("fixed top-0 inset-x-0 z-50 bg-white/95 backdrop-blur shadow-sm"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("flex justify-between items-center h-16"),
				h.A(h.Href("/"), h.Aria("label", "CJR Solutions"), AnimatedLogo(LogoSmall, true, "text-gray-900")),
				h.Button(
					h.Type("button"),
					h.Class("md:hidden p-2 text-gray-700"),
					h.Aria("label", "Abrir menú"),
					g.Attr("data-nav-toggle", ""),
					IconNode(IconMenu, "h-6 w-6"),
				),
				h.Ul(
					h.Class("nav-links hidden md:flex items-center space-x-8"),
					g.Attr("data-nav-menu", ""),
					g.Map(MainNav, func(l NavLink) g.Node {
						class := "font-medium transition-colors duration-200 text-gray-700 hover:text-primary-600"
						if l.IsActive(currentPath) {
							class = "font-medium text-primary-600 border-b-2 border-primary-600"
						}
						return h.Li(h.A(
							h.Href(l.Path),
							h.Class(class),
							g.If(l.IsActive(currentPath), h.Aria("current", "page")),
							g.Text(l.Label),
						))
					}),
				),
			),
		),
	)
}
