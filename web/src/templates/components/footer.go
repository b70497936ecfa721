package components

import (
	"github.com/cjrsolutions/cjrweb/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FooterServices are the highlighted services linked from the footer.
var FooterServices = []NavLink{
	{Label: "Mantenimiento de Sites", Path: ServiceDetailPath("mantenimiento-construccion-sites")},
	{Label: "Sistemas de Energía", Path: ServiceDetailPath("sistemas-energia")},
	{Label: "RF y Microondas", Path: ServiceDetailPath("rf-microondas")},
	{Label: "Optimización de Redes", Path: ServiceDetailPath("optimizacion-redes")},
	{Label: "Sistemas de Vigilancia", Path: ServiceDetailPath("sistemas-vigilancia")},
}

// Copyright is the footer's closing line.
const Copyright = "© 2024 CJR Solutions Enterprise S.A.C. Todos los derechos reservados."

// Footer renders the site footer with the company's details.
func Footer(c domain.Company) g.Node {
	return h.Footer(
		h.Class("bg-gradient-to-br from-neutral-900 via-neutral-800 to-neutral-900 text-white"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12"),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
				h.Div(h.Class("col-span-1 lg:col-span-2"),
					h.Div(h.Class("mb-4"), AnimatedLogo(LogoLarge, true, "text-white")),
					h.P(h.Class("text-gray-300 mb-4 max-w-md"), g.Text(c.Blurb)),
					h.Div(h.Class("flex space-x-4"),
						roundLink("mailto:"+c.Email, "Correo", IconMail),
						roundLink(c.TelURI(), "Teléfono", IconPhone),
					),
				),
				h.Div(
					h.H3(h.Class("text-lg font-semibold mb-4"), g.Text("Servicios")),
					h.Ul(h.Class("space-y-2 text-gray-300"),
						g.Map(FooterServices, func(l NavLink) g.Node {
							return h.Li(h.A(h.Href(l.Path), h.Class("hover:text-white transition-colors"), g.Text(l.Label)))
						}),
					),
				),
				h.Div(
					h.H3(h.Class("text-lg font-semibold mb-4"), g.Text("Contacto")),
					h.Div(h.Class("space-y-3 text-gray-300"),
						h.Div(h.Class("flex items-start space-x-3"),
							IconNode(IconMapPin, "h-5 w-5 text-primary-400 mt-0.5 flex-shrink-0"),
							h.Span(h.Class("text-sm"), Lines(c.AddressLines)),
						),
						h.Div(h.Class("flex items-center space-x-3"),
							IconNode(IconPhone, "h-5 w-5 text-primary-400 flex-shrink-0"),
							h.Div(h.Class("text-sm"), g.Map(c.Phones, func(p string) g.Node { return h.Div(g.Text(p)) })),
						),
						h.Div(h.Class("flex items-center space-x-3"),
							IconNode(IconMail, "h-5 w-5 text-primary-400 flex-shrink-0"),
							h.Span(h.Class("text-sm"), g.Text(c.Email)),
						),
					),
				),
			),
			h.Div(h.Class("border-t border-gray-800 mt-8 pt-8 text-center text-gray-400"),
				h.P(g.Text(Copyright)),
			),
		),
	)
}

func roundLink(href, label string, icon domain.IconRef) g.Node {
	return h.A(
		h.Href(href),
		h.Aria("label", label),
		h.Class("w-10 h-10 bg-gradient-primary rounded-full flex items-center justify-center hover:bg-gradient-primary-dark transition-all duration-200 hover:scale-110"),
		IconNode(icon, "h-5 w-5"),
	)
}

// Lines joins text lines with <br> elements.
func Lines(ls []string) g.Node {
	nodes := make([]g.Node, 0, len(ls)*2)
	for i, l := range ls {
		if i > 0 {
			nodes = append(nodes, h.Br())
		}
		nodes = append(nodes, g.Text(l))
	}
	return g.Group(nodes)
}
