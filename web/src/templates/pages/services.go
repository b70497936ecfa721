package pages

import (
	"github.com/cjrsolutions/cjrweb/internal/animation"
	"github.com/cjrsolutions/cjrweb/internal/domain"
	c "github.com/cjrsolutions/cjrweb/web/src/templates/components"
	"github.com/cjrsolutions/cjrweb/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// TechnologyBadges are the radio generations listed under the services grid.
var TechnologyBadges = []string{"2G", "3G", "4G", "4.5G", "5G", "LTE"}

// ServicesMeta describes the services listing.
func ServicesMeta() layouts.Meta {
	return layouts.Meta{
		Title:       "Servicios",
		Description: "Servicios especializados de telecomunicaciones: sites, energía, estructuras metálicas, RF y microondas, optimización, fibra óptica, vigilancia y cercos eléctricos.",
	}
}

// Services renders the listing: one card per summary in catalog order.
func Services(summaries []domain.ServiceSummary, company domain.Company) g.Node {
	return h.Div(h.ID("page"), animation.Services().Attr(),
		h.Section(h.Class("bg-gradient-hero text-white pt-32 pb-20"),
			h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
				h.Div(h.Class("services-hero-content"),
					h.Div(h.Class("inline-flex items-center px-4 py-2 bg-primary-500/20 rounded-full text-sm font-medium text-primary-200 mb-6"),
						c.IconNode("radio", "h-4 w-4 mr-2"),
						g.Text("Servicios Especializados"),
					),
					h.H1(h.Class("text-4xl lg:text-5xl font-bold mb-6"),
						g.Text("Soluciones Integrales de"),
						h.Span(h.Class("block"), g.Text("Telecomunicaciones")),
					),
					h.P(h.Class("text-xl text-gray-300 max-w-3xl mx-auto"),
						g.Text("Ofrecemos servicios completos y especializados para satisfacer todas las necesidades de infraestructura de telecomunicaciones con los más altos estándares de calidad."),
					),
				),
			),
		),
		h.Section(h.ID("servicios-grid"), h.Class("py-20 bg-gray-50"),
			h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
				h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
					g.Map(summaries, c.ServiceCard),
				),
			),
		),
		h.Section(h.ID("tecnologias"), h.Class("py-20 bg-white"),
			h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
				sectionHeading("Tecnologías que Dominamos",
					"Trabajamos con las tecnologías más avanzadas del mercado para garantizar soluciones de vanguardia."),
				h.Div(h.Class("grid grid-cols-2 md:grid-cols-4 lg:grid-cols-6 gap-8"),
					g.Map(TechnologyBadges, func(tech string) g.Node {
						return h.Div(h.Class("tech-badge text-center group"),
							h.Div(h.Class("w-20 h-20 bg-gradient-to-br from-primary-100 to-secondary-100 rounded-xl flex items-center justify-center mx-auto mb-4 transition-all duration-300 group-hover:scale-110"),
								h.Span(h.Class("text-xl font-bold text-primary-600"), g.Text(tech)),
							),
							h.P(h.Class("text-sm text-gray-600 font-medium"), g.Text("Tecnología "+tech)),
						)
					}),
				),
			),
		),
		ctaSection("services-cta-content", "¿Necesitas una solución personalizada?",
			"Nuestro equipo de expertos está listo para desarrollar la solución perfecta para tus necesidades específicas.",
			primaryWhiteButton(company.TelURI(), "Llamar Ahora", ""),
			outlineWhiteButton("mailto:"+company.Email, "Enviar Email", c.IconMail),
		),
	)
}
