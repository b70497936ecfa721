package pages

import (
	"github.com/cjrsolutions/cjrweb/internal/animation"
	"github.com/cjrsolutions/cjrweb/internal/domain"
	c "github.com/cjrsolutions/cjrweb/web/src/templates/components"
	"github.com/cjrsolutions/cjrweb/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Value is one of the company values.
type Value struct {
	Icon        domain.IconRef
	Title       string
	Description string
}

// Achievement is an illustrated company milestone.
type Achievement struct {
	Icon        domain.IconRef
	Title       string
	Description string
	Image       string
}

// Values are the company values, in display order.
var Values = []Value{
	{Icon: "shield", Title: "Confiabilidad", Description: "Garantizamos la máxima confiabilidad en todos nuestros servicios y soluciones."},
	{Icon: c.IconAward, Title: "Excelencia", Description: "Buscamos la excelencia en cada proyecto, superando las expectativas del cliente."},
	{Icon: c.IconUsers, Title: "Trabajo en Equipo", Description: "Fomentamos la colaboración y el trabajo en equipo para lograr mejores resultados."},
	{Icon: "zap", Title: "Innovación", Description: "Adoptamos las últimas tecnologías para ofrecer soluciones innovadoras."},
	{Icon: c.IconCheckCircle, Title: "Compromiso", Description: "Nos comprometemos con la calidad y el cumplimiento de nuestras promesas."},
	{Icon: c.IconStar, Title: "Satisfacción", Description: "La satisfacción del cliente es nuestra principal prioridad y motivación."},
}

// Achievements are the milestones of the "Nuestros Logros" section.
var Achievements = []Achievement{
	{
		Icon:        c.IconGlobe,
		Title:       "Presencia Regional",
		Description: "Operamos a nivel nacional con proyectos en múltiples regiones del Perú",
		Image:       "https://images.pexels.com/photos/87651/earth-blue-planet-globe-planet-87651.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		Icon:        c.IconTrendingUp,
		Title:       "Ventas +30MM",
		Description: "Hemos superado los 30 millones en ventas anuales gracias a la confianza de nuestros clientes",
		Image:       "https://images.pexels.com/photos/590022/pexels-photo-590022.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		Icon:        c.IconUsers,
		Title:       "+200 Clientes",
		Description: "Más de 200 clientes satisfechos confían en nuestras soluciones especializadas",
		Image:       "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		Icon:        c.IconUsers,
		Title:       "+500 Colaboradores",
		Description: "Contamos con un equipo de más de 500 profesionales altamente capacitados",
		Image:       "https://images.pexels.com/photos/3184292/pexels-photo-3184292.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		Icon:        "building",
		Title:       "Buen Gobierno Corporativo",
		Description: "Mantenemos los más altos estándares de gobierno corporativo y transparencia",
		Image:       "https://images.pexels.com/photos/2041627/pexels-photo-2041627.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
}

// teamRoles are the profiles of the team section.
var teamRoles = []Value{
	{Icon: c.IconUsers, Title: "Ingenieros Especializados", Description: "Profesionales con certificaciones internacionales"},
	{Icon: c.IconAward, Title: "Técnicos Certificados", Description: "Personal técnico con amplia experiencia de campo"},
	{Icon: "shield", Title: "Especialistas en Seguridad", Description: "Expertos en normativas y protocolos de seguridad"},
}

func AboutMeta() layouts.Meta {
	return layouts.Meta{
		Title:       "Nosotros",
		Description: "Conoce a CJR Solutions: misión, visión, valores y el equipo detrás de nuestras soluciones de telecomunicaciones.",
	}
}

// About renders the company page.
func About(company domain.Company) g.Node {
	return h.Div(h.ID("page"), animation.About().Attr(),
		h.Section(h.Class("bg-gradient-hero text-white pt-32 pb-20"),
			h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
				h.Div(h.Class("about-hero-content"),
					h.H1(h.Class("text-4xl lg:text-5xl font-bold mb-6"),
						g.Text("Somos tu socio experto en tecnología y"),
						h.Span(h.Class("block text-secondary-400"), g.Text("telecomunicaciones")),
					),
					h.P(h.Class("text-xl text-gray-300 max-w-4xl mx-auto leading-relaxed"),
						g.Text("Nuestro modelo de negocio se enfoca en ser el socio tecnológico y confiable de nuestros clientes a través de conocimiento especializado, manejo de stakeholders y soluciones innovadoras que aseguren el éxito de sus proyectos."),
					),
				),
			),
		),
		h.Section(h.ID("mision-vision"), h.Class("py-20 bg-white"),
			h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
				sectionHeading("Nuestra Propuesta de Valor", "Comprometidos con la excelencia en cada proyecto que emprendemos"),
				h.Div(h.Class("grid grid-cols-1 lg:grid-cols-2 gap-12"),
					purposeCard(c.IconTarget, "text-primary-600", "Nuestra Misión",
						"Brindar servicios de excelencia y eficiencia, adaptados a las necesidades del cliente, generando confianza y seguridad en cada proyecto que desarrollamos."),
					purposeCard(c.IconEye, "text-secondary-600", "Nuestra Visión",
						"Ser una empresa líder e innovadora en soluciones integrales, cumpliendo con los más altos estándares de calidad y siendo referente en el sector."),
				),
			),
		),
		h.Section(h.ID("valores"), h.Class("py-20 bg-gray-50"),
			h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
				sectionHeading("Nuestros Valores", "Los principios que guían nuestro trabajo y definen nuestra cultura empresarial"),
				h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
					g.Map(Values, func(v Value) g.Node {
						return h.Div(h.Class("value-item bg-white rounded-xl p-8 shadow-md hover:shadow-xl transition-shadow duration-300"),
							h.Div(h.Class("w-12 h-12 bg-primary-100 rounded-lg flex items-center justify-center mb-6"),
								c.IconNode(v.Icon, "h-6 w-6 text-primary-600"),
							),
							h.H3(h.Class("text-xl font-bold text-gray-900 mb-3"), g.Text(v.Title)),
							h.P(h.Class("text-gray-600 leading-relaxed"), g.Text(v.Description)),
						)
					}),
				),
			),
		),
		h.Section(h.ID("logros"), h.Class("py-20 bg-white"),
			h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
				sectionHeading("Nuestros Logros", "Cifras que demuestran nuestro compromiso y crecimiento en el sector"),
				h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
					g.Map(Achievements, achievementCard),
				),
			),
		),
		h.Section(h.ID("equipo"), h.Class("py-20 bg-gray-50"),
			h.Div(h.Class("team-content max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
				h.H2(h.Class("text-3xl lg:text-4xl font-bold text-gray-900 mb-6"), g.Text("Nuestro Equipo")),
				h.P(h.Class("text-xl text-gray-600 max-w-4xl mx-auto mb-12 leading-relaxed"),
					g.Text("Contamos con un equipo multidisciplinario de ingenieros, técnicos y especialistas altamente capacitados, comprometidos con la excelencia y la innovación en cada proyecto."),
				),
				h.Div(h.Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
					g.Map(teamRoles, func(r Value) g.Node {
						return h.Div(h.Class("bg-white rounded-xl p-8 shadow-md"),
							h.Div(h.Class("w-16 h-16 bg-primary-100 rounded-full flex items-center justify-center mx-auto mb-4"),
								c.IconNode(r.Icon, "h-8 w-8 text-primary-600"),
							),
							h.H3(h.Class("text-xl font-bold text-gray-900 mb-2"), g.Text(r.Title)),
							h.P(h.Class("text-gray-600"), g.Text(r.Description)),
						)
					}),
				),
			),
		),
		ctaSection("about-cta-content", "¿Quieres ser parte de nuestro equipo?",
			"Únete a nosotros y forma parte de una empresa líder en telecomunicaciones con oportunidades de crecimiento profesional.",
			primaryWhiteButton("/contacto", "Contáctanos", ""),
			outlineWhiteButton(company.TelURI(), "Llamar Ahora", c.IconPhone),
		),
	)
}

func purposeCard(icon domain.IconRef, iconClass, title, text string) g.Node {
	return h.Div(h.Class("mission-vision-card bg-gradient-to-br from-gray-50 to-white rounded-2xl p-8 border border-gray-100 shadow-lg"),
		h.Div(h.Class("flex items-center space-x-4 mb-6"),
			h.Div(h.Class("w-16 h-16 bg-white rounded-xl shadow flex items-center justify-center"),
				c.IconNode(icon, "h-8 w-8 "+iconClass),
			),
			h.H3(h.Class("text-2xl font-bold text-gray-900"), g.Text(title)),
		),
		h.P(h.Class("text-gray-700 text-lg leading-relaxed"), g.Text(text)),
	)
}

func achievementCard(a Achievement) g.Node {
	return h.Div(h.Class("stat-card group bg-white rounded-xl shadow-lg overflow-hidden"),
		h.Div(h.Class("h-48 overflow-hidden"),
			h.Img(h.Src(a.Image), h.Alt(a.Title), g.Attr("loading", "lazy"),
				h.Class("w-full h-full object-cover group-hover:scale-105 transition-transform duration-300"),
			),
		),
		h.Div(h.Class("p-6"),
			h.Div(h.Class("flex items-center space-x-3 mb-3"),
				h.Div(h.Class("w-10 h-10 bg-primary-100 rounded-lg flex items-center justify-center"),
					c.IconNode(a.Icon, "h-5 w-5 text-primary-600"),
				),
				h.H3(h.Class("text-lg font-bold text-gray-900"), g.Text(a.Title)),
			),
			h.P(h.Class("text-gray-600 leading-relaxed"), g.Text(a.Description)),
		),
	)
}
