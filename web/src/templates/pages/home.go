package pages

import (
	"strconv"

	"github.com/cjrsolutions/cjrweb/internal/animation"
	"github.com/cjrsolutions/cjrweb/internal/domain"
	c "github.com/cjrsolutions/cjrweb/web/src/templates/components"
	"github.com/cjrsolutions/cjrweb/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Stat is a headline figure.
type Stat struct {
	Icon  domain.IconRef
	Value string
	Label string
}

// Technology is a technology the company is rolling out, with its progress
// in percent.
type Technology struct {
	Icon        domain.IconRef
	Title       string
	Description string
	Status      string
	Progress    int
}

// HomeStats are the figures shown next to the hero.
var HomeStats = []Stat{
	{Icon: c.IconUsers, Value: "500+", Label: "Proyectos Completados"},
	{Icon: c.IconAward, Value: "15+", Label: "Años de Experiencia"},
	{Icon: "shield", Value: "99.9%", Label: "Confiabilidad"},
	{Icon: "zap", Value: "24/7", Label: "Soporte Técnico"},
}

// Technologies are the cards of the implementation section.
var Technologies = []Technology{
	{
		Icon:        c.IconSmartphone,
		Title:       "Redes 5G",
		Description: "Implementación de la nueva generación de redes móviles con velocidades ultra-rápidas y baja latencia.",
		Status:      "En Implementación",
		Progress:    75,
	},
	{
		Icon:        c.IconWifi,
		Title:       "Wi-Fi 6E",
		Description: "Despliegue de tecnología Wi-Fi de última generación para mayor capacidad y eficiencia.",
		Status:      "Activo",
		Progress:    90,
	},
	{
		Icon:        c.IconSatellite,
		Title:       "IoT Masivo",
		Description: "Conectividad para Internet de las Cosas con soporte para millones de dispositivos.",
		Status:      "En Desarrollo",
		Progress:    60,
	},
	{
		Icon:        c.IconNetwork,
		Title:       "Edge Computing",
		Description: "Procesamiento de datos en el borde de la red para aplicaciones de tiempo real.",
		Status:      "Piloto",
		Progress:    45,
	},
}

// Trends are the sector trends listed on the home page.
var Trends = []string{
	"Expansión de cobertura 5G en zonas urbanas y rurales",
	"Implementación de redes privadas para industrias",
	"Desarrollo de ciudades inteligentes con IoT",
	"Migración hacia infraestructura cloud-native",
	"Integración de inteligencia artificial en redes",
	"Sostenibilidad energética en telecomunicaciones",
}

// statusBadgeClass colors a technology's status badge.
func statusBadgeClass(status string) string {
	switch status {
	case "Activo":
		return "bg-green-100 text-green-700"
	case "En Implementación":
		return "bg-primary-100 text-primary-700"
	case "En Desarrollo":
		return "bg-blue-100 text-blue-700"
	default:
		return "bg-yellow-100 text-yellow-700"
	}
}

// HomeMeta describes the landing page.
func HomeMeta() layouts.Meta {
	return layouts.Meta{
		Title:       "Soluciones Integrales de Telecomunicaciones",
		Description: "Empresa peruana dedicada a brindar soluciones integrales de telecomunicaciones con calidad, eficiencia y compromiso.",
	}
}

// Home renders the landing page.
func Home() g.Node {
	return h.Div(h.ID("page"), animation.Home().Attr(),
		homeHero(),
		homeImplementation(),
		ctaSection("cta-content", "¿Listo para potenciar tu infraestructura?",
			"Contáctanos hoy mismo y descubre cómo podemos ayudarte a alcanzar tus objetivos con nuestras soluciones especializadas.",
			primaryWhiteButton("/contacto", "Solicitar Cotización", c.IconArrowRight),
		),
	)
}

func homeHero() g.Node {
	return h.Section(
		h.Class("relative min-h-screen flex items-center justify-center overflow-hidden bg-gradient-to-br from-slate-900 via-blue-900 to-slate-800 pt-16"),
		h.Div(h.Class("absolute inset-0 overflow-hidden"), h.Aria("hidden", "true"),
			h.Div(h.Class("tech-grid absolute inset-0 opacity-10")),
			h.Div(h.Class("fiber-line absolute top-1/4 left-0 w-full h-0.5 bg-gradient-to-r from-transparent via-primary-400 to-transparent")),
			h.Div(h.Class("fiber-line absolute top-1/2 left-0 w-full h-0.5 bg-gradient-to-r from-transparent via-secondary-400 to-transparent")),
			h.Div(h.Class("fiber-line absolute top-3/4 left-0 w-full h-0.5 bg-gradient-to-r from-transparent via-primary-400 to-transparent")),
			h.Div(h.Class("network-node absolute top-1/4 left-1/4 w-3 h-3 bg-primary-400 rounded-full")),
			h.Div(h.Class("network-node absolute top-1/2 right-1/4 w-3 h-3 bg-secondary-400 rounded-full")),
			h.Div(h.Class("network-node absolute bottom-1/4 left-1/3 w-3 h-3 bg-primary-400 rounded-full")),
		),
		h.Div(h.Class("relative z-10 max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-20 text-white"),
			h.Div(h.Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
				h.Div(h.Class("text-center lg:text-left space-y-8"),
					h.Div(h.Class("hero-badge inline-flex items-center px-4 py-2 bg-white/10 backdrop-blur-sm rounded-full text-sm font-medium"),
						c.IconNode("radio", "h-4 w-4 mr-2"),
						g.Text("Líder en Telecomunicaciones"),
					),
					h.Div(h.Class("hero-logo flex justify-center lg:justify-start"), c.AnimatedLogo(c.LogoExtraLarge, true, "text-white")),
					h.H1(h.Class("hero-title text-4xl lg:text-6xl font-bold leading-tight"),
						h.Span(h.Class("hero-subtitle block text-secondary-400 mb-2"), g.Text("Soluciones Integrales")),
						h.Span(h.Class("hero-subtitle block text-white"), g.Text("de Telecomunicaciones")),
					),
					h.P(h.Class("hero-description text-xl lg:text-2xl text-gray-300 leading-relaxed max-w-2xl mx-auto lg:mx-0"),
						g.Text("Empresa peruana dedicada a brindar soluciones integrales de telecomunicaciones con calidad, eficiencia y compromiso."),
					),
					h.Div(h.Class("hero-buttons flex flex-col sm:flex-row gap-4 justify-center lg:justify-start"),
						h.A(h.Href("/servicios"), h.Class("inline-flex items-center px-8 py-4 bg-gradient-primary hover:bg-gradient-primary-dark rounded-lg font-semibold text-lg transition-all duration-200 hover:scale-105 justify-center"),
							g.Text("Ver Servicios"), c.IconNode(c.IconArrowRight, "ml-2 h-5 w-5"),
						),
						h.A(h.Href("/contacto"), h.Class("inline-flex items-center px-8 py-4 border-2 border-white/30 hover:border-white/50 hover:bg-white/10 rounded-lg font-semibold text-lg transition-all duration-200 justify-center text-white"),
							g.Text("Contactar"),
						),
					),
				),
				h.Div(h.ID("stats"), h.Class("hero-stats grid grid-cols-2 gap-6"),
					g.Map(HomeStats, func(s Stat) g.Node {
						return h.Div(h.Class("stat-item bg-white/10 backdrop-blur-sm rounded-2xl p-6 text-center border border-white/10"),
							h.Div(h.Class("w-16 h-16 bg-gradient-primary rounded-xl flex items-center justify-center mx-auto mb-4"),
								c.IconNode(s.Icon, "h-8 w-8 text-white"),
							),
							h.Div(h.Class("text-3xl font-bold mb-1"), g.Text(s.Value)),
							h.Div(h.Class("text-sm text-gray-300"), g.Text(s.Label)),
						)
					}),
				),
			),
		),
	)
}

func homeImplementation() g.Node {
	return h.Section(
		h.ID("implementacion"),
		h.Class("relative py-20 overflow-hidden bg-gradient-to-br from-slate-50 via-white to-gray-100"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("implementation-content text-center mb-16"),
				h.Div(h.Class("inline-flex items-center px-4 py-2 bg-primary-100 text-primary-700 rounded-full text-sm font-medium mb-6"),
					c.IconNode(c.IconTrendingUp, "h-4 w-4 mr-2"),
					g.Text("Tecnologías en Implementación"),
				),
				h.H2(h.Class("text-4xl lg:text-6xl font-bold text-gray-900 mb-6"),
					g.Text("El Futuro de las"),
					h.Span(h.Class("block text-primary-600"), g.Text("Telecomunicaciones")),
				),
				h.P(h.Class("text-xl lg:text-2xl text-gray-600 max-w-4xl mx-auto leading-relaxed mb-12"),
					g.Text("Estamos a la vanguardia implementando las tecnologías más avanzadas que están transformando el panorama de las telecomunicaciones en el Perú y el mundo."),
				),
			),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8 mb-20"),
				g.Map(Technologies, technologyCard),
			),
			h.Div(h.Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
				h.Div(
					h.H3(h.Class("text-3xl font-bold text-gray-900 mb-6"), g.Text("Tendencias del Sector")),
					h.P(h.Class("text-lg text-gray-600 mb-8 leading-relaxed"),
						g.Text("El sector de telecomunicaciones está experimentando una transformación sin precedentes. Estas son las principales tendencias que estamos implementando:"),
					),
					h.Ul(h.Class("space-y-4"),
						g.Map(Trends, func(t string) g.Node {
							return h.Li(h.Class("trend-item flex items-start space-x-3"),
								h.Span(h.Class("w-6 h-6 bg-primary-100 rounded-full flex items-center justify-center flex-shrink-0 mt-0.5"),
									c.IconNode(c.IconCheckCircle, "h-4 w-4 text-primary-600"),
								),
								h.Span(h.Class("text-gray-700 leading-relaxed"), g.Text(t)),
							)
						}),
					),
				),
				h.Div(h.Class("bg-gradient-primary rounded-2xl p-8 text-white shadow-2xl"),
					h.Div(h.Class("flex items-center space-x-4 mb-6"),
						h.Div(h.Class("w-16 h-16 bg-white/20 rounded-xl flex items-center justify-center"), c.IconNode(c.IconGlobe, "h-8 w-8 text-white")),
						h.Div(
							h.H4(h.Class("text-2xl font-bold"), g.Text("Impacto Global")),
							h.P(h.Class("text-primary-100"), g.Text("Conectando el futuro")),
						),
					),
					h.P(h.Class("text-lg text-primary-50 mb-8 leading-relaxed"),
						g.Text("Nuestras implementaciones no solo transforman la conectividad local, sino que contribuyen al desarrollo tecnológico global del país."),
					),
					h.A(h.Href("/servicios"), h.Class("inline-flex items-center px-8 py-4 bg-white text-primary-600 rounded-lg font-semibold text-lg transition-all duration-200 hover:scale-105"),
						g.Text("Descubre Nuestras Soluciones"), c.IconNode(c.IconArrowRight, "ml-2 h-5 w-5"),
					),
				),
			),
		),
	)
}

func technologyCard(t Technology) g.Node {
	progress := strconv.Itoa(t.Progress)
	return h.Div(h.Class("tech-card bg-white rounded-2xl p-8 shadow-lg border border-gray-100 hover:shadow-2xl transition-all duration-300"),
		h.Div(h.Class("flex items-center justify-between mb-6"),
			h.Div(h.Class("w-16 h-16 bg-gradient-primary rounded-xl flex items-center justify-center"), c.IconNode(t.Icon, "h-8 w-8 text-white")),
			h.Span(h.Class("px-3 py-1 rounded-full text-xs font-semibold "+statusBadgeClass(t.Status)), g.Text(t.Status)),
		),
		h.H3(h.Class("text-xl font-bold text-gray-900 mb-4"), g.Text(t.Title)),
		h.P(h.Class("text-gray-600 mb-6 leading-relaxed"), g.Text(t.Description)),
		h.Div(h.Class("space-y-2"),
			h.Div(h.Class("flex justify-between text-sm"),
				h.Span(h.Class("text-gray-500"), g.Text("Progreso")),
				h.Span(h.Class("font-medium text-primary-600"), g.Text(progress+"%")),
			),
			h.Div(h.Class("w-full bg-gray-200 rounded-full h-2"),
				h.Div(h.Class("bg-gradient-primary h-2 rounded-full"), h.Style("width: "+progress+"%")),
			),
		),
	)
}
