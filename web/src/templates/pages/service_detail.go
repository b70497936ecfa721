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

// ServiceDetailMeta describes a service's own page. The first gallery image,
// if any, becomes the social preview.
func ServiceDetailMeta(d domain.ServiceDetail) layouts.Meta {
	m := layouts.Meta{Title: d.Title, Description: d.Description}
	if len(d.Images) > 0 {
		m.Image = d.Images[0]
	}
	return m
}

// GalleryAlt is the alt text of the n-th (1-based) gallery image.
func GalleryAlt(title string, n int) string {
	return title + " - Proyecto " + strconv.Itoa(n)
}

// serviceStats are the figures in the detail sidebar.
var serviceStats = []Stat{
	{Icon: c.IconUsers, Value: "100+", Label: "Proyectos"},
	{Icon: c.IconClock, Value: "15+ años", Label: "Experiencia"},
	{Icon: c.IconAward, Value: "99%", Label: "Satisfacción"},
}

// ServiceDetail renders a resolved service record. Every list is rendered in
// stored order.
func ServiceDetail(d domain.ServiceDetail, company domain.Company) g.Node {
	return h.Div(h.ID("page"), animation.ServiceDetail().Attr(),
		h.Section(h.Class("bg-gradient-hero text-white pt-32 pb-20"),
			h.Div(h.Class("service-detail-hero max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
				h.A(h.Href("/servicios"), h.Class("inline-flex items-center text-primary-200 hover:text-white mb-8 transition-colors duration-200"),
					c.IconNode(c.IconArrowLeft, "h-5 w-5 mr-2"),
					g.Text("Volver a Servicios"),
				),
				h.Div(h.Class("flex items-center space-x-6 mb-6"),
					h.Div(h.Class("w-20 h-20 bg-white/10 rounded-2xl flex items-center justify-center"),
						c.IconNode(d.Icon, "h-10 w-10 text-white"),
					),
					h.Div(
						h.H1(h.Class("text-4xl lg:text-5xl font-bold mb-2"), g.Text(d.Title)),
						h.P(h.Class("text-xl text-secondary-200"), g.Text(d.Subtitle)),
					),
				),
				h.P(h.Class("text-xl text-gray-300 max-w-4xl"), g.Text(d.Description)),
			),
		),
		h.Section(h.ID("contenido"), h.Class("py-20 bg-white"),
			h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 grid grid-cols-1 lg:grid-cols-3 gap-12"),
				h.Div(h.Class("lg:col-span-2 space-y-12"),
					h.Div(h.Class("content-section"),
						h.H2(h.Class("text-3xl font-bold text-gray-900 mb-6"), g.Text("Descripción del Servicio")),
						c.Markdown(d.LongDescription, "prose prose-lg text-gray-700 leading-relaxed max-w-none"),
					),
					h.Div(h.Class("content-section"),
						h.H2(h.Class("text-3xl font-bold text-gray-900 mb-6"), g.Text("Servicios Incluidos")),
						h.Ul(h.Class("grid grid-cols-1 md:grid-cols-2 gap-4"),
							g.Map(d.Services, func(item string) g.Node {
								return h.Li(h.Class("included-service flex items-start space-x-3 p-4 bg-gray-50 rounded-lg"),
									c.IconNode(c.IconCheckCircle, "h-5 w-5 text-primary-600 mt-0.5 flex-shrink-0"),
									h.Span(h.Class("text-gray-700"), g.Text(item)),
								)
							}),
						),
					),
					h.Div(h.Class("content-section"),
						h.H2(h.Class("text-3xl font-bold text-gray-900 mb-6"), g.Text("Nuestro Proceso")),
						h.Ol(h.Class("space-y-4"), processSteps(d.Process)),
					),
				),
				h.Aside(h.Class("space-y-8"),
					h.Div(h.Class("content-section bg-gray-50 rounded-xl p-6"),
						h.H3(h.Class("text-xl font-bold text-gray-900 mb-4 flex items-center"),
							c.IconNode(c.IconAward, "h-6 w-6 text-primary-600 mr-2"),
							g.Text("Beneficios Clave"),
						),
						h.Ul(h.Class("space-y-3"),
							g.Map(d.Benefits, func(b string) g.Node {
								return h.Li(h.Class("benefit flex items-start space-x-2"),
									c.IconNode(c.IconTarget, "h-4 w-4 text-primary-600 mt-1 flex-shrink-0"),
									h.Span(h.Class("text-gray-700 text-sm"), g.Text(b)),
								)
							}),
						),
					),
					h.Div(h.Class("content-section bg-white border border-gray-200 rounded-xl p-6"),
						h.H3(h.Class("text-xl font-bold text-gray-900 mb-6"), g.Text("Estadísticas del Servicio")),
						h.Dl(h.Class("space-y-4"),
							g.Map(serviceStats, func(s Stat) g.Node {
								return h.Div(h.Class("flex items-center justify-between"),
									h.Dt(h.Class("flex items-center space-x-2"),
										c.IconNode(s.Icon, "h-5 w-5 text-primary-600"),
										h.Span(h.Class("text-gray-700"), g.Text(s.Label)),
									),
									h.Dd(h.Class("font-bold text-primary-600"), g.Text(s.Value)),
								)
							}),
						),
					),
					h.Div(h.Class("content-section bg-gradient-primary text-white rounded-xl p-6"),
						h.H3(h.Class("text-xl font-bold mb-4"), g.Text("¿Interesado en este servicio?")),
						h.P(h.Class("text-primary-100 mb-6"), g.Text("Contáctanos para una cotización personalizada")),
						h.Div(h.Class("space-y-3"),
							h.A(h.Href(company.TelURI()), h.Class("flex items-center justify-center w-full bg-white text-primary-600 hover:bg-gray-100 py-3 px-4 rounded-lg font-medium transition-colors duration-200"),
								c.IconNode(c.IconPhone, "h-5 w-5 mr-2"), g.Text("Llamar Ahora"),
							),
							h.A(h.Href("mailto:"+company.Email), h.Class("flex items-center justify-center w-full border-2 border-white/30 hover:border-white/50 hover:bg-white/10 py-3 px-4 rounded-lg font-medium transition-all duration-200"),
								c.IconNode(c.IconMail, "h-5 w-5 mr-2"), g.Text("Enviar Email"),
							),
						),
					),
				),
			),
		),
		g.If(len(d.Images) > 0, gallery(d.Title, d.Images)),
		ctaSection("service-cta", "¿Listo para comenzar tu proyecto?",
			"Nuestro equipo de expertos está preparado para brindarte la mejor solución para tus necesidades específicas.",
			primaryWhiteButton("/contacto", "Solicitar Cotización", c.IconCalendar),
			outlineWhiteButton(company.TelURI(), "Llamar Ahora", c.IconPhone),
		),
	)
}

func processSteps(steps []string) g.Node {
	nodes := make([]g.Node, len(steps))
	for i, step := range steps {
		nodes[i] = h.Li(h.Class("process-step flex items-center space-x-4"),
			h.Span(h.Class("w-10 h-10 bg-gradient-primary text-white rounded-full flex items-center justify-center font-bold flex-shrink-0"),
				g.Text(strconv.Itoa(i+1)),
			),
			h.P(h.Class("text-gray-700 font-medium"), g.Text(step)),
		)
	}
	return g.Group(nodes)
}

func gallery(title string, images []string) g.Node {
	items := make([]g.Node, len(images))
	for i, src := range images {
		n := i + 1
		items[i] = h.Figure(h.Class("gallery-item group relative overflow-hidden rounded-xl shadow-lg"),
			h.Img(h.Src(src), h.Alt(GalleryAlt(title, n)), g.Attr("loading", "lazy"),
				h.Class("w-full h-64 object-cover group-hover:scale-110 transition-transform duration-300"),
			),
			h.FigCaption(h.Class("absolute inset-0 bg-gradient-to-t from-black/60 to-transparent opacity-0 group-hover:opacity-100 transition-opacity duration-300 flex items-end p-4 text-white"),
				h.Div(
					h.P(h.Class("font-medium"), g.Text("Proyecto "+strconv.Itoa(n))),
					h.P(h.Class("text-sm text-gray-300"), g.Text(title)),
				),
			),
		)
	}
	return h.Section(h.ID("galeria"), h.Class("py-20 bg-gray-50"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeading("Galería de Proyectos", "Algunos ejemplos de nuestros trabajos realizados"),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"), g.Group(items)),
		),
	)
}
