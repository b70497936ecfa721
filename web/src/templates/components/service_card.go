package components

import (
	"fmt"

	"github.com/cjrsolutions/cjrweb/internal/animation"
	"github.com/cjrsolutions/cjrweb/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// MaxCardFeatures is how many features a card shows before summarizing.
const MaxCardFeatures = 3

// FeaturePreview splits features into the ones a card shows and the count
// of the rest.
func FeaturePreview(features []string) (shown []string, hidden int) {
	if len(features) <= MaxCardFeatures {
		return features, 0
	}
	return features[:MaxCardFeatures], len(features) - MaxCardFeatures
}

// MoreFeaturesLabel is the indicator appended when features are hidden.
func MoreFeaturesLabel(hidden int) string {
	return fmt.Sprintf("+%d servicios más...", hidden)
}

// ServiceDetailPath is the URL of a service's detail page.
func ServiceDetailPath(slug string) string {
	return "/servicios/" + slug
}

// ServiceCard renders one entry of the services listing.
func ServiceCard(s domain.ServiceSummary) g.Node {
	shown, hidden := FeaturePreview(s.Features)

	return h.Div(
		h.Class("service-card group relative bg-white rounded-xl shadow-md hover:shadow-xl transition-all duration-300 overflow-hidden border border-gray-100"),
		h.Data("slug", s.Slug),
		animation.ServiceCardHover().Attr(),
		h.Div(h.Class("absolute inset-0 bg-gradient-card opacity-0 group-hover:opacity-100 transition-opacity duration-300")),
		h.Div(h.Class("relative p-6"),
			h.Div(h.Class("flex items-center space-x-4 mb-4"),
				h.Div(h.Class("service-icon w-12 h-12 bg-primary-100 rounded-lg flex items-center justify-center group-hover:bg-primary-200 transition-colors duration-300"),
					IconNode(s.Icon, "h-6 w-6 text-primary-600"),
				),
				h.H3(h.Class("text-xl font-bold text-gray-900 group-hover:text-primary-900 transition-colors duration-300"), g.Text(s.Title)),
			),
			h.P(h.Class("text-gray-600 mb-4 leading-relaxed"), g.Text(s.Description)),
			h.Ul(h.Class("space-y-2 mb-6"),
				g.Map(shown, func(f string) g.Node {
					return h.Li(h.Class("flex items-start space-x-2"),
						h.Div(h.Class("w-1.5 h-1.5 bg-primary-500 rounded-full mt-2 flex-shrink-0")),
						h.Span(h.Class("text-sm text-gray-700"), g.Text(f)),
					)
				}),
				g.If(hidden > 0,
					h.Li(h.Class("more-features text-sm text-gray-500 italic"), g.Text(MoreFeaturesLabel(hidden))),
				),
			),
			h.Div(h.Class("mt-6 pt-4 border-t border-gray-100"),
				h.A(
					h.Href(ServiceDetailPath(s.Slug)),
					h.Class("text-primary-600 hover:text-primary-700 font-medium text-sm inline-flex items-center"),
					g.Text("Ver detalles completos"),
					IconNode(IconArrowRight, "more-info-arrow w-4 h-4 ml-1"),
				),
			),
		),
	)
}
