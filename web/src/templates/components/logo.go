package components

import (
	"github.com/cjrsolutions/cjrweb/internal/animation"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LogoSize selects one of the brand mark's preset sizes.
type LogoSize string

const (
	LogoSmall      LogoSize = "sm"
	LogoMedium     LogoSize = "md"
	LogoLarge      LogoSize = "lg"
	LogoExtraLarge LogoSize = "xl"
)

type logoClasses struct {
	icon, glyph, text, subtext, container string
}

var logoSizes = map[LogoSize]logoClasses{
	LogoSmall:      {icon: "h-8 w-8", glyph: "h-4 w-4", text: "text-sm", subtext: "text-xs", container: "space-x-2"},
	LogoMedium:     {icon: "h-10 w-10", glyph: "h-5 w-5", text: "text-base", subtext: "text-xs", container: "space-x-3"},
	LogoLarge:      {icon: "h-16 w-16", glyph: "h-8 w-8", text: "text-xl", subtext: "text-sm", container: "space-x-4"},
	LogoExtraLarge: {icon: "h-24 w-24", glyph: "h-12 w-12", text: "text-3xl", subtext: "text-lg", container: "space-x-6"},
}

// AnimatedLogo renders the brand mark: a globe with orbiting rings and an
// optional word mark. Unknown sizes fall back to medium. The orbits spin in
// the browser; hover pulses the mark.
func AnimatedLogo(size LogoSize, showText bool, extraClass string) g.Node {
	sc, ok := logoSizes[size]
	if !ok {
		sc = logoSizes[LogoMedium]
	}

	return h.Div(
		h.Class("animated-logo flex items-center cursor-pointer "+sc.container+" "+extraClass),
		g.Attr("data-logo", ""),
		animation.LogoHover().Attr(),
		h.Div(h.Class("logo-container relative"),
			h.Div(h.Class("logo-pulse absolute inset-0 bg-gradient-to-br from-primary-400 to-secondary-400 rounded-full opacity-20")),
			h.Div(h.Class("absolute inset-0"),
				h.Div(h.Class("logo-orbit logo-orbit-1 absolute inset-0 border border-primary-300/30 rounded-full"),
					h.Div(h.Class("absolute top-0 left-1/2 -translate-x-1/2 -translate-y-1/2 w-2 h-2 bg-primary-400 rounded-full")),
				),
				h.Div(h.Class("logo-orbit logo-orbit-2 absolute inset-1 border border-secondary-300/40 rounded-full"),
					h.Div(h.Class("absolute top-1/2 right-0 translate-x-1/2 -translate-y-1/2 w-1.5 h-1.5 bg-secondary-400 rounded-full")),
				),
				h.Div(h.Class("logo-orbit logo-orbit-3 absolute inset-2 border border-accent-200/50 rounded-full"),
					h.Div(h.Class("absolute bottom-0 left-1/2 -translate-x-1/2 translate-y-1/2 w-1 h-1 bg-accent-300 rounded-full")),
				),
			),
			h.Div(h.Class("logo-icon relative z-10 "+sc.icon+" bg-gradient-to-br from-primary-500 to-secondary-400 rounded-full flex items-center justify-center shadow-lg"),
				IconNode(IconGlobe, sc.glyph+" text-white"),
				h.Div(h.Class("absolute -top-1 -right-1 w-3 h-3 bg-secondary-400 rounded-full animate-pulse"),
					h.Div(h.Class("absolute inset-0.5 bg-white rounded-full")),
				),
			),
		),
		g.If(showText,
			h.Div(h.Class("logo-text flex flex-col"),
				h.Span(h.Class(sc.text+" font-bold leading-tight"), g.Text("CJR SOLUTIONS")),
				h.Span(h.Class(sc.subtext+" text-gray-500 -mt-1 leading-tight"), g.Text("ENTERPRISE S.A.C.")),
			),
		),
	)
}
