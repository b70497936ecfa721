package pages

import (
	c "github.com/cjrsolutions/cjrweb/web/src/templates/components"
	"github.com/cjrsolutions/cjrweb/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFoundMeta is the head of the 404 page.
func NotFoundMeta() layouts.Meta {
	return layouts.Meta{
		Title:       "Página no encontrada",
		Description: layouts.DefaultDescription,
	}
}

// NotFound is shown for any path no route matches.
func NotFound() g.Node {
	return h.Div(h.ID("page"),
		pageHero("not-found-content", "Página no encontrada",
			"La página que buscas no existe o fue movida.",
			h.Div(h.Class("mt-10 flex flex-col sm:flex-row gap-4 justify-center"),
				primaryWhiteButton("/", "Volver al inicio", c.IconArrowRight),
				outlineWhiteButton("/servicios", "Ver servicios", ""),
			),
		),
	)
}
