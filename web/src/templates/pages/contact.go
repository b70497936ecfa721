package pages

import (
	"strconv"
	"time"

	"github.com/cjrsolutions/cjrweb/internal/animation"
	"github.com/cjrsolutions/cjrweb/internal/contact"
	"github.com/cjrsolutions/cjrweb/internal/domain"
	c "github.com/cjrsolutions/cjrweb/web/src/templates/components"
	"github.com/cjrsolutions/cjrweb/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Contact form wiring.
const (
	ContactPanelID   = "contact-form-panel"
	ContactPath      = "/contacto"
	ContactStatePath = "/contacto/estado"
)

// Banner texts.
const (
	SuccessMessage = "¡Mensaje enviado exitosamente! Se abrirá tu cliente de correo para enviar la solicitud."
	ErrorMessage   = "Hubo un error al procesar tu solicitud. Por favor, intenta nuevamente o contáctanos directamente."
)

// ContactForm is everything the form panel needs to render.
type ContactForm struct {
	// Fields are the values shown in the inputs. They are the machine's
	// fields, or the posted values when a post was rejected.
	Fields domain.ContactForm
	State  contact.Snapshot
	// Services are the options of the service select, in catalog order.
	Services []string
	// Problems maps input names to a message shown under the input.
	Problems map[string]string
	// ComposeURI is handed to the browser, which opens the mail client.
	ComposeURI string
	// SubmitDelay and StatusReset time the status polls.
	SubmitDelay time.Duration
	StatusReset time.Duration
}

// pollTrigger is the hx-trigger that refreshes the panel once the current
// state is due to change. Idle panels do not poll.
func (f ContactForm) pollTrigger() string {
	switch {
	case f.State.Submitting:
		return "load delay:" + millis(f.SubmitDelay)
	case f.State.Status != contact.Idle:
		return "load delay:" + millis(f.StatusReset)
	default:
		return ""
	}
}

func millis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

// ContactMeta describes the contact page.
func ContactMeta() layouts.Meta {
	return layouts.Meta{
		Title:       "Contacto",
		Description: "Contáctanos y obtén una cotización personalizada para tus proyectos de telecomunicaciones.",
	}
}

// Contact renders the contact page around the form panel.
func Contact(company domain.Company, form ContactForm) g.Node {
	return h.Div(h.ID("page"), animation.Contact().Attr(),
		pageHero("contact-hero-content", "Contáctanos",
			"Estamos aquí para ayudarte con todas tus necesidades de telecomunicaciones. Contáctanos y obtén una cotización personalizada."),
		h.Section(h.ID("contacto-seccion"), h.Class("py-20 bg-gray-50"),
			h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 grid grid-cols-1 lg:grid-cols-3 gap-12"),
				h.Div(
					h.H2(h.Class("text-2xl font-bold text-gray-900 mb-8"), g.Text("Información de Contacto")),
					h.Div(h.Class("space-y-6"), contactInfoCards(company)),
				),
				h.Div(h.Class("lg:col-span-2"),
					h.Div(h.Class("contact-form bg-white rounded-2xl shadow-lg p-8"),
						h.H2(h.Class("text-2xl font-bold text-gray-900 mb-8"), g.Text("Solicitar Cotización")),
						ContactPanel(form),
					),
				),
			),
		),
		h.Section(h.ID("mapa"), h.Class("py-20 bg-white"),
			h.Div(h.Class("map-content max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
				sectionHeading("Nuestra Ubicación", "Visítanos en nuestra oficina principal"),
				h.Div(h.Class("bg-gray-100 rounded-2xl p-12 text-center"),
					c.IconNode(c.IconMapPin, "h-16 w-16 text-primary-600 mx-auto mb-4"),
					g.If(len(company.AddressLines) > 0,
						h.H3(h.Class("text-xl font-semibold text-gray-900 mb-2"), g.Text(company.AddressLines[0])),
					),
					g.If(len(company.AddressLines) > 1,
						h.P(h.Class("text-gray-600 mb-4"), c.Lines(company.AddressLines[1:])),
					),
					h.A(h.Href(company.MapsURL), h.Target("_blank"), h.Rel("noopener noreferrer"),
						h.Class("inline-flex items-center px-6 py-3 bg-gradient-primary hover:bg-gradient-primary-dark text-white rounded-lg font-medium transition-all duration-200 hover:scale-105"),
						g.Text("Ver en Google Maps"),
					),
				),
			),
		),
	)
}

type infoCard struct {
	icon    domain.IconRef
	title   string
	details []string
	link    string
}

func contactInfoCards(company domain.Company) g.Node {
	cards := []infoCard{
		{icon: c.IconMapPin, title: "Dirección", details: company.AddressLines, link: company.MapsURL},
		{icon: c.IconPhone, title: "Teléfonos", details: company.Phones, link: company.TelURI()},
		{icon: c.IconMail, title: "Email", details: []string{company.Email}, link: "mailto:" + company.Email},
		{icon: c.IconClock, title: "Horario", details: company.Hours},
	}
	return g.Map(cards, func(card infoCard) g.Node {
		details := make([]g.Node, len(card.details))
		for i, d := range card.details {
			// Only the first line links out.
			if card.link != "" && i == 0 {
				details[i] = h.P(h.Class("text-gray-600 text-sm"),
					h.A(h.Href(card.link), h.Class("hover:text-primary-600 transition-colors"), g.Text(d)),
				)
				continue
			}
			details[i] = h.P(h.Class("text-gray-600 text-sm"), g.Text(d))
		}
		return h.Div(h.Class("contact-info-card flex items-start space-x-4 bg-white rounded-xl p-6 shadow-md"),
			h.Div(h.Class("w-12 h-12 bg-primary-100 rounded-lg flex items-center justify-center flex-shrink-0"),
				c.IconNode(card.icon, "h-6 w-6 text-primary-600"),
			),
			h.Div(
				h.H3(h.Class("font-semibold text-gray-900 mb-1"), g.Text(card.title)),
				g.Group(details),
			),
		)
	})
}

// ContactPanel renders the swappable part of the contact page: the status
// banner and the form. htmx replaces it whole on post and on status polls.
func ContactPanel(f ContactForm) g.Node {
	submitting := f.State.Submitting
	return h.Div(
		h.ID(ContactPanelID),
		g.Attr("data-state", f.State.State()),
		g.If(f.ComposeURI != "", g.Attr("data-compose-uri", f.ComposeURI)),
		g.If(f.pollTrigger() != "", g.Group([]g.Node{
			hx.Get(ContactStatePath),
			hx.Trigger(f.pollTrigger()),
			hx.Swap("outerHTML"),
		})),
		g.If(!submitting && f.State.Status == contact.Success,
			banner("success-message", "bg-green-50 border-green-200", c.IconCheckCircle, "text-green-600", "text-green-800", SuccessMessage),
		),
		g.If(!submitting && f.State.Status == contact.Error,
			banner("error-message", "bg-red-50 border-red-200", c.IconAlertCircle, "text-red-600", "text-red-800", ErrorMessage),
		),
		h.Form(
			h.Method("post"), h.Action(ContactPath),
			hx.Post(ContactPath), hx.Target("#"+ContactPanelID), hx.Swap("outerHTML"),
			h.Class("space-y-6"),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
				textInput(f, "name", "text", "Nombre Completo *", "Tu nombre completo", f.Fields.Name, true),
				textInput(f, "email", "email", "Email *", "tu@email.com", f.Fields.Email, true),
			),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
				textInput(f, "phone", "tel", "Teléfono", "+51 999 999 999", f.Fields.Phone, false),
				serviceSelect(f),
			),
			h.Div(
				h.Label(h.For("message"), h.Class("block text-sm font-medium text-gray-700 mb-2"), g.Text("Mensaje *")),
				h.Textarea(h.ID("message"), h.Name("message"), h.Rows("6"), h.Required(),
					h.Class(inputClass+" resize-none"),
					h.Placeholder("Describe tu proyecto o necesidades específicas..."),
					g.Text(f.Fields.Message),
				),
				problem(f, "message"),
			),
			h.Button(h.Type("submit"), g.If(submitting, h.Disabled()),
				h.Class("submit-button w-full bg-gradient-primary hover:bg-gradient-primary-dark disabled:opacity-50 text-white font-semibold py-4 px-6 rounded-lg transition-all duration-200 flex items-center justify-center space-x-2 hover:scale-105 disabled:scale-100"),
				g.Iff(submitting, func() g.Node {
					return g.Group([]g.Node{
						h.Span(h.Class("animate-spin rounded-full h-5 w-5 border-b-2 border-white"), h.Aria("hidden", "true")),
						h.Span(g.Text("Enviando...")),
					})
				}),
				g.Iff(!submitting, func() g.Node {
					return g.Group([]g.Node{
						c.IconNode(c.IconSend, "h-5 w-5"),
						h.Span(g.Text("Enviar Mensaje")),
					})
				}),
			),
		),
	)
}

const inputClass = "w-full px-4 py-3 border border-gray-300 rounded-lg focus:ring-2 focus:ring-primary-500 focus:border-primary-500 transition-colors"

func textInput(f ContactForm, name, typ, label, placeholder, value string, required bool) g.Node {
	return h.Div(
		h.Label(h.For(name), h.Class("block text-sm font-medium text-gray-700 mb-2"), g.Text(label)),
		h.Input(h.Type(typ), h.ID(name), h.Name(name), h.Value(value), h.Placeholder(placeholder),
			g.If(required, h.Required()),
			h.Class(inputClass),
		),
		problem(f, name),
	)
}

func serviceSelect(f ContactForm) g.Node {
	return h.Div(
		h.Label(h.For("service"), h.Class("block text-sm font-medium text-gray-700 mb-2"), g.Text("Servicio de Interés")),
		h.Select(h.ID("service"), h.Name("service"), h.Class(inputClass),
			h.Option(h.Value(""), g.Text("Seleccionar servicio")),
			g.Map(f.Services, func(s string) g.Node {
				return h.Option(h.Value(s), g.If(s == f.Fields.Service, h.Selected()), g.Text(s))
			}),
		),
		problem(f, "service"),
	)
}

func problem(f ContactForm, name string) g.Node {
	msg, ok := f.Problems[name]
	if !ok {
		return nil
	}
	return h.P(h.Class("field-error mt-1 text-sm text-red-600"), g.Attr("data-field", name), g.Text(msg))
}

func banner(class, box string, icon domain.IconRef, iconColor, textColor, text string) g.Node {
	return h.Div(h.Class(class+" mb-6 p-4 border rounded-lg "+box), h.Role("status"),
		h.Div(h.Class("flex items-center space-x-2"),
			c.IconNode(icon, "h-5 w-5 "+iconColor),
			h.P(h.Class(textColor+" font-medium"), g.Text(text)),
		),
	)
}
