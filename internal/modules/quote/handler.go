package quote

import (
	"errors"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	htmxhttp "maragu.dev/gomponents-htmx/http"

	"github.com/cjrsolutions/cjrweb/internal/catalog"
	"github.com/cjrsolutions/cjrweb/internal/contact"
	"github.com/cjrsolutions/cjrweb/internal/domain"
	"github.com/cjrsolutions/cjrweb/internal/middleware"
	"github.com/cjrsolutions/cjrweb/internal/pubsub"
	"github.com/cjrsolutions/cjrweb/internal/site"
	"github.com/cjrsolutions/cjrweb/internal/view"
	"github.com/cjrsolutions/cjrweb/web/src/templates/pages"
)

// Messages shown under invalid inputs, by validation tag.
var problemMessages = map[string]string{
	"required": "Este campo es obligatorio.",
	"email":    "Ingresa un email válido.",
}

// HandlerConfig wires a Handler.
type HandlerConfig struct {
	Shell     *site.Shell
	Store     *catalog.Store
	Sessions  *contact.Sessions
	Publisher pubsub.Publisher
	// Delivery names the submitter for the contact.submitted event.
	Delivery string
	Options  contact.Options
}

// Handler serves the contact page and drives each visitor's form machine.
type Handler struct {
	cfg HandlerConfig
}

// NewHandler creates a Handler. Zero timings use the machine defaults.
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Options.SubmitDelay <= 0 {
		cfg.Options.SubmitDelay = contact.DefaultSubmitDelay
	}
	if cfg.Options.StatusReset <= 0 {
		cfg.Options.StatusReset = contact.DefaultStatusReset
	}
	return &Handler{cfg: cfg}
}

// Show renders the contact page with the visitor's form as it stands.
func (h *Handler) Show(c echo.Context) error {
	form := h.form(h.snapshot(c))
	form.ComposeURI = view.GetFlashData(c).Compose
	return h.page(c, http.StatusOK, form)
}

// State answers the form panel alone. htmx polls it while a result is due.
func (h *Handler) State(c echo.Context) error {
	return h.cfg.Shell.Fragment(c, http.StatusOK, pages.ContactPanel(h.form(h.snapshot(c))))
}

// Submit validates the posted form and hands it to the visitor's machine.
func (h *Handler) Submit(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())
	htmx := htmxhttp.IsRequest(c.Request().Header)

	var posted domain.ContactForm
	if err := c.Bind(&posted); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form").SetInternal(err)
	}
	trim(&posted)

	snap := h.snapshot(c)
	if snap.Submitting {
		return h.respond(c, htmx, http.StatusConflict, h.form(snap))
	}

	if err := posted.Validate(); err != nil {
		form := h.form(snap)
		form.Fields = posted
		form.Problems = problems(err)
		logger.Debug("Contact form rejected", "fields", strings.Join(slices.Sorted(maps.Keys(form.Problems)), ","))
		return h.respond(c, htmx, http.StatusUnprocessableEntity, form)
	}

	m := h.machine(c)
	if err := m.SetFields(posted); err != nil {
		return h.closed(err)
	}

	result, err := m.Submit(c.Request().Context())
	switch {
	case errors.Is(err, contact.ErrInFlight):
		return h.respond(c, htmx, http.StatusConflict, h.form(m.Snapshot()))
	case errors.Is(err, domain.ErrDeliveryFailed):
		logger.Warn("Contact delivery failed", "delivery", h.cfg.Delivery, "error", err)
		if !htmx {
			return c.Redirect(http.StatusSeeOther, pages.ContactPath)
		}
		return h.respond(c, htmx, http.StatusOK, h.form(m.Snapshot()))
	case err != nil:
		return h.closed(err)
	}

	h.announce(c, posted, result)

	if !htmx {
		if result.ComposeURI != "" {
			view.SetFlashCompose(c, result.ComposeURI)
		}
		return c.Redirect(http.StatusSeeOther, pages.ContactPath)
	}
	form := h.form(m.Snapshot())
	form.ComposeURI = result.ComposeURI
	return h.cfg.Shell.Fragment(c, http.StatusOK, pages.ContactPanel(form))
}

// machine returns the visitor's machine, creating it. Only submissions call it.
func (h *Handler) machine(c echo.Context) *contact.Machine {
	return h.cfg.Sessions.Get(middleware.VisitorID(c))
}

// snapshot reads the visitor's machine without creating one; visitors that
// never submitted see an idle form.
func (h *Handler) snapshot(c echo.Context) contact.Snapshot {
	if m, ok := h.cfg.Sessions.Peek(middleware.VisitorID(c)); ok {
		return m.Snapshot()
	}
	return contact.Snapshot{}
}

func (h *Handler) form(snap contact.Snapshot) pages.ContactForm {
	return pages.ContactForm{
		Fields:      snap.Fields,
		State:       snap,
		Services:    h.cfg.Store.Current().Titles(),
		SubmitDelay: h.cfg.Options.SubmitDelay,
		StatusReset: h.cfg.Options.StatusReset,
	}
}

func (h *Handler) page(c echo.Context, status int, form pages.ContactForm) error {
	company := h.cfg.Shell.Company()
	return h.cfg.Shell.Page(c, status, pages.ContactMeta(), pages.Contact(company, form))
}

// respond answers the panel to htmx and the whole page otherwise.
func (h *Handler) respond(c echo.Context, htmx bool, status int, form pages.ContactForm) error {
	if htmx {
		return h.cfg.Shell.Fragment(c, status, pages.ContactPanel(form))
	}
	return h.page(c, status, form)
}

func (h *Handler) closed(err error) error {
	return echo.NewHTTPError(http.StatusServiceUnavailable, "The contact form is not available right now").SetInternal(err)
}

func (h *Handler) announce(c echo.Context, form domain.ContactForm, result domain.SubmitResult) {
	if h.cfg.Publisher == nil {
		return
	}
	event := contact.SubmittedEvent{
		VisitorID: middleware.VisitorID(c),
		Service:   form.Service,
		Delivery:  h.cfg.Delivery,
		HandedOff: result.ComposeURI != "",
		At:        time.Now().UTC(),
	}
	if err := pubsub.Publish(c.Request().Context(), h.cfg.Publisher, contact.Submitted, event.VisitorID, event); err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to publish contact submission", "error", err)
	}
}

func trim(f *domain.ContactForm) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Service = strings.TrimSpace(f.Service)
	f.Message = strings.TrimSpace(f.Message)
}

// problems maps validation failures to input names.
func problems(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		msg, ok := problemMessages[fe.Tag()]
		if !ok {
			msg = "Valor inválido."
		}
		out[strings.ToLower(fe.Field())] = msg
	}
	return out
}
