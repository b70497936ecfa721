package pages

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/cjrsolutions/cjrweb/internal/catalog"
	"github.com/cjrsolutions/cjrweb/internal/contact"
	"github.com/cjrsolutions/cjrweb/internal/domain"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestServices(t *testing.T) {
	cat := catalog.MustDefault()
	company := domain.DefaultCompany("")

	t.Run("one card per summary in declaration order", func(t *testing.T) {
		out := render(t, Services(cat.Summaries(), company))
		assert.Equal(t, cat.Len(), strings.Count(out, `class="service-card `))

		last := -1
		for _, s := range cat.Summaries() {
			idx := strings.Index(out, `data-slug="`+s.Slug+`"`)
			require.NotEqual(t, -1, idx, "card for %q missing", s.Slug)
			assert.Greater(t, idx, last, "card for %q out of order", s.Slug)
			last = idx
		}
	})

	t.Run("repeated renders are identical", func(t *testing.T) {
		first := render(t, Services(cat.Summaries(), company))
		second := render(t, Services(cat.Summaries(), company))
		assert.Equal(t, first, second)
	})

	t.Run("cards truncate to three features", func(t *testing.T) {
		five := domain.ServiceSummary{
			Icon: "zap", Title: "Cinco", Description: "d", Slug: "cinco",
			Features: []string{"a1", "a2", "a3", "a4", "a5"},
		}
		three := domain.ServiceSummary{
			Icon: "zap", Title: "Tres", Description: "d", Slug: "tres",
			Features: []string{"b1", "b2", "b3"},
		}

		out := render(t, Services([]domain.ServiceSummary{five}, company))
		assert.Contains(t, out, "a3")
		assert.NotContains(t, out, "a4")
		assert.Contains(t, out, "+2 servicios más...")

		out = render(t, Services([]domain.ServiceSummary{three}, company))
		assert.Contains(t, out, "b3")
		assert.NotContains(t, out, "servicios más...")
	})

	t.Run("technology badges", func(t *testing.T) {
		out := render(t, Services(nil, company))
		for _, tech := range TechnologyBadges {
			assert.Contains(t, out, "Tecnología "+tech)
		}
		assert.Contains(t, out, `href="tel:01-3003429"`)
	})
}

func TestServiceDetail(t *testing.T) {
	cat := catalog.MustDefault()
	d, ok := cat.Resolve("rf-microondas")
	require.True(t, ok)

	out := render(t, ServiceDetail(d, domain.DefaultCompany("")))

	assert.Contains(t, out, "Servicios de RF y Microondas")
	assert.Contains(t, out, `href="/servicios"`)
	assert.Contains(t, out, `id="galeria"`)
	for i := range d.Images {
		assert.Contains(t, out, `alt="`+GalleryAlt(d.Title, i+1)+`"`)
	}

	last := -1
	for _, item := range d.Services {
		idx := strings.Index(out, item)
		require.NotEqual(t, -1, idx)
		assert.Greater(t, idx, last, "included services out of order")
		last = idx
	}
	assert.Equal(t, len(d.Process), strings.Count(out, `class="process-step `))

	t.Run("gallery is omitted without images", func(t *testing.T) {
		d.Images = nil
		out := render(t, ServiceDetail(d, domain.DefaultCompany("")))
		assert.NotContains(t, out, `id="galeria"`)
	})
}

func TestGalleryAlt(t *testing.T) {
	assert.Equal(t, "Sistemas de Energía - Proyecto 3", GalleryAlt("Sistemas de Energía", 3))
}

func TestContactPanel(t *testing.T) {
	base := ContactForm{
		Services:    []string{"Sistemas de Energía", "Metalmecánica"},
		SubmitDelay: time.Second,
		StatusReset: 5 * time.Second,
	}

	t.Run("idle panel does not poll", func(t *testing.T) {
		out := render(t, ContactPanel(base))
		assert.Contains(t, out, `id="contact-form-panel"`)
		assert.Contains(t, out, `data-state="idle"`)
		assert.NotContains(t, out, "hx-trigger")
		assert.Contains(t, out, "Enviar Mensaje")
		assert.NotContains(t, out, `type="submit" disabled`)
		assert.NotContains(t, out, "success-message")
		assert.NotContains(t, out, "error-message")
	})

	t.Run("submitting panel polls after the submit delay", func(t *testing.T) {
		f := base
		f.State = contact.Snapshot{Submitting: true, Fields: contact.Fields{Name: "Ana"}}
		f.Fields = f.State.Fields
		f.ComposeURI = "mailto:x@example.com?subject=a"
		out := render(t, ContactPanel(f))
		assert.Contains(t, out, `data-state="submitting"`)
		assert.Contains(t, out, `hx-trigger="load delay:1000ms"`)
		assert.Contains(t, out, `hx-get="/contacto/estado"`)
		assert.Contains(t, out, "Enviando...")
		assert.Contains(t, out, `type="submit" disabled`)
		assert.Contains(t, out, `data-compose-uri="mailto:x@example.com?subject=a"`)
		assert.Contains(t, out, `value="Ana"`)
	})

	t.Run("result banners poll after the reset window", func(t *testing.T) {
		f := base
		f.State = contact.Snapshot{Status: contact.Success}
		out := render(t, ContactPanel(f))
		assert.Contains(t, out, SuccessMessage)
		assert.Contains(t, out, `hx-trigger="load delay:5000ms"`)

		f.State = contact.Snapshot{Status: contact.Error}
		out = render(t, ContactPanel(f))
		assert.Contains(t, out, "error-message")
		assert.Contains(t, out, `data-state="error"`)
	})

	t.Run("selected service and field problems", func(t *testing.T) {
		f := base
		f.Fields = contact.Fields{Service: "Metalmecánica"}
		f.Problems = map[string]string{"email": "Ingresa un email válido"}
		out := render(t, ContactPanel(f))
		assert.Contains(t, out, `<option value="Metalmecánica" selected>Metalmecánica</option>`)
		assert.Contains(t, out, `data-field="email"`)
		assert.Contains(t, out, "Ingresa un email válido")
	})
}

func TestContactPage(t *testing.T) {
	company := domain.DefaultCompany("ventas@example.com", "01-1111111")
	out := render(t, Contact(company, ContactForm{}))

	assert.Contains(t, out, `href="mailto:ventas@example.com"`)
	assert.Contains(t, out, `href="tel:01-1111111"`)
	assert.Contains(t, out, company.MapsURL)
	assert.Contains(t, out, `id="mapa"`)
}

func TestHomeAndAbout(t *testing.T) {
	home := render(t, Home())
	assert.Contains(t, home, "Tecnologías en Implementación")
	assert.Contains(t, home, `style="width: 75%"`)
	assert.Equal(t, len(Trends), strings.Count(home, `class="trend-item `))

	about := render(t, About(domain.DefaultCompany("")))
	assert.Equal(t, len(Values), strings.Count(about, `class="value-item `))
	assert.Equal(t, len(Achievements), strings.Count(about, `class="stat-card `))
	assert.Contains(t, about, `href="tel:01-3003429"`)
}

func TestStatusBadgeClass(t *testing.T) {
	assert.Contains(t, statusBadgeClass("Activo"), "green")
	assert.Contains(t, statusBadgeClass("En Implementación"), "primary")
	assert.Contains(t, statusBadgeClass("En Desarrollo"), "blue")
	assert.Contains(t, statusBadgeClass("Piloto"), "yellow")
}
