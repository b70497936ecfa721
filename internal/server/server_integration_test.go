package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjrsolutions/cjrweb/internal/app"
	"github.com/cjrsolutions/cjrweb/internal/config"
	"github.com/cjrsolutions/cjrweb/internal/domain"
	"github.com/cjrsolutions/cjrweb/internal/email"
	"github.com/cjrsolutions/cjrweb/internal/pubsub"
	"github.com/cjrsolutions/cjrweb/internal/registry"
	"github.com/cjrsolutions/cjrweb/internal/rendering"
	"github.com/cjrsolutions/cjrweb/internal/server"
	"github.com/cjrsolutions/cjrweb/internal/site"
)

// setupIntegrationTest wires a full server the way cmd/server does, with the
// embedded catalog and mailto delivery.
func setupIntegrationTest(t *testing.T) *server.Server {
	t.Helper()

	cfg := &config.Config{
		ServerAddr:     "127.0.0.1:0",
		AppBaseURL:     "https://cjr.example",
		SessionSecret:  "integration-test-session-secret!",
		Delivery:       "mailto",
		ContactAddress: "ventas@cjr.example",
		SubmitDelay:    100 * time.Millisecond,
		StatusReset:    200 * time.Millisecond,
		SessionTTL:     time.Minute,
		RateLimit:      100,
	}
	require.NoError(t, cfg.Validate())

	ps := pubsub.NewWatermillBridge()
	submitter, err := email.NewContactSubmitter(cfg)
	require.NoError(t, err)

	renderer := rendering.NewUniversalRenderer()
	shell := site.NewShell(renderer, domain.DefaultCompany(cfg.ContactAddress), cfg.AppBaseURL)

	s, err := server.New(server.Dependencies{Config: cfg, Renderer: renderer, Shell: shell})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	modules := app.NewModules(app.Dependencies{
		Publisher:  ps,
		Subscriber: ps,
		Shell:      shell,
		Submitter:  submitter,
		Fs:         afero.NewMemMapFs(),
	})
	require.NoError(t, s.InitModules(ctx, modules, registry.New(cfg)))
	s.RegisterRoutes()

	t.Cleanup(func() {
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = s.Shutdown(shutdownCtx)
		_ = ps.Close()
	})
	return s
}

func get(t *testing.T, s *server.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_Routes(t *testing.T) {
	s := setupIntegrationTest(t)

	routes := s.Routes()
	for _, want := range []string{
		"GET /",
		"GET /nosotros",
		"GET /servicios",
		"GET /servicios/:serviceSlug",
		"GET /contacto",
		"POST /contacto",
		"GET /contacto/estado",
		"GET /health",
	} {
		assert.Contains(t, routes, want)
	}
}

func TestServer_Pages(t *testing.T) {
	s := setupIntegrationTest(t)

	for _, path := range []string{"/", "/nosotros", "/servicios", "/servicios/rf-microondas", "/contacto"} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, s, path)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Body.String(), "<!doctype html>"))
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}

	t.Run("service detail title", func(t *testing.T) {
		rec := get(t, s, "/servicios/rf-microondas")
		assert.Contains(t, rec.Body.String(), "Servicios de RF y Microondas")
		assert.Contains(t, rec.Body.String(), `href="https://cjr.example/servicios/rf-microondas"`)
	})

	t.Run("unknown slug redirects to the listing", func(t *testing.T) {
		rec := get(t, s, "/servicios/not-a-real-service")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/servicios", rec.Header().Get("Location"))
	})

	t.Run("trailing slash is ignored", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, s, "/nosotros/").Code)
	})
}

func TestServer_HealthAndStatic(t *testing.T) {
	s := setupIntegrationTest(t)

	rec := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = get(t, s, "/static/js/site.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gsap")

	rec = get(t, s, "/static/css/site.css")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_NotFound(t *testing.T) {
	s := setupIntegrationTest(t)

	rec := get(t, s, "/pagina-inexistente")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Página no encontrada")
	assert.Contains(t, rec.Body.String(), "CJR Solutions")
}

func TestServer_ContactSubmission(t *testing.T) {
	s := setupIntegrationTest(t)

	form := url.Values{
		"name":    {"Ana Torres"},
		"email":   {"ana@example.com"},
		"phone":   {"+51 999 888 777"},
		"service": {""},
		"message": {"Necesitamos mantenimiento preventivo."},
	}

	t.Run("missing fields are rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader("name=Ana"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-state="idle"`)
	})

	t.Run("valid submission enters submitting", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="contact-form-panel"`)
	})
}
