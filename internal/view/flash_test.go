package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cjrsolutions/cjrweb/internal/view"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Wrapping a dummy handler initializes the session in the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "¡Mensaje enviado exitosamente!")

		flashes := view.GetFlashData(c)

		assert.Equal(t, []string{"¡Mensaje enviado exitosamente!"}, flashes.Success)
		assert.Empty(t, flashes.Error)
		assert.False(t, flashes.Empty())

		flashesAfterRead := view.GetFlashData(c)
		assert.True(t, flashesAfterRead.Empty(), "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "Por favor completa los campos requeridos.")

		flashes := view.GetFlashData(c)

		assert.Equal(t, []string{"Por favor completa los campos requeridos."}, flashes.Error)
		assert.Empty(t, flashes.Success)
	})

	t.Run("Compose flash keeps the latest URI", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashCompose(c, "mailto:a@example.com?subject=uno")
		view.SetFlashCompose(c, "mailto:a@example.com?subject=dos")

		flashes := view.GetFlashData(c)
		assert.Equal(t, "mailto:a@example.com?subject=dos", flashes.Compose)
		assert.False(t, flashes.Empty())
		assert.True(t, view.GetFlashData(c).Empty())
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()

		assert.True(t, view.GetFlashData(c).Empty())
	})
}
