package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisitorEcho() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))
	e.Use(Visitor)
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, VisitorID(c))
	})
	return e
}

func TestVisitor(t *testing.T) {
	e := newVisitorEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	first := rec.Body.String()
	_, err := uuid.Parse(first)
	require.NoError(t, err, "visitor id should be a uuid")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "a session cookie should be issued")

	t.Run("same cookie keeps the id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, first, rec.Body.String())
	})

	t.Run("new browser gets a new id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, first, rec.Body.String())
	})
}

func TestVisitorID_WithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, VisitorID(c))
}
