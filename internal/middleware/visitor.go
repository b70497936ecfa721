package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	visitorSessionName = "cjr-visitor"
	visitorIDKey       = "visitor_id"
	visitorCtxKey      = contextKey("visitor")
)

// Visitor assigns every browser a stable anonymous id kept in a session
// cookie. It must run after the session middleware.
func Visitor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := ""
		sess, err := session.Get(visitorSessionName, c)
		if err == nil {
			id, _ = sess.Values[visitorIDKey].(string)
		}

		if _, parseErr := uuid.Parse(id); parseErr != nil {
			id = uuid.NewString()
			if sess != nil {
				sess.Values[visitorIDKey] = id
				if saveErr := sess.Save(c.Request(), c.Response()); saveErr != nil {
					FromContext(c.Request().Context()).Warn("could not persist visitor session", "error", saveErr)
				}
			}
		}

		ctx := context.WithValue(c.Request().Context(), visitorCtxKey, id)
		c.SetRequest(c.Request().WithContext(ctx))
		c.Set(visitorIDKey, id)

		return next(c)
	}
}

// VisitorID returns the id assigned by the Visitor middleware, or "" when the
// middleware did not run.
func VisitorID(c echo.Context) string {
	if id, ok := c.Get(visitorIDKey).(string); ok {
		return id
	}
	id, _ := c.Request().Context().Value(visitorCtxKey).(string)
	return id
}
