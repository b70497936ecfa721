package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyCompose  = "compose"
)

// FlashData carries the one-shot messages of a request, split by kind.
type FlashData struct {
	Success []string
	Error   []string
	// Compose is a mail composer URI the next page hands to the browser.
	Compose string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0 && f.Compose == ""
}

func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		c.Logger().Warnf("flash session unavailable: %v", err)
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// SetFlashCompose hands a mail composer URI to the next page view.
func SetFlashCompose(c echo.Context, uri string) {
	setFlash(c, flashKeyCompose, uri)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() clears what it returns.
	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)
	composeFlashes := sess.Flashes(flashKeyCompose)

	if len(successFlashes) == 0 && len(errorFlashes) == 0 && len(composeFlashes) == 0 {
		return data
	}
	_ = sess.Save(c.Request(), c.Response())

	data.Success = toStrings(successFlashes)
	data.Error = toStrings(errorFlashes)
	if composes := toStrings(composeFlashes); len(composes) > 0 {
		// Only the latest handoff matters.
		data.Compose = composes[len(composes)-1]
	}
	return data
}

func toStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}
