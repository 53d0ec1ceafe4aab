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
)

// FlashData holds the one-shot messages shown at the top of a page.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		c.Logger().Errorf("flash session: %v", err)
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess queues a success message for the next rendered page.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError queues an error message for the next rendered page.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData reads and clears the pending flash messages.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	success := sess.Flashes(flashKeySuccess)
	failed := sess.Flashes(flashKeyError)
	if len(success) == 0 && len(failed) == 0 {
		return data
	}
	data.Success = toStrings(success)
	data.Error = toStrings(failed)

	// Flashes() only clears them in memory.
	_ = sess.Save(c.Request(), c.Response())
	return data
}

func toStrings(in []interface{}) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if s, ok := v.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(v))
	}
	return out
}
