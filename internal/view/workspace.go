package view

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	workspaceSessionName = "sculpt-session"
	workspaceKey         = "workspace_id"
)

// ErrNoSession is returned when the session middleware is not installed.
var ErrNoSession = errors.New("session store not available")

// WorkspaceID returns the id that keys this browser's form state, minting and
// saving a new one on first use.
func WorkspaceID(c echo.Context) (string, error) {
	sess, err := session.Get(workspaceSessionName, c)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	if id, ok := sess.Values[workspaceKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	sess.Values[workspaceKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return id, nil
}
