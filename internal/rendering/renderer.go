// Package rendering renders templ and gomponents components through echo.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/sculpt/internal/middleware"
)

// Renderer renders any supported component type.
type Renderer interface {
	// RenderComponent renders a component to bytes. Used for htmx fragments.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full HTML response.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer handles templ components and gomponents nodes. It also
// satisfies echo.Renderer so handlers can call c.Render(status, "", component).
type UniversalRenderer struct{}

var (
	_ Renderer      = (*UniversalRenderer)(nil)
	_ echo.Renderer = (*UniversalRenderer)(nil)
)

func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode matches gomponents.Node without importing it.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T", component)
	}
}

func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("render component: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage buffers the component first so a render failure can still be
// reported with a proper status.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := r.RenderComponent(c.Request().Context(), component)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to render page", "error", err)
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer. The name is ignored; data is the component.
func (r *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
