package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), g.P(cmp.Text("hi")))
		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<b>templ</b>")
			return err
		})
		out, err := r.RenderComponent(context.Background(), comp)
		require.NoError(t, err)
		assert.Equal(t, "<b>templ</b>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		assert.ErrorContains(t, err, "unsupported component type int")
	})
}

func TestRenderPageSetsHeaderBeforeBody(t *testing.T) {
	r := NewUniversalRenderer()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, r.RenderPage(c, http.StatusNotFound, g.H1(cmp.Text("404: Page not Found!"))))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<h1>404: Page not Found!</h1>", rec.Body.String())
}

func TestEchoRender(t *testing.T) {
	e := echo.New()
	e.Renderer = NewUniversalRenderer()
	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", g.Span(cmp.Text("ok")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<span>ok</span>", rec.Body.String())
}
