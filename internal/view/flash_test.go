package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sculpt/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a no-op handler through the middleware so the store is on the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "Workout Successful!")

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Success, 1)
		assert.Equal(t, "Workout Successful!", flashes.Success[0])
		assert.Empty(t, flashes.Error)
		assert.False(t, flashes.Empty())

		again := view.GetFlashData(c)
		assert.True(t, again.Empty(), "flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "It failed!")

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Error, 1)
		assert.Equal(t, "It failed!", flashes.Error[0])
		assert.Empty(t, flashes.Success)
	})

	t.Run("Messages keep their order", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "first")
		view.SetFlashSuccess(c, "second")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"first", "second"}, flashes.Success)
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()

		flashes := view.GetFlashData(c)
		assert.True(t, flashes.Empty())
	})

	t.Run("Missing session store is not fatal", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		view.SetFlashError(c, "ignored")
		assert.True(t, view.GetFlashData(c).Empty())
	})
}
