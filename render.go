package bistro

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
// The component is rendered into a buffer first so a render error still
// reaches the error handler with nothing written.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// renderCached serves a full page from the page cache, rendering it on a
// miss. gen is the cache generation taken before the frame was built, see
// cachedFrame. Only pages without per-visitor data may go through here.
func (a *App) renderCached(c echo.Context, gen uint64, key string, cmp func() templ.Component) error {
	body, err := a.Cache.GetOrRenderSince(key, gen, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := cmp().Render(c.Request().Context(), &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, body)
}

// cacheKey identifies a page by path and the UI state that changes its
// markup.
func cacheKey(path string, state url.Values) string {
	if len(state) == 0 {
		return path
	}
	return path + "?" + state.Encode()
}
