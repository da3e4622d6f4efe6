package benchdocs

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// renderShell fills in the per-visitor parts of the shell (banner state,
// CSRF token, sidebar) and renders it.
func (a *App) renderShell(c echo.Context, code int, d ShellData) error {
	d.Status = code
	d.Sidebar = a.sidebar
	d.CSRFToken = CsrfToken(c)
	d.ShowBanner = !BannerDismissed(c, a.Theme.Banner.Key)
	return RenderStatus(c, code, Shell(a.Theme, d))
}
