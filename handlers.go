package benchdocs

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handlePage(c echo.Context) error {
	path := c.Request().URL.Path
	if path == "" {
		path = "/"
	}
	return a.renderShell(c, http.StatusOK, ShellData{
		Route:    Route{AsPath: path},
		Page:     Page{Title: c.QueryParam("title"), Route: path},
		EditPath: pageFilePath(path),
	})
}

func (a *App) handleBannerDismiss(c echo.Context) error {
	if !a.dismissLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many requests. Try again later.")
	}
	key := strings.TrimSpace(c.FormValue("key"))
	if key == "" {
		return c.String(http.StatusBadRequest, "Banner key required")
	}
	if err := dismissBanner(c, key); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, backTo(c.Request().Referer()))
}

func (a *App) handleThemeJSON(c echo.Context) error {
	exp, err := NewExport(c.Request().Context(), a.Theme)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exp)
}

func (a *App) handleFaviconSVG(c echo.Context) error {
	data, err := FaviconSVG(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

func (a *App) handleIcon(kind IconKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := a.Icons.Get(kind)
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, "image/png", data)
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	he, ok := err.(*echo.HTTPError)
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	if code == http.StatusNotFound || code >= 500 {
		title := "404: Page Not Found"
		if code >= 500 {
			title = "500: Internal Server Error"
		}
		path := c.Request().URL.Path
		_ = a.renderShell(c, code, ShellData{
			Route: Route{AsPath: path},
			Page:  Page{Title: title, Route: path},
		})
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// pageFilePath maps a route to the source file the host would render it
// from, for the "edit this page" link.
func pageFilePath(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "pages/index.mdx"
	}
	return "pages/" + route + ".mdx"
}

// backTo returns the local path of a referer, or "/" when it is missing or
// points elsewhere.
func backTo(referer string) string {
	if referer == "" {
		return "/"
	}
	u, err := url.Parse(referer)
	if err != nil || !isLocalPath(u.Path) {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

// isLocalPath rejects paths a browser would read as protocol-relative,
// including the "/\" form browsers normalize to "//".
func isLocalPath(p string) bool {
	if !strings.HasPrefix(p, "/") {
		return false
	}
	return len(p) == 1 || (p[1] != '/' && p[1] != '\\')
}
