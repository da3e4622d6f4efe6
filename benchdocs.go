// Package benchdocs is the visual theme of the Bench AI documentation site:
// logo, head tags, banner, sidebar title renderer and footer, exposed as a
// ThemeConfig a documentation host reads at render time.
//
// The package also ships a small preview host built on Echo that embeds the
// theme fragments in a page shell, serves the icon assets the head tags
// reference, and remembers banner dismissals per visitor.
package benchdocs

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

// App is the theme preview host. It wires the theme, icon cache, handlers
// and middleware onto an Echo instance.
type App struct {
	Config SiteConfig
	Theme  ThemeConfig
	Echo   *echo.Echo
	Icons  *IconCache

	dismissLimiter *RateLimiter
	sidebar        []SidebarEntry
	customRoutes   []func(*App)
	prepared       bool
}

// New creates a preview App for the given theme.
func New(cfg SiteConfig, theme ThemeConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:  cfg,
		Theme:   theme,
		Echo:    echo.New(),
		Icons:   NewIconCache(),
		sidebar: DefaultSidebar(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Prepare validates the configuration and installs middleware and routes.
// Start calls it; it is exported so the app can be served by other means.
func (a *App) Prepare() error {
	if a.prepared {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("benchdocs: SessionSecret is required")
	}

	a.dismissLimiter = NewRateLimiter(a.Config.DismissLimit, a.Config.DismissWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.prepared = true
	return nil
}

// Start prepares the app and serves it on Config.Addr.
func (a *App) Start() error {
	if err := a.Prepare(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/favicon.svg", a.handleFaviconSVG)
	e.GET("/favicon.png", a.handleIcon(IconFavicon))
	e.GET("/preview.png", a.handleIcon(IconPreview))
	e.GET("/theme.json", a.handleThemeJSON)
	e.POST("/banner/dismiss/", a.handleBannerDismiss)

	// Every other path renders the page shell for that route.
	e.GET("/*", a.handlePage)
}

// Close releases background resources.
func (a *App) Close() error {
	if a.dismissLimiter != nil {
		a.dismissLimiter.Stop()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
