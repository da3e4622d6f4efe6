package benchdocs

import "time"

// SiteConfig holds all configuration for the theme preview host.
type SiteConfig struct {
	Addr string // Listen address (default ":3000")
	URL  string // Canonical URL (default "http://localhost:3000")

	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	DismissLimit  int           // Banner dismissals per IP per window (default 30)
	DismissWindow time.Duration // Window for DismissLimit (default 1min)
}

func (c *SiteConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.DismissLimit == 0 {
		c.DismissLimit = 30
	}
	if c.DismissWindow == 0 {
		c.DismissWindow = time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithSidebar replaces the sample sidebar entries shown in the preview.
func WithSidebar(entries []SidebarEntry) Option {
	return func(a *App) {
		a.sidebar = entries
	}
}

// DefaultSidebar is the sample sidebar the preview renders: a separator
// followed by ordinary pages.
func DefaultSidebar() []SidebarEntry {
	return []SidebarEntry{
		{Title: "Introduction", Type: EntryPage, Href: "/"},
		{Title: "Getting Started", Type: EntrySeparator},
		{Title: "Install", Type: EntryPage, Href: "/guide/install"},
		{Title: "Setup", Type: EntryPage, Href: "/guide/setup"},
	}
}
