package benchdocs

import (
	"strings"

	"github.com/a-h/templ"
)

// ThemeConfig is the record a documentation host reads to customize the
// site chrome. Callback fields are pure functions of the context the host
// passes in; the record itself is never mutated after construction.
type ThemeConfig struct {
	Logo               templ.Component
	Project            ProjectConfig
	DocsRepositoryBase string

	// UseNextSeoProps returns the SEO options for a route, or nil when the
	// page title should be shown as is.
	UseNextSeoProps func(r Route) *SeoProps

	// Head returns the meta and link tags for a page render.
	Head func(p Page) templ.Component

	Banner  BannerConfig
	Sidebar SidebarConfig
	Footer  FooterConfig
}

// ProjectConfig points the header's project affordance at an external site.
type ProjectConfig struct {
	Link string
}

// BannerConfig is a dismissible notice shown above every page. Key is the
// identity hosts use to remember a visitor's dismissal; changing it shows
// the banner again.
type BannerConfig struct {
	Key  string
	Text templ.Component
}

// SidebarConfig controls how the navigation sidebar renders.
type SidebarConfig struct {
	TitleComponent           func(title templ.Component, typ EntryType) templ.Component
	DefaultMenuCollapseLevel int
	ToggleButton             bool
}

// FooterConfig holds the markup placed in every page footer.
type FooterConfig struct {
	Text templ.Component
}

// Route is the routing context the host provides for the current render.
type Route struct {
	AsPath string
}

// Page is the page context the host provides for the current render.
type Page struct {
	Title string
	Route string
}

// SeoProps are per-route title options.
type SeoProps struct {
	TitleTemplate string
}

// Title applies the template to a page title. An empty template returns
// the title unchanged.
func (s *SeoProps) Title(pageTitle string) string {
	if s == nil || s.TitleTemplate == "" {
		return pageTitle
	}
	return strings.ReplaceAll(s.TitleTemplate, "%s", pageTitle)
}

// EntryType tags a sidebar entry.
type EntryType string

const (
	EntrySeparator EntryType = "separator"
	EntryPage      EntryType = "page"
	EntryDoc       EntryType = "doc"
	EntryMenu      EntryType = "menu"
	EntryFolder    EntryType = "folder"
)

// SidebarEntry is one item handed to the sidebar renderer.
type SidebarEntry struct {
	Title string
	Type  EntryType
	Href  string
}

// EditURL returns the "edit this page" link for a file path inside the
// docs repository.
func (t ThemeConfig) EditURL(filePath string) string {
	base := strings.TrimRight(t.DocsRepositoryBase, "/")
	filePath = strings.TrimLeft(filePath, "/")
	if filePath == "" {
		return base
	}
	return base + "/" + filePath
}

// PageTitle resolves the document title for a page on a route, applying the
// route's title template when there is one.
func (t ThemeConfig) PageTitle(r Route, p Page) string {
	if t.UseNextSeoProps == nil {
		return p.Title
	}
	return t.UseNextSeoProps(r).Title(p.Title)
}
