package benchdocs

import (
	"github.com/a-h/templ"

	"github.com/bench-ai/benchdocs/views"
)

// ShellData is everything the preview page shell needs for one render.
type ShellData struct {
	Route      Route
	Page       Page
	Sidebar    []SidebarEntry
	ShowBanner bool
	CSRFToken  string
	EditPath   string
	Status     int
}

// Shell embeds the theme fragments in a minimal documentation page so the
// chrome can be checked in a browser. The body is a placeholder.
func Shell(t ThemeConfig, d ShellData) templ.Component {
	v := views.ShellView{
		Title:         t.PageTitle(d.Route, d.Page),
		Logo:          t.Logo,
		ProjectLink:   t.Project.Link,
		Sidebar:       sidebarItems(t.Sidebar, d.Sidebar),
		CollapseLevel: t.Sidebar.DefaultMenuCollapseLevel,
		ToggleButton:  t.Sidebar.ToggleButton,
		Heading:       d.Page.Title,
		Path:          d.Route.AsPath,
		Status:        d.statusOrOK(),
		Footer:        t.Footer.Text,
	}
	if v.Title == "" {
		v.Title = SiteTitle
	}
	if t.Head != nil {
		v.Head = t.Head(d.Page)
	}
	if d.ShowBanner && t.Banner.Key != "" {
		v.Banner = BannerBar(t.Banner, d.CSRFToken)
	}
	if t.DocsRepositoryBase != "" && d.EditPath != "" {
		v.EditURL = t.EditURL(d.EditPath)
	}
	return views.Shell(v)
}

func (d ShellData) statusOrOK() int {
	if d.Status == 0 {
		return 200
	}
	return d.Status
}

// Separators never link, whatever Href they carry.
func sidebarItems(cfg SidebarConfig, entries []SidebarEntry) []views.SidebarItem {
	items := make([]views.SidebarItem, 0, len(entries))
	for _, e := range entries {
		var title templ.Component = views.Text(e.Title)
		if cfg.TitleComponent != nil {
			if c := cfg.TitleComponent(title, e.Type); c != nil {
				title = c
			}
		}
		item := views.SidebarItem{Title: title, Type: string(e.Type)}
		if e.Type != EntrySeparator {
			item.Href = e.Href
		}
		items = append(items, item)
	}
	return items
}
