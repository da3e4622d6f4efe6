// Package views holds the templ components the theme is assembled from.
// Edit the .templ files and run `go generate ./views` to refresh the
// generated _templ.go files.
package views

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.960 generate

import "github.com/a-h/templ"

// SidebarItem is one sidebar entry with its title already rendered by the
// theme's title component. Separators carry no Href.
type SidebarItem struct {
	Title templ.Component
	Type  string
	Href  string
}

// ShellView carries everything the preview page shell renders.
type ShellView struct {
	Title         string
	Head          templ.Component
	Banner        templ.Component
	Logo          templ.Component
	ProjectLink   string
	Sidebar       []SidebarItem
	CollapseLevel int
	ToggleButton  bool
	Heading       string
	Path          string
	EditURL       string
	Status        int
	Footer        templ.Component
}
