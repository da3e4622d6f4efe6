package benchdocs

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/bench-ai/benchdocs/views"
)

func renderString(t *testing.T, cmp templ.Component) string {
	t.Helper()
	s, err := views.RenderString(context.Background(), cmp)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return s
}

func TestUseNextSeoPropsRootSuppressesTemplate(t *testing.T) {
	cfg := Config()
	if got := cfg.UseNextSeoProps(Route{AsPath: "/"}); got != nil {
		t.Fatalf("UseNextSeoProps(/) = %+v, want nil", got)
	}
}

func TestUseNextSeoPropsNonRoot(t *testing.T) {
	cfg := Config()
	paths := []string{"/guide/setup", "/guide", "/index", "/?tab=1", "//", ""}
	for _, p := range paths {
		got := cfg.UseNextSeoProps(Route{AsPath: p})
		if got == nil {
			t.Errorf("UseNextSeoProps(%q) = nil, want template", p)
			continue
		}
		if got.TitleTemplate != "%s – Bench AI Docs" {
			t.Errorf("UseNextSeoProps(%q).TitleTemplate = %q", p, got.TitleTemplate)
		}
	}
}

func TestSeoPropsTitle(t *testing.T) {
	var none *SeoProps
	if got := none.Title("Home"); got != "Home" {
		t.Errorf("nil SeoProps Title = %q, want %q", got, "Home")
	}
	seo := &SeoProps{TitleTemplate: TitleTemplate}
	if got := seo.Title("Setup"); got != "Setup – Bench AI Docs" {
		t.Errorf("Title = %q", got)
	}
}

func TestPageTitle(t *testing.T) {
	cfg := Config()
	tests := []struct {
		path, title, want string
	}{
		{"/", "Bench AI", "Bench AI"},
		{"/guide/setup", "Setup", "Setup – Bench AI Docs"},
	}
	for _, tt := range tests {
		got := cfg.PageTitle(Route{AsPath: tt.path}, Page{Title: tt.title})
		if got != tt.want {
			t.Errorf("PageTitle(%q, %q) = %q, want %q", tt.path, tt.title, got, tt.want)
		}
	}
}

func TestSidebarTitleSeparator(t *testing.T) {
	cfg := Config()
	got := renderString(t, cfg.Sidebar.TitleComponent(views.Text("Getting Started"), EntrySeparator))
	want := `<span class="cursor-default">Getting Started</span>`
	if got != want {
		t.Errorf("separator title = %q, want %q", got, want)
	}
}

func TestSidebarTitlePassThrough(t *testing.T) {
	cfg := Config()
	types := []EntryType{EntryPage, EntryDoc, EntryMenu, EntryFolder, "", "Separator", "separator "}
	for _, typ := range types {
		got := renderString(t, cfg.Sidebar.TitleComponent(views.Text("Install"), typ))
		if got != "Install" {
			t.Errorf("title for type %q = %q, want %q", typ, got, "Install")
		}
	}
}

func TestSidebarTitleKeepsMarkup(t *testing.T) {
	title := templ.Raw("<em>API</em>")
	got := renderString(t, SidebarTitle(title, EntryPage))
	if got != "<em>API</em>" {
		t.Errorf("markup title = %q", got)
	}
}

func TestOGTitle(t *testing.T) {
	if got := OGTitle("Install"); got != "Install – Bench AI Docs" {
		t.Errorf("OGTitle(Install) = %q", got)
	}
	if got := OGTitle(""); got != "Bench AI Docs" {
		t.Errorf("OGTitle(\"\") = %q", got)
	}
}

func findTag(tags []Tag, name string) (Tag, bool) {
	for _, tag := range tags {
		if tag.Attr("name") == name {
			return tag, true
		}
	}
	return Tag{}, false
}

func TestHeadTagsOGTitle(t *testing.T) {
	tag, ok := findTag(HeadTags(Page{Title: "Install", Route: "/guide/install"}), "og:title")
	if !ok {
		t.Fatal("og:title missing")
	}
	if got := tag.Attr("content"); got != "Install – Bench AI Docs" {
		t.Errorf("og:title content = %q", got)
	}

	tag, _ = findTag(HeadTags(Page{}), "og:title")
	if got := tag.Attr("content"); got != "Bench AI Docs" {
		t.Errorf("untitled og:title content = %q", got)
	}
}

func TestHeadTagsStaticAcrossRenders(t *testing.T) {
	a := HeadTags(Page{Title: "One", Route: "/one"})
	b := HeadTags(Page{})
	if len(a) != 17 || len(b) != 17 {
		t.Fatalf("tag counts = %d, %d, want 17", len(a), len(b))
	}
	for i := range a {
		if a[i].Attr("name") == "og:title" {
			continue
		}
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Errorf("tag %d differs between renders: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestHeadRendersExpectedTags(t *testing.T) {
	got := renderString(t, Config().Head(Page{Title: "Setup"}))
	wants := []string{
		`<meta name="viewport" content="width=device-width, initial-scale=1.0">`,
		`<meta http-equiv="Content-Language" content="en">`,
		`<meta name="theme-color" content="#fff">`,
		`<meta name="twitter:card" content="summary_large_image">`,
		`<meta name="twitter:url" content="https://bench-ai.com">`,
		`<meta name="og:title" content="Setup – Bench AI Docs">`,
		`<meta name="apple-mobile-web-app-title" content="Bench AI">`,
		`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`,
		`<link rel="icon" href="/favicon.png" type="image/png" media="(prefers-color-scheme: dark)">`,
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("head missing %s", want)
		}
	}
	if !strings.HasPrefix(got, `<meta name="msapplication-TileColor" content="#fff">`) {
		t.Errorf("head should start with msapplication-TileColor, got %q", got[:60])
	}
}

func TestHeadMatchesHeadTags(t *testing.T) {
	p := Page{Title: "Setup"}
	var want strings.Builder
	for _, tag := range HeadTags(p) {
		want.WriteString("<" + tag.Name)
		for _, a := range tag.Attrs {
			want.WriteString(" " + a.Key + `="` + a.Value + `"`)
		}
		want.WriteString(">")
	}
	if got := renderString(t, Head(p)); got != want.String() {
		t.Errorf("rendered head and HeadTags disagree:\n got %s\nwant %s", got, want.String())
	}
}

func TestLogo(t *testing.T) {
	got := renderString(t, Config().Logo)
	wants := []string{
		`<span style="display:flex;align-items:center;gap:10px">`,
		`<svg width="32" height="32" viewBox="0 0 65 42" fill="none" xmlns="http://www.w3.org/2000/svg">`,
		`<rect y="27.5171" width="65" height="7.96552" fill="#7E6000"></rect>`,
		`<rect x="9.49438" width="46.0112" height="7.24138" fill="#7E6000"></rect>`,
		`</svg>Bench AI Docs</span>`,
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("logo missing %s\ngot %s", want, got)
		}
	}
}

func TestBannerText(t *testing.T) {
	cfg := Config()
	if cfg.Banner.Key != "beta-release" {
		t.Errorf("banner key = %q", cfg.Banner.Key)
	}
	got := renderString(t, cfg.Banner.Text)
	want := `<a href="https://forms.gle/3HDGxeQxJt9CHK9Q9" target="_blank" rel="noreferrer">🎉 Bench AI Beta is Released. Join the Waitlist →</a>`
	if got != want {
		t.Errorf("banner text = %q, want %q", got, want)
	}
}

func TestFooterUsesRenderYear(t *testing.T) {
	year := 2031
	cfg := configWithClock(func() time.Time {
		return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	})
	got := renderString(t, cfg.Footer.Text)
	if !strings.Contains(got, "© 2031 Bench AI, Inc.") {
		t.Errorf("footer missing copyright year: %s", got)
	}
	if !strings.Contains(got, `<svg width="65" height="65"`) {
		t.Errorf("footer missing 65px logo: %s", got)
	}

	year = 2032
	got = renderString(t, cfg.Footer.Text)
	if !strings.Contains(got, "© 2032 Bench AI, Inc.") {
		t.Errorf("footer should read the clock per render: %s", got)
	}
}

func TestScalarOptions(t *testing.T) {
	cfg := Config()
	if cfg.Project.Link != "https://github.com/Bench-ai" {
		t.Errorf("project link = %q", cfg.Project.Link)
	}
	if cfg.DocsRepositoryBase != "https://github.com/Bench-ai/Docs" {
		t.Errorf("docs repository base = %q", cfg.DocsRepositoryBase)
	}
	if cfg.Sidebar.DefaultMenuCollapseLevel != 1 {
		t.Errorf("collapse level = %d", cfg.Sidebar.DefaultMenuCollapseLevel)
	}
	if !cfg.Sidebar.ToggleButton {
		t.Error("toggle button should be enabled")
	}
}

func TestConfigReturnsIndependentValues(t *testing.T) {
	first := Config()
	first.Banner.Key = "changed"
	first.Sidebar.DefaultMenuCollapseLevel = 9

	second := Config()
	if second.Banner.Key != BannerKey || second.Sidebar.DefaultMenuCollapseLevel != 1 {
		t.Errorf("Config() should not share state, got %+v", second.Sidebar)
	}
}

func TestEditURL(t *testing.T) {
	cfg := Config()
	tests := []struct {
		path, want string
	}{
		{"pages/guide/setup.mdx", "https://github.com/Bench-ai/Docs/pages/guide/setup.mdx"},
		{"/pages/index.mdx", "https://github.com/Bench-ai/Docs/pages/index.mdx"},
		{"", "https://github.com/Bench-ai/Docs"},
	}
	for _, tt := range tests {
		if got := cfg.EditURL(tt.path); got != tt.want {
			t.Errorf("EditURL(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
