package benchdocs

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/bench-ai/benchdocs/views"
)

// Site-wide strings shared by the title template, head tags and logo.
const (
	SiteTitle     = "Bench AI Docs"
	TitleTemplate = "%s – " + SiteTitle
	ProjectLink   = "https://github.com/Bench-ai"
	RepoBase      = "https://github.com/Bench-ai/Docs"
	HomepageURL   = "https://bench-ai.com"
	BannerKey     = "beta-release"
	waitlistURL   = "https://forms.gle/3HDGxeQxJt9CHK9Q9"
)

// Config returns the Bench AI docs theme. Each call builds a fresh value.
func Config() ThemeConfig {
	return configWithClock(time.Now)
}

func configWithClock(now func() time.Time) ThemeConfig {
	return ThemeConfig{
		Logo: views.Logo(SiteTitle),
		Project: ProjectConfig{
			Link: ProjectLink,
		},
		DocsRepositoryBase: RepoBase,
		UseNextSeoProps:    useNextSeoProps,
		Head:               Head,
		Banner: BannerConfig{
			Key:  BannerKey,
			Text: views.BannerLink(waitlistURL, "🎉 Bench AI Beta is Released. Join the Waitlist →"),
		},
		Sidebar: SidebarConfig{
			TitleComponent:           SidebarTitle,
			DefaultMenuCollapseLevel: 1,
			ToggleButton:             true,
		},
		Footer: FooterConfig{
			Text: footerText(now),
		},
	}
}

// The root page keeps its own title; everything else gets the suffix.
func useNextSeoProps(r Route) *SeoProps {
	if r.AsPath == "/" {
		return nil
	}
	return &SeoProps{TitleTemplate: TitleTemplate}
}

// SidebarTitle renders a sidebar entry title. Separators are section labels,
// not links, so they get a non-interactive wrapper.
func SidebarTitle(title templ.Component, typ EntryType) templ.Component {
	if typ == EntrySeparator {
		return views.SeparatorTitle(title)
	}
	return title
}

// footerText reads the clock at render time so a long-running host never
// shows a stale year.
func footerText(now func() time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return views.FooterText(HomepageURL, now().Year()).Render(ctx, w)
	})
}
