package benchdocs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bench-ai/benchdocs/views"
)

// Export is the static part of a ThemeConfig with every fragment rendered
// to HTML, for hosts that cannot call into Go. Callbacks are represented by
// their outputs: the title template for non-root routes and the head tags
// for an untitled page.
type Export struct {
	Logo               string        `json:"logo"`
	Project            ExportProject `json:"project"`
	DocsRepositoryBase string        `json:"docsRepositoryBase"`
	TitleTemplate      string        `json:"titleTemplate,omitempty"`
	Head               []Tag         `json:"head"`
	Banner             ExportBanner  `json:"banner"`
	Sidebar            ExportSidebar `json:"sidebar"`
	Footer             ExportFooter  `json:"footer"`
}

// ExportProject is the project link shown in the navbar.
type ExportProject struct {
	Link string `json:"link"`
}

// ExportBanner is the banner key and its rendered HTML text. Hosts keep
// dismissal state under the key.
type ExportBanner struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// ExportSidebar holds the scalar sidebar options. The title component is
// not exported.
type ExportSidebar struct {
	DefaultMenuCollapseLevel int  `json:"defaultMenuCollapseLevel"`
	ToggleButton             bool `json:"toggleButton"`
}

// ExportFooter is the rendered footer HTML. The year is fixed at export
// time.
type ExportFooter struct {
	Text string `json:"text"`
}

// NewExport renders t into an Export.
func NewExport(ctx context.Context, t ThemeConfig) (Export, error) {
	logo, err := views.RenderString(ctx, t.Logo)
	if err != nil {
		return Export{}, fmt.Errorf("benchdocs: render logo: %w", err)
	}
	banner, err := views.RenderString(ctx, t.Banner.Text)
	if err != nil {
		return Export{}, fmt.Errorf("benchdocs: render banner: %w", err)
	}
	footer, err := views.RenderString(ctx, t.Footer.Text)
	if err != nil {
		return Export{}, fmt.Errorf("benchdocs: render footer: %w", err)
	}

	var titleTemplate string
	if t.UseNextSeoProps != nil {
		if seo := t.UseNextSeoProps(Route{AsPath: "/_export"}); seo != nil {
			titleTemplate = seo.TitleTemplate
		}
	}

	return Export{
		Logo:               logo,
		Project:            ExportProject{Link: t.Project.Link},
		DocsRepositoryBase: t.DocsRepositoryBase,
		TitleTemplate:      titleTemplate,
		Head:               HeadTags(Page{}),
		Banner:             ExportBanner{Key: t.Banner.Key, Text: banner},
		Sidebar: ExportSidebar{
			DefaultMenuCollapseLevel: t.Sidebar.DefaultMenuCollapseLevel,
			ToggleButton:             t.Sidebar.ToggleButton,
		},
		Footer: ExportFooter{Text: footer},
	}, nil
}

// WriteExport writes t as indented JSON.
func WriteExport(ctx context.Context, w io.Writer, t ThemeConfig) error {
	exp, err := NewExport(ctx, t)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(exp); err != nil {
		return fmt.Errorf("benchdocs: encode export: %w", err)
	}
	return nil
}
