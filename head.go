package benchdocs

import (
	"github.com/a-h/templ"

	"github.com/bench-ai/benchdocs/views"
)

const (
	siteDescription = "Bench AI Docs. Train and Deploy your machine learning models on the cloud fast and simple."
	previewImage    = "/preview.png"
)

// Tag is one element emitted into the document head.
type Tag struct {
	Name  string    `json:"tag"`
	Attrs []TagAttr `json:"attrs"`
}

// TagAttr is a head tag attribute. Order is preserved for export.
type TagAttr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Attr returns the value of the named attribute, or "" when absent.
func (t Tag) Attr(key string) string {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

func meta(kv ...string) Tag { return Tag{Name: "meta", Attrs: attrs(kv)} }
func link(kv ...string) Tag { return Tag{Name: "link", Attrs: attrs(kv)} }

func attrs(kv []string) []TagAttr {
	out := make([]TagAttr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, TagAttr{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

// OGTitle is the og:title content for a page title.
func OGTitle(title string) string {
	if title == "" {
		return SiteTitle
	}
	return title + " – " + SiteTitle
}

// HeadTags returns the head elements for a page in emission order. Only
// og:title depends on the page.
func HeadTags(p Page) []Tag {
	return []Tag{
		meta("name", "msapplication-TileColor", "content", "#fff"),
		meta("name", "theme-color", "content", "#fff"),
		meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		meta("http-equiv", "Content-Language", "content", "en"),
		meta("name", "description", "content", siteDescription),
		meta("name", "og:description", "content", siteDescription),
		meta("name", "twitter:card", "content", "summary_large_image"),
		meta("name", "twitter:image", "content", previewImage),
		meta("name", "twitter:site:domain", "content", HomepageURL),
		meta("name", "twitter:url", "content", HomepageURL),
		meta("name", "og:title", "content", OGTitle(p.Title)),
		meta("name", "og:image", "content", previewImage),
		meta("name", "apple-mobile-web-app-title", "content", "Bench AI"),
		link("rel", "icon", "href", "/favicon.svg", "type", "image/svg+xml"),
		link("rel", "icon", "href", "/favicon.png", "type", "image/png"),
		link("rel", "icon", "href", "/favicon.svg", "type", "image/svg+xml", "media", "(prefers-color-scheme: dark)"),
		link("rel", "icon", "href", "/favicon.png", "type", "image/png", "media", "(prefers-color-scheme: dark)"),
	}
}

// Head renders the head elements for a page. The markup lives in
// views/head.templ and lists the same tags, in the same order, as HeadTags.
func Head(p Page) templ.Component {
	return views.Head(OGTitle(p.Title))
}
