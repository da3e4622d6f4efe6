package benchdocs

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/bench-ai/benchdocs/views"
)

const (
	sessionName         = "benchdocs_session"
	bannerDismissPrefix = "banner-dismissed:"
)

// BannerBar renders the banner with a dismiss form. The form posts the
// banner key so the host can remember the dismissal for this visitor.
func BannerBar(b BannerConfig, csrfToken string) templ.Component {
	text := b.Text
	if text == nil {
		text = templ.NopComponent
	}
	return views.BannerBar(b.Key, text, csrfToken)
}

// BannerDismissed reports whether the visitor's session has dismissed the
// banner with the given key.
func BannerDismissed(c echo.Context, key string) bool {
	// An unreadable cookie still yields a fresh, empty session.
	sess, _ := session.Get(sessionName, c)
	if sess == nil {
		return false
	}
	dismissed, ok := sess.Values[bannerDismissPrefix+key].(bool)
	return ok && dismissed
}

// dismissBanner records the dismissal. A cookie that no longer decodes,
// for example one signed with a rotated secret, is replaced by the fresh
// session the store hands back alongside the decode error.
func dismissBanner(c echo.Context, key string) error {
	sess, err := session.Get(sessionName, c)
	if sess == nil {
		return err
	}
	if err != nil {
		c.Logger().Warnf("replacing unreadable session cookie: %v", err)
	}
	sess.Values[bannerDismissPrefix+key] = true
	return sess.Save(c.Request(), c.Response())
}
