package benchdocs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	a := New(SiteConfig{SessionSecret: "test-session-secret"}, Config(), opts...)
	if err := a.Prepare(); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func serve(a *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestPrepareRequiresSessionSecret(t *testing.T) {
	a := New(SiteConfig{}, Config())
	if err := a.Prepare(); err == nil {
		t.Fatal("expected error without SessionSecret")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	a := New(SiteConfig{}, Config())
	if a.Config.Addr != ":3000" {
		t.Errorf("Addr = %q", a.Config.Addr)
	}
	if a.Config.DismissLimit != 30 {
		t.Errorf("DismissLimit = %d", a.Config.DismissLimit)
	}
}

func TestPageShellNonRoot(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/guide/setup?title=Setup", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	wants := []string{
		"<title>Setup – Bench AI Docs</title>",
		`<meta name="og:title" content="Setup – Bench AI Docs">`,
		`data-banner-key="beta-release"`,
		`<span class="cursor-default">Getting Started</span>`,
		`<li data-type="page"><a href="/guide/install">Install</a></li>`,
		`data-collapse-level="1"`,
		`class="sidebar-toggle"`,
		`href="https://github.com/Bench-ai/Docs/pages/guide/setup.mdx"`,
		`href="https://github.com/Bench-ai"`,
		"Bench AI, Inc.",
	}
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %s", want)
		}
	}
	if got := rec.Header().Get("Cache-Control"); got != "private, no-store" {
		t.Errorf("Cache-Control = %q", got)
	}
}

func TestPageShellRootKeepsTitle(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/?title=Bench+AI", nil))
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Bench AI</title>") {
		t.Errorf("root title should be unmodified, body: %s", body)
	}
	if !strings.Contains(body, `<meta name="og:title" content="Bench AI – Bench AI Docs">`) {
		t.Errorf("root og:title still carries the suffix")
	}
}

func TestPageShellUntitledRoot(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Bench AI Docs</title>") {
		t.Errorf("untitled root should fall back to site title")
	}
	if !strings.Contains(body, `<meta name="og:title" content="Bench AI Docs">`) {
		t.Errorf("untitled og:title should be site title")
	}
}

func TestCustomSidebar(t *testing.T) {
	a := newTestApp(t, WithSidebar([]SidebarEntry{
		{Title: "Models", Type: EntrySeparator},
		{Title: "Deploy", Type: EntryDoc, Href: "/deploy"},
	}))
	body := serve(a, httptest.NewRequest(http.MethodGet, "/deploy", nil)).Body.String()
	if !strings.Contains(body, `<span class="cursor-default">Models</span>`) {
		t.Error("custom separator not rendered")
	}
	if strings.Contains(body, "Getting Started") {
		t.Error("default sidebar should be replaced")
	}
}

func TestBannerDismissFlow(t *testing.T) {
	a := newTestApp(t)

	first := serve(a, httptest.NewRequest(http.MethodGet, "/guide/setup", nil))
	if !strings.Contains(first.Body.String(), `data-banner-key="beta-release"`) {
		t.Fatal("banner should show before dismissal")
	}
	csrf := cookieNamed(first, "_csrf")
	if csrf == nil {
		t.Fatal("csrf cookie not set")
	}
	if !strings.Contains(first.Body.String(), `name="_csrf" value="`+csrf.Value+`"`) {
		t.Error("dismiss form should carry the csrf token")
	}

	form := url.Values{"key": {"beta-release"}, "_csrf": {csrf.Value}}
	req := httptest.NewRequest(http.MethodPost, "/banner/dismiss/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "http://example.com/guide/setup")
	req.Header.Set("HX-Request", "true")
	req.AddCookie(csrf)
	dismiss := serve(a, req)
	if dismiss.Code != http.StatusSeeOther {
		t.Fatalf("dismiss status = %d, body %s", dismiss.Code, dismiss.Body.String())
	}
	if loc := dismiss.Header().Get("Location"); loc != "/guide/setup" {
		t.Errorf("Location = %q, want /guide/setup", loc)
	}
	sess := cookieNamed(dismiss, sessionName)
	if sess == nil {
		t.Fatal("session cookie not set")
	}

	req = httptest.NewRequest(http.MethodGet, "/guide/setup", nil)
	req.AddCookie(sess)
	after := serve(a, req)
	if strings.Contains(after.Body.String(), "nextra-banner") {
		t.Error("banner should be hidden after dismissal")
	}
}

func TestBannerDismissReplacesStaleSession(t *testing.T) {
	old := New(SiteConfig{SessionSecret: "rotated-out-secret"}, Config())
	if err := old.Prepare(); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	t.Cleanup(func() { old.Close() })
	stale := dismissVia(t, old, nil)

	a := newTestApp(t)
	dismiss := dismissRequest(t, a, stale)
	if dismiss.Code != http.StatusSeeOther {
		t.Fatalf("dismiss with stale cookie status = %d, body %s", dismiss.Code, dismiss.Body.String())
	}
	fresh := cookieNamed(dismiss, sessionName)
	if fresh == nil || fresh.Value == stale.Value {
		t.Fatal("stale session cookie should be replaced")
	}

	req := httptest.NewRequest(http.MethodGet, "/guide/setup", nil)
	req.AddCookie(fresh)
	if strings.Contains(serve(a, req).Body.String(), "nextra-banner") {
		t.Error("banner should be hidden after dismissal")
	}

	req = httptest.NewRequest(http.MethodGet, "/guide/setup", nil)
	req.AddCookie(stale)
	page := serve(a, req)
	if page.Code != http.StatusOK || !strings.Contains(page.Body.String(), "nextra-banner") {
		t.Errorf("stale cookie page status = %d, banner should still show", page.Code)
	}
}

// dismissVia dismisses the beta banner on a and returns the session cookie.
func dismissVia(t *testing.T, a *App, sess *http.Cookie) *http.Cookie {
	t.Helper()
	rec := dismissRequest(t, a, sess)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("dismiss status = %d", rec.Code)
	}
	c := cookieNamed(rec, sessionName)
	if c == nil {
		t.Fatal("session cookie not set")
	}
	return c
}

func dismissRequest(t *testing.T, a *App, sess *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	csrf := cookieNamed(serve(a, httptest.NewRequest(http.MethodGet, "/", nil)), "_csrf")
	if csrf == nil {
		t.Fatal("csrf cookie not set")
	}
	form := url.Values{"key": {"beta-release"}, "_csrf": {csrf.Value}}
	req := httptest.NewRequest(http.MethodPost, "/banner/dismiss/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(csrf)
	if sess != nil {
		req.AddCookie(sess)
	}
	return serve(a, req)
}

func TestBannerDismissRequiresCSRF(t *testing.T) {
	a := newTestApp(t)
	form := url.Values{"key": {"beta-release"}}
	req := httptest.NewRequest(http.MethodPost, "/banner/dismiss/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(a, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestNewBannerKeyShowsAgain(t *testing.T) {
	a := newTestApp(t)
	first := serve(a, httptest.NewRequest(http.MethodGet, "/", nil))
	csrf := cookieNamed(first, "_csrf")

	form := url.Values{"key": {"old-release"}, "_csrf": {csrf.Value}}
	req := httptest.NewRequest(http.MethodPost, "/banner/dismiss/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(csrf)
	sess := cookieNamed(serve(a, req), sessionName)
	if sess == nil {
		t.Fatal("session cookie not set")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sess)
	if !strings.Contains(serve(a, req).Body.String(), `data-banner-key="beta-release"`) {
		t.Error("dismissing another key should not hide the current banner")
	}
}

func TestThemeJSON(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/theme.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var exp Export
	if err := json.Unmarshal(rec.Body.Bytes(), &exp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if exp.Banner.Key != "beta-release" {
		t.Errorf("banner key = %q", exp.Banner.Key)
	}
	if exp.Sidebar.DefaultMenuCollapseLevel != 1 || !exp.Sidebar.ToggleButton {
		t.Errorf("sidebar = %+v", exp.Sidebar)
	}
	if exp.TitleTemplate != "%s – Bench AI Docs" {
		t.Errorf("title template = %q", exp.TitleTemplate)
	}
	if exp.Project.Link != "https://github.com/Bench-ai" {
		t.Errorf("project link = %q", exp.Project.Link)
	}
	if len(exp.Head) != 17 {
		t.Errorf("head tags = %d, want 17", len(exp.Head))
	}
	if !strings.Contains(exp.Logo, "Bench AI Docs") {
		t.Errorf("logo = %q", exp.Logo)
	}
}

func TestIconRoutes(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		path, contentType string
	}{
		{"/favicon.svg", "image/svg+xml"},
		{"/favicon.png", "image/png"},
		{"/preview.png", "image/png"},
	}
	for _, tt := range tests {
		rec := serve(a, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d", tt.path, rec.Code)
			continue
		}
		if got := rec.Header().Get("Content-Type"); got != tt.contentType {
			t.Errorf("%s Content-Type = %q, want %q", tt.path, got, tt.contentType)
		}
		if got := rec.Header().Get("Cache-Control"); got != "public, max-age=86400" {
			t.Errorf("%s Cache-Control = %q", tt.path, got)
		}
	}
}

func TestBackTo(t *testing.T) {
	tests := []struct {
		referer, want string
	}{
		{"", "/"},
		{"http://example.com/guide/setup", "/guide/setup"},
		{"http://example.com/guide?title=A", "/guide?title=A"},
		{"http://evil.example//other", "/"},
		{"http://example.com/\\evil.example", "/"},
		{"http://example.com/%5Cevil.example", "/"},
		{"/\\evil.example/x", "/"},
		{"::not a url", "/"},
	}
	for _, tt := range tests {
		if got := backTo(tt.referer); got != tt.want {
			t.Errorf("backTo(%q) = %q, want %q", tt.referer, got, tt.want)
		}
	}
}

func TestPageFilePath(t *testing.T) {
	tests := []struct {
		route, want string
	}{
		{"/", "pages/index.mdx"},
		{"/guide/setup", "pages/guide/setup.mdx"},
		{"/guide/", "pages/guide.mdx"},
	}
	for _, tt := range tests {
		if got := pageFilePath(tt.route); got != tt.want {
			t.Errorf("pageFilePath(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}
