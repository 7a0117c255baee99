package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/louisbranch/topbrands/internal/directory"
	"github.com/louisbranch/topbrands/internal/services/web/seo"
	"github.com/louisbranch/topbrands/internal/services/web/view"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func renderPage(t *testing.T, page PageContext) *goquery.Document {
	t.Helper()
	v := BuildDirectoryView(directory.Default(), page.State, page.CurrentPath, page.Loc)
	var buf bytes.Buffer
	if err := DirectoryPage(page, v).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render page: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func testPage(state view.State) PageContext {
	return PageContext{
		Lang:        state.Lang,
		Loc:         message.NewPrinter(language.MustParse(state.Lang)),
		CurrentPath: "/",
		State:       state,
		Meta:        seo.Meta{Title: "Top Brands in Vietnam | TopBrandsVN"},
	}
}

func TestLayoutRendersHeaderAndFooter(t *testing.T) {
	t.Parallel()

	doc := renderPage(t, testPage(view.State{Lang: "en"}))

	if lang, _ := doc.Find("html").Attr("lang"); lang != "en" {
		t.Fatalf("html lang = %q", lang)
	}
	if doc.Find("html").HasClass("dark") {
		t.Fatal("light page rendered with dark class")
	}
	if got := strings.TrimSpace(doc.Find("h1.site-title").Text()); got != "Top Brands in Vietnam" {
		t.Fatalf("site title = %q", got)
	}
	if got := strings.TrimSpace(doc.Find("footer").Text()); got != "© 2025 TopBrandsVN" {
		t.Fatalf("footer = %q", got)
	}
	if got := doc.Find("title").Text(); got != "Top Brands in Vietnam | TopBrandsVN" {
		t.Fatalf("title = %q", got)
	}
	if href, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href"); href != StylesheetPath {
		t.Fatalf("stylesheet = %q", href)
	}
	if doc.Find("main#main section.card").Length() != len(directory.Default().Categories()) {
		t.Fatal("expected every category card inside main")
	}
}

func TestLayoutLanguageLinksUseNativeLabels(t *testing.T) {
	t.Parallel()

	doc := renderPage(t, testPage(view.State{Selected: "telecom", Lang: "vi"}))

	links := doc.Find("nav.languages a")
	var labels []string
	links.Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(s.Text()))
	})
	want := []string{"English", "简", "繁", "한국어", "Tiếng Việt", "Русский", "日本語"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Fatalf("labels = %v, want %v", labels, want)
	}

	active := doc.Find(`nav.languages a[aria-current="true"]`)
	if got := strings.TrimSpace(active.Text()); got != "Tiếng Việt" {
		t.Fatalf("active language = %q", got)
	}
	ko := doc.Find(`nav.languages a[hreflang="ko"]`)
	if href, _ := ko.Attr("href"); href != "/?category=telecom&lang=ko" {
		t.Fatalf("ko href = %q", href)
	}
}

func TestLayoutDarkThemeToggle(t *testing.T) {
	t.Parallel()

	doc := renderPage(t, testPage(view.State{Dark: true, Lang: "en"}))

	if !doc.Find("html").HasClass("dark") {
		t.Fatal("expected dark class on html")
	}
	toggle := doc.Find("a.theme-toggle")
	if href, _ := toggle.Attr("href"); href != "/?lang=en&theme=light" {
		t.Fatalf("toggle href = %q", href)
	}
	if got := strings.TrimSpace(toggle.Text()); got != "Light mode" {
		t.Fatalf("toggle label = %q", got)
	}
}

func TestLayoutOmitsAnalyticsWithoutID(t *testing.T) {
	t.Parallel()

	doc := renderPage(t, testPage(view.State{Lang: "en"}))
	if doc.Find("script").Length() != 0 {
		t.Fatal("expected no scripts without analytics id")
	}

	page := testPage(view.State{Lang: "en"})
	page.AnalyticsID = "G-TEST123"
	doc = renderPage(t, page)
	if doc.Find("script").Length() != 2 {
		t.Fatalf("scripts = %d, want 2", doc.Find("script").Length())
	}
}

func TestLanguageOptionsMarksActive(t *testing.T) {
	t.Parallel()

	options := LanguageOptions(testPage(view.State{Lang: "zh-TW"}))
	if len(options) != 7 {
		t.Fatalf("options = %d, want 7", len(options))
	}
	if got := ActiveLanguageLabel(testPage(view.State{Lang: "zh-TW"})); got != "繁" {
		t.Fatalf("active label = %q, want 繁", got)
	}
}
