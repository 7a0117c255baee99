package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrefersQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=vi", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "ja"})
	tag, persist := ResolveTag(req)
	if tag != language.Vietnamese {
		t.Fatalf("tag = %v, want %v", tag, language.Vietnamese)
	}
	if !persist {
		t.Fatal("persist = false, want true")
	}
}

func TestResolveTagFallsBackToCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=xx-invalid!", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "ja"})
	tag, persist := ResolveTag(req)
	if tag != language.Japanese {
		t.Fatalf("tag = %v, want %v", tag, language.Japanese)
	}
	if persist {
		t.Fatal("persist = true, want false")
	}
}

func TestResolveTagUsesAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	req.Header.Set("Accept-Language", "fr-FR;q=0.9, zh-TW;q=0.8")
	tag, _ := ResolveTag(req)
	if tag.String() != "zh-TW" {
		t.Fatalf("tag = %v, want zh-TW", tag)
	}
}

func TestResolveTagDefaults(t *testing.T) {
	t.Parallel()

	tag, persist := ResolveTag(nil)
	if tag != Default() || persist {
		t.Fatalf("ResolveTag(nil) = (%v, %t)", tag, persist)
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	if tag, _ := ResolveTag(req); tag != language.English {
		t.Fatalf("tag = %v, want en", tag)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	SetLanguageCookie(rr, language.Korean)
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "ko" {
		t.Fatalf("cookies = %+v", cookies)
	}
	SetLanguageCookie(nil, language.Korean)
}

func TestBuildLanguageOptions(t *testing.T) {
	t.Parallel()

	options := BuildLanguageOptions(
		Supported(),
		"vi",
		func(tag language.Tag) string { return tag.String() + "-label" },
	)
	if len(options) != 7 {
		t.Fatalf("len(options) = %d, want 7", len(options))
	}
	if !options[4].Active || options[4].Tag != "vi" {
		t.Fatalf("options[4] = %+v, want active vi", options[4])
	}
	if got := ActiveLanguageLabel(options); got != "vi-label" {
		t.Fatalf("ActiveLanguageLabel() = %q", got)
	}
	if got := ActiveLanguageLabel(nil); got != "" {
		t.Fatalf("ActiveLanguageLabel(nil) = %q", got)
	}
}

func TestLanguageKeyLabel(t *testing.T) {
	t.Parallel()

	if got := LanguageKeyLabel(language.MustParse("zh-TW")); got != "nav.lang_zh_tw" {
		t.Fatalf("LanguageKeyLabel(zh-TW) = %q", got)
	}
	if got := LanguageKeyLabel(language.English); got != "nav.lang_en" {
		t.Fatalf("LanguageKeyLabel(en) = %q", got)
	}
}

func TestPrinterResolvesCatalogMessages(t *testing.T) {
	t.Parallel()

	if got := Printer(language.Vietnamese).Sprintf("category.finance"); got != "Tài chính" {
		t.Fatalf("Sprintf(category.finance) = %q", got)
	}
	if got := Printer(language.Russian).Sprintf("nav.lang_en"); got != "English" {
		t.Fatalf("Sprintf(nav.lang_en) = %q, want base fallback", got)
	}
}
