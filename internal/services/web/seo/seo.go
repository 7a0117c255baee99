// Package seo builds the page metadata injected into the document head:
// title, description, canonical link, Open Graph tags, and hreflang
// alternates for every published language.
package seo

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/topbrands/internal/platform/branding"
	"github.com/louisbranch/topbrands/internal/services/web/platform/markup"
	"github.com/louisbranch/topbrands/internal/services/web/view"
)

// XDefault is the hreflang value for the language-neutral URL.
const XDefault = "x-default"

// Alternate is one hreflang link.
type Alternate struct {
	Lang string
	URL  string
}

// Meta is the resolved head metadata for a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Lang        string
	SiteName    string
	OGLocale    string
	Alternates  []Alternate
}

// Input carries what Build needs to describe a page.
type Input struct {
	BaseURL     string
	Path        string
	State       view.State
	Title       string
	Description string
	// Section is the selected category label, if any.
	Section   string
	Languages []string
}

// Build resolves head metadata for a directory page.
func Build(in Input) Meta {
	base := strings.TrimRight(strings.TrimSpace(in.BaseURL), "/")
	path := strings.TrimSpace(in.Path)
	if path == "" {
		path = "/"
	}

	meta := Meta{
		Title:       joinTitle(in.Section, in.Title),
		Description: strings.TrimSpace(in.Description),
		Canonical:   base + in.State.URL(path),
		Lang:        in.State.Lang,
		SiteName:    branding.AppName,
		OGLocale:    strings.ReplaceAll(in.State.Lang, "-", "_"),
	}
	for _, lang := range in.Languages {
		meta.Alternates = append(meta.Alternates, Alternate{
			Lang: lang,
			URL:  base + in.State.WithLanguage(lang).URL(path),
		})
	}
	if len(in.Languages) > 0 {
		meta.Alternates = append(meta.Alternates, Alternate{
			Lang: XDefault,
			URL:  base + in.State.WithLanguage("").URL(path),
		})
	}
	return meta
}

func joinTitle(parts ...string) string {
	kept := make([]string, 0, len(parts)+1)
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	kept = append(kept, branding.AppName)
	return strings.Join(kept, " | ")
}

// Tags renders meta as head elements.
func Tags(meta Meta) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := markup.New(w)
		hw.Raw("<title>")
		hw.Text(meta.Title)
		hw.Raw("</title>\n")
		if meta.Description != "" {
			hw.Raw(`<meta name="description"`)
			hw.Attr("content", meta.Description)
			hw.Raw(">\n")
		}
		if meta.Canonical != "" {
			hw.Raw(`<link rel="canonical"`)
			hw.URLAttr("href", meta.Canonical)
			hw.Raw(">\n")
		}
		for _, alt := range meta.Alternates {
			hw.Raw(`<link rel="alternate"`)
			hw.Attr("hreflang", alt.Lang)
			hw.URLAttr("href", alt.URL)
			hw.Raw(">\n")
		}
		property(hw, "og:title", meta.Title)
		property(hw, "og:description", meta.Description)
		property(hw, "og:type", "website")
		property(hw, "og:url", meta.Canonical)
		property(hw, "og:site_name", meta.SiteName)
		property(hw, "og:locale", meta.OGLocale)
		return hw.Err()
	})
}

func property(hw *markup.Writer, name, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	hw.Raw(`<meta`)
	hw.Attr("property", name)
	hw.Attr("content", content)
	hw.Raw(">\n")
}
