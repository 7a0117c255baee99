package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/topbrands/internal/platform/branding"
	"github.com/louisbranch/topbrands/internal/services/web/analytics"
	"github.com/louisbranch/topbrands/internal/services/web/platform/markup"
	"github.com/louisbranch/topbrands/internal/services/web/seo"
)

// StylesheetPath is the embedded stylesheet URL.
const StylesheetPath = "/static/style.css"

// Layout renders the full document around the children in ctx.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := markup.New(w)
		lang := page.Lang
		if lang == "" {
			lang = "en"
		}
		hw.Raw("<!DOCTYPE html>\n<html")
		hw.Attr("lang", lang)
		if page.State.Dark {
			hw.Attr("class", "dark")
		}
		hw.Raw(">\n<head>\n")
		hw.Raw(`<meta charset="utf-8">` + "\n")
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
		hw.Component(ctx, seo.Tags(page.Meta))
		hw.Raw(`<link rel="stylesheet"`)
		hw.URLAttr("href", StylesheetPath)
		hw.Raw(">\n")
		hw.Component(ctx, analytics.Snippet(page.AnalyticsID))
		hw.Raw("</head>\n<body>\n")

		writeHeader(hw, page)

		hw.Raw(`<main id="main">` + "\n")
		hw.Component(ctx, templ.GetChildren(ctx))
		hw.Raw("</main>\n")

		hw.Raw(`<footer class="site-footer"><p>`)
		hw.Text(branding.Copyright())
		hw.Raw("</p></footer>\n</body>\n</html>\n")
		return hw.Err()
	})
}

func writeHeader(hw *markup.Writer, page PageContext) {
	hw.Raw(`<header class="site-header">` + "\n")
	hw.Raw(`<h1 class="site-title"><a`)
	hw.URLAttr("href", HomeURL(page))
	hw.Raw(">")
	hw.Text(T(page.Loc, "site.title"))
	hw.Raw("</a></h1>\n")

	hw.Raw(`<nav class="languages"`)
	hw.Attr("aria-label", T(page.Loc, "nav.language"))
	hw.Attr("title", ActiveLanguageLabel(page))
	hw.Raw(">\n")
	for _, option := range LanguageOptions(page) {
		hw.Raw("<a")
		hw.URLAttr("href", LanguageURL(page, option.Tag))
		hw.Attr("hreflang", option.Tag)
		if option.Active {
			hw.Classes("lang", "active")
			hw.Attr("aria-current", "true")
		} else {
			hw.Classes("lang")
		}
		hw.Raw(">")
		hw.Text(option.Label)
		hw.Raw("</a>\n")
	}
	hw.Raw("</nav>\n")

	hw.Raw(`<a class="theme-toggle"`)
	hw.URLAttr("href", ThemeToggleURL(page))
	hw.Raw(">")
	hw.Text(ThemeToggleLabel(page))
	hw.Raw("</a>\n</header>\n")
}

// DirectoryPage renders the directory inside the layout.
func DirectoryPage(page PageContext, v DirectoryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(page).Render(templ.WithChildren(ctx, Directory(v, page.Loc)), w)
	})
}
