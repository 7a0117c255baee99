package templates

import (
	"github.com/louisbranch/topbrands/internal/services/web/seo"
	"github.com/louisbranch/topbrands/internal/services/web/view"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	State       view.State
	Meta        seo.Meta
	AnalyticsID string
}

func (p PageContext) path() string {
	if p.CurrentPath == "" {
		return "/"
	}
	return p.CurrentPath
}

// HomeURL returns the unselected directory URL in the current language.
func HomeURL(page PageContext) string {
	return page.State.ClearSelection().URL(page.path())
}

// ThemeToggleURL returns the URL that flips the theme.
func ThemeToggleURL(page PageContext) string {
	return page.State.ToggleTheme().ThemeURL(page.path())
}

// ThemeToggleLabel names the theme the toggle switches to.
func ThemeToggleLabel(page PageContext) string {
	if page.State.Dark {
		return T(page.Loc, "theme.light")
	}
	return T(page.Loc, "theme.dark")
}
