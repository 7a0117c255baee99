package templates

import (
	sharedi18n "github.com/louisbranch/topbrands/internal/services/shared/i18nhttp"
	webi18n "github.com/louisbranch/topbrands/internal/services/web/i18n"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption = sharedi18n.LanguageOption

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	return sharedi18n.BuildLanguageOptions(webi18n.Supported(), page.Lang, func(tag language.Tag) string {
		return languageLabel(page.Loc, tag)
	})
}

// ActiveLanguageLabel returns the label for the active language selection.
func ActiveLanguageLabel(page PageContext) string {
	return sharedi18n.ActiveLanguageLabel(LanguageOptions(page))
}

// LanguageURL returns the current page URL in another language. Selection
// is carried over; theme stays in its cookie.
func LanguageURL(page PageContext, tag string) string {
	return page.State.WithLanguage(tag).URL(page.path())
}

// languageLabel maps a language tag to its native display label.
func languageLabel(loc Localizer, tag language.Tag) string {
	return T(loc, sharedi18n.LanguageKeyLabel(tag))
}
