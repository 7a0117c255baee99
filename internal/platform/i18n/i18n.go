// Package i18n defines the languages the directory is published in and how
// arbitrary language tags map onto them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	tagEnglish            = language.English
	tagVietnamese         = language.Vietnamese
	tagChineseSimplified  = language.MustParse("zh")
	tagChineseTraditional = language.MustParse("zh-TW")
	tagKorean             = language.Korean
	tagRussian            = language.Russian
	tagJapanese           = language.Japanese
)

// supported keeps the header button order.
var supported = []language.Tag{
	tagEnglish,
	tagChineseSimplified,
	tagChineseTraditional,
	tagKorean,
	tagVietnamese,
	tagRussian,
	tagJapanese,
}

var matcher = language.NewMatcher(supported)

var localeByTag = map[language.Tag]string{
	tagEnglish:            "en",
	tagVietnamese:         "vi",
	tagChineseSimplified:  "zh",
	tagChineseTraditional: "zh-TW",
	tagKorean:             "ko",
	tagRussian:            "ru",
	tagJapanese:           "ja",
}

// SupportedTags returns the published languages in display order.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return tagEnglish
}

// ParseTag parses value and maps it onto a supported language. The bool is
// false when value is malformed or too far from every supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return DefaultTag(), false
	}
	return supported[index], true
}

// MatchTags picks the best supported language for a preference list such
// as a parsed Accept-Language header.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index]
}

// LocaleForTag returns the catalog locale id for a supported tag, or the
// default locale for anything else.
func LocaleForTag(tag language.Tag) string {
	if locale, ok := localeByTag[tag]; ok {
		return locale
	}
	if parsed, ok := ParseTag(tag.String()); ok {
		return localeByTag[parsed]
	}
	return localeByTag[DefaultTag()]
}
