package templates

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for page components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string. Keys with no translation in the active or
// base language fall back to a label derived from the key itself.
func T(loc Localizer, key message.Reference, args ...any) string {
	keyString, isString := key.(string)
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key, args...))
		if value != "" && (!isString || !isUnresolved(value, keyString, args)) {
			return value
		}
	}
	if !isString {
		return ""
	}
	return FallbackLabel(keyString)
}

// isUnresolved reports whether a printer echoed the key back, which is how
// x/text signals a missing message.
func isUnresolved(value, key string, args []any) bool {
	if value == key {
		return true
	}
	return len(args) > 0 && value == fmt.Sprintf(key, args...)
}

// FallbackLabel derives a display label from a dotted key:
// "category.coffee_chains" -> "Coffee Chains".
func FallbackLabel(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if idx := strings.LastIndex(key, "."); idx >= 0 && idx < len(key)-1 {
		key = key[idx+1:]
	}
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	return cases.Title(language.Und).String(key)
}
