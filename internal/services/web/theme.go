package web

import (
	"net/http"

	"github.com/louisbranch/topbrands/internal/services/web/view"
)

// ThemeCookieName stores the theme for the rest of the browser session.
const ThemeCookieName = "tb_theme"

// resolveDark applies an explicit theme query value, persisting it as a
// session cookie, and otherwise reads the cookie.
func resolveDark(w http.ResponseWriter, r *http.Request) bool {
	if dark, ok := view.ParseTheme(r.URL.Query().Get(view.ParamTheme)); ok {
		setThemeCookie(w, dark)
		return dark
	}
	cookie, err := r.Cookie(ThemeCookieName)
	if err != nil {
		return false
	}
	dark, _ := view.ParseTheme(cookie.Value)
	return dark
}

func setThemeCookie(w http.ResponseWriter, dark bool) {
	value := view.ThemeLight
	if dark {
		value = view.ThemeDark
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
