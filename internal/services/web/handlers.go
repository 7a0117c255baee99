package web

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/louisbranch/topbrands/internal/services/web/analytics"
	webi18n "github.com/louisbranch/topbrands/internal/services/web/i18n"
	"github.com/louisbranch/topbrands/internal/services/web/platform/pagerender"
	"github.com/louisbranch/topbrands/internal/services/web/seo"
	webtemplates "github.com/louisbranch/topbrands/internal/services/web/templates"
	"github.com/louisbranch/topbrands/internal/services/web/view"
)

const robotsTxt = "User-agent: *\nAllow: /\n"

func (h *handler) handleDirectory(w http.ResponseWriter, r *http.Request) {
	printer, lang := webi18n.ResolveLocalizer(w, r)
	state := view.Decode(r.URL.Query(), h.directory)
	state.Dark = resolveDark(w, r)
	state = state.WithLanguage(lang)

	path := r.URL.Path
	section := ""
	if category, ok := h.directory.Lookup(state.Selected); ok {
		section = webtemplates.T(printer, category.LabelKey())
	}
	page := webtemplates.PageContext{
		Lang:        lang,
		Loc:         printer,
		CurrentPath: path,
		State:       state,
		AnalyticsID: h.config.AnalyticsID,
		Meta: seo.Build(seo.Input{
			BaseURL:     h.config.BaseURL,
			Path:        path,
			State:       state,
			Title:       webtemplates.T(printer, "site.title"),
			Description: webtemplates.T(printer, "site.description"),
			Section:     section,
			Languages:   webi18n.SupportedStrings(),
		}),
	}
	body := webtemplates.BuildDirectoryView(h.directory, state, path, printer)

	w.Header().Set("Vary", "Accept-Language, Cookie")
	if err := pagerender.WritePage(w, r, http.StatusOK, webtemplates.DirectoryPage(page, body)); err != nil {
		log.Printf("write directory page path=%s: %v", path, err)
		return
	}

	h.recorder.RecordPageView(r.Context(), analytics.PageView{
		Path:      path,
		Lang:      lang,
		Category:  state.Selected,
		Theme:     state.Theme(),
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (h *handler) handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, robotsTxt)
}
