// Package pagerender centralizes full-page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	"github.com/a-h/templ"
)

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page into a buffer and writes it with status. Nothing
// reaches w until rendering succeeds, so a failed render becomes a clean 500.
func WritePage(w http.ResponseWriter, r *http.Request, status int, page templ.Component) error {
	if w == nil {
		return nil
	}
	if status <= 0 {
		status = http.StatusOK
	}
	if page == nil {
		page = emptyComponent{}
	}
	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
	}

	var buf bytes.Buffer
	if err := page.Render(ctx, &buf); err != nil {
		log.Printf("render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
