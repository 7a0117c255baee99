package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func textComponent(body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	})
}

func TestWritePageWritesBodyWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	if err := WritePage(rr, req, http.StatusAccepted, textComponent(`<main id="root">ok</main>`)); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	if !strings.Contains(rr.Body.String(), `id="root"`) {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestWritePageDefaultsStatusAndNilComponent(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WritePage(rr, nil, 0, nil); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}

func TestWritePageRenderFailureReturns500WithoutPartialBody(t *testing.T) {
	t.Parallel()

	failing := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<partial>")
		return errors.New("boom")
	})
	rr := httptest.NewRecorder()
	err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, failing)
	if err == nil {
		t.Fatal("expected error")
	}
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "<partial>") {
		t.Fatalf("partial render leaked: %q", rr.Body.String())
	}
}
