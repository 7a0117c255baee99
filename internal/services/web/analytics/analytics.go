// Package analytics records directory page views. The server never calls an
// external analytics service: views become log lines or trace events, and
// an optional client-side beacon tag is rendered into the page.
package analytics

import (
	"context"
	"io"
	"log"
	"regexp"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/topbrands/internal/services/web/platform/markup"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EventPageView is the span event name for a recorded view.
const EventPageView = "page_view"

// PageView describes one rendered directory page.
type PageView struct {
	Path      string
	Lang      string
	Category  string
	Theme     string
	RequestID string
}

// Recorder records page views. Implementations must not block rendering.
type Recorder interface {
	RecordPageView(ctx context.Context, view PageView)
}

// Nop discards page views.
type Nop struct{}

// RecordPageView implements Recorder.
func (Nop) RecordPageView(context.Context, PageView) {}

// LogRecorder writes one log line per page view.
type LogRecorder struct {
	Logger *log.Logger
}

// RecordPageView implements Recorder.
func (r LogRecorder) RecordPageView(_ context.Context, view PageView) {
	logf := log.Printf
	if r.Logger != nil {
		logf = r.Logger.Printf
	}
	logf(
		"page view path=%s lang=%s category=%s theme=%s request_id=%s",
		orDash(view.Path),
		orDash(view.Lang),
		orDash(view.Category),
		orDash(view.Theme),
		orDash(view.RequestID),
	)
}

// TraceRecorder adds a page_view event to the active span.
type TraceRecorder struct{}

// RecordPageView implements Recorder.
func (TraceRecorder) RecordPageView(ctx context.Context, view PageView) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(EventPageView, trace.WithAttributes(
		attribute.String("page.path", view.Path),
		attribute.String("page.lang", view.Lang),
		attribute.String("page.category", view.Category),
		attribute.String("page.theme", view.Theme),
	))
}

// Multi fans a page view out to several recorders.
type Multi []Recorder

// RecordPageView implements Recorder.
func (m Multi) RecordPageView(ctx context.Context, view PageView) {
	for _, recorder := range m {
		if recorder != nil {
			recorder.RecordPageView(ctx, view)
		}
	}
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

var measurementIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,32}$`)

// ValidMeasurementID reports whether id is safe to embed in the beacon tag.
func ValidMeasurementID(id string) bool {
	return measurementIDPattern.MatchString(id)
}

// Snippet renders the client-side usage beacon for measurementID. It
// renders nothing when the id is empty or malformed.
func Snippet(measurementID string) templ.Component {
	measurementID = strings.TrimSpace(measurementID)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if !ValidMeasurementID(measurementID) {
			return nil
		}
		hw := markup.New(w)
		hw.Raw(`<script async`)
		hw.URLAttr("src", "https://www.googletagmanager.com/gtag/js?id="+measurementID)
		hw.Raw("></script>\n<script>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config','")
		hw.Raw(measurementID)
		hw.Raw("');</script>\n")
		return hw.Err()
	})
}
