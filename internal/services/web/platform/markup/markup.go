// Package markup is a small sticky-error HTML writer used by hand-built
// templ components.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Writer writes HTML fragments and remembers the first write error.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s without escaping. Callers pass only trusted markup.
func (hw *Writer) Raw(parts ...string) {
	for _, s := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, s)
	}
}

// Text writes s escaped for element content.
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (hw *Writer) Attr(name, value string) {
	hw.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// URLAttr writes a URL attribute, replacing unsafe schemes.
func (hw *Writer) URLAttr(name, value string) {
	hw.Attr(name, string(templ.URL(value)))
}

// Classes writes a class attribute from the non-empty names.
func (hw *Writer) Classes(names ...string) {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	if len(kept) == 0 {
		return
	}
	hw.Attr("class", strings.Join(kept, " "))
}

// Component renders c into the same writer.
func (hw *Writer) Component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// Err returns the first write error.
func (hw *Writer) Err() error {
	return hw.err
}
