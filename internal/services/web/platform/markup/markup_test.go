package markup

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
)

func TestWriterEscapesTextAndAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	hw := New(&buf)
	hw.Raw("<p")
	hw.Attr("title", `a "quoted" <b>`)
	hw.Classes("", "card", " dark ")
	hw.Raw(">")
	hw.Text("Pizza 4P's & <Co>")
	hw.Raw("</p>")
	if err := hw.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	want := `<p title="a &#34;quoted&#34; &lt;b&gt;" class="card dark">Pizza 4P&#39;s &amp; &lt;Co&gt;</p>`
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestURLAttrRejectsUnsafeScheme(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	hw := New(&buf)
	hw.URLAttr("href", "javascript:alert(1)")
	if got := buf.String(); got == ` href="javascript:alert(1)"` {
		t.Fatalf("unsafe URL written verbatim: %q", got)
	}
}

func TestWriterStopsAfterFirstError(t *testing.T) {
	t.Parallel()

	fw := &failingWriter{}
	hw := New(fw)
	hw.Raw("a")
	hw.Raw("b")
	hw.Component(context.Background(), templ.Raw("c"))
	if !errors.Is(hw.Err(), errWrite) {
		t.Fatalf("Err() = %v, want %v", hw.Err(), errWrite)
	}
	if fw.calls != 1 {
		t.Fatalf("write calls = %d, want 1", fw.calls)
	}
}

func TestComponentRendersNested(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	hw := New(&buf)
	hw.Raw("<div>")
	hw.Component(context.Background(), templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "inner")
		return err
	}))
	hw.Component(context.Background(), nil)
	hw.Raw("</div>")
	if got := buf.String(); got != "<div>inner</div>" {
		t.Fatalf("output = %q", got)
	}
}

var errWrite = errors.New("write failed")

type failingWriter struct{ calls int }

func (f *failingWriter) Write([]byte) (int, error) {
	f.calls++
	return 0, errWrite
}
