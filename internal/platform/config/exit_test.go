package config

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCode1(t *testing.T) {
	var out bytes.Buffer
	code := -1
	restore := stubExit(&out, func(c int) { code = c })
	defer restore()

	Exitf("fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := out.String(); got != "fatal: something broke\n" {
		t.Fatalf("output = %q, want %q", got, "fatal: something broke\n")
	}
}

func stubExit(w io.Writer, fn func(int)) func() {
	prevWriter, prevFunc := exitWriter, exitFunc
	exitWriter, exitFunc = w, fn
	return func() {
		exitWriter, exitFunc = prevWriter, prevFunc
		if exitWriter == nil {
			exitWriter = os.Stderr
		}
	}
}
