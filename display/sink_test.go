package display

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

// ============================================================================
// SINK TESTS
// ============================================================================
// Tests cover:
//   1. WriterSink — line output
//   2. NotebookSink — display_data MIME bundle shape
//   3. HTMLSink — document structure, escaping, Close semantics
// ============================================================================

const sample = `$a$ $\, = \,$ $b$`

// ============================================================================
// 1. WRITER SINK
// ============================================================================

func TestWriterSinkWritesLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	if err := sink.Display(sample); err != nil {
		t.Fatalf("Display failed: %v", err)
	}
	if got := buf.String(); got != sample+"\n" {
		t.Errorf("output = %q, want %q", got, sample+"\n")
	}
}

// ============================================================================
// 2. NOTEBOOK SINK
// ============================================================================

func TestNotebookSinkBundleShape(t *testing.T) {
	var buf bytes.Buffer
	sink := NewNotebookSink(&buf)

	if err := sink.Display(sample); err != nil {
		t.Fatalf("Display failed: %v", err)
	}

	var got MIMEBundle
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	want := MIMEBundle{
		Data:     map[string]string{"text/latex": sample},
		Metadata: map[string]interface{}{},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("bundle mismatch: %v", diff)
	}
}

func TestNotebookSinkOneDocumentPerDisplay(t *testing.T) {
	var buf bytes.Buffer
	sink := NewNotebookSink(&buf)

	for _, src := range []string{"$a$", "$b$", "$c$"} {
		if err := sink.Display(src); err != nil {
			t.Fatalf("Display(%q) failed: %v", src, err)
		}
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d JSON documents, want 3", len(lines))
	}
	for i, line := range lines {
		var bundle MIMEBundle
		if err := json.Unmarshal([]byte(line), &bundle); err != nil {
			t.Errorf("document %d is not valid JSON: %v", i, err)
		}
	}
}

// ============================================================================
// 3. HTML SINK
// ============================================================================

func TestHTMLSinkDocumentStructure(t *testing.T) {
	var buf bytes.Buffer
	sink := NewHTMLSink(&buf)

	if err := sink.Display("$a$"); err != nil {
		t.Fatalf("Display failed: %v", err)
	}
	if err := sink.Display("$b$"); err != nil {
		t.Fatalf("Display failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out := buf.String()
	if n := strings.Count(out, "<!DOCTYPE html>"); n != 1 {
		t.Errorf("header written %d times, want 1", n)
	}
	if !strings.HasSuffix(out, "</html>\n") {
		t.Errorf("document not closed: %q", out[len(out)-20:])
	}
	if !strings.Contains(out, "<p>$a$</p>") || !strings.Contains(out, "<p>$b$</p>") {
		t.Errorf("equations missing from document:\n%s", out)
	}
	if !strings.Contains(out, "mathjax") {
		t.Error("MathJax loader missing from document")
	}
}

func TestHTMLSinkEscapesMarkupBreakers(t *testing.T) {
	var buf bytes.Buffer
	sink := NewHTMLSink(&buf)

	if err := sink.Display(`$a < b \text{ & } c$`); err != nil {
		t.Fatalf("Display failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `$a &lt; b \text{ &amp; } c$`) {
		t.Errorf("fragment not escaped:\n%s", out)
	}
}

func TestHTMLSinkCloseWithoutDisplay(t *testing.T) {
	var buf bytes.Buffer
	sink := NewHTMLSink(&buf)

	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<!DOCTYPE html>") || !strings.HasSuffix(out, "</html>\n") {
		t.Errorf("empty page is not a complete document:\n%s", out)
	}
}

func TestHTMLSinkDisplayAfterClose(t *testing.T) {
	var buf bytes.Buffer
	sink := NewHTMLSink(&buf)

	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := sink.Display("$a$"); err == nil {
		t.Error("expected error for Display after Close")
	}
	if err := sink.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
