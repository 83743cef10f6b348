package display

import (
	"fmt"
	"io"
	"strings"
)

// ============================================================================
// HTML SINK — self-contained MathJax page
// ============================================================================
// Accumulates every Display call into one HTML document. The header is
// written on first use; Close finishes the document. Fragments keep their
// math delimiters — MathJax's tex-chtml loader picks up both $...$ and
// $$...$$ with the inlineMath config below.
// ============================================================================

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>eqtex</title>
<script>
MathJax = { tex: { inlineMath: [["$", "$"]] } };
</script>
<script src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"></script>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTMLSink renders typeset strings into a standalone MathJax HTML page.
// Call Close after the last Display to finish the document.
type HTMLSink struct {
	w       io.Writer
	started bool
	closed  bool
}

// NewHTMLSink creates an HTMLSink.
func NewHTMLSink(w io.Writer) *HTMLSink {
	return &HTMLSink{w: w}
}

// Display appends one equation paragraph to the page.
func (s *HTMLSink) Display(src string) error {
	if s.closed {
		return fmt.Errorf("display: sink already closed")
	}
	if !s.started {
		if _, err := io.WriteString(s.w, htmlHeader); err != nil {
			return fmt.Errorf("display: write header: %w", err)
		}
		s.started = true
	}
	if _, err := fmt.Fprintf(s.w, "<p>%s</p>\n", escapeTex(src)); err != nil {
		return fmt.Errorf("display: write equation: %w", err)
	}
	return nil
}

// Close finishes the HTML document. Closing an unused sink writes a
// complete (empty) page so the output is always valid HTML.
func (s *HTMLSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.started {
		if _, err := io.WriteString(s.w, htmlHeader); err != nil {
			return fmt.Errorf("display: write header: %w", err)
		}
	}
	if _, err := io.WriteString(s.w, htmlFooter); err != nil {
		return fmt.Errorf("display: write footer: %w", err)
	}
	return nil
}

// escapeTex escapes the two characters that break HTML embedding.
// LaTeX source must otherwise pass through untouched for MathJax.
func escapeTex(src string) string {
	src = strings.ReplaceAll(src, "&", "&amp;")
	src = strings.ReplaceAll(src, "<", "&lt;")
	return src
}
