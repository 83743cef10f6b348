package chain

import (
	"errors"
	"fmt"
)

// ============================================================================
// CHAIN TYPES — Terms, Sinks, Conversion Contracts
// ============================================================================
// The chain package never owns a notebook. Output goes through Sink —
// an injected capability implemented by the display package (or by tests).
// ============================================================================

// Sink receives a finished typeset-math string for rendering.
//
// Implementations:
//
//	display.WriterSink   — raw markup to an io.Writer
//	display.NotebookSink — Jupyter display_data MIME bundle
//	display.HTMLSink     — self-contained MathJax page
type Sink interface {
	Display(src string) error
}

// TeXMarshaler is the preferred conversion contract for expression values.
// Conversion errors propagate to the caller unmodified.
type TeXMarshaler interface {
	MarshalLaTeX() (string, error)
}

// Latexer is the infallible variant exposed by symbolic kernels
// (gosymbol's Expr, among others). Checked after TeXMarshaler.
type Latexer interface {
	LaTeX() string
}

// ============================================================================
// ERRORS
// ============================================================================

// ErrNoTerms is returned when Build or Display is called with no terms.
// An empty chain is always a caller bug, never a blank display.
var ErrNoTerms = errors.New("chain: no terms to typeset")

// UnsupportedTermError reports a term the conversion facility cannot
// render as typeset-math source.
type UnsupportedTermError struct {
	Index int         // position in the term list
	Value interface{} // the offending value
}

func (e *UnsupportedTermError) Error() string {
	return fmt.Sprintf("cannot convert %T to LaTeX", e.Value)
}
