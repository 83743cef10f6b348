// Package display provides chain.Sink implementations for common output
// surfaces: raw writers, Jupyter MIME bundles, and standalone HTML pages.
package display

import (
	"fmt"
	"io"
)

// ============================================================================
// WRITER SINK — raw markup to an io.Writer
// ============================================================================

// WriterSink writes each typeset string as one line to an io.Writer.
// Useful for terminals, files, and tests.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a WriterSink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Display writes the typeset source followed by a newline.
func (s *WriterSink) Display(src string) error {
	if _, err := fmt.Fprintln(s.w, src); err != nil {
		return fmt.Errorf("display: write: %w", err)
	}
	return nil
}
