package display

import (
	"encoding/json"
	"fmt"
	"io"
)

// ============================================================================
// NOTEBOOK SINK — Jupyter display_data MIME bundles
// ============================================================================
// Each Display call emits one JSON document in the display_data shape a
// notebook front end renders in place:
//
//	{"data":{"text/latex":"$a$ $\\, = \\,$ $b$"},"metadata":{}}
//
// The kernel side (ZMQ framing, parent headers) belongs to the host
// environment; this sink produces only the bundle.
// ============================================================================

// MIMEBundle is the data/metadata pair of a display_data message.
type MIMEBundle struct {
	Data     map[string]string      `json:"data"`
	Metadata map[string]interface{} `json:"metadata"`
}

// NotebookSink writes display_data MIME bundles to an io.Writer,
// one JSON document per Display call.
type NotebookSink struct {
	w io.Writer
}

// NewNotebookSink creates a NotebookSink.
func NewNotebookSink(w io.Writer) *NotebookSink {
	return &NotebookSink{w: w}
}

// Display emits the typeset source as a text/latex MIME bundle.
func (s *NotebookSink) Display(src string) error {
	bundle := MIMEBundle{
		Data:     map[string]string{"text/latex": src},
		Metadata: map[string]interface{}{},
	}
	out, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("display: marshal bundle: %w", err)
	}
	if _, err := fmt.Fprintln(s.w, string(out)); err != nil {
		return fmt.Errorf("display: write bundle: %w", err)
	}
	return nil
}
