package chain

import (
	"fmt"

	"github.com/go-latex/latex"
)

// ============================================================================
// FRAGMENT VALIDATION — optional pre-display parse
// ============================================================================
// Enabled with WithValidation. A malformed fragment renders as raw source
// (or an error box) in most notebook front ends, so callers who accept
// untrusted LaTeX can reject it here instead.
// ============================================================================

// validateFragment parses a delimited fragment and reports malformed LaTeX.
func validateFragment(frag string) error {
	if _, err := latex.ParseExpr(frag); err != nil {
		return fmt.Errorf("invalid LaTeX fragment %q: %w", frag, err)
	}
	return nil
}
