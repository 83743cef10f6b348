// Package eqtex typesets chains of equations for interactive Go notebooks.
//
// Usage:
//
//	import (
//	    "github.com/eqtex-org/eqtex/chain"
//	    "github.com/eqtex-org/eqtex/display"
//	)
//
//	sink := display.NewNotebookSink(os.Stdout)
//	err := chain.Eq(sink, `\boldsymbol{r}`, position)
//
// Each term is either literal LaTeX source (a string) or a symbolic
// expression value convertible to LaTeX. The chain package joins the
// terms with a spaced relation (default "=") into a single typeset-math
// string and hands it to a display sink owned by the caller.
//
// Rendering is handled separately by the display package. The chain
// package never touches a notebook directly — all output goes through
// the injected Sink, so the core is testable without a live kernel.
package eqtex
