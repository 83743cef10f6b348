package chain

import (
	"fmt"
	"strings"
)

// ============================================================================
// CHAIN BUILDER — Terms → one typeset-math string → Sink
// ============================================================================
// Entry points: Build(terms, opts...), Display(sink, terms, opts...),
// Eq(sink, terms...).
//
// Pipeline:
//   1. Convert each term to typeset-math source (strings are literal)
//   2. Wrap each source in math delimiters
//   3. (Optional) Validate each fragment
//   4. Join completed fragments with the relation separator
//   5. Display hands the result to the injected Sink
//
// Assembly joins finished fragments. There is no append-then-trim step,
// so the last term can never lose characters to separator arithmetic and
// a single term renders exactly as `$a$`.
// ============================================================================

// Build constructs the typeset chain string for the given terms.
//
// For terms "a" and "b" the result is exactly:
//
//	$a$ $\, = \,$ $b$
//
// Zero terms return ErrNoTerms. Conversion and validation failures abort
// with the failing term's index wrapped in; there is no partial result.
func Build(terms []interface{}, opts ...Option) (string, error) {
	cfg := applyOptions(opts)

	if len(terms) == 0 {
		return "", ErrNoTerms
	}

	frags := make([]string, len(terms))
	for i, term := range terms {
		src, err := convertTerm(cfg, i, term)
		if err != nil {
			return "", fmt.Errorf("chain: term %d: %w", i, err)
		}
		frag := cfg.Left + src + cfg.Right
		if cfg.Validate {
			if err := validateFragment(frag); err != nil {
				return "", fmt.Errorf("chain: term %d: %w", i, err)
			}
		}
		frags[i] = frag
	}

	return strings.Join(frags, cfg.separator()), nil
}

// Display builds the chain and hands it to the sink. The sink invocation
// is the only side effect; any failure surfaces to the caller unretried.
func Display(sink Sink, terms []interface{}, opts ...Option) error {
	src, err := Build(terms, opts...)
	if err != nil {
		return err
	}
	if err := sink.Display(src); err != nil {
		return fmt.Errorf("chain: display: %w", err)
	}
	return nil
}

// Eq is the variadic convenience form with default options:
//
//	chain.Eq(sink, `\boldsymbol{r}`, position)
func Eq(sink Sink, terms ...interface{}) error {
	return Display(sink, terms)
}
