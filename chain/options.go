package chain

// ============================================================================
// CHAIN OPTIONS — Functional options for Build() and Display()
// ============================================================================

// Option configures chain behavior via functional options pattern.
type Option func(*config)

type config struct {
	Relation  string                            // relation macro joined between terms ("=", `\approx`, ...)
	Separator string                            // verbatim separator override; empty → derived from Relation
	Left      string                            // opening math delimiter
	Right     string                            // closing math delimiter
	Validate  bool                              // parse each fragment before display
	Convert   func(interface{}) (string, error) // replaces the non-string conversion facility
}

// WithRelation sets the relation joined between terms.
// Default is "=": two terms render as `$a$ $\, = \,$ $b$`.
// Any math-mode relation works, e.g. `\approx` or `\equiv`.
func WithRelation(rel string) Option {
	return func(c *config) {
		c.Relation = rel
	}
}

// WithSeparator overrides the separator verbatim, including any
// surrounding spacing. Takes precedence over WithRelation.
func WithSeparator(sep string) Option {
	return func(c *config) {
		c.Separator = sep
	}
}

// WithDelimiters sets the math delimiters wrapped around each fragment.
// Default is "$" on both sides.
func WithDelimiters(left, right string) Option {
	return func(c *config) {
		c.Left = left
		c.Right = right
	}
}

// WithDisplayMath switches fragments to display-math delimiters ("$$").
func WithDisplayMath() Option {
	return func(c *config) {
		c.Left = "$$"
		c.Right = "$$"
	}
}

// WithValidation parses every fragment before display and rejects
// malformed LaTeX with an error instead of handing it to the sink.
func WithValidation() Option {
	return func(c *config) {
		c.Validate = true
	}
}

// WithConverter replaces the conversion facility used for non-string
// terms. String terms remain literal source regardless.
func WithConverter(fn func(v interface{}) (string, error)) Option {
	return func(c *config) {
		c.Convert = fn
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Relation: "=",
		Left:     "$",
		Right:    "$",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// separator returns the effective separator between fragments.
func (c *config) separator() string {
	if c.Separator != "" {
		return c.Separator
	}
	return ` $\, ` + c.Relation + ` \,$ `
}
