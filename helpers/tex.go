package helpers

import "strings"

// ============================================================================
// NOTATION HELPERS — LaTeX source constructors for mechanics notebooks
// ============================================================================
// Pure string builders for the notation that shows up constantly in
// dynamics work: bold position vectors, frame-fixed unit vectors, and
// Newton overdot time derivatives. Arguments are raw LaTeX source and are
// not validated — use chain.WithValidation for that.
// ============================================================================

// Bold wraps source in \boldsymbol{}, the usual vector notation.
func Bold(src string) string {
	return `\boldsymbol{` + src + `}`
}

// Vec wraps source in \vec{}.
func Vec(src string) string {
	return `\vec{` + src + `}`
}

// Hat wraps source in \hat{}.
func Hat(src string) string {
	return `\hat{` + src + `}`
}

// Dot wraps source in \dot{}, the first time derivative.
func Dot(src string) string {
	return `\dot{` + src + `}`
}

// DDot wraps source in \ddot{}, the second time derivative.
func DDot(src string) string {
	return `\ddot{` + src + `}`
}

// Frac builds \frac{num}{den}.
func Frac(num, den string) string {
	return `\frac{` + num + `}{` + den + `}`
}

// Sub attaches a subscript, bracing multi-character subscripts.
func Sub(base, sub string) string {
	if len(sub) > 1 {
		return base + `_{` + sub + `}`
	}
	return base + `_` + sub
}

// Frame builds a frame-fixed unit vector, e.g. Frame("n", "x") → \hat{n}_x.
func Frame(frame, axis string) string {
	return Sub(Hat(frame), axis)
}

// Terms joins already-delimited sources with raw spaces. Rarely needed —
// chain.Build owns equation joining — but handy for composing a single
// fragment out of parts.
func Terms(parts ...string) string {
	return strings.Join(parts, " ")
}
