package chain

import (
	"strconv"
)

// ============================================================================
// CONVERSION FACILITY — term value → typeset-math source
// ============================================================================
// Strings are literal source and never pass through here. Everything else
// is an expression value: TeXMarshaler and Latexer are the contracts a
// symbolic kernel exposes; numbers get a decimal rendering. Unsupported
// types fail loudly — a blank fragment in a typeset equation is worse
// than an error.
// ============================================================================

// convertTerm renders one term as typeset-math source (without delimiters).
func convertTerm(cfg *config, index int, v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	if cfg.Convert != nil {
		return cfg.Convert(v)
	}
	return defaultConvert(index, v)
}

// defaultConvert is the built-in conversion facility.
func defaultConvert(index int, v interface{}) (string, error) {
	switch t := v.(type) {
	case TeXMarshaler:
		return t.MarshalLaTeX()
	case Latexer:
		return t.LaTeX(), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32), nil
	}
	return "", &UnsupportedTermError{Index: index, Value: v}
}
