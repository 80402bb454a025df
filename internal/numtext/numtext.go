// Package numtext implements the number-literal recognition rule shared
// by the lexer (deciding whether a raw token extends a pending number
// accumulator) and the evaluator (reinterpreting an Identifier node as a
// numeric literal): try u64, then i64, then f64, in that order, matching
// spec §4.4/§4.6 and the reference's parse_number.
package numtext

import (
	"strconv"

	"github.com/cwbudde/go-xpr/internal/value"
)

// Looks reports whether text parses as one of the three numeric forms.
func Looks(text string) bool {
	_, ok := Parse(text)
	return ok
}

// Parse attempts u64, then i64, then f64, returning the first that
// succeeds. It never reports success for empty text.
func Parse(text string) (*value.Value, bool) {
	if text == "" {
		return nil, false
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return value.Uint64(u), true
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return value.Int64(i), true
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return value.Float64(f), true
	}
	return nil, false
}
