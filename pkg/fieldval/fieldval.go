// Package fieldval coerces untyped extracted field values into the scalar
// string form the comparators operate on.
//
// Field maps arrive from two very different producers: a client-submitted
// data adapter (JSON decoded into map[string]any) and an LLM extraction
// pipeline. Both deliver values as nil, scalar strings, numbers, or
// sequences of such scalars. This package is the single place where those
// shapes are flattened; comparators never inspect Go types themselves.
package fieldval

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// String coerces a scalar value to its string spelling.
//
// Numbers are rendered without exponent notation and without a trailing
// ".0" so that the integer 780000 and the string "780000" spell the same.
// nil coerces to the empty string. Sequences are not accepted here; use
// Scalars for list-shaped values.
func String(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case int:
		return strconv.Itoa(s)
	case int8:
		return strconv.FormatInt(int64(s), 10)
	case int16:
		return strconv.FormatInt(int64(s), 10)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint:
		return strconv.FormatUint(uint64(s), 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float32:
		return formatFloat(float64(s))
	case float64:
		return formatFloat(s)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatFloat renders a float the shortest way that round-trips.
// JSON decoding gives every number as float64, so "780000" arrives
// as 780000.0 and must not grow a fractional part here.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// IsSequence reports whether the value is list-shaped rather than scalar.
func IsSequence(v any) bool {
	switch v.(type) {
	case []any, []string, []int, []float64:
		return true
	default:
		return false
	}
}

// Scalars flattens a value into its scalar string elements.
//
// Sequences yield one element per entry; scalars (including nil) yield a
// single element. No trimming or nullish filtering happens here - callers
// decide what an empty element means for their field kind.
func Scalars(v any) []string {
	switch seq := v.(type) {
	case []any:
		out := make([]string, 0, len(seq))
		for _, el := range seq {
			out = append(out, String(el))
		}
		return out
	case []string:
		out := make([]string, len(seq))
		copy(out, seq)
		return out
	case []int:
		out := make([]string, 0, len(seq))
		for _, el := range seq {
			out = append(out, strconv.Itoa(el))
		}
		return out
	case []float64:
		out := make([]string, 0, len(seq))
		for _, el := range seq {
			out = append(out, formatFloat(el))
		}
		return out
	default:
		return []string{String(v)}
	}
}
