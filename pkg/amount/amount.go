// Package amount compares monetary values whose decimal and thousands
// separators are locale-ambiguous.
//
// The same contract sum arrives as "780000,00" from one system and
// "780 000.00" or the bare integer 780000 from another. Canonical reduces
// all well-formed spellings to one decimal string; malformed spellings are
// kept as opaque case-folded text so garbage still compares consistently
// instead of raising.
package amount

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/fieldval"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/nullish"
)

// stripped removes the characters that never carry numeric meaning:
// every Unicode space (thousands groups are often space-separated) and
// any quote glyph wrapped around the number by the extraction layer.
func stripped(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(`"'«»“”„`, r) {
			return -1
		}
		return r
	}, s)
}

// resolveSeparators rewrites s so that at most one '.' remains as the
// decimal point.
//
// When both ',' and '.' occur, the rightmost of the two is the decimal
// point and every occurrence of the other is a thousands separator to be
// discarded. A lone ',' is a decimal point; repeated commas cannot all
// be decimal points, so they are thousands separators. A lone '.' (or
// neither) is left alone.
func resolveSeparators(s string) string {
	comma := strings.LastIndexByte(s, ',')
	period := strings.LastIndexByte(s, '.')

	switch {
	case comma >= 0 && period >= 0:
		if comma > period {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	}
	return s
}

// Canonical returns the comparison form of an amount value.
//
// Nullish input canonicalizes to the empty string. A parsable number
// canonicalizes to its decimal string with trailing zeros dropped, so
// "780000,00", "780 000.00" and the integer 780000 coincide. Anything
// unparsable canonicalizes to its case-folded trimmed original spelling:
// two identical malformed values still match each other, and a malformed
// value never matches a well-formed one.
func Canonical(v any) string {
	if nullish.Is(v) {
		return ""
	}

	raw := fieldval.String(v)
	s := resolveSeparators(stripped(raw))

	d, err := decimal.NewFromString(s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(raw))
	}
	return d.String()
}

// Compare reports whether two amount values denote the same number.
// Both nullish is a match; exactly one nullish is not.
func Compare(a, b any) bool {
	return Canonical(a) == Canonical(b)
}
