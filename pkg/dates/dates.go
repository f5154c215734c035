// Package dates compares calendar dates that arrive in mixed formats.
//
// Client systems submit ISO dates; documents carry the dotted form common
// in Kazakh and Russian paperwork. Both reduce to one ISO canonical form.
// There is no tolerance window: a day off is a different date.
package dates

import (
	"strings"
	"time"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/fieldval"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/nullish"
)

// ISO is the canonical date layout.
const ISO = "2006-01-02"

// layouts are the accepted input formats, tried in order; the first
// match wins.
var layouts = []string{
	"02.01.2006",
	ISO,
}

// Parse attempts to read a date value in one of the accepted layouts.
func Parse(v any) (time.Time, bool) {
	s := strings.TrimSpace(fieldval.String(v))
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Canonical returns the comparison form of a date value.
//
// Nullish input canonicalizes to the empty string. A value matching an
// accepted layout canonicalizes to ISO YYYY-MM-DD. Anything else is kept
// as its case-folded trimmed original: two identical unparsable strings
// still match, and an unparsable string never matches a parsed date.
func Canonical(v any) string {
	if nullish.Is(v) {
		return ""
	}
	if t, ok := Parse(v); ok {
		return t.Format(ISO)
	}
	return strings.ToLower(strings.TrimSpace(fieldval.String(v)))
}

// Compare reports whether two date values denote the same calendar day.
func Compare(a, b any) bool {
	return Canonical(a) == Canonical(b)
}
