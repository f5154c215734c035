// Package nullish classifies values that mean "no information".
//
// OCR and LLM output spell absence many ways: empty strings, literal
// "none"/"null"/"n/a", lone dashes in table cells, NaN leaking out of a
// spreadsheet export. The engine treats the native nil and every such
// spelling as one equivalence class, for every field kind.
package nullish

import (
	"strings"
	"unicode"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/fieldval"
)

// tokens is the set of string spellings that count as absent, keyed by
// their stripped, case-folded form. Initialized once, never mutated.
var tokens = map[string]struct{}{
	"":     {},
	"none": {},
	"null": {},
	"n/a":  {},
	"na":   {},
	"nan":  {},
	"-":    {},
	"–": {}, // en dash
	"—": {}, // em dash
}

// noise holds the quote and punctuation runes stripped from both ends
// before the membership test. A value like «N/A». still reads as absent.
const noise = "\"'«»“”„‘’.,;:"

// Is reports whether a value is semantically absent.
//
// It accepts nil or any scalar; the value is coerced to a string, stripped
// of surrounding whitespace (including non-breaking spaces) and quote or
// punctuation noise, case-folded, and tested against the nullish token
// set. Total function: it never panics, and a sequence value is simply
// not nullish (its elements are judged individually by the list
// comparator).
func Is(v any) bool {
	if v == nil {
		return true
	}
	if fieldval.IsSequence(v) {
		return false
	}

	s := fieldval.String(v)
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(noise, r)
	})
	// A dash-only token is absence; trimming above already removed the
	// punctuation around it, so only re-check the bare rune forms.
	s = strings.ToLower(s)

	if _, ok := tokens[s]; ok {
		return true
	}
	// Whitespace-only input trims to "", caught above; runs of dashes
	// ("--", "—") are still a filler, not data.
	if s != "" && strings.Trim(s, "-–—") == "" {
		return true
	}
	return false
}
