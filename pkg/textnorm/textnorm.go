// Package textnorm canonicalizes extracted text for comparison.
//
// Scanned documents and LLM output disagree on glyph choice long before
// they disagree on content: typographic quotes vs guillemets, em dashes vs
// hyphens, non-breaking and thin spaces, soft hyphens injected by layout
// engines. Normalize collapses all of that so equality depends only on
// semantic content. Diacritics are preserved - "Алматы" and "алматы" are
// the same word, "е" and "ё" are not (name matching folds those itself).
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// dashes maps every dash-like glyph the OCR emits to the ASCII hyphen.
var dashes = map[rune]rune{
	'‐': '-', // hyphen
	'‑': '-', // non-breaking hyphen
	'‒': '-', // figure dash
	'–': '-', // en dash
	'—': '-', // em dash
	'―': '-', // horizontal bar
	'−': '-', // minus sign
}

// quotes maps directional and guillemet quote glyphs to the ASCII
// double quote. Single directional quotes are included because OCR
// frequently confuses them with doubles around organization names.
var quotes = map[rune]rune{
	'«':      '"',
	'»':      '"',
	'“': '"', // left double quotation
	'”': '"', // right double quotation
	'„': '"', // double low-9 quotation
	'‘': '"', // left single quotation
	'’': '"', // right single quotation
	'‚': '"', // single low-9 quotation
	'‹': '"', // single left guillemet
	'›': '"', // single right guillemet
}

const softHyphen = '\u00ad'

var folder = cases.Fold()

// Normalize returns the canonical comparison form of s.
//
// Steps, in order: soft hyphens are dropped; dash variants become the
// ASCII hyphen; quote variants become the ASCII double quote; any run of
// Unicode whitespace collapses to a single ASCII space; the result is
// trimmed, case-folded, and NFC-normalized so composed and decomposed
// accent spellings coincide.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range s {
		switch {
		case r == softHyphen:
			continue
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false

		if d, ok := dashes[r]; ok {
			r = d
		} else if q, ok := quotes[r]; ok {
			r = q
		}
		b.WriteRune(r)
	}

	out := strings.TrimSpace(b.String())
	out = folder.String(out)
	return norm.NFC.String(out)
}
