// Package listset compares fields whose values may be delivered either as
// a comma-separated string or as a native sequence.
//
// Both shapes reduce to a set of normalized tokens: order and duplicates
// are irrelevant, nullish tokens vanish, and for enumerated fields like
// currency codes tokens outside the legal vocabulary vanish too. An empty
// set only ever equals another empty set - "no real values" is never
// silently the same as "some real values".
package listset

import (
	"strings"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/constants"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/fieldval"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/nullish"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/textnorm"
)

// CurrencyVocabulary is the set of ISO 4217 codes the extraction pipeline
// is expected to emit, in normalized (lower-case) form. Codes outside the
// vocabulary are treated as absent rather than as data.
var CurrencyVocabulary = NewVocabulary(
	"kzt", "usd", "eur", "rub", "gbp", "cny", "chf", "jpy",
	"krw", "try", "aed", "inr", "uzs", "kgs", "byn",
)

// Vocabulary is a fixed legal token set for enumerated fields.
type Vocabulary map[string]struct{}

// NewVocabulary builds a Vocabulary from normalized token spellings.
func NewVocabulary(tokens ...string) Vocabulary {
	v := make(Vocabulary, len(tokens))
	for _, t := range tokens {
		v[textnorm.Normalize(t)] = struct{}{}
	}
	return v
}

// Contains reports whether a normalized token is legal.
func (v Vocabulary) Contains(token string) bool {
	_, ok := v[token]
	return ok
}

// Option configures a comparison.
type Option func(*options)

type options struct {
	vocabulary Vocabulary
}

// WithVocabulary restricts tokens to a fixed legal set; tokens outside it
// are dropped before comparison.
func WithVocabulary(v Vocabulary) Option {
	return func(o *options) {
		o.vocabulary = v
	}
}

// Tokens reduces a field value to its set of normalized real tokens.
//
// Strings split on commas; sequences contribute one token per element.
// Tokens that are nullish are dropped, survivors go through textnorm, and
// when a vocabulary is set, tokens outside it are dropped as well.
func Tokens(v any, opts ...Option) map[string]struct{} {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var raw []string
	if fieldval.IsSequence(v) {
		raw = fieldval.Scalars(v)
	} else if !nullish.Is(v) {
		raw = strings.Split(fieldval.String(v), constants.ListSeparator)
	}

	set := make(map[string]struct{}, len(raw))
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		if nullish.Is(tok) {
			continue
		}
		tok = textnorm.Normalize(tok)
		if o.vocabulary != nil && !o.vocabulary.Contains(tok) {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// Compare reports whether two list-like values contain the same set of
// real tokens. Empty-vs-empty matches (consistent with nullish pairs
// elsewhere); empty-vs-nonempty never does.
func Compare(a, b any, opts ...Option) bool {
	sa := Tokens(a, opts...)
	sb := Tokens(b, opts...)

	if len(sa) != len(sb) {
		return false
	}
	for tok := range sa {
		if _, ok := sb[tok]; !ok {
			return false
		}
	}
	return true
}

// CompareCurrencies compares two currency-code fields against the fixed
// ISO vocabulary.
func CompareCurrencies(a, b any) bool {
	return Compare(a, b, WithVocabulary(CurrencyVocabulary))
}
