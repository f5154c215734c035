// Package fio matches full names written in the surname / given name /
// patronymic convention.
//
// A claimed name from business records and an extracted name from a
// scanned document rarely agree on form: the document may carry initials
// ("Иванов И.О."), drop the surname, or drop the patronymic. Matching
// walks an ordered hierarchy of acceptable forms, strictest first, and
// stops at the first level both sides can satisfy. A side that supplies
// strictly less information than a level requires fails that level: an
// uncorroborated surname or an asserted-but-unconfirmable patronymic
// initial is a mismatch, not a pass.
package fio

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/constants"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/fieldval"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/nullish"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/textnorm"
)

// Level identifies which rung of the matching hierarchy accepted a pair
// of names.
type Level int

// Matching levels, strictest first. LevelNone means no discrete level
// matched; LevelFuzzy means the similarity fallback decided.
const (
	LevelNone Level = iota
	LevelFull
	LevelExact
	LevelLastFirst
	LevelFirstPatronymic
	LevelLastInitial
	LevelLastInitials
	LevelFuzzy
	LevelBothEmpty
)

// String returns a short identifier for audit logs.
func (l Level) String() string {
	switch l {
	case LevelFull:
		return "full"
	case LevelExact:
		return "exact"
	case LevelLastFirst:
		return "last_first"
	case LevelFirstPatronymic:
		return "first_patronymic"
	case LevelLastInitial:
		return "last_initial"
	case LevelLastInitials:
		return "last_initials"
	case LevelFuzzy:
		return "fuzzy"
	case LevelBothEmpty:
		return "both_empty"
	default:
		return "none"
	}
}

// Components is a parsed name. Initial fields mark whether the
// corresponding part was reduced to an initial letter.
type Components struct {
	Last              string `json:"last,omitempty"`
	First             string `json:"first,omitempty"`
	Patronymic        string `json:"patronymic,omitempty"`
	FirstInitial      bool   `json:"first_initial,omitempty"`
	PatronymicInitial bool   `json:"patronymic_initial,omitempty"`
}

// Diagnostics carries everything the caller needs for audit logging:
// which level matched, how each side parsed, and the fuzzy score when
// the fallback ran. It never influences the match decision.
type Diagnostics struct {
	Level      Level      `json:"level"`
	Claimed    Components `json:"claimed"`
	Extracted  Components `json:"extracted"`
	FuzzyScore float64    `json:"fuzzy_score,omitempty"`
	FuzzyUsed  bool       `json:"fuzzy_used,omitempty"`
}

// Options controls the fuzzy fallback.
type Options struct {
	// EnableFuzzyFallback allows a whole-string similarity match when no
	// discrete level applies.
	EnableFuzzyFallback bool

	// FuzzyThreshold is the minimum similarity score (0..1); zero means
	// the default threshold.
	FuzzyThreshold float64
}

// patronymicSuffixes distinguish "Иван Иванович" (first+patronymic) from
// "Иванов Иван" (last+first) when only two tokens are present. Kazakh
// patronymic markers are included alongside the Russian ones.
var patronymicSuffixes = []string{
	"ович", "евич", "ьевич", "иевич",
	"овна", "евна", "ьевна", "иевна",
	"ич", "ична", "инична",
	"улы", "ұлы", "кызы", "қызы",
}

var lev = metrics.NewLevenshtein()

// normalizeName canonicalizes a name for comparison; ё and е are
// interchangeable in documents.
func normalizeName(s string) string {
	return strings.ReplaceAll(textnorm.Normalize(s), "ё", "е")
}

// isInitialToken reports whether a token is an initial: a single letter,
// optionally followed by a period.
func isInitialToken(tok string) bool {
	tok = strings.TrimSuffix(tok, ".")
	return len([]rune(tok)) == 1
}

// splitInitials breaks a glued initials token like "и.о." into its
// letters. Returns nil when the token is not purely initials.
func splitInitials(tok string) []string {
	parts := strings.Split(tok, ".")
	letters := make([]string, 0, 2)
	for _, p := range parts {
		if p == "" {
			continue
		}
		if len([]rune(p)) != 1 {
			return nil
		}
		letters = append(letters, p)
	}
	if len(letters) == 0 {
		return nil
	}
	return letters
}

func hasPatronymicSuffix(tok string) bool {
	for _, suffix := range patronymicSuffixes {
		if tok != suffix && strings.HasSuffix(tok, suffix) {
			return true
		}
	}
	return false
}

// Parse splits a name string into components.
//
// Tokens follow the last-first-patronymic convention. A token ending in
// a period or consisting of a single letter is an initial; a glued pair
// like "И.О." yields both the first and the patronymic initials. A
// two-token name whose second token carries a patronymic suffix parses
// as first+patronymic with the surname absent.
func Parse(v any) Components {
	s := normalizeName(fieldval.String(v))
	if s == "" {
		return Components{}
	}

	tokens := strings.Fields(s)
	var c Components

	// Surname first unless the whole string is a first+patronymic pair.
	switch len(tokens) {
	case 1:
		tok := tokens[0]
		switch {
		case hasPatronymicSuffix(tok):
			c.Patronymic = tok
		default:
			c.Last = tok
		}
	case 2:
		if hasPatronymicSuffix(tokens[1]) && !hasPatronymicSuffix(tokens[0]) && !isInitialToken(tokens[0]) {
			c.First = tokens[0]
			c.Patronymic = tokens[1]
			return c
		}
		c.Last = tokens[0]
		assignGiven(&c, tokens[1])
	default:
		c.Last = tokens[0]
		assignGiven(&c, tokens[1])
		if c.Patronymic == "" {
			assignGiven(&c, tokens[2])
		}
	}
	return c
}

// assignGiven places a token into the first empty given-name slot,
// expanding glued initials.
func assignGiven(c *Components, tok string) {
	if letters := splitInitials(tok); letters != nil {
		if c.First == "" {
			c.First = letters[0]
			c.FirstInitial = true
			letters = letters[1:]
		}
		if len(letters) > 0 && c.Patronymic == "" {
			c.Patronymic = letters[0]
			c.PatronymicInitial = true
		}
		return
	}

	tok = strings.TrimSuffix(tok, ".")
	if c.First == "" {
		c.First = tok
		return
	}
	if c.Patronymic == "" {
		c.Patronymic = tok
	}
}

// initialOf returns the first letter of a name part.
func initialOf(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return ""
	}
	return string(r[0])
}

// partsAgree compares two name parts where either may be an initial.
func partsAgree(a string, aInitial bool, b string, bInitial bool) bool {
	switch {
	case a == "" || b == "":
		return false
	case !aInitial && !bInitial:
		return a == b
	default:
		return initialOf(a) == initialOf(b)
	}
}

// Match decides whether a claimed and an extracted name denote the same
// person, walking the level hierarchy strictest-first and falling back
// to whole-string similarity only when enabled.
func Match(claimed, extracted any, opts Options) (bool, Diagnostics) {
	if nullish.Is(claimed) || nullish.Is(extracted) {
		both := nullish.Is(claimed) && nullish.Is(extracted)
		d := Diagnostics{Level: LevelNone}
		if both {
			d.Level = LevelBothEmpty
		}
		return both, d
	}

	c := Parse(claimed)
	e := Parse(extracted)
	d := Diagnostics{Level: LevelNone, Claimed: c, Extracted: e}

	if level, ok := matchLevel(c, e); ok {
		d.Level = level
		return true, d
	}

	if opts.EnableFuzzyFallback {
		threshold := opts.FuzzyThreshold
		if threshold == 0 {
			threshold = constants.DefaultFuzzyThreshold
		}
		score := strutil.Similarity(
			normalizeName(fieldval.String(claimed)),
			normalizeName(fieldval.String(extracted)),
			lev,
		)
		d.FuzzyUsed = true
		d.FuzzyScore = score
		if score >= threshold {
			d.Level = LevelFuzzy
			return true, d
		}
	}

	return false, d
}

// matchLevel walks the discrete hierarchy in order and returns the first
// level both sides satisfy.
func matchLevel(c, e Components) (Level, bool) {
	if matchFull(c, e) {
		return LevelFull, true
	}
	// Identical abbreviated spellings carry no written-out side for the
	// lower levels to corroborate against, but equal parses (initial
	// flags included) assert exactly the same name.
	if c == e && c != (Components{}) {
		return LevelExact, true
	}
	if matchLastFirst(c, e) {
		return LevelLastFirst, true
	}
	if matchFirstPatronymic(c, e) {
		return LevelFirstPatronymic, true
	}
	if matchLastInitial(c, e) {
		return LevelLastInitial, true
	}
	if matchLastInitials(c, e) {
		return LevelLastInitials, true
	}
	return LevelNone, false
}

// matchFull: last+first+patronymic on both sides, all written out, all
// equal.
func matchFull(c, e Components) bool {
	return fullTriple(c) && fullTriple(e) &&
		c.Last == e.Last && c.First == e.First && c.Patronymic == e.Patronymic
}

func fullTriple(c Components) bool {
	return c.Last != "" && c.First != "" && c.Patronymic != "" &&
		!c.FirstInitial && !c.PatronymicInitial
}

// matchLastFirst: surname and written-out first name on both sides. A
// patronymic present on both sides must agree; a written-out patronymic
// on only one side is ignored, but a patronymic initial asserted on one
// side with nothing to confirm it against is a mismatch.
func matchLastFirst(c, e Components) bool {
	if c.Last == "" || e.Last == "" || c.First == "" || e.First == "" {
		return false
	}
	if c.FirstInitial || e.FirstInitial {
		return false
	}
	if c.Last != e.Last || c.First != e.First {
		return false
	}
	return patronymicsCompatible(c, e)
}

// matchFirstPatronymic: written-out first name and patronymic on both
// sides, with the surname missing on at least one side. When both
// surnames are present this shape belongs to a stricter level, so the
// pair must not fall through to here with disagreeing surnames.
func matchFirstPatronymic(c, e Components) bool {
	if c.First == "" || e.First == "" || c.Patronymic == "" || e.Patronymic == "" {
		return false
	}
	if c.FirstInitial || e.FirstInitial || c.PatronymicInitial || e.PatronymicInitial {
		return false
	}
	if c.Last != "" && e.Last != "" {
		return false
	}
	return c.First == e.First && c.Patronymic == e.Patronymic
}

// matchLastInitial: equal surnames, first name written out on one side
// and reduced to an initial on the other.
func matchLastInitial(c, e Components) bool {
	if c.Last == "" || e.Last == "" || c.Last != e.Last {
		return false
	}
	if c.First == "" || e.First == "" {
		return false
	}
	if c.FirstInitial == e.FirstInitial {
		return false
	}
	if initialOf(c.First) != initialOf(e.First) {
		return false
	}
	return patronymicsCompatible(c, e)
}

// matchLastInitials: equal surnames, both given parts reduced to
// initials on one side and written out on the other. Only the first-name
// initial letter is binding; glued second initials are too unreliable in
// OCR output to enforce, so the patronymic is corroborated by presence
// on the written-out side.
func matchLastInitials(c, e Components) bool {
	if c.Last == "" || e.Last == "" || c.Last != e.Last {
		return false
	}
	if c.First == "" || e.First == "" || c.Patronymic == "" || e.Patronymic == "" {
		return false
	}
	short, long := c, e
	if e.FirstInitial && e.PatronymicInitial {
		short, long = e, c
	}
	if !short.FirstInitial || !short.PatronymicInitial {
		return false
	}
	if long.FirstInitial || long.PatronymicInitial {
		return false
	}
	return initialOf(short.First) == initialOf(long.First)
}

// patronymicsCompatible applies the asymmetric patronymic rule shared by
// the last+first and last+initial levels: both present must agree (down
// to initials), a written-out patronymic on one side alone is ignored,
// and an uncorroborated patronymic initial fails.
func patronymicsCompatible(c, e Components) bool {
	switch {
	case c.Patronymic != "" && e.Patronymic != "":
		return partsAgree(c.Patronymic, c.PatronymicInitial, e.Patronymic, e.PatronymicInitial)
	case c.Patronymic == "" && e.Patronymic == "":
		return true
	case c.Patronymic != "":
		return !c.PatronymicInitial
	default:
		return !e.PatronymicInitial
	}
}
