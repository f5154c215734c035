// Package orgname decides whether two organization name spellings denote
// the same legal entity.
//
// This comparator is deliberately more permissive than generic text
// comparison: legal forms may be spelled out or abbreviated, quotes come
// and go between the registry and the scanned page, and OCR introduces
// near-duplicate spellings. The alias boundary is data, not code - the
// legal-form table ships as versioned YAML and the positive/negative pair
// fixtures in testdata keep the fuzzy threshold auditable.
package orgname

import (
	"embed"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/goccy/go-yaml"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/constants"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/errors"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/fieldval"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/nullish"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/textnorm"
)

//go:embed tables/legal_forms.yaml
var tablesFS embed.FS

// legalFormsTable mirrors tables/legal_forms.yaml.
type legalFormsTable struct {
	LegalForms []legalFormEntry `yaml:"legal_forms"`
}

type legalFormEntry struct {
	Canonical string   `yaml:"canonical"`
	Aliases   []string `yaml:"aliases"`
}

// Matcher compares organization names using normalization, legal-form
// aliasing, and a fuzzy similarity fallback. Construct once and share;
// a Matcher is immutable after New and safe for concurrent use.
type Matcher struct {
	threshold float64
	// phrase -> canonical abbreviation, longest phrases substituted first
	aliases map[string]string
	// phrases sorted by descending length for deterministic substitution
	phrases []string
	// canonical legal-form abbreviations, droppable for the bare-name pass
	forms map[string]struct{}
	lev   *metrics.Levenshtein
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithThreshold overrides the fuzzy similarity threshold (0..1).
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) error {
		if threshold < 0 || threshold > 1 {
			return errors.NewValidationError("threshold", threshold, "must be within [0, 1]")
		}
		m.threshold = threshold
		return nil
	}
}

// WithAliasTable replaces the embedded legal-form table with raw YAML.
func WithAliasTable(data []byte) Option {
	return func(m *Matcher) error {
		return m.loadTable(data)
	}
}

// New creates a Matcher with the embedded legal-form table and the
// default fuzzy threshold.
func New(opts ...Option) (*Matcher, error) {
	m := &Matcher{
		threshold: constants.DefaultFuzzyThreshold,
		lev:       metrics.NewLevenshtein(),
	}

	data, err := tablesFS.ReadFile("tables/legal_forms.yaml")
	if err != nil {
		return nil, errors.NewTableError("legal_forms", err)
	}
	if err := m.loadTable(data); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Matcher) loadTable(data []byte) error {
	var table legalFormsTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return errors.NewTableError("legal_forms", err)
	}
	if len(table.LegalForms) == 0 {
		return errors.NewTableError("legal_forms", errors.New("no entries"))
	}

	m.aliases = make(map[string]string)
	m.forms = make(map[string]struct{})
	for _, entry := range table.LegalForms {
		canonical := textnorm.Normalize(entry.Canonical)
		m.forms[canonical] = struct{}{}
		for _, alias := range entry.Aliases {
			m.aliases[textnorm.Normalize(alias)] = canonical
		}
	}

	m.phrases = make([]string, 0, len(m.aliases))
	for phrase := range m.aliases {
		m.phrases = append(m.phrases, phrase)
	}
	sort.Slice(m.phrases, func(i, j int) bool {
		if len(m.phrases[i]) != len(m.phrases[j]) {
			return len(m.phrases[i]) > len(m.phrases[j])
		}
		return m.phrases[i] < m.phrases[j]
	})
	return nil
}

// canonical normalizes a name and substitutes spelled-out legal forms
// with their canonical abbreviations.
func (m *Matcher) canonical(s string) string {
	s = textnorm.Normalize(s)
	s = strings.ReplaceAll(s, "ё", "е")
	s = strings.ReplaceAll(s, `"`, "")

	// Substitute on word boundaries only; "llp" must not rewrite the
	// middle of a proper name.
	s = " " + strings.Join(strings.Fields(s), " ") + " "
	for _, phrase := range m.phrases {
		s = strings.ReplaceAll(s, " "+phrase+" ", " "+m.aliases[phrase]+" ")
	}
	return strings.Join(strings.Fields(s), " ")
}

// bare strips canonical legal-form tokens, leaving only the proper name.
func (m *Matcher) bare(canonical string) string {
	fields := strings.Fields(canonical)
	kept := fields[:0]
	for _, f := range fields {
		if _, ok := m.forms[f]; ok {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// Compare reports whether two values name the same organization.
//
// Both nullish is a match; exactly one nullish is not. Otherwise the
// names match when their canonical forms are equal, when their bare
// proper names (legal forms stripped) are equal, or when canonical
// similarity reaches the fuzzy threshold.
func (m *Matcher) Compare(a, b any) bool {
	if nullish.Is(a) || nullish.Is(b) {
		return nullish.Is(a) && nullish.Is(b)
	}

	ca := m.canonical(fieldval.String(a))
	cb := m.canonical(fieldval.String(b))
	if ca == cb {
		return true
	}

	if ba, bb := m.bare(ca), m.bare(cb); ba != "" && ba == bb {
		return true
	}

	return strutil.Similarity(ca, cb, m.lev) >= m.threshold
}

// Threshold returns the fuzzy similarity threshold in effect.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}
