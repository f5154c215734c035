// Package reconcile orchestrates per-field comparison of two extracted
// field maps.
//
// One map comes from client-submitted business records, the other from
// the OCR+LLM extraction pipeline. The orchestrator builds the union of
// field names, routes each field to the comparator for its declared
// semantic kind, and assembles an ordered verdict list. It is a pure
// function of its two inputs: no I/O, no shared mutable state, safe to
// call concurrently.
package reconcile

import (
	"sort"
	"strings"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/amount"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/dates"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/errors"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/fieldval"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/fio"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/listset"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/nullish"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/orgname"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/textnorm"
)

// Comparer reconciles two field maps into a verdict list.
type Comparer interface {
	// Compare judges every field in the union of both maps' keys. A key
	// present on one side only is compared against an implicit nullish
	// value. The verdict list contains every union key exactly once, in
	// a stable order. A nil map is a contract violation.
	Compare(claimed, extracted map[string]any) (Verdicts, error)

	// Kind reports the comparator kind a field name resolves to.
	Kind(name string) FieldKind
}

// comparer is the default implementation of Comparer.
type comparer struct {
	kinds      map[string]FieldKind
	org        *orgname.Matcher
	fioOptions fio.Options
}

// Option configures a Comparer.
type Option func(*comparer) error

// WithKind overrides or extends the field-name dispatch table.
func WithKind(name string, kind FieldKind) Option {
	return func(c *comparer) error {
		c.kinds[name] = kind
		return nil
	}
}

// WithOrgMatcher replaces the organization matcher, e.g. to tighten the
// fuzzy threshold or load a custom alias table.
func WithOrgMatcher(m *orgname.Matcher) Option {
	return func(c *comparer) error {
		if m == nil {
			return errors.NewValidationError("org_matcher", nil, "must not be nil")
		}
		c.org = m
		return nil
	}
}

// WithFioOptions sets the fuzzy-fallback policy for full-name fields.
func WithFioOptions(opts fio.Options) Option {
	return func(c *comparer) error {
		if opts.FuzzyThreshold < 0 || opts.FuzzyThreshold > 1 {
			return errors.NewValidationError("fuzzy_threshold", opts.FuzzyThreshold, "must be within [0, 1]")
		}
		c.fioOptions = opts
		return nil
	}
}

// New creates a Comparer with the default dispatch table, the embedded
// organization alias table, and fuzzy fallback disabled for names.
func New(opts ...Option) (Comparer, error) {
	kinds := make(map[string]FieldKind, len(DefaultKinds))
	for name, kind := range DefaultKinds {
		kinds[name] = kind
	}

	org, err := orgname.New()
	if err != nil {
		return nil, err
	}

	c := &comparer{
		kinds: kinds,
		org:   org,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Kind reports the comparator kind a field name resolves to.
func (c *comparer) Kind(name string) FieldKind {
	if kind, ok := c.kinds[name]; ok {
		return kind
	}
	return KindGenericText
}

// Compare judges every field in the union of both maps' keys.
func (c *comparer) Compare(claimed, extracted map[string]any) (Verdicts, error) {
	if claimed == nil {
		return nil, errors.NewContractError("Compare", "claimed field map is nil")
	}
	if extracted == nil {
		return nil, errors.NewContractError("Compare", "extracted field map is nil")
	}

	names := unionKeys(claimed, extracted)
	verdicts := make(Verdicts, 0, len(names))
	for _, name := range names {
		verdicts = append(verdicts, FieldVerdict{
			Name:      name,
			Identical: c.compareField(name, claimed[name], extracted[name]),
		})
	}
	return verdicts, nil
}

// compareField routes one field to its comparator. A key missing on one
// side arrives here as nil, which every comparator treats as nullish.
func (c *comparer) compareField(name string, a, b any) bool {
	switch c.Kind(name) {
	case KindDate:
		return dates.Compare(a, b)
	case KindAmount:
		return amount.Compare(a, b)
	case KindCurrencySet:
		return listset.CompareCurrencies(a, b)
	case KindListLike:
		return listset.Compare(a, b)
	case KindOrganization:
		return c.org.Compare(a, b)
	case KindFio:
		ok, _ := fio.Match(a, b, c.fioOptions)
		return ok
	default:
		return compareGenericText(a, b)
	}
}

// compareGenericText is the fallback comparator: nullish-aware,
// case-insensitive, glyph-normalized string equality.
func compareGenericText(a, b any) bool {
	if nullish.Is(a) || nullish.Is(b) {
		return nullish.Is(a) && nullish.Is(b)
	}
	return textnorm.Normalize(scalarString(a)) == textnorm.Normalize(scalarString(b))
}

// scalarString flattens a value for text comparison; a sequence reads
// the same as its comma-separated spelling.
func scalarString(v any) string {
	if fieldval.IsSequence(v) {
		return strings.Join(fieldval.Scalars(v), ", ")
	}
	return fieldval.String(v)
}

// unionKeys returns every key present in either map exactly once, in a
// stable order: the claimed map's keys sorted, then keys unique to the
// extracted map sorted. Go maps carry no insertion order, so sorting is
// what makes repeated runs deterministic.
func unionKeys(claimed, extracted map[string]any) []string {
	names := make([]string, 0, len(claimed)+len(extracted))
	for name := range claimed {
		names = append(names, name)
	}
	sort.Strings(names)

	extra := make([]string, 0, len(extracted))
	for name := range extracted {
		if _, ok := claimed[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	return append(names, extra...)
}
