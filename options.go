package fieldrecon

import (
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/fio"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/orgname"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/reconcile"
)

// config collects options before the comparer is built.
type config struct {
	comparerOptions []reconcile.Option
}

// Option configures an Engine.
type Option func(*config) error

// WithFieldKind overrides or extends the field-name dispatch table.
func WithFieldKind(name string, kind reconcile.FieldKind) Option {
	return func(c *config) error {
		c.comparerOptions = append(c.comparerOptions, reconcile.WithKind(name, kind))
		return nil
	}
}

// WithNameFuzzyFallback enables similarity-based matching for full-name
// fields when no discrete level applies. A zero threshold means the
// default.
func WithNameFuzzyFallback(threshold float64) Option {
	return func(c *config) error {
		c.comparerOptions = append(c.comparerOptions, reconcile.WithFioOptions(fio.Options{
			EnableFuzzyFallback: true,
			FuzzyThreshold:      threshold,
		}))
		return nil
	}
}

// WithOrgMatcherOptions rebuilds the organization matcher, e.g. with a
// custom alias table or threshold.
func WithOrgMatcherOptions(opts ...orgname.Option) Option {
	return func(c *config) error {
		m, err := orgname.New(opts...)
		if err != nil {
			return err
		}
		c.comparerOptions = append(c.comparerOptions, reconcile.WithOrgMatcher(m))
		return nil
	}
}
