// Package policy resolves document validity windows.
//
// The reconciliation engine itself never consults validity - that is a
// business rule applied by the surrounding pipeline - but the rule shares
// the engine's nullish and date-parsing primitives, so the table and its
// lookup live here next to them. Windows are fixed day counts from the
// issue date, keyed by exact document-type string with a default
// fallback.
package policy

import (
	"embed"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/constants"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/dates"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/errors"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/nullish"
)

//go:embed tables/validity.yaml
var tablesFS embed.FS

// PolicyType is the kind of validity rule. Only fixed-day windows exist
// today.
type PolicyType string

// FixedDays is the fixed-day-window policy type.
const FixedDays PolicyType = "fixed_days"

// Policy is the validity rule resolved for a document type.
type Policy struct {
	Type PolicyType `json:"type" yaml:"type"`
	Days int        `json:"days" yaml:"days"`
}

// validityTable mirrors tables/validity.yaml.
type validityTable struct {
	DefaultDays int `yaml:"default_days"`
	Overrides   []struct {
		DocumentType string `yaml:"document_type"`
		Days         int    `yaml:"days"`
	} `yaml:"overrides"`
}

// Table resolves document types to validity policies. Immutable after
// load and safe for concurrent use.
type Table struct {
	defaultDays int
	overrides   map[string]int
}

// Load reads the embedded validity table.
func Load() (*Table, error) {
	data, err := tablesFS.ReadFile("tables/validity.yaml")
	if err != nil {
		return nil, errors.NewTableError("validity", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a validity table from raw YAML. A table that declares
// no default window falls back to constants.DefaultValidityDays.
func LoadBytes(data []byte) (*Table, error) {
	var table validityTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.NewTableError("validity", err)
	}
	if table.DefaultDays < 0 {
		return nil, errors.NewTableError("validity", errors.New("default_days must not be negative"))
	}
	if table.DefaultDays == 0 {
		table.DefaultDays = constants.DefaultValidityDays
	}

	t := &Table{
		defaultDays: table.DefaultDays,
		overrides:   make(map[string]int, len(table.Overrides)),
	}
	for _, o := range table.Overrides {
		if o.Days <= 0 {
			return nil, errors.NewTableError("validity", errors.New("override days must be positive"))
		}
		t.overrides[o.DocumentType] = o.Days
	}
	return t, nil
}

// Lookup resolves the policy for a document type by exact string match,
// falling back to the default window.
func (t *Table) Lookup(documentType string) Policy {
	if days, ok := t.overrides[documentType]; ok {
		return Policy{Type: FixedDays, Days: days}
	}
	return Policy{Type: FixedDays, Days: t.defaultDays}
}

// ValidOn reports whether a document issued on issueDate is still within
// its validity window on the reference day. The issue date accepts the
// same formats as the date comparator; a nullish or unparsable issue
// date is a validation error, not a verdict.
func (t *Table) ValidOn(documentType string, issueDate any, on time.Time) (bool, error) {
	if nullish.Is(issueDate) {
		return false, errors.NewValidationError("issue_date", issueDate, "is empty")
	}
	issued, ok := dates.Parse(issueDate)
	if !ok {
		return false, errors.NewValidationError("issue_date", issueDate, "matches no accepted date format")
	}

	p := t.Lookup(documentType)
	deadline := issued.AddDate(0, 0, p.Days)
	day := time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(issued) && !day.After(deadline), nil
}
