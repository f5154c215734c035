package policy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/internal/policy"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/constants"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/errors"
)

func TestLookup(t *testing.T) {
	table, err := policy.Load()
	require.NoError(t, err)

	p := table.Lookup("power_of_attorney")
	assert.Equal(t, policy.FixedDays, p.Type)
	assert.Equal(t, 365, p.Days)

	// Unknown types fall back to the default window.
	def := table.Lookup("unknown_document")
	assert.Equal(t, policy.FixedDays, def.Type)
	assert.Equal(t, 30, def.Days)

	// Lookup is exact-string; near misses get the default.
	assert.Equal(t, def, table.Lookup("Power_Of_Attorney"))
}

func TestValidOn(t *testing.T) {
	table, err := policy.Load()
	require.NoError(t, err)

	on := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		docType   string
		issueDate any
		want      bool
	}{
		{"inside window", "salary_certificate", "15.06.2025", true},
		{"last valid day", "salary_certificate", "01.06.2025", true},
		{"expired", "salary_certificate", "01.05.2025", false},
		{"long window", "power_of_attorney", "2024-08-01", true},
		{"issued in the future", "salary_certificate", "02.07.2025", false},
		{"iso format", "bank_statement", "2025-05-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.ValidOn(tt.docType, tt.issueDate, on)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidOnBadIssueDate(t *testing.T) {
	table, err := policy.Load()
	require.NoError(t, err)

	on := time.Now()

	_, err = table.ValidOn("salary_certificate", nil, on)
	assert.True(t, errors.IsValidationError(err))

	_, err = table.ValidOn("salary_certificate", "-", on)
	assert.True(t, errors.IsValidationError(err))

	_, err = table.ValidOn("salary_certificate", "June 2025", on)
	assert.True(t, errors.IsValidationError(err))
}

func TestLoadBytesRejectsBadTables(t *testing.T) {
	_, err := policy.LoadBytes([]byte("default_days: -1"))
	assert.ErrorIs(t, err, errors.ErrTableInvalid)

	_, err = policy.LoadBytes([]byte("default_days: 30\noverrides:\n  - document_type: x\n    days: -1\n"))
	assert.ErrorIs(t, err, errors.ErrTableInvalid)

	_, err = policy.LoadBytes([]byte(":"))
	assert.ErrorIs(t, err, errors.ErrTableInvalid)
}

func TestLoadBytesDefaultFallback(t *testing.T) {
	// A table without a default window gets the built-in one.
	table, err := policy.LoadBytes([]byte("overrides:\n  - document_type: x\n    days: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultValidityDays, table.Lookup("anything").Days)
	assert.Equal(t, 7, table.Lookup("x").Days)
}
