package amount_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/amount"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nullish nil", nil, ""},
		{"nullish dash", "-", ""},
		{"comma decimal", "780000,00", "780000"},
		{"period decimal", "780000.00", "780000"},
		{"space grouped comma decimal", "780 000,00", "780000"},
		{"nbsp grouped", "780 000,00", "780000"},
		{"us grouping", "780,000.00", "780000"},
		{"eu grouping", "1.234.567,89", "1234567.89"},
		{"comma-only grouping", "1,234,567", "1234567"},
		{"integer", 780000, "780000"},
		{"float", 780000.0, "780000"},
		{"fractional kept", "123,45", "123.45"},
		{"malformed", "12x34", "12x34"},
		{"malformed cased", "  Not A Number ", "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, amount.Canonical(tt.in))
		})
	}
}

// Separator and grouping choices never affect equality.
func TestCompareSeparatorInvariance(t *testing.T) {
	spellings := []any{"780000,00", "780000.00", "780 000,00", "780,000.00", 780000, "780000"}
	for _, a := range spellings {
		for _, b := range spellings {
			assert.True(t, amount.Compare(a, b), "%v vs %v", a, b)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nullish", nil, "-", true},
		{"one nullish", "", "780000", false},
		{"different values", "780000,00", "780100,00", false},
		{"malformed vs valid", "78o000", "780000", false},
		{"identical malformed", "12x34", "12X34", true},
		{"different malformed", "12x34", "12y34", false},
		{"fraction vs integer", "123,45", "123", false},
		{"comma grouping vs plain", "1,234,567", "1234567", true},
		{"lone comma stays decimal", "780,000", "780000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, amount.Compare(tt.a, tt.b))
		})
	}
}
