package nullish_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/nullish"
)

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"whitespace only", "   \t ", true},
		{"nbsp only", "  ", true},
		{"none", "none", true},
		{"None cased", "NoNe", true},
		{"null", "null", true},
		{"n/a", "N/A", true},
		{"na", "na", true},
		{"nan", "NaN", true},
		{"hyphen", "-", true},
		{"en dash", "–", true},
		{"em dash", "—", true},
		{"double dash filler", "--", true},
		{"quoted none", `"none"`, true},
		{"guillemet n/a with period", "«N/A».", true},

		{"zero", 0, false},
		{"zero string", "0", false},
		{"real value", "780000", false},
		{"word containing none", "nonessential", false},
		{"sequence", []any{"a"}, false},
		{"empty sequence", []any{}, false},
		{"negative number", "-5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nullish.Is(tt.in), "Is(%#v)", tt.in)
		})
	}
}

// Every nullish spelling must land in the same equivalence class as nil.
func TestNullishSpellingsAreInterchangeable(t *testing.T) {
	spellings := []any{nil, "", "none", "null", "N/A", "na", "NaN", "-", "—", "  "}
	for _, s := range spellings {
		assert.True(t, nullish.Is(s), "spelling %#v", s)
	}
}
