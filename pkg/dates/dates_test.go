package dates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/dates"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nullish", nil, ""},
		{"dash", "—", ""},
		{"dotted", "09.06.2025", "2025-06-09"},
		{"iso", "2025-06-09", "2025-06-09"},
		{"dotted end of year", "20.12.2025", "2025-12-20"},
		{"padded input", "  20.12.2025 ", "2025-12-20"},
		{"unparsable", "June 9th, 2025", "june 9th, 2025"},
		{"impossible day", "40.01.2026", "40.01.2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dates.Canonical(tt.in))
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"cross format", "2025-06-09", "09.06.2025", true},
		{"dotted self", "20.12.2025", "20.12.2025", true},
		{"one day off", "2025-06-09", "10.06.2025", false},
		{"both nullish", "", nil, true},
		{"one nullish", "-", "09.06.2025", false},
		{"unparsable identical", "июнь 2025", "июнь 2025", true},
		{"unparsable vs parsed", "09 06 2025", "09.06.2025", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dates.Compare(tt.a, tt.b))
		})
	}
}
