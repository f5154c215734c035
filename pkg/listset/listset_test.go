package listset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/listset"
)

func TestCompareStringListDuality(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"string vs list", "abc, bcd", []any{"abc", "bcd"}, true},
		{"nullish tokens dropped", "abc, bcd, null", []any{"abc", "bcd", nil}, true},
		{"token replaced", "abc, bcd", []any{"abc", "null"}, false},
		{"nonempty vs empty list", "abc, bcd", []any{}, false},
		{"nonempty vs empty string", "abc", "", false},
		{"both empty", "", []any{}, true},
		{"both only nullish", "null, -", []any{nil, "n/a"}, true},
		{"order insensitive", "a, b, c", "c, a, b", true},
		{"duplicates collapse", "a, a, b", []any{"b", "a"}, true},
		{"case insensitive", "Alpha, Beta", "alpha, BETA", true},
		{"numeric elements", []any{1, 2}, "1, 2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listset.Compare(tt.a, tt.b))
		})
	}
}

func TestCompareCurrencies(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"order and case", "USD, EUR, KZT", []any{"KZT", "USD", "eur"}, true},
		{"subset differs", "USD, EUR", "USD", false},
		{"unknown code dropped", "USD, XXX", "USD", true},
		{"only unknown codes equals empty", "XXX", "", true},
		{"only unknown vs real", "XXX", "USD", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listset.CompareCurrencies(tt.a, tt.b))
		})
	}
}

func TestTokens(t *testing.T) {
	got := listset.Tokens(" Abc ,  null, BCD ,, — ")
	assert.Equal(t, map[string]struct{}{"abc": {}, "bcd": {}}, got)
}

func TestVocabulary(t *testing.T) {
	v := listset.NewVocabulary("USD", "eur")
	assert.True(t, v.Contains("usd"))
	assert.True(t, v.Contains("eur"))
	assert.False(t, v.Contains("xxx"))
}
