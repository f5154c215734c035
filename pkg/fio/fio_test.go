package fio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/fio"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want fio.Components
	}{
		{
			"full triple",
			"Иванов Иван Иванович",
			fio.Components{Last: "иванов", First: "иван", Patronymic: "иванович"},
		},
		{
			"last first",
			"Иванов Иван",
			fio.Components{Last: "иванов", First: "иван"},
		},
		{
			"first patronymic",
			"Иван Иванович",
			fio.Components{First: "иван", Patronymic: "иванович"},
		},
		{
			"last with glued initials",
			"Иванов И.О.",
			fio.Components{Last: "иванов", First: "и", Patronymic: "о", FirstInitial: true, PatronymicInitial: true},
		},
		{
			"last with bare initial",
			"Иванов И",
			fio.Components{Last: "иванов", First: "и", FirstInitial: true},
		},
		{
			"kazakh patronymic",
			"Серик Аскарулы",
			fio.Components{First: "серик", Patronymic: "аскарулы"},
		},
		{
			"single surname",
			"Иванов",
			fio.Components{Last: "иванов"},
		},
		{
			"empty",
			"",
			fio.Components{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fio.Parse(tt.in))
		})
	}
}

func TestMatchHierarchy(t *testing.T) {
	claimed := "Иванов Иван Иванович"

	tests := []struct {
		name      string
		extracted string
		want      bool
		level     fio.Level
	}{
		{"exact full", "Иванов Иван Иванович", true, fio.LevelFull},
		{"full with glyph noise", "ИВАНОВ  ИВАН  ИВАНОВИЧ", true, fio.LevelFull},
		{"last first only", "Иванов Иван", true, fio.LevelLastFirst},
		{"first patronymic only", "Иван Иванович", true, fio.LevelFirstPatronymic},
		{"bare initial", "Иванов И", true, fio.LevelLastInitial},
		{"dotted initial", "Иванов И.", true, fio.LevelLastInitial},
		{"glued initials", "Иванов И.О.", true, fio.LevelLastInitials},
		{"wrong surname", "Петров Иван Иванович", false, fio.LevelNone},
		{"wrong first initial", "Иванов П.И.", false, fio.LevelNone},
		{"wrong first name", "Иванов Петр", false, fio.LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, diag := fio.Match(claimed, tt.extracted, fio.Options{})
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.level, diag.Level)
		})
	}
}

// A name always matches its own spelling, including abbreviated forms
// where no level has a written-out side to check against.
func TestMatchIdenticalAbbreviatedForms(t *testing.T) {
	for _, name := range []string{
		"Иванов И.О.",
		"Иванов И.",
		"Иванов И",
		"Иванов",
	} {
		t.Run(name, func(t *testing.T) {
			ok, diag := fio.Match(name, name, fio.Options{})
			assert.True(t, ok)
			assert.Equal(t, fio.LevelExact, diag.Level)
		})
	}

	// Equal initial letters match even when neither side is written out.
	ok, diag := fio.Match("Иванов И.О.", "Иванов И. О.", fio.Options{})
	assert.True(t, ok)
	assert.Equal(t, fio.LevelExact, diag.Level)

	// A differing initial is still a different assertion.
	ok, _ = fio.Match("Иванов И.О.", "Иванов И.П.", fio.Options{})
	assert.False(t, ok)
}

// The surname must be corroborated: a side that supplies strictly less
// information than a level requires fails rather than matching loosely.
func TestMatchAsymmetricNegatives(t *testing.T) {
	// Extracted side has no surname to confirm the claimed one.
	ok, diag := fio.Match("Иванов Иван", "Иван Иванович", fio.Options{})
	assert.False(t, ok)
	assert.Equal(t, fio.LevelNone, diag.Level)

	// Extracted asserts a patronymic initial the claimed side cannot
	// confirm.
	ok, diag = fio.Match("Иванов Иван", "Иванов И.О.", fio.Options{})
	assert.False(t, ok)
	assert.Equal(t, fio.LevelNone, diag.Level)
}

func TestMatchPatronymicRules(t *testing.T) {
	// Written-out patronymic on one side alone is ignored at the
	// last+first level.
	ok, diag := fio.Match("Иванов Иван", "Иванов Иван Иванович", fio.Options{})
	assert.True(t, ok)
	assert.Equal(t, fio.LevelLastFirst, diag.Level)

	// Both present must agree.
	ok, _ = fio.Match("Иванов Иван Петрович", "Иванов Иван Иванович", fio.Options{})
	assert.False(t, ok)
}

func TestMatchNullish(t *testing.T) {
	ok, diag := fio.Match(nil, "—", fio.Options{})
	assert.True(t, ok)
	assert.Equal(t, fio.LevelBothEmpty, diag.Level)

	ok, _ = fio.Match("", "Иванов Иван", fio.Options{})
	assert.False(t, ok)
}

func TestMatchFuzzyFallback(t *testing.T) {
	// OCR swapped a letter in the surname; no discrete level can accept
	// that, only the fuzzy fallback.
	ok, diag := fio.Match("Иванов Иван Иванович", "Ивонов Иван Иванович", fio.Options{})
	assert.False(t, ok)
	assert.False(t, diag.FuzzyUsed)

	ok, diag = fio.Match("Иванов Иван Иванович", "Ивонов Иван Иванович", fio.Options{EnableFuzzyFallback: true})
	assert.True(t, ok)
	assert.Equal(t, fio.LevelFuzzy, diag.Level)
	assert.True(t, diag.FuzzyUsed)
	assert.GreaterOrEqual(t, diag.FuzzyScore, 0.85)

	// A genuinely different person stays different even with fuzzy on.
	ok, diag = fio.Match("Иванов Иван Иванович", "Сидоров Петр Петрович", fio.Options{EnableFuzzyFallback: true})
	assert.False(t, ok)
	assert.True(t, diag.FuzzyUsed)
	assert.Less(t, diag.FuzzyScore, 0.85)
}

func TestMatchDiagnosticsCarryParses(t *testing.T) {
	_, diag := fio.Match("Иванов И.О.", "Иванов Иван Иванович", fio.Options{})
	assert.Equal(t, "иванов", diag.Claimed.Last)
	assert.True(t, diag.Claimed.FirstInitial)
	assert.Equal(t, "иванович", diag.Extracted.Patronymic)
}
