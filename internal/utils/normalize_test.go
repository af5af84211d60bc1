package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNameLower(t *testing.T) {
	assert.Equal(t, "margherita pizza", NormalizeNameLower("  Margherita   Pizza "))
	assert.Equal(t, "", NormalizeNameLower("   "))
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Crème Brûlée":     "creme-brulee",
		"  Fish & Chips  ": "fish-chips",
		"Table_4":          "table-4",
		"":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestKeywordsFromName(t *testing.T) {
	kw := KeywordsFromName("margherita pizza", "margherita-pizza")
	assert.Contains(t, kw, "margherita")
	assert.Contains(t, kw, "pizza")
	assert.Contains(t, kw, "margherita pizza")
	assert.Contains(t, kw, "margherita-pizza")

	// No duplicates.
	seen := map[string]bool{}
	for _, k := range kw {
		assert.False(t, seen[k], "duplicate keyword %q", k)
		seen[k] = true
	}

	assert.Nil(t, KeywordsFromName("", ""))
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("18:30")
	assert.NoError(t, err)
	assert.Equal(t, 18, h)
	assert.Equal(t, 30, m)

	_, _, err = ParseClock("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	_, _, err = ParseClock("dinner")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
