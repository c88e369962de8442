package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccardMatch(t *testing.T) {
	candidates := []string{"Resistor", "Capacitor", "Inductor"}

	t.Run("exact match scores one", func(t *testing.T) {
		best, score := JaccardMatch("Resistor", candidates, 0.5)
		assert.Equal(t, "Resistor", best)
		assert.Equal(t, 1.0, score)
	})

	t.Run("case and whitespace are ignored", func(t *testing.T) {
		best, score := JaccardMatch("  resistor ", candidates, 0.5)
		assert.Equal(t, "Resistor", best)
		assert.Equal(t, 1.0, score)
	})

	t.Run("near match above threshold", func(t *testing.T) {
		best, score := JaccardMatch("Resistors", candidates, 0.5)
		assert.Equal(t, "Resistor", best)
		assert.Greater(t, score, 0.5)
	})

	t.Run("nothing above threshold", func(t *testing.T) {
		best, score := JaccardMatch("XYZ", candidates, 0.9)
		assert.Equal(t, "", best)
		assert.Equal(t, 0.0, score)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		best, score := JaccardMatch("Resistor", nil, 0.0)
		assert.Equal(t, "", best)
		assert.Equal(t, 0.0, score)
	})
}

func TestLevenshteinMatch(t *testing.T) {
	candidates := []string{"Resistor", "Capacitor", "Inductor"}

	t.Run("exact match scores one", func(t *testing.T) {
		best, score := LevenshteinMatch("Capacitor", candidates, 0.5)
		assert.Equal(t, "Capacitor", best)
		assert.Equal(t, 1.0, score)
	})

	t.Run("case and whitespace are ignored", func(t *testing.T) {
		best, score := LevenshteinMatch(" CAPACITOR", candidates, 0.5)
		assert.Equal(t, "Capacitor", best)
		assert.Equal(t, 1.0, score)
	})

	t.Run("single typo still matches", func(t *testing.T) {
		// one substitution over nine characters
		best, score := LevenshteinMatch("Capasitor", candidates, 0.5)
		assert.Equal(t, "Capacitor", best)
		assert.InDelta(t, 8.0/9.0, score, 1e-9)
	})

	t.Run("nothing above threshold", func(t *testing.T) {
		best, score := LevenshteinMatch("Q", candidates, 0.9)
		assert.Equal(t, "", best)
		assert.Equal(t, 0.0, score)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		best, score := LevenshteinMatch("Capacitor", []string{}, 0.0)
		assert.Equal(t, "", best)
		assert.Equal(t, 0.0, score)
	})
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("", ""))
	assert.Equal(t, 1.0, Ratio("abc", "abc"))
	assert.Equal(t, 0.0, Ratio("abc", ""))
	assert.InDelta(t, 2.0/3.0, Ratio("abc", "abd"), 1e-9)
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"abc", "abc", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Distance([]rune(tc.a), []rune(tc.b)), "%q vs %q", tc.a, tc.b)
	}
}
