// =============================================================================
// BOM Check - String Similarity
// =============================================================================
//
// Fuzzy string matching primitives used by the component type normalizer.
// Two independent algorithms are provided so a caller can demand that both
// agree before trusting a match:
//   - Jaccard similarity over character sets
//   - Levenshtein similarity ratio (normalized edit distance)
//
// Both matchers compare case-insensitively and ignore surrounding whitespace.
// Scores range from 0.0 (no overlap) to 1.0 (exact match).
//
// =============================================================================

package similarity

import "strings"

// =============================================================================
// JACCARD
// =============================================================================

// JaccardMatch scans candidates for the best Jaccard match against text and
// returns it together with its score. Candidates scoring below threshold are
// ignored. When no candidate qualifies, or candidates is empty, the result is
// ("", 0.0). Among candidates with an equal top score the one scanned first
// wins; the scan order among equals is not part of the contract.
func JaccardMatch(text string, candidates []string, threshold float64) (string, float64) {
	best := ""
	bestScore := 0.0

	textSet := runeSet(text)
	for _, candidate := range candidates {
		score := jaccard(textSet, runeSet(candidate))
		if score >= threshold && score > bestScore {
			best = candidate
			bestScore = score
		}
		// a perfect match cannot be beaten
		if bestScore == 1.0 {
			break
		}
	}
	return best, bestScore
}

// jaccard computes intersection-over-union of two character sets.
// Two empty sets are a perfect match.
func jaccard(a, b map[rune]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	intersection := 0
	for r := range a {
		if _, ok := b[r]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// runeSet builds the set of characters in the fold-normalized string.
func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range normalize(s) {
		set[r] = struct{}{}
	}
	return set
}

// =============================================================================
// LEVENSHTEIN
// =============================================================================

// LevenshteinMatch scans candidates for the best Levenshtein ratio match
// against text, with the same threshold and empty-input contract as
// JaccardMatch.
func LevenshteinMatch(text string, candidates []string, threshold float64) (string, float64) {
	best := ""
	bestScore := 0.0

	normText := normalize(text)
	for _, candidate := range candidates {
		score := Ratio(normText, normalize(candidate))
		if score >= threshold && score > bestScore {
			best = candidate
			bestScore = score
		}
		if bestScore == 1.0 {
			break
		}
	}
	return best, bestScore
}

// Ratio converts edit distance into a similarity score:
// 1 - distance/len(longer). Two empty strings are a perfect match.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(ra, rb))/float64(longest)
}

// Distance computes the Levenshtein edit distance between two rune slices
// with the classic two-row dynamic programming table.
func Distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// normalize applies the shared comparison form: trimmed and lower cased.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
