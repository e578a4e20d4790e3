package concept

import (
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/surgebase/porter2"
)

// DefaultSimilarity is the Jaro-Winkler score at which two identifiers are
// reported as near duplicates.
const DefaultSimilarity = 0.92

// NearDuplicate is a pair of registered identifiers that probably name the
// same concept ("BudgetReport" / "BudgetReports").
type NearDuplicate struct {
	A, B     string
	Score    float64
	SameStem bool
}

// StemKey lowercases and porter2-stems every word of an identifier, so
// singular and plural spellings share a key.
func StemKey(id string) string {
	words := SplitIdentifier(id)
	for i, w := range words {
		words[i] = porter2.Stem(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

// NearDuplicates reports pairs of ids that share a stem key or whose
// lowercased Jaro-Winkler similarity reaches threshold (<= 0 uses
// DefaultSimilarity). Pairs are ordered by first appearance in ids. The
// scan is quadratic and meant for end-of-run reports.
func NearDuplicates(ids []string, threshold float64) []NearDuplicate {
	if threshold <= 0 {
		threshold = DefaultSimilarity
	}
	keys := make([]string, len(ids))
	lower := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = StemKey(id)
		lower[i] = strings.ToLower(id)
	}

	var out []NearDuplicate
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				continue
			}
			if keys[i] == keys[j] {
				out = append(out, NearDuplicate{A: ids[i], B: ids[j], Score: 1, SameStem: true})
				continue
			}
			score, err := edlib.StringsSimilarity(lower[i], lower[j], edlib.JaroWinkler)
			if err != nil {
				continue
			}
			if float64(score) >= threshold {
				out = append(out, NearDuplicate{A: ids[i], B: ids[j], Score: float64(score)})
			}
		}
	}
	return out
}
