// Package autotune suggests lexicon additions from a corpus of titles.
//
// The expander only distributes a shared suffix it knows about, so a
// domain whose head nouns are missing from the vocabulary ("Stewards",
// "Coders") silently falls back to one unexpanded variant. The tuner
// counts trailing head words and proposes the frequent, coordinated ones.
package autotune

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode"

	"github.com/cognicore/bizonto/pkg/bizonto/clean"
	"github.com/cognicore/bizonto/pkg/bizonto/lexicon"
)

// Stats aggregates one head word over a corpus.
type Stats struct {
	Word        string
	Support     int     // titles ending in Word
	Coordinated int     // of those, titles with and/or/comma/slash coordination
	Share       float64 // Support / total titles
}

// Candidate is a suggested suffix.
type Candidate struct {
	Stats
	Reason string
}

// Thresholds defines criteria for suffix suggestion
type Thresholds struct {
	MinSupport     int
	MinCoordinated int
	MinShare       float64
}

// DefaultThresholds returns the thresholds used when none are set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSupport:     3,
		MinCoordinated: 1,
		MinShare:       0.005,
	}
}

// Reviewer optionally performs an extra approval step.
type Reviewer interface {
	Approve(ctx context.Context, cand Candidate) (bool, error)
}

// AutoTuner produces ranked suffix suggestions for one domain.
type AutoTuner struct {
	Lexicon    *lexicon.Lexicon
	Domain     string
	Thresholds Thresholds
	Reviewer   Reviewer // optional
}

// Collect counts the trailing head word of every title. Parenthetical
// notes are dropped first, so "Clerks (Except Payroll)" counts "Clerks".
func Collect(titles []string) []Stats {
	byWord := make(map[string]*Stats)
	total := 0
	for _, title := range titles {
		text := clean.StripParens(title)
		words := strings.Fields(text)
		if len(words) == 0 {
			continue
		}
		total++
		head := strings.TrimRight(words[len(words)-1], ".,;:")
		if !isHeadWord(head) {
			continue
		}
		s, ok := byWord[head]
		if !ok {
			s = &Stats{Word: head}
			byWord[head] = s
		}
		s.Support++
		if isCoordinated(text) {
			s.Coordinated++
		}
	}

	out := make([]Stats, 0, len(byWord))
	for _, s := range byWord {
		s.Share = float64(s.Support) / float64(total)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Support != out[j].Support {
			return out[i].Support > out[j].Support
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// SuggestCandidates filters stats down to words that pass the thresholds
// and are not yet in the domain vocabulary.
func (t *AutoTuner) SuggestCandidates(stats []Stats) []Candidate {
	th := t.thresholdsOrDefault()
	known := make(map[string]bool)
	if t.Lexicon != nil {
		for _, s := range t.Lexicon.Suffixes(t.Domain) {
			known[strings.ToLower(s)] = true
		}
	}

	var out []Candidate
	for _, s := range stats {
		if known[strings.ToLower(s.Word)] {
			continue
		}
		if s.Support < th.MinSupport || s.Coordinated < th.MinCoordinated || s.Share < th.MinShare {
			continue
		}
		reason := "frequent head"
		if s.Coordinated > 0 {
			reason = "coordinated head"
		}
		out = append(out, Candidate{Stats: s, Reason: reason})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Coordinated > out[j].Coordinated
	})
	return out
}

// Run collects stats from titles, produces candidates, optionally routes
// them through the reviewer, and returns approved suggestions.
func (t *AutoTuner) Run(ctx context.Context, titles []string) ([]Candidate, error) {
	if t.Domain == "" {
		return nil, errors.New("suffix autotune: empty domain")
	}

	candidates := t.SuggestCandidates(Collect(titles))
	if len(candidates) == 0 || t.Reviewer == nil {
		return candidates, nil
	}

	var approved []Candidate
	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := t.Reviewer.Approve(ctx, cand)
		if err != nil {
			return nil, err
		}
		if ok {
			approved = append(approved, cand)
		}
	}
	return approved, nil
}

func (t *AutoTuner) thresholdsOrDefault() Thresholds {
	if t.Thresholds == (Thresholds{}) {
		return DefaultThresholds()
	}
	return t.Thresholds
}

// isHeadWord accepts capitalized alphabetic words of three or more letters.
func isHeadWord(w string) bool {
	if len(w) < 3 || !unicode.IsUpper(rune(w[0])) {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isCoordinated(text string) bool {
	lower := " " + strings.ToLower(text) + " "
	return strings.Contains(lower, " and ") || strings.Contains(lower, " or ") ||
		strings.Contains(text, ",") || strings.Contains(text, "/")
}
