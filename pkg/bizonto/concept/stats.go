package concept

import "sort"

// Stats counts validation outcomes over a corpus run so callers can assert
// quality thresholds ("under 2% embedded conjunctions") instead of
// requiring every heuristic call to be right.
type Stats struct {
	Checked    int64
	Accepted   int64
	Duplicates int64
	Rejected   map[Reason]int64
}

// NewStats creates empty counters.
func NewStats() *Stats {
	return &Stats{Rejected: make(map[Reason]int64)}
}

// Observe records one validation outcome.
func (s *Stats) Observe(r Reason) {
	s.Checked++
	if r == Valid {
		s.Accepted++
		return
	}
	s.Rejected[r]++
}

// ObserveDuplicate records a valid id that the registry already held.
func (s *Stats) ObserveDuplicate() {
	s.Duplicates++
}

// Rate returns the share of checked ids rejected for r.
func (s *Stats) Rate(r Reason) float64 {
	if s.Checked == 0 {
		return 0
	}
	return float64(s.Rejected[r]) / float64(s.Checked)
}

// RejectionRate returns the share of checked ids rejected for any reason.
func (s *Stats) RejectionRate() float64 {
	if s.Checked == 0 {
		return 0
	}
	return float64(s.Checked-s.Accepted) / float64(s.Checked)
}

// TopReasons returns rejection reasons ordered by count, highest first.
func (s *Stats) TopReasons() []Reason {
	out := make([]Reason, 0, len(s.Rejected))
	for r, n := range s.Rejected {
		if n > 0 {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if s.Rejected[out[i]] != s.Rejected[out[j]] {
			return s.Rejected[out[i]] > s.Rejected[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

// Merge adds other's counters into s.
func (s *Stats) Merge(other *Stats) {
	s.Checked += other.Checked
	s.Accepted += other.Accepted
	s.Duplicates += other.Duplicates
	for r, n := range other.Rejected {
		s.Rejected[r] += n
	}
}
