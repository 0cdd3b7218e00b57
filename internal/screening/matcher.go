package screening

import (
	"sort"
)

// DefaultThreshold is the inclusive similarity score a candidate must
// reach to count as a match.
const DefaultThreshold = 85

// Matcher screens a query name against candidate lists at a fixed
// threshold. It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	threshold int
}

// NewMatcher builds a matcher. Thresholds outside (0,100] fall back to
// DefaultThreshold.
func NewMatcher(threshold int) *Matcher {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Threshold returns the inclusive match threshold.
func (m *Matcher) Threshold() int {
	return m.threshold
}

// Match normalizes the query once, scores every candidate against it, and
// returns the candidates at or above the threshold, descending by score.
// Duplicate candidate strings are scored once (first occurrence wins) and
// ties keep the candidates' input order, so identical inputs always yield
// identical output. An empty query or candidate list yields an empty set;
// the operation cannot fail.
func (m *Matcher) Match(query string, candidates []string) MatchSet {
	matches := MatchSet{}

	q := Normalize(query)
	if q == "" {
		return matches
	}

	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}

		score := TokenSortRatio(q, Normalize(candidate))
		if score >= m.threshold {
			matches = append(matches, Match{Name: candidate, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}
