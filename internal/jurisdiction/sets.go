// Package jurisdiction holds the fixed country risk classifications used
// by the risk aggregator. The sets are immutable values injected at
// construction time so updated FATF publications can be swapped in via
// configuration instead of a code change.
package jurisdiction

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	pstrings "watchgate/pkg/platform/strings"
)

// Sets classifies countries as high-risk or monitored. The two sets are
// disjoint; membership checks expect already lower-cased input.
type Sets struct {
	highRisk  map[string]struct{}
	monitored map[string]struct{}
}

// New builds Sets from raw country lists. Entries are trimmed,
// lower-cased, and de-duplicated. A country appearing in both lists is a
// configuration error.
func New(highRisk, monitored []string) (Sets, error) {
	s := Sets{
		highRisk:  make(map[string]struct{}),
		monitored: make(map[string]struct{}),
	}
	for _, c := range pstrings.DedupeAndTrimLower(highRisk) {
		s.highRisk[c] = struct{}{}
	}
	for _, c := range pstrings.DedupeAndTrimLower(monitored) {
		if _, ok := s.highRisk[c]; ok {
			return Sets{}, fmt.Errorf("country %q listed as both high-risk and monitored", c)
		}
		s.monitored[c] = struct{}{}
	}
	return s, nil
}

// Default returns the built-in FATF-inspired classification.
func Default() Sets {
	s, err := New(
		[]string{"iran", "north korea", "myanmar"},
		[]string{"panama", "haiti", "south sudan", "syria"},
	)
	if err != nil {
		// The built-in lists are disjoint by construction.
		panic(err)
	}
	return s
}

// IsHighRisk reports membership in the high-risk set.
func (s Sets) IsHighRisk(country string) bool {
	_, ok := s.highRisk[country]
	return ok
}

// IsMonitored reports membership in the monitored set.
func (s Sets) IsMonitored(country string) bool {
	_, ok := s.monitored[country]
	return ok
}

// HighRisk returns the high-risk countries sorted for display.
func (s Sets) HighRisk() []string {
	return sorted(s.highRisk)
}

// Monitored returns the monitored countries sorted for display.
func (s Sets) Monitored() []string {
	return sorted(s.monitored)
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

type setsFile struct {
	HighRisk  []string `yaml:"high_risk"`
	Monitored []string `yaml:"monitored"`
}

// LoadFile reads a YAML classification file:
//
//	high_risk:
//	  - iran
//	monitored:
//	  - panama
func LoadFile(path string) (Sets, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Sets{}, fmt.Errorf("read jurisdiction file: %w", err)
	}
	var f setsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Sets{}, fmt.Errorf("parse jurisdiction file: %w", err)
	}
	return New(f.HighRisk, f.Monitored)
}
