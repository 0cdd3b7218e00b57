package screening

import (
	"strings"

	"watchgate/internal/jurisdiction"
)

// Risk contributions, additive, evaluated in fixed order. The sum is
// capped at 100.
const (
	ofacContribution      = 60
	unContribution        = 50
	highRiskContribution  = 20
	monitoredContribution = 10
)

// Aggregator combines watchlist hit flags and an optional jurisdiction
// into an explainable risk score. The jurisdiction sets are injected at
// construction and never modified afterwards.
type Aggregator struct {
	sets jurisdiction.Sets
}

func NewAggregator(sets jurisdiction.Sets) *Aggregator {
	return &Aggregator{sets: sets}
}

// Assess is a pure function over the hit flags and country. Contributions
// are evaluated in a fixed order, which also defines the factor order:
// OFAC, UN, then jurisdiction, where the high-risk set is checked before
// the monitored set and short-circuits it. An empty or unrecognized
// country contributes nothing. The final score is clamped to [0,100] and
// the call cannot fail for any input.
func (a *Aggregator) Assess(ofacHit, unHit bool, country string) RiskAssessment {
	score := 0
	factors := []RiskFactor{}

	if ofacHit {
		score += ofacContribution
		factors = append(factors, FactorOFACSanctions)
	}
	if unHit {
		score += unContribution
		factors = append(factors, FactorUNSanctions)
	}

	if c := strings.ToLower(strings.TrimSpace(country)); c != "" {
		switch {
		case a.sets.IsHighRisk(c):
			score += highRiskContribution
			factors = append(factors, FactorHighRisk)
		case a.sets.IsMonitored(c):
			score += monitoredContribution
			factors = append(factors, FactorMonitored)
		}
	}

	if score > 100 {
		score = 100
	}
	return RiskAssessment{Score: score, Factors: factors}
}
