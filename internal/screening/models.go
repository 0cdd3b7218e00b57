// Package screening implements the name-matching and risk-scoring engine.
// Everything in this package is pure computation: normalization,
// similarity scoring, threshold matching, and score aggregation. Fetching
// watchlists, caching, and presentation live elsewhere and only hand
// candidate lists in.
package screening

// Match pairs a candidate name, in its original un-normalized form, with
// its similarity score in [0,100]. Matches are value types created fresh
// per screening run.
type Match struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// MatchSet is an ordered sequence of matches, descending by score, with
// ties kept in candidate input order.
type MatchSet []Match

// Hit reports whether the set contains at least one match.
func (m MatchSet) Hit() bool {
	return len(m) > 0
}

// RiskFactor labels one contributor to an aggregate risk score.
type RiskFactor string

const (
	FactorOFACSanctions RiskFactor = "OFAC sanctions exposure"
	FactorUNSanctions   RiskFactor = "UN sanctions exposure"
	FactorHighRisk      RiskFactor = "High-risk FATF jurisdiction"
	FactorMonitored     RiskFactor = "FATF monitored jurisdiction"
)

// RiskAssessment is the explainable outcome of one screening run: an
// integer score in [0,100] and the factors that produced it, in
// evaluation order. Never mutated after construction.
type RiskAssessment struct {
	Score   int          `json:"score"`
	Factors []RiskFactor `json:"factors"`
}
