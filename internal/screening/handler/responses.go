package handler

import (
	"time"

	"watchgate/internal/domainintel"
	"watchgate/internal/screening"
)

// SourceView is the per-watchlist block of a screen response.
type SourceView struct {
	Source  string            `json:"source"`
	Matches []screening.Match `json:"matches"`
	Skipped bool              `json:"skipped,omitempty"`
	Warning string            `json:"warning,omitempty"`
}

// ScreenResponse is the POST /screen response body.
type ScreenResponse struct {
	RunID      string                   `json:"run_id"`
	Query      string                   `json:"query"`
	Country    string                   `json:"country,omitempty"`
	Sources    []SourceView             `json:"sources"`
	Assessment screening.RiskAssessment `json:"assessment"`
	Domain     *domainintel.Report      `json:"domain,omitempty"`
	ScreenedAt time.Time                `json:"screened_at"`
}

func toScreenResponse(result *screening.ScreenResult) ScreenResponse {
	sources := make([]SourceView, len(result.Sources))
	for i, src := range result.Sources {
		matches := src.Matches
		if matches == nil {
			matches = screening.MatchSet{}
		}
		sources[i] = SourceView{
			Source:  src.Source,
			Matches: matches,
			Skipped: src.Skipped,
			Warning: src.Warning,
		}
	}

	return ScreenResponse{
		RunID:      result.RunID,
		Query:      result.Query,
		Country:    result.Country,
		Sources:    sources,
		Assessment: result.Assessment,
		Domain:     result.Domain,
		ScreenedAt: result.ScreenedAt,
	}
}
