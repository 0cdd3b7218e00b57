package handler

import (
	"strings"

	"watchgate/internal/screening"
	dErrors "watchgate/pkg/domain-errors"
)

// ScreenRequest is the POST /screen body. Country and domain are optional.
type ScreenRequest struct {
	Query   string `json:"query"`
	Country string `json:"country,omitempty"`
	Domain  string `json:"domain,omitempty"`
}

func (r ScreenRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "query name is required")
	}
	return nil
}

func (r ScreenRequest) toDomain() screening.ScreenRequest {
	return screening.ScreenRequest{
		Query:   r.Query,
		Country: r.Country,
		Domain:  r.Domain,
	}
}
