// Package domainintel resolves optional cyber signals for a domain name.
// Its output is displayed alongside screening results but never folded
// into the risk score. Availability is an explicit result variant rather
// than an error, so callers branch on Status instead of relying on
// absence-of-error.
package domainintel

import "context"

// Status describes the outcome variant of a lookup.
type Status string

const (
	// StatusOK means signals were resolved.
	StatusOK Status = "ok"
	// StatusUnavailable means no lookup backend is configured.
	StatusUnavailable Status = "unavailable"
	// StatusFailed means the backend was queried but the lookup failed.
	StatusFailed Status = "failed"
)

// Signal keys present in a successful report when the registry exposes them.
const (
	SignalCreationDate = "creation_date"
	SignalRegistrar    = "registrar"
	SignalCountry      = "country"
)

// Report is the capability-checked lookup outcome.
type Report struct {
	Domain  string            `json:"domain"`
	Status  Status            `json:"status"`
	Signals map[string]string `json:"signals,omitempty"`
	Detail  string            `json:"detail,omitempty"`
}

// Lookup resolves signals for a domain. Implementations must not panic
// and should express failure through the report's Status.
type Lookup interface {
	Check(ctx context.Context, domain string) Report
}

// Unavailable is the degraded report used when no backend is configured.
func Unavailable(domain string) Report {
	return Report{
		Domain: domain,
		Status: StatusUnavailable,
		Detail: "domain intelligence lookup not configured",
	}
}
