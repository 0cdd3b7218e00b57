// Package audit captures the structured trail of screening activity.
// Events carry a hash of the screened name rather than the raw text so
// the trail is useful for compliance review without storing PII.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Action identifies the kind of audit event.
type Action string

const (
	// ActionScreeningCompleted records one finished screening run,
	// successful sources, hit flags, and the final score.
	ActionScreeningCompleted Action = "screening_completed"

	// ActionSourceFailed records a watchlist source that could not be
	// loaded during a run. Failures are soft: the run continues and the
	// failed source contributes no hit.
	ActionSourceFailed Action = "source_failed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`

	// RunID correlates all events of a single screening run.
	RunID string `json:"run_id"`

	// QueryHash is the SHA-256 of the normalized query name.
	QueryHash string `json:"query_hash"`
	Country   string `json:"country,omitempty"`

	// Source names the watchlist a source_failed event refers to.
	Source string `json:"source,omitempty"`
	Reason string `json:"reason,omitempty"`

	OFACHit bool `json:"ofac_hit"`
	UNHit   bool `json:"un_hit"`
	Score   int  `json:"score"`

	// Request metadata captured by middleware.
	RequestID string `json:"request_id,omitempty"`
	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// Store is an append-only sink for audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// HashQuery derives the stable, non-reversible identifier recorded in
// place of the raw screened name.
func HashQuery(normalizedQuery string) string {
	sum := sha256.Sum256([]byte(normalizedQuery))
	return hex.EncodeToString(sum[:])
}
