// Package watchlist loads candidate name lists from public sanctions
// sources. Loaders are collaborators of the screening engine: they produce
// plain name slices and never see scores or thresholds. A source that
// cannot be fetched or parsed reports ErrUnavailable so callers can treat
// the failure as a soft, per-source warning.
package watchlist

import (
	"context"
	"errors"
)

// Source labels, also used verbatim in presented results.
const (
	SourceOFAC = "OFAC SDN List"
	SourceUN   = "UN Consolidated Sanctions List"
)

// Default source endpoints.
const (
	DefaultOFACURL = "https://www.treasury.gov/ofac/downloads/sdn.csv"
	DefaultUNURL   = "https://scsanctions.un.org/resources/xml/en/consolidated.xml"
)

// ErrUnavailable marks a watchlist that could not be fetched or parsed.
// The screening run for that source is skipped; other sources proceed.
var ErrUnavailable = errors.New("watchlist unavailable")

// Loader produces the candidate list for one watchlist source.
type Loader interface {
	// Source returns the stable display label of the list.
	Source() string

	// Load fetches and extracts candidate names. Errors wrap
	// ErrUnavailable when the source cannot be used this run.
	Load(ctx context.Context) ([]string, error)
}
