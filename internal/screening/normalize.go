package screening

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a free-text name for comparison: Unicode NFKC
// fold, lower-case, whitespace runs collapsed to single spaces, leading
// and trailing whitespace removed. Deterministic and locale-independent.
// Whitespace-only input normalizes to the empty string, which callers
// treat as a no-op match request.
func Normalize(text string) string {
	folded := strings.ToLower(norm.NFKC.String(text))
	return strings.Join(strings.Fields(folded), " ")
}
