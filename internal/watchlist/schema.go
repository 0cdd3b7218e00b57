package watchlist

import (
	"strings"
)

// csvSchema locates the name column for one known SDN file shape. The
// published OFAC CSV has shipped both with and without a header row, so
// the loader probes each adapter in order instead of hard-coding a
// column position.
type csvSchema interface {
	// Detect inspects the first record and returns the index of the
	// name column plus whether that record is a header (and should be
	// skipped) when this adapter recognizes the shape.
	Detect(first []string) (col int, skipFirst bool, ok bool)
}

// headerSchema matches files whose first row names its columns.
type headerSchema struct{}

func (headerSchema) Detect(first []string) (int, bool, bool) {
	for i, cell := range first {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "sdn_name", "name":
			return i, true, true
		}
	}
	return 0, false, false
}

// legacySchema matches the headerless classic SDN export, where the
// record starts with a numeric entity number and the name follows it.
type legacySchema struct{}

func (legacySchema) Detect(first []string) (int, bool, bool) {
	if len(first) < 2 {
		return 0, false, false
	}
	if !isDigits(strings.TrimSpace(first[0])) {
		return 0, false, false
	}
	return 1, false, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// sdnSchemas lists the known shapes in probe order.
var sdnSchemas = []csvSchema{headerSchema{}, legacySchema{}}
