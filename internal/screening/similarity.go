package screening

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// TokenSortRatio measures lexical likeness of two normalized strings on a
// 0-100 scale. Tokens are sorted before the edit-distance comparison, so
// "smith john" and "john smith" score 100 regardless of word order. The
// metric is symmetric, and any non-empty string compared with itself
// scores 100. Two empty strings also score 100: indistinguishable inputs
// are treated as identical.
func TokenSortRatio(a, b string) int {
	sa := sortTokens(a)
	sb := sortTokens(b)
	if sa == sb {
		return 100
	}

	longest := utf8.RuneCountInString(sa)
	if n := utf8.RuneCountInString(sb); n > longest {
		longest = n
	}
	distance := levenshtein.ComputeDistance(sa, sb)

	return int(math.Round(100 * (1 - float64(distance)/float64(longest))))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
