package metadata

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeQuery derives the cache key for a search query: surrounding
// whitespace is trimmed and the remainder is Unicode case-folded, so
// "Matrix" and " matrix " share one cache entry.
//
// A Caser is stateful, so a fresh one is built per call.
func NormalizeQuery(query string) string {
	return cases.Fold().String(strings.TrimSpace(query))
}
