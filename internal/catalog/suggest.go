package catalog

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance bounds how far a typo may be from a catalog name
// before we stop suggesting anything.
const maxSuggestDistance = 3

// Nearest returns the catalog name closest to name by edit distance,
// or "" when nothing is plausibly close.
func Nearest(name string) string {
	query := strings.ToLower(name)
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, t := range tools {
		d := fuzzy.LevenshteinDistance(query, t.Name)
		if d < bestDist {
			bestDist = d
			best = t.Name
		}
	}
	return best
}
