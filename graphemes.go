package cycle

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Graphemes is a Table over the grapheme clusters of a string, so a
// cursor walks user-perceived characters rather than bytes or runes.
// The string is segmented once at construction; the table is immutable
// afterward.
type Graphemes struct {
	clusters []string
}

// NewGraphemes segments s into grapheme clusters and returns them as a
// Table[string].
func NewGraphemes(s string) Graphemes {
	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return Graphemes{clusters: clusters}
}

// Len returns the number of grapheme clusters.
func (g Graphemes) Len() int {
	return len(g.clusters)
}

// At returns the cluster at index i.
func (g Graphemes) At(i int) string {
	return g.clusters[i]
}

// String reassembles the clusters into the original string.
func (g Graphemes) String() string {
	return strings.Join(g.clusters, "")
}
