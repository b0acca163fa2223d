package search

import (
	"slices"

	"github.com/j-jayes/mcp-occupation-classifier/core"
)

// DefaultRRFK is the Reciprocal Rank Fusion constant (standard value
// from Cormack et al. 2009).
const DefaultRRFK = 60

// Fuse merges any number of ranked lists via Reciprocal Rank Fusion:
// score(d) = sum of 1/(k + rank_i(d)) over the lists where d appears.
// Absence from a list contributes nothing. The union of all lists is
// sorted by fused score descending, then by best individual rank, then
// by corpus insertion order, and truncated to topN.
func Fuse(k, topN int, lists ...[]core.RankedHit) []core.Classification {
	type fusedEntry struct {
		code     core.TaxonomyCode
		title    string
		score    float64
		bestRank int
		ordinal  int
	}

	merged := make(map[core.TaxonomyCode]*fusedEntry)
	for _, list := range lists {
		for _, hit := range list {
			contribution := 1.0 / float64(k+hit.Rank)
			if existing, ok := merged[hit.Code]; ok {
				existing.score += contribution
				if hit.Rank < existing.bestRank {
					existing.bestRank = hit.Rank
				}
			} else {
				merged[hit.Code] = &fusedEntry{
					code:     hit.Code,
					title:    hit.Title,
					score:    contribution,
					bestRank: hit.Rank,
					ordinal:  hit.Ordinal,
				}
			}
		}
	}

	fused := make([]*fusedEntry, 0, len(merged))
	for _, entry := range merged {
		fused = append(fused, entry)
	}

	slices.SortFunc(fused, func(a, b *fusedEntry) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		if a.bestRank != b.bestRank {
			return a.bestRank - b.bestRank
		}
		return a.ordinal - b.ordinal
	})

	if topN > 0 && len(fused) > topN {
		fused = fused[:topN]
	}

	results := make([]core.Classification, len(fused))
	for i, entry := range fused {
		results[i] = core.Classification{
			Code:  entry.code,
			Title: entry.title,
			Score: entry.score,
		}
	}
	return results
}
