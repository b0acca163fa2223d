package search

import (
	"math"
	"slices"

	"github.com/j-jayes/mcp-occupation-classifier/core"
)

// BM25 parameters (Okapi variant, standard values).
const (
	paramK1      = 1.2
	paramB       = 0.75
	paramEpsilon = 0.25
)

// lexicalEntry is the per-entry state retained after index construction.
type lexicalEntry struct {
	code          core.TaxonomyCode
	title         string
	ordinal       int
	termFrequency map[string]int
	length        int
}

// LexicalIndex is a BM25 (Okapi) index over the canonical search text of
// the corpus. The index is built at construction time and is immutable
// thereafter, so it is safe for concurrent reads.
type LexicalIndex struct {
	entries                  []lexicalEntry
	averageLength            float64
	inverseDocumentFrequency map[string]float64
}

var _ Ranker = (*LexicalIndex)(nil)

// NewLexicalIndex builds a BM25 index over the given corpus entries.
// Construction is O(total tokens) and runs once per corpus load.
func NewLexicalIndex(occupations []*core.Occupation) (*LexicalIndex, error) {
	if len(occupations) == 0 {
		return nil, ErrEmptyCorpus
	}

	index := &LexicalIndex{
		entries:                  make([]lexicalEntry, len(occupations)),
		inverseDocumentFrequency: make(map[string]float64),
	}

	// Track how many entries contain each term (for IDF).
	documentFrequency := make(map[string]int)

	var totalLength int
	for i, occupation := range occupations {
		tokens := Tokenize(occupation.SearchText())
		totalLength += len(tokens)

		termFrequency := make(map[string]int, len(tokens))
		for _, token := range tokens {
			if termFrequency[token] == 0 {
				documentFrequency[token]++
			}
			termFrequency[token]++
		}

		index.entries[i] = lexicalEntry{
			code:          occupation.Code,
			title:         occupation.Title,
			ordinal:       occupation.Ordinal,
			termFrequency: termFrequency,
			length:        len(tokens),
		}
	}
	index.averageLength = float64(totalLength) / float64(len(occupations))

	// Precompute IDF per term. Terms appearing in more than half the
	// corpus get a negative raw IDF; those are floored at epsilon times
	// the average IDF so common terms still contribute a small positive
	// amount to ranking.
	entryCount := float64(len(occupations))
	var idfSum float64
	var negativeTerms []string
	for term, frequency := range documentFrequency {
		idf := math.Log(entryCount-float64(frequency)+0.5) - math.Log(float64(frequency)+0.5)
		index.inverseDocumentFrequency[term] = idf
		idfSum += idf
		if idf < 0 {
			negativeTerms = append(negativeTerms, term)
		}
	}
	if len(documentFrequency) > 0 {
		floor := paramEpsilon * idfSum / float64(len(documentFrequency))
		for _, term := range negativeTerms {
			index.inverseDocumentFrequency[term] = floor
		}
	}

	return index, nil
}

// Name identifies the lexical signal.
func (index *LexicalIndex) Name() string {
	return "lexical"
}

// Len returns the number of indexed entries.
func (index *LexicalIndex) Len() int {
	return len(index.entries)
}

// Rank scores every corpus entry against the query tokens and returns
// the entries with positive scores, sorted by score descending. Ties at
// equal score are broken by corpus insertion order.
func (index *LexicalIndex) Rank(query PreparedQuery) ([]core.RankedHit, error) {
	if len(query.Tokens) == 0 {
		return nil, nil
	}

	hits := make([]core.RankedHit, 0, len(index.entries))
	for i := range index.entries {
		score := index.score(i, query.Tokens)
		if score <= 0 {
			continue
		}
		hits = append(hits, core.RankedHit{
			Code:    index.entries[i].code,
			Title:   index.entries[i].title,
			Score:   score,
			Ordinal: index.entries[i].ordinal,
		})
	}

	slices.SortFunc(hits, func(a, b core.RankedHit) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		return a.Ordinal - b.Ordinal
	})
	for i := range hits {
		hits[i].Rank = i + 1
	}

	return hits, nil
}

// score computes the BM25 score for a single entry against the query tokens.
func (index *LexicalIndex) score(entryIndex int, queryTokens []string) float64 {
	entry := index.entries[entryIndex]
	entryLength := float64(entry.length)

	var score float64
	for _, token := range queryTokens {
		idf, exists := index.inverseDocumentFrequency[token]
		if !exists {
			continue
		}

		frequency := float64(entry.termFrequency[token])
		if frequency == 0 {
			continue
		}

		// BM25 term score: IDF * (tf * (k1 + 1)) / (tf + k1 * (1 - b + b * dl/avgdl))
		numerator := frequency * (paramK1 + 1)
		denominator := frequency + paramK1*(1-paramB+paramB*entryLength/index.averageLength)
		score += idf * numerator / denominator
	}

	return score
}
