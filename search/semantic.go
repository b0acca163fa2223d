package search

import (
	"fmt"
	"math"
	"slices"

	"github.com/j-jayes/mcp-occupation-classifier/core"
)

// semanticEntry holds a unit-length corpus vector with its identity.
type semanticEntry struct {
	code    core.TaxonomyCode
	title   string
	ordinal int
	vector  []float32
}

// SemanticIndex ranks corpus entries by cosine similarity of embedding
// vectors. Corpus vectors are L2-normalized at build time so cosine
// similarity reduces to a dot product at query time. The index is
// immutable after construction and safe for concurrent reads.
type SemanticIndex struct {
	entries    []semanticEntry
	dimensions int
}

var _ Ranker = (*SemanticIndex)(nil)

// NewSemanticIndex builds a semantic index over the given corpus entries.
// All entries must carry embedding vectors of identical dimensionality.
func NewSemanticIndex(occupations []*core.Occupation) (*SemanticIndex, error) {
	if len(occupations) == 0 {
		return nil, ErrEmptyCorpus
	}

	dimensions := len(occupations[0].Embedding)
	if dimensions == 0 {
		return nil, fmt.Errorf("%w: entry %s has no embedding", core.ErrEmptyEmbedding, occupations[0].Code)
	}

	index := &SemanticIndex{
		entries:    make([]semanticEntry, len(occupations)),
		dimensions: dimensions,
	}

	for i, occupation := range occupations {
		if len(occupation.Embedding) != dimensions {
			return nil, fmt.Errorf("%w: entry %s has %d dimensions, corpus has %d",
				ErrDimensionMismatch, occupation.Code, len(occupation.Embedding), dimensions)
		}
		index.entries[i] = semanticEntry{
			code:    occupation.Code,
			title:   occupation.Title,
			ordinal: occupation.Ordinal,
			vector:  normalize(occupation.Embedding),
		}
	}

	return index, nil
}

// Name identifies the semantic signal.
func (index *SemanticIndex) Name() string {
	return "semantic"
}

// Len returns the number of indexed entries.
func (index *SemanticIndex) Len() int {
	return len(index.entries)
}

// Dimensions returns the embedding dimensionality the index was built with.
func (index *SemanticIndex) Dimensions() int {
	return index.dimensions
}

// Rank scores every corpus entry by cosine similarity to the query
// vector and returns all of them, sorted by similarity descending. No
// similarity cutoff is applied; fusion decides what survives. Ties are
// broken by corpus insertion order.
func (index *SemanticIndex) Rank(query PreparedQuery) ([]core.RankedHit, error) {
	if query.Vector == nil {
		return nil, ErrEmbedderRequired
	}
	if len(query.Vector) != index.dimensions {
		return nil, fmt.Errorf("%w: query has %d dimensions, corpus has %d",
			ErrDimensionMismatch, len(query.Vector), index.dimensions)
	}

	queryVector := normalize(query.Vector)

	hits := make([]core.RankedHit, len(index.entries))
	for i, entry := range index.entries {
		hits[i] = core.RankedHit{
			Code:    entry.code,
			Title:   entry.title,
			Score:   dot(queryVector, entry.vector),
			Ordinal: entry.ordinal,
		}
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

// normalize returns a unit-length copy of the vector. A zero vector is
// returned unchanged so it scores 0 against everything.
func normalize(vector []float32) []float32 {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	unit := make([]float32, len(vector))
	norm := math.Sqrt(sum)
	if norm == 0 {
		return unit
	}
	for i, v := range vector {
		unit[i] = float32(float64(v) / norm)
	}
	return unit
}

// dot computes the dot product of two equal-length vectors.
func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
