package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-jayes/mcp-occupation-classifier/core"
)

func semanticTestCorpus() []*core.Occupation {
	return []*core.Occupation{
		{Code: "7511", Title: "Bagare och konditorer", Embedding: []float32{0.9, 0.1, 0.0}, Ordinal: 1},
		{Code: "2512", Title: "Mjukvaruutvecklare", Embedding: []float32{0.0, 0.1, 0.9}, Ordinal: 2},
		{Code: "5120", Title: "Kockar", Embedding: []float32{0.5, 0.5, 0.0}, Ordinal: 3},
	}
}

func TestNewSemanticIndex_EmptyCorpus(t *testing.T) {
	_, err := NewSemanticIndex(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestNewSemanticIndex_MixedDimensions(t *testing.T) {
	corpus := []*core.Occupation{
		{Code: "7511", Title: "Bagare", Embedding: []float32{0.9, 0.1, 0.0}},
		{Code: "2512", Title: "Utvecklare", Embedding: []float32{0.5, 0.5}},
	}
	_, err := NewSemanticIndex(corpus)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSemanticIndex_RankByCosineSimilarity(t *testing.T) {
	index, err := NewSemanticIndex(semanticTestCorpus())
	require.NoError(t, err)

	hits, err := index.Rank(PreparedQuery{Vector: []float32{1.0, 0.0, 0.0}})
	require.NoError(t, err)

	// Every corpus entry is returned; fusion applies the cutoff.
	require.Len(t, hits, 3)
	assert.Equal(t, core.TaxonomyCode("7511"), hits[0].Code)
	assert.Equal(t, core.TaxonomyCode("5120"), hits[1].Code)
	assert.Equal(t, core.TaxonomyCode("2512"), hits[2].Code)

	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i-1].Score, hits[i].Score)
		assert.Equal(t, i+1, hits[i].Rank)
	}
}

func TestSemanticIndex_ScaleInvariance(t *testing.T) {
	index, err := NewSemanticIndex(semanticTestCorpus())
	require.NoError(t, err)

	unit, err := index.Rank(PreparedQuery{Vector: []float32{1.0, 0.0, 0.0}})
	require.NoError(t, err)
	scaled, err := index.Rank(PreparedQuery{Vector: []float32{25.0, 0.0, 0.0}})
	require.NoError(t, err)

	require.Len(t, scaled, len(unit))
	for i := range unit {
		assert.Equal(t, unit[i].Code, scaled[i].Code)
		assert.InDelta(t, unit[i].Score, scaled[i].Score, 1e-6)
	}
}

func TestSemanticIndex_QueryDimensionMismatch(t *testing.T) {
	index, err := NewSemanticIndex(semanticTestCorpus())
	require.NoError(t, err)

	_, err = index.Rank(PreparedQuery{Vector: []float32{1.0, 0.0}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSemanticIndex_NilVector(t *testing.T) {
	index, err := NewSemanticIndex(semanticTestCorpus())
	require.NoError(t, err)

	_, err = index.Rank(PreparedQuery{Tokens: []string{"bagare"}})
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestSemanticIndex_Dimensions(t *testing.T) {
	index, err := NewSemanticIndex(semanticTestCorpus())
	require.NoError(t, err)
	assert.Equal(t, 3, index.Dimensions())
	assert.Equal(t, 3, index.Len())
}
