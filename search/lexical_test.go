package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-jayes/mcp-occupation-classifier/core"
)

func lexicalTestCorpus() []*core.Occupation {
	return []*core.Occupation{
		{
			Code:        "7511",
			Title:       "Bagare och konditorer",
			Description: "Bakar bröd och bakverk",
			Ordinal:     1,
		},
		{
			Code:        "2512",
			Title:       "Mjukvaruutvecklare",
			Description: "Utvecklar och testar programvara",
			Ordinal:     2,
		},
		{
			Code:        "5120",
			Title:       "Kockar",
			Description: "Lagar mat i restaurangkök",
			Ordinal:     3,
		},
	}
}

func TestNewLexicalIndex_EmptyCorpus(t *testing.T) {
	_, err := NewLexicalIndex(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestLexicalIndex_RankMatchingEntryFirst(t *testing.T) {
	index, err := NewLexicalIndex(lexicalTestCorpus())
	require.NoError(t, err)

	hits, err := index.Rank(PreparedQuery{Tokens: Tokenize("bakar bröd")})
	require.NoError(t, err)
	require.NotEmpty(t, hits)

	assert.Equal(t, core.TaxonomyCode("7511"), hits[0].Code)
	assert.Equal(t, 1, hits[0].Rank)
	assert.Greater(t, hits[0].Score, 0.0)
}

func TestLexicalIndex_OmitsZeroScoreEntries(t *testing.T) {
	index, err := NewLexicalIndex(lexicalTestCorpus())
	require.NoError(t, err)

	// "programvara" appears only in the developer entry.
	hits, err := index.Rank(PreparedQuery{Tokens: Tokenize("programvara")})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, core.TaxonomyCode("2512"), hits[0].Code)
}

func TestLexicalIndex_UnknownTokens(t *testing.T) {
	index, err := NewLexicalIndex(lexicalTestCorpus())
	require.NoError(t, err)

	hits, err := index.Rank(PreparedQuery{Tokens: []string{"zzzzz"}})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestLexicalIndex_NoTokens(t *testing.T) {
	index, err := NewLexicalIndex(lexicalTestCorpus())
	require.NoError(t, err)

	hits, err := index.Rank(PreparedQuery{})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestLexicalIndex_ScoresNonIncreasing(t *testing.T) {
	index, err := NewLexicalIndex(lexicalTestCorpus())
	require.NoError(t, err)

	hits, err := index.Rank(PreparedQuery{Tokens: Tokenize("bakar bröd programvara mat")})
	require.NoError(t, err)
	require.NotEmpty(t, hits)

	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i-1].Score, hits[i].Score)
		assert.Equal(t, i+1, hits[i].Rank)
	}
}

func TestLexicalIndex_TieBrokenByInsertionOrder(t *testing.T) {
	// Two entries with identical text score identically; the earlier
	// insertion ordinal must come first.
	corpus := []*core.Occupation{
		{Code: "1111", Title: "Snickare", Description: "Bygger hus", Ordinal: 5},
		{Code: "2222", Title: "Snickare", Description: "Bygger hus", Ordinal: 2},
		{Code: "3333", Title: "Kockar", Description: "Lagar mat i restaurangkök och storkök", Ordinal: 1},
	}
	index, err := NewLexicalIndex(corpus)
	require.NoError(t, err)

	hits, err := index.Rank(PreparedQuery{Tokens: Tokenize("snickare")})
	require.NoError(t, err)
	require.Len(t, hits, 2)

	assert.Equal(t, core.TaxonomyCode("2222"), hits[0].Code)
	assert.Equal(t, core.TaxonomyCode("1111"), hits[1].Code)
}

func TestLexicalIndex_RankIsDeterministic(t *testing.T) {
	index, err := NewLexicalIndex(lexicalTestCorpus())
	require.NoError(t, err)

	query := PreparedQuery{Tokens: Tokenize("bakar och programvara")}
	first, err := index.Rank(query)
	require.NoError(t, err)
	second, err := index.Rank(query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
