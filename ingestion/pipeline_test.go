package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-jayes/mcp-occupation-classifier/ai/mock"
	"github.com/j-jayes/mcp-occupation-classifier/core"
	"github.com/j-jayes/mcp-occupation-classifier/storage/badger"
)

func testEntries() []TaxonomyEntry {
	return []TaxonomyEntry{
		{Code: "7511", Title: "Bagare och konditorer", Description: "Bakar bröd och bakverk"},
		{Code: "2512", Title: "Mjukvaruutvecklare", Description: "Utvecklar och testar programvara"},
		{Code: "5120", Title: "Kockar", Description: "Lagar mat i restaurangkök"},
	}
}

func TestNewPipeline(t *testing.T) {
	occupationRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		occupationRepo.Close()
		backend.Close()
	}()

	t.Run("valid configuration", func(t *testing.T) {
		pipeline, err := NewPipeline(occupationRepo, mock.NewMockEmbedder())
		require.NoError(t, err)
		defer pipeline.Release()
		assert.NotNil(t, pipeline)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewPipeline(nil, mock.NewMockEmbedder())
		assert.Equal(t, ErrOccupationRepositoryRequired, err)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewPipeline(occupationRepo, nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("invalid batch size", func(t *testing.T) {
		_, err := NewPipeline(occupationRepo, mock.NewMockEmbedder(), WithBatchSize(0))
		assert.Error(t, err)
	})
}

func TestIngestTaxonomy(t *testing.T) {
	occupationRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		occupationRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	pipeline, err := NewPipeline(occupationRepo, mock.NewMockEmbedder(),
		WithModelName("text-embedding-3-small"))
	require.NoError(t, err)
	defer pipeline.Release()

	count, err := pipeline.IngestTaxonomy(ctx, testEntries())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	all, err := occupationRepo.GetAllOccupations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Corpus order follows the taxonomy document order.
	assert.Equal(t, core.TaxonomyCode("7511"), all[0].Code)
	assert.Equal(t, core.TaxonomyCode("2512"), all[1].Code)
	assert.Equal(t, core.TaxonomyCode("5120"), all[2].Code)
	for _, occupation := range all {
		assert.Len(t, occupation.Embedding, 384)
	}

	info, err := occupationRepo.GetCorpusInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "text-embedding-3-small", info.EmbeddingModel)
	assert.Equal(t, 384, info.Dimensions)
	assert.Equal(t, 3, info.EntryCount)
	assert.False(t, info.IngestedAt.IsZero())
}

func TestIngestTaxonomy_SmallBatches(t *testing.T) {
	occupationRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		occupationRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	// Batch size 1 forces one pool task per entry; results must still
	// land in taxonomy order.
	pipeline, err := NewPipeline(occupationRepo, mock.NewMockEmbedder(),
		WithBatchSize(1), WithPoolSize(2))
	require.NoError(t, err)
	defer pipeline.Release()

	count, err := pipeline.IngestTaxonomy(ctx, testEntries())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	all, err := occupationRepo.GetAllOccupations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, core.TaxonomyCode("7511"), all[0].Code)
	assert.Equal(t, core.TaxonomyCode("5120"), all[2].Code)
}

func TestIngestTaxonomy_NoEntries(t *testing.T) {
	occupationRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		occupationRepo.Close()
		backend.Close()
	}()

	pipeline, err := NewPipeline(occupationRepo, mock.NewMockEmbedder())
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.IngestTaxonomy(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoTaxonomyEntries)
}

func TestIngestTaxonomy_EmbedderFailure(t *testing.T) {
	occupationRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		occupationRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("provider down")
	}

	pipeline, err := NewPipeline(occupationRepo, embedder)
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.IngestTaxonomy(ctx, testEntries())
	require.Error(t, err)

	// Nothing may be stored on failure.
	count, err := occupationRepo.CountOccupations(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIngestTaxonomy_InconsistentDimensions(t *testing.T) {
	occupationRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		occupationRepo.Close()
		backend.Close()
	}()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = make([]float32, 3+i) // drifting dimensionality
		}
		return vectors, nil
	}

	pipeline, err := NewPipeline(occupationRepo, embedder)
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.IngestTaxonomy(context.Background(), testEntries())
	assert.ErrorIs(t, err, ErrInconsistentDimensions)
}
