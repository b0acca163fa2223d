package mock

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	first, err := embedder.EmbedText(ctx, "Bagare och konditorer")
	require.NoError(t, err)
	second, err := embedder.EmbedText(ctx, "Bagare och konditorer")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := embedder.EmbedText(ctx, "Mjukvaruutvecklare")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestMockEmbedder_UnitLength(t *testing.T) {
	embedder := NewMockEmbedder()

	vector, err := embedder.EmbedText(context.Background(), "Bagare")
	require.NoError(t, err)
	require.Len(t, vector, 384)

	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(sumSquares), 1e-5)
}

func TestMockEmbedder_EmbedTexts(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	texts := []string{"Bagare", "Kockar", "Bagare"}
	vectors, err := embedder.EmbedTexts(ctx, texts)
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	// Batch results match single-text results for the same input.
	single, err := embedder.EmbedText(ctx, "Bagare")
	require.NoError(t, err)
	assert.Equal(t, single, vectors[0])
	assert.Equal(t, vectors[0], vectors[2])
	assert.NotEqual(t, vectors[0], vectors[1])
}

func TestMockEmbedder_ConcurrentCallCount(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	const goroutines = 8
	const callsPerGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < callsPerGoroutine; i++ {
				if _, err := embedder.EmbedText(ctx, "Bagare"); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*callsPerGoroutine, embedder.CallCount())
}

func TestMockEmbedder_Reset(t *testing.T) {
	embedder := NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("injected")
	}

	_, err := embedder.EmbedText(context.Background(), "Bagare")
	require.Error(t, err)
	assert.Equal(t, 1, embedder.CallCount())

	embedder.Reset()
	assert.Zero(t, embedder.CallCount())

	vector, err := embedder.EmbedText(context.Background(), "Bagare")
	require.NoError(t, err)
	assert.NotEmpty(t, vector)
}
