package income

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-jayes/mcp-occupation-classifier/core"
	"github.com/j-jayes/mcp-occupation-classifier/storage/badger"
)

func TestNewService(t *testing.T) {
	_, incomeRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	t.Run("valid configuration", func(t *testing.T) {
		service, err := NewService(incomeRepo)
		require.NoError(t, err)
		assert.NotNil(t, service)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewService(nil)
		assert.Equal(t, ErrIncomeRepositoryRequired, err)
	})
}

func TestService_Lookup(t *testing.T) {
	_, incomeRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	require.NoError(t, incomeRepo.PutIncomeStats(ctx, &core.IncomeStats{
		Code:          "2512",
		Year:          "2023",
		Percentile10:  34800,
		LowerQuartile: 40600,
		Median:        47900,
		UpperQuartile: 56000,
		Percentile90:  65100,
		Mean:          49400,
	}))

	service, err := NewService(incomeRepo)
	require.NoError(t, err)

	t.Run("stored code", func(t *testing.T) {
		stats, err := service.Lookup(ctx, "2512")
		require.NoError(t, err)
		assert.Equal(t, 47900, stats.Median)
		assert.Equal(t, "2023", stats.Year)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := service.Lookup(ctx, "9999")
		assert.ErrorIs(t, err, ErrNoIncomeData)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := service.Lookup(ctx, "")
		assert.ErrorIs(t, err, core.ErrInvalidQuery)
	})

	count, err := service.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
