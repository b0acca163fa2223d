package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-jayes/mcp-occupation-classifier/core"
	"github.com/j-jayes/mcp-occupation-classifier/storage"
)

func TestIncomeRepository_PutAndGet(t *testing.T) {
	_, incomeRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	stats := &core.IncomeStats{
		Code:          "2512",
		Year:          "2023",
		Percentile10:  34800,
		LowerQuartile: 40600,
		Median:        47900,
		UpperQuartile: 56000,
		Percentile90:  65100,
		Mean:          49400,
	}
	require.NoError(t, incomeRepo.PutIncomeStats(ctx, stats))

	got, err := incomeRepo.GetIncomeStats(ctx, "2512")
	require.NoError(t, err)
	assert.Equal(t, 47900, got.Median)
	assert.Equal(t, "2023", got.Year)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestIncomeRepository_GetMissing(t *testing.T) {
	_, incomeRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	_, err = incomeRepo.GetIncomeStats(context.Background(), "0000")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIncomeRepository_Overwrite(t *testing.T) {
	_, incomeRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	require.NoError(t, incomeRepo.PutIncomeStats(ctx, &core.IncomeStats{Code: "7511", Year: "2022", Median: 30000}))
	require.NoError(t, incomeRepo.PutIncomeStats(ctx, &core.IncomeStats{Code: "7511", Year: "2023", Median: 31200}))

	got, err := incomeRepo.GetIncomeStats(ctx, "7511")
	require.NoError(t, err)
	assert.Equal(t, "2023", got.Year)
	assert.Equal(t, 31200, got.Median)

	count, err := incomeRepo.CountIncomeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
