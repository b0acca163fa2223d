package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/j-jayes/mcp-occupation-classifier/core"
	"github.com/j-jayes/mcp-occupation-classifier/storage"
)

// IncomeRepository implements storage.IncomeRepository for BadgerDB.
type IncomeRepository struct {
	backend *Backend
}

var _ storage.IncomeRepository = (*IncomeRepository)(nil)

// NewIncomeRepository creates a new IncomeRepository.
func NewIncomeRepository(backend *Backend) storage.IncomeRepository {
	return &IncomeRepository{
		backend: backend,
	}
}

// Close is a no-op; the repository holds no resources beyond the backend.
func (r *IncomeRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *IncomeRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutIncomeStats stores income statistics, overwriting existing records.
func (r *IncomeRepository) PutIncomeStats(ctx context.Context, stats ...*core.IncomeStats) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range stats {
			record.UpdatedAt = time.Now().UTC()
			key := makeIncomeStatsKey(record.Code.ID())
			if err := tx.Set(key, storage.MarshalIncomeStats(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetIncomeStats retrieves income statistics for a taxonomy code.
func (r *IncomeRepository) GetIncomeStats(ctx context.Context, code core.TaxonomyCode) (*core.IncomeStats, error) {
	var stats *core.IncomeStats
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeIncomeStatsKey(code.ID()))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			stats, unmarshalErr = storage.UnmarshalIncomeStats(val)
			return unmarshalErr
		})
	}, false)
	return stats, err
}

// CountIncomeStats returns the number of stored records.
func (r *IncomeRepository) CountIncomeStats(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(incomeStatsPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}
