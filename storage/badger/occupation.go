package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/j-jayes/mcp-occupation-classifier/core"
	"github.com/j-jayes/mcp-occupation-classifier/storage"
)

// OccupationRepository implements storage.OccupationRepository for BadgerDB.
type OccupationRepository struct {
	backend    *Backend
	ordinalSeq *badger.Sequence
}

var _ storage.OccupationRepository = (*OccupationRepository)(nil)

// NewOccupationRepository creates a new OccupationRepository.
func NewOccupationRepository(backend *Backend) (storage.OccupationRepository, error) {
	ordinalSeq, err := backend.GetSequence(occupationOrdinalSeq)
	if err != nil {
		return nil, err
	}

	return &OccupationRepository{
		backend:    backend,
		ordinalSeq: ordinalSeq,
	}, nil
}

// Close releases the ordinal sequence.
func (r *OccupationRepository) Close() error {
	return r.ordinalSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *OccupationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddOccupations adds occupations to storage.
// IDs are derived from taxonomy codes; ordinals are assigned from the
// insertion sequence so the corpus order is reproducible on load.
func (r *OccupationRepository) AddOccupations(ctx context.Context, occupations ...*core.Occupation) ([]*core.Occupation, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, occupation := range occupations {
			occupation.Id = occupation.Code.ID()
			key := makeOccupationKey(occupation.Id)

			// Reject duplicate codes: the corpus invariant is one entry per code.
			if _, err := tx.Get(key); err == nil {
				return storage.ErrDuplicateKey
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			ordinal, err := r.ordinalSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if ordinal == 0 {
				ordinal, err = r.ordinalSeq.Next()
				if err != nil {
					return err
				}
			}
			occupation.Ordinal = int(ordinal)

			occupation.InsertedAt = time.Now().UTC()
			occupation.UpdatedAt = occupation.InsertedAt

			if err := tx.Set(key, storage.MarshalOccupation(occupation)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return occupations, nil
}

// UpdateOccupations updates existing occupations, preserving their ordinals.
func (r *OccupationRepository) UpdateOccupations(ctx context.Context, occupations ...*core.Occupation) ([]*core.Occupation, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, occupation := range occupations {
			occupation.Id = occupation.Code.ID()
			key := makeOccupationKey(occupation.Id)

			old, err := r.readOccupation(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			occupation.Ordinal = old.Ordinal
			occupation.InsertedAt = old.InsertedAt
			occupation.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalOccupation(occupation)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return occupations, nil
}

// DeleteOccupations removes occupations by taxonomy code.
func (r *OccupationRepository) DeleteOccupations(ctx context.Context, codes ...core.TaxonomyCode) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, code := range codes {
			key := makeOccupationKey(code.ID())

			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return storage.ErrNotFound
				}
				return err
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetOccupation retrieves a single occupation by taxonomy code.
func (r *OccupationRepository) GetOccupation(ctx context.Context, code core.TaxonomyCode) (*core.Occupation, error) {
	var result *core.Occupation
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeOccupationKey(code.ID())
		var err error
		result, err = r.readOccupation(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAllOccupations retrieves the full corpus ordered by insertion ordinal.
func (r *OccupationRepository) GetAllOccupations(ctx context.Context) ([]*core.Occupation, error) {
	var results []*core.Occupation
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(occupationPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var occupation *core.Occupation
			err := iter.Item().Value(func(val []byte) error {
				var err error
				occupation, err = storage.UnmarshalOccupation(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, occupation)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Badger iterates in key order; corpus order is the insertion ordinal.
	slices.SortFunc(results, func(a, b *core.Occupation) int {
		return a.Ordinal - b.Ordinal
	})

	return results, nil
}

// CountOccupations returns the number of stored occupations.
func (r *OccupationRepository) CountOccupations(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(occupationPrefix + ":")
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

// SaveCorpusInfo persists the singleton corpus info record.
func (r *OccupationRepository) SaveCorpusInfo(ctx context.Context, info *core.CorpusInfo) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeCorpusInfoKey(), storage.MarshalCorpusInfo(info)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetCorpusInfo retrieves the corpus info record.
func (r *OccupationRepository) GetCorpusInfo(ctx context.Context) (*core.CorpusInfo, error) {
	var info *core.CorpusInfo
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCorpusInfoKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			info, unmarshalErr = storage.UnmarshalCorpusInfo(val)
			return unmarshalErr
		})
	}, false)
	return info, err
}

// readOccupation reads and unmarshals an occupation within a transaction.
// Returns nil, nil when the key does not exist.
func (r *OccupationRepository) readOccupation(tx *badger.Txn, key []byte) (*core.Occupation, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var occupation *core.Occupation
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		occupation, unmarshalErr = storage.UnmarshalOccupation(val)
		return unmarshalErr
	})
	if err != nil {
		return nil, err
	}
	return occupation, nil
}
