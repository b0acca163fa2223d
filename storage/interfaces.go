package storage

import (
	"context"

	"github.com/j-jayes/mcp-occupation-classifier/core"
)

// Repository provides common operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// OccupationRepository provides operations for managing the taxonomy corpus.
//
// The corpus is written by the ingestion pipeline and read back as a whole
// by the classification engine; it is never mutated while an engine serves
// queries. A refreshed corpus is loaded into a new index which is then
// swapped in atomically.
type OccupationRepository interface {
	Repository

	// AddOccupations adds occupations to storage.
	// Record IDs are derived from the taxonomy code; ordinals are assigned
	// from the insertion sequence so corpus order is reproducible on load.
	// Returns ErrDuplicateKey if a code is already stored.
	AddOccupations(ctx context.Context, occupations ...*core.Occupation) ([]*core.Occupation, error)

	// UpdateOccupations updates existing occupations in place, preserving
	// their ordinals. Returns ErrNotFound if any occupation doesn't exist.
	UpdateOccupations(ctx context.Context, occupations ...*core.Occupation) ([]*core.Occupation, error)

	// DeleteOccupations removes occupations by taxonomy code.
	// Returns ErrNotFound if any code doesn't exist.
	DeleteOccupations(ctx context.Context, codes ...core.TaxonomyCode) error

	// GetOccupation retrieves a single occupation by taxonomy code.
	// Returns ErrNotFound if the occupation doesn't exist.
	GetOccupation(ctx context.Context, code core.TaxonomyCode) (*core.Occupation, error)

	// GetAllOccupations retrieves the full corpus ordered by insertion
	// ordinal (first-loaded first).
	GetAllOccupations(ctx context.Context) ([]*core.Occupation, error)

	// CountOccupations returns the number of stored occupations.
	CountOccupations(ctx context.Context) (int, error)

	// SaveCorpusInfo persists the record describing how the corpus was
	// produced (embedding model, dimensionality, entry count).
	SaveCorpusInfo(ctx context.Context, info *core.CorpusInfo) error

	// GetCorpusInfo retrieves the corpus info record.
	// Returns ErrNotFound if ingestion has never run.
	GetCorpusInfo(ctx context.Context) (*core.CorpusInfo, error)
}

// IncomeRepository provides operations for the income-statistics records.
type IncomeRepository interface {
	Repository

	// PutIncomeStats stores income statistics, overwriting any existing
	// record for the same taxonomy code.
	PutIncomeStats(ctx context.Context, stats ...*core.IncomeStats) error

	// GetIncomeStats retrieves income statistics for a taxonomy code.
	// Returns ErrNotFound if no statistics are stored for the code.
	GetIncomeStats(ctx context.Context, code core.TaxonomyCode) (*core.IncomeStats, error)

	// CountIncomeStats returns the number of stored records.
	CountIncomeStats(ctx context.Context) (int, error)
}
