package income

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/j-jayes/mcp-occupation-classifier/core"
	"github.com/j-jayes/mcp-occupation-classifier/storage"
)

// Service answers income-statistics lookups for SSYK taxonomy codes.
type Service struct {
	incomeRepo storage.IncomeRepository
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a new income lookup service.
func NewService(incomeRepo storage.IncomeRepository, opts ...Option) (*Service, error) {
	if incomeRepo == nil {
		return nil, ErrIncomeRepositoryRequired
	}

	s := &Service{
		incomeRepo: incomeRepo,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Lookup returns the stored income statistics for a taxonomy code.
// Returns ErrNoIncomeData when the code has no stored record.
func (s *Service) Lookup(ctx context.Context, code core.TaxonomyCode) (*core.IncomeStats, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidQuery, core.ErrEmptyCode)
	}

	stats, err := s.incomeRepo.GetIncomeStats(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoIncomeData, code)
		}
		s.logger.Error("error reading income statistics", "code", code, "err", err)
		return nil, err
	}

	return stats, nil
}

// Count returns the number of stored income records.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.incomeRepo.CountIncomeStats(ctx)
}
