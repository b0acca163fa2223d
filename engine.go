// Copyright 2025 The mcp-occupation-classifier Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package occupations

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/j-jayes/mcp-occupation-classifier/ai"
	"github.com/j-jayes/mcp-occupation-classifier/ai/openai"
	"github.com/j-jayes/mcp-occupation-classifier/income"
	"github.com/j-jayes/mcp-occupation-classifier/ingestion"
	"github.com/j-jayes/mcp-occupation-classifier/reembed"
	"github.com/j-jayes/mcp-occupation-classifier/search"
	"github.com/j-jayes/mcp-occupation-classifier/storage"
	"github.com/j-jayes/mcp-occupation-classifier/storage/badger"
)

// Engine owns the storage backend, repositories and embedder, and hands
// out the classification, income and ingestion services built on them.
type Engine struct {
	backend        *badger.Backend
	occupationRepo storage.OccupationRepository
	incomeRepo     storage.IncomeRepository
	embedder       ai.Embedder
	aiConfig       *ai.Config
	logger         *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	embedder ai.Embedder
	inMemory bool
	logger   *slog.Logger
}

// WithAIConfig sets the embedding service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithEmbedder injects a prebuilt embedder instead of constructing one
// from the AI config. Used by tests and callers with custom transports.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(o *engineOptions) {
		o.embedder = embedder
	}
}

// WithInMemoryStorage keeps all data in memory. For tests.
func WithInMemoryStorage() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithEngineLogger sets a custom logger.
// Default is slog.Default().
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine opens the storage backend at filePath and wires up the
// repositories and the embedder.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	occupationRepo, err := badger.NewOccupationRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	incomeRepo := badger.NewIncomeRepository(backend)

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			occupationRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Engine{
		backend:        backend,
		occupationRepo: occupationRepo,
		incomeRepo:     incomeRepo,
		embedder:       embedder,
		aiConfig:       options.aiConfig,
		logger:         options.logger,
	}, nil
}

// Close releases the repositories and the storage backend.
func (e *Engine) Close() error {
	if err := e.occupationRepo.Close(); err != nil {
		e.logger.Error("error closing occupation repository", "err", err)
		return err
	}
	if err := e.incomeRepo.Close(); err != nil {
		e.logger.Error("error closing income repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// OccupationRepository exposes the corpus store.
func (e *Engine) OccupationRepository() storage.OccupationRepository {
	return e.occupationRepo
}

// IncomeRepository exposes the income-statistics store.
func (e *Engine) IncomeRepository() storage.IncomeRepository {
	return e.incomeRepo
}

// NewClassifier builds a classifier over the stored corpus. A stored
// corpus produced by a different embedding model than the configured
// query encoder is a silent-skew hazard, so a mismatch is logged loudly
// before the classifier is returned.
func (e *Engine) NewClassifier(ctx context.Context, opts ...search.Option) (*search.Classifier, error) {
	info, err := e.occupationRepo.GetCorpusInfo(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		e.logger.Warn("corpus has no provenance record, cannot verify embedding model")
	case err != nil:
		return nil, err
	case info.EmbeddingModel != e.aiConfig.EmbeddingModel:
		e.logger.Warn("query encoder differs from the model that embedded the corpus, semantic ranking will be unreliable",
			"corpusModel", info.EmbeddingModel,
			"queryModel", e.aiConfig.EmbeddingModel)
	}

	opts = append([]search.Option{search.WithLogger(e.logger)}, opts...)
	return search.NewClassifier(ctx, e.occupationRepo, e.embedder, opts...)
}

// NewIncomeService builds the income-statistics lookup service.
func (e *Engine) NewIncomeService(opts ...income.Option) (*income.Service, error) {
	opts = append([]income.Option{income.WithLogger(e.logger)}, opts...)
	return income.NewService(e.incomeRepo, opts...)
}

// NewIngestionPipeline builds the corpus ingestion pipeline.
func (e *Engine) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	defaults := []ingestion.Option{
		ingestion.WithLogger(e.logger),
		ingestion.WithModelName(e.aiConfig.EmbeddingModel),
	}
	return ingestion.NewPipeline(e.occupationRepo, e.embedder, append(defaults, opts...)...)
}

// NewReembedder builds a reembedder that rebuilds the corpus with the
// configured embedding model.
func (e *Engine) NewReembedder(config *reembed.Config, progress io.Writer) (*reembed.Reembedder, error) {
	return reembed.NewReembedder(e.occupationRepo, e.embedder, e.aiConfig.EmbeddingModel, config, progress)
}
