package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/j-jayes/mcp-occupation-classifier/ai"
	"github.com/j-jayes/mcp-occupation-classifier/core"
	"github.com/j-jayes/mcp-occupation-classifier/storage"
)

// DefaultBatchSize is the number of texts embedded per request.
const DefaultBatchSize = 100

// Pipeline orchestrates corpus ingestion: it embeds taxonomy entries
// through a worker pool, validates the vectors, and stores the corpus
// together with its provenance record.
type Pipeline struct {
	occupationRepo storage.OccupationRepository
	embedder       ai.Embedder
	embeddingPool  *ants.Pool
	batchSize      int
	modelName      string
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		embeddingPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.embeddingPool = embeddingPool
		return nil
	}
}

// WithBatchSize sets how many texts are embedded per request.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("batch size must be positive, got %d", size)
		}
		p.batchSize = size
		return nil
	}
}

// WithModelName records which embedding model produced the corpus.
// Default is the ai package default model.
func WithModelName(name string) Option {
	return func(p *Pipeline) error {
		p.modelName = name
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	occupationRepo storage.OccupationRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Pipeline, error) {
	if occupationRepo == nil {
		return nil, ErrOccupationRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		occupationRepo: occupationRepo,
		embedder:       embedder,
		embeddingPool:  embeddingPool,
		batchSize:      DefaultBatchSize,
		modelName:      ai.DefaultConfig().EmbeddingModel,
		logger:         slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// IngestTaxonomy embeds the taxonomy entries and stores them as the
// classification corpus. Entries are stored in input order so corpus
// ordinals are reproducible. Returns the number of entries stored.
func (p *Pipeline) IngestTaxonomy(ctx context.Context, entries []TaxonomyEntry) (int, error) {
	if len(entries) == 0 {
		return 0, ErrNoTaxonomyEntries
	}

	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = core.CanonicalText(entry.Title, entry.Description)
	}

	p.logger.Info("embedding taxonomy entries",
		"entries", len(entries),
		"batchSize", p.batchSize,
		"model", p.modelName)

	embeddings, err := p.embedAll(ctx, texts)
	if err != nil {
		return 0, err
	}

	// All corpus vectors must share one dimensionality; the semantic
	// index cannot be built otherwise.
	dimensions := len(embeddings[0])
	for i, embedding := range embeddings {
		if len(embedding) != dimensions {
			return 0, fmt.Errorf("%w: entry %s has %d dimensions, expected %d",
				ErrInconsistentDimensions, entries[i].Code, len(embedding), dimensions)
		}
	}

	occupations := make([]*core.Occupation, len(entries))
	for i, entry := range entries {
		occupations[i] = &core.Occupation{
			Code:        core.TaxonomyCode(entry.Code),
			Title:       entry.Title,
			Description: entry.Description,
			Embedding:   embeddings[i],
		}
		if err := core.ValidateOccupation(occupations[i]); err != nil {
			return 0, err
		}
	}

	if _, err := p.occupationRepo.AddOccupations(ctx, occupations...); err != nil {
		return 0, err
	}

	info := &core.CorpusInfo{
		EmbeddingModel: p.modelName,
		Dimensions:     dimensions,
		EntryCount:     len(occupations),
		IngestedAt:     time.Now().UTC(),
	}
	if err := p.occupationRepo.SaveCorpusInfo(ctx, info); err != nil {
		return 0, err
	}

	p.logger.Info("corpus ingested",
		"entries", len(occupations),
		"dimensions", dimensions,
		"model", p.modelName)

	return len(occupations), nil
}

// embedAll embeds texts in batches through the worker pool. Each batch
// writes into a disjoint region of the result slice, so workers do not
// contend.
func (p *Pipeline) embedAll(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	recordErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(texts); start += p.batchSize {
		end := min(start+p.batchSize, len(texts))
		batch := texts[start:end]
		offset := start

		wg.Add(1)
		submitErr := p.embeddingPool.Submit(func() {
			defer wg.Done()
			vectors, err := p.embedder.EmbedTexts(ctx, batch)
			if err != nil {
				recordErr(fmt.Errorf("embedding batch at offset %d: %w", offset, err))
				return
			}
			if len(vectors) != len(batch) {
				recordErr(fmt.Errorf("%w: got %d vectors for %d texts",
					ErrEmbeddingCountMismatch, len(vectors), len(batch)))
				return
			}
			copy(embeddings[offset:offset+len(batch)], vectors)
		})
		if submitErr != nil {
			wg.Done()
			recordErr(submitErr)
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return embeddings, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
