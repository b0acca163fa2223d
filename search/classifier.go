package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/j-jayes/mcp-occupation-classifier/ai"
	"github.com/j-jayes/mcp-occupation-classifier/core"
	"github.com/j-jayes/mcp-occupation-classifier/storage"
)

// Classifier ranks SSYK occupations against free-text job descriptions
// by fusing lexical (BM25) and semantic (embedding cosine) rankings
// with Reciprocal Rank Fusion.
type Classifier struct {
	occupationRepo storage.OccupationRepository
	embedder       ai.Embedder
	rrfK           int
	logger         *slog.Logger

	// indexes holds the current immutable index snapshot. Reload builds
	// a fresh snapshot and swaps the pointer; queries never observe a
	// partially built state.
	indexes atomic.Pointer[indexSet]
}

// indexSet is one immutable snapshot of both built indexes.
type indexSet struct {
	lexical  *LexicalIndex
	semantic *SemanticIndex
}

// Option configures a Classifier.
type Option func(*Classifier) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithRRFK overrides the Reciprocal Rank Fusion constant.
// Default is DefaultRRFK.
func WithRRFK(k int) Option {
	return func(c *Classifier) error {
		if k < 1 {
			return fmt.Errorf("rrf constant must be positive, got %d", k)
		}
		c.rrfK = k
		return nil
	}
}

// NewClassifier creates a classifier and builds its initial index
// snapshot from the stored corpus.
func NewClassifier(
	ctx context.Context,
	occupationRepo storage.OccupationRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Classifier, error) {
	if occupationRepo == nil {
		return nil, ErrOccupationRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	c := &Classifier{
		occupationRepo: occupationRepo,
		embedder:       embedder,
		rrfK:           DefaultRRFK,
		logger:         slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Reload rebuilds both indexes from the stored corpus and atomically
// swaps them in. Queries running during a reload finish against the
// snapshot they started with.
func (c *Classifier) Reload(ctx context.Context) error {
	occupations, err := c.occupationRepo.GetAllOccupations(ctx)
	if err != nil {
		c.logger.Error("error loading corpus for index build", "err", err)
		return err
	}
	if len(occupations) == 0 {
		return ErrEmptyCorpus
	}

	lexical, err := NewLexicalIndex(occupations)
	if err != nil {
		return err
	}
	semantic, err := NewSemanticIndex(occupations)
	if err != nil {
		return err
	}

	c.indexes.Store(&indexSet{lexical: lexical, semantic: semantic})
	c.logger.Info("classification indexes built",
		"entries", len(occupations),
		"dimensions", semantic.Dimensions())

	return nil
}

// EntryCount returns the number of corpus entries in the current snapshot.
func (c *Classifier) EntryCount() int {
	return c.indexes.Load().lexical.Len()
}

// Dimensions returns the embedding dimensionality of the current snapshot.
func (c *Classifier) Dimensions() int {
	return c.indexes.Load().semantic.Dimensions()
}

// classifyConfig holds per-call options.
type classifyConfig struct {
	lexicalFallback bool
}

// ClassifyOption configures a single Classify call.
type ClassifyOption func(*classifyConfig)

// WithLexicalFallback allows a call to return lexical-only results when
// the query cannot be embedded. The result is marked Degraded. Without
// this option an embedding failure fails the whole call.
func WithLexicalFallback() ClassifyOption {
	return func(cfg *classifyConfig) {
		cfg.lexicalFallback = true
	}
}

// Classify ranks the corpus against the query and returns the top
// topN fused results.
func (c *Classifier) Classify(ctx context.Context, query core.Query, topN int, opts ...ClassifyOption) (*core.ClassificationResult, error) {
	return c.ClassifyWithMonitor(ctx, query, topN, nil, opts...)
}

// ClassifyWithMonitor ranks the corpus against the query with monitoring.
// The monitor receives callbacks at each stage of the process.
func (c *Classifier) ClassifyWithMonitor(ctx context.Context, query core.Query, topN int, monitor ClassifyMonitor, opts ...ClassifyOption) (*core.ClassificationResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	cfg := classifyConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}
	if err := core.ValidateTopN(topN); err != nil {
		return nil, err
	}

	snapshot := c.indexes.Load()

	text := query.CanonicalText()
	monitor.Start(text)

	prepared := PreparedQuery{Tokens: Tokenize(text)}
	degraded := false

	vector, err := c.embedder.EmbedText(ctx, text)
	if err != nil {
		if !cfg.lexicalFallback {
			c.logger.Error("error generating embedding for query", "err", err)
			return nil, fmt.Errorf("%w: %w", ErrClassificationUnavailable, err)
		}
		c.logger.Warn("query embedding failed, ranking lexically only", "err", err)
		monitor.DegradedToLexical(err)
		degraded = true
	} else {
		prepared.Vector = vector
		monitor.AfterQueryEmbedding(len(vector))
	}

	// Rank both signals concurrently; they share the immutable snapshot.
	var (
		wg           sync.WaitGroup
		lexicalHits  []core.RankedHit
		semanticHits []core.RankedHit
		lexicalErr   error
		semanticErr  error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		lexicalHits, lexicalErr = snapshot.lexical.Rank(prepared)
	}()

	if !degraded {
		wg.Add(1)
		go func() {
			defer wg.Done()
			semanticHits, semanticErr = snapshot.semantic.Rank(prepared)
		}()
	}

	wg.Wait()

	if lexicalErr != nil {
		c.logger.Error("lexical ranking failed", "err", lexicalErr)
		return nil, lexicalErr
	}
	if semanticErr != nil {
		c.logger.Error("semantic ranking failed", "err", semanticErr)
		return nil, semanticErr
	}

	monitor.AfterRank(snapshot.lexical.Name(), lexicalHits)
	if !degraded {
		monitor.AfterRank(snapshot.semantic.Name(), semanticHits)
	}

	result := &core.ClassificationResult{
		Hits:     Fuse(c.rrfK, topN, lexicalHits, semanticHits),
		Degraded: degraded,
	}
	monitor.Finish(result)

	return result, nil
}
