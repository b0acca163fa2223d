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


package reembed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/j-jayes/mcp-occupation-classifier/ai"
	"github.com/j-jayes/mcp-occupation-classifier/core"
	"github.com/j-jayes/mcp-occupation-classifier/storage"
)

// Config holds configuration for the reembedding operation.
type Config struct {
	// BatchSize is the number of entries to embed per request
	BatchSize int

	// ReportInterval is how often to report progress (number of entries)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed batches
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reembedder rebuilds every stored corpus embedding with a new model
// and updates the corpus provenance record.
type Reembedder struct {
	occupationRepo storage.OccupationRepository
	embedder       ai.Embedder
	modelName      string
	config         *Config
	progress       io.Writer
}

// NewReembedder creates a new reembedder.
// modelName is recorded in the corpus provenance record after the run.
// progress: where to write progress output (typically os.Stderr).
func NewReembedder(
	occupationRepo storage.OccupationRepository,
	embedder ai.Embedder,
	modelName string,
	config *Config,
	progress io.Writer,
) (*Reembedder, error) {
	if occupationRepo == nil {
		return nil, ErrOccupationRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if modelName == "" {
		return nil, ErrModelNameRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Reembedder{
		occupationRepo: occupationRepo,
		embedder:       embedder,
		modelName:      modelName,
		config:         config,
		progress:       progress,
	}, nil
}

// Run executes the reembedding operation. Every stored occupation is
// reembedded with the configured embedder; ordinals and timestamps of
// first insertion are preserved. The corpus provenance record is written
// last, so an interrupted run leaves the old record in place.
func (r *Reembedder) Run(ctx context.Context) error {
	occupations, err := r.occupationRepo.GetAllOccupations(ctx)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	total := len(occupations)
	if total == 0 {
		fmt.Fprintf(r.progress, "No occupations stored (0 entries)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d entries with %s (batch size: %d)\n",
		total, r.modelName, r.config.BatchSize)

	startTime := time.Now()
	dimensions := 0
	processed := 0
	lastReported := 0

	for start := 0; start < total; start += r.config.BatchSize {
		end := min(start+r.config.BatchSize, total)
		batch := occupations[start:end]

		texts := make([]string, len(batch))
		for i, occupation := range batch {
			texts[i] = occupation.SearchText()
		}

		var vectors [][]float32
		err := RetryWithBackoff(ctx, func() error {
			result, embedErr := r.embedder.EmbedTexts(ctx, texts)
			if embedErr != nil {
				return embedErr
			}
			if len(result) != len(texts) {
				return fmt.Errorf("got %d vectors for %d texts", len(result), len(texts))
			}
			vectors = result
			return nil
		}, r.config.MaxRetries, r.config.RetryDelay)
		if err != nil {
			return fmt.Errorf("failed to reembed batch at offset %d: %w", start, err)
		}

		for i, vector := range vectors {
			if dimensions == 0 {
				dimensions = len(vector)
			}
			if len(vector) != dimensions {
				return fmt.Errorf("%w: entry %s has %d dimensions, expected %d",
					ErrInconsistentDimensions, batch[i].Code, len(vector), dimensions)
			}
			batch[i].Embedding = vector
		}

		if _, err := r.occupationRepo.UpdateOccupations(ctx, batch...); err != nil {
			return fmt.Errorf("failed to store reembedded batch at offset %d: %w", start, err)
		}

		processed += len(batch)
		if processed-lastReported >= r.config.ReportInterval || processed == total {
			fmt.Fprintf(r.progress, "Reembedded %d/%d entries\n", processed, total)
			lastReported = processed
		}
	}

	info := &core.CorpusInfo{
		EmbeddingModel: r.modelName,
		Dimensions:     dimensions,
		EntryCount:     total,
		IngestedAt:     time.Now().UTC(),
	}
	if err := r.occupationRepo.SaveCorpusInfo(ctx, info); err != nil {
		return fmt.Errorf("failed to update corpus info: %w", err)
	}

	elapsed := time.Since(startTime)
	fmt.Fprintf(r.progress, "Reembedding complete. Processed %d entries in %v (%.1f entries/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}
