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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	occupations "github.com/j-jayes/mcp-occupation-classifier"
	"github.com/j-jayes/mcp-occupation-classifier/ai"
	"github.com/j-jayes/mcp-occupation-classifier/core"
	"github.com/j-jayes/mcp-occupation-classifier/ingestion"
	"github.com/j-jayes/mcp-occupation-classifier/reembed"
	"github.com/j-jayes/mcp-occupation-classifier/search"
)

func main() {
	app := &cli.App{
		Name:  "ssyk",
		Usage: "SSYK occupation classification and income statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Build the classification corpus from the JobTech taxonomy",
				Action: ingestCommand,
				Flags: append(embeddingFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "taxonomy-file",
						Usage: "Read the taxonomy from a local JSON file instead of downloading",
					},
					&cli.StringFlag{
						Name:  "taxonomy-url",
						Usage: "Taxonomy download URL",
						Value: ingestion.TaxonomyURL,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of entries to embed per request",
						Value: ingestion.DefaultBatchSize,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent embedding workers",
					},
					&cli.BoolFlag{
						Name:  "skip-income",
						Usage: "Skip fetching income statistics from SCB",
					},
				),
			},
			{
				Name:   "classify",
				Usage:  "Rank SSYK occupations against a job title and description",
				Action: classifyCommand,
				Flags: append(embeddingFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "Occupation title to classify",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"D"},
						Usage:   "Optional occupation description",
					},
					&cli.IntFlag{
						Name:    "top-n",
						Aliases: []string{"n"},
						Usage:   "Number of results to return",
						Value:   5,
					},
					&cli.BoolFlag{
						Name:  "lexical-fallback",
						Usage: "Return lexical-only results if the query cannot be embedded",
					},
				),
			},
			{
				Name:   "income",
				Usage:  "Look up income statistics for an SSYK code",
				Action: incomeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "code",
						Aliases:  []string{"c"},
						Usage:    "SSYK level-4 taxonomy code",
						Required: true,
					},
				},
			},
			{
				Name:   "reembed",
				Usage:  "Rebuild all corpus embeddings with a new model",
				Action: reembedCommand,
				Flags: append(embeddingFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of entries to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N entries",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed batches",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "https://api.openai.com/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "text-embedding-3-small",
		},
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "Embedding service API key",
			EnvVars: []string{"OPENAI_API_KEY"},
		},
	}
}

// openEngine builds an engine from the shared database and embedding flags.
func openEngine(c *cli.Context) (*occupations.Engine, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithAPIKey(c.String("api-key")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	engine, err := occupations.NewEngine(c.String("db"), occupations.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return engine, nil
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	var (
		entries []ingestion.TaxonomyEntry
		err     error
	)
	if file := c.String("taxonomy-file"); file != "" {
		f, openErr := os.Open(file)
		if openErr != nil {
			return fmt.Errorf("failed to open taxonomy file: %w", openErr)
		}
		defer f.Close()
		entries, err = ingestion.ParseTaxonomy(f)
	} else {
		fmt.Fprintf(os.Stderr, "Downloading taxonomy from %s\n", c.String("taxonomy-url"))
		entries, err = ingestion.DownloadTaxonomy(ctx, nil, c.String("taxonomy-url"))
	}
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Found %d SSYK level-4 occupations\n", len(entries))

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	pipelineOpts := []ingestion.Option{
		ingestion.WithBatchSize(c.Int("batch-size")),
	}
	if poolSize := c.Int("pool-size"); poolSize > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(poolSize))
	}
	pipeline, err := engine.NewIngestionPipeline(pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	count, err := pipeline.IngestTaxonomy(ctx, entries)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Ingested %d occupations\n", count)

	if c.Bool("skip-income") {
		return nil
	}

	codes := make([]core.TaxonomyCode, len(entries))
	for i, entry := range entries {
		codes[i] = core.TaxonomyCode(entry.Code)
	}

	scbClient, err := ingestion.NewSCBClient()
	if err != nil {
		return fmt.Errorf("failed to create SCB client: %w", err)
	}

	stats, err := scbClient.FetchIncomeStats(ctx, codes)
	if err != nil {
		return fmt.Errorf("failed to fetch income statistics: %w", err)
	}
	if err := engine.IncomeRepository().PutIncomeStats(ctx, stats...); err != nil {
		return fmt.Errorf("failed to store income statistics: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Stored income statistics for %d occupations\n", len(stats))

	return nil
}

func classifyCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	classifier, err := engine.NewClassifier(ctx)
	if err != nil {
		return fmt.Errorf("failed to build classifier: %w", err)
	}

	var opts []search.ClassifyOption
	if c.Bool("lexical-fallback") {
		opts = append(opts, search.WithLexicalFallback())
	}

	query := core.Query{
		Title:       c.String("title"),
		Description: c.String("description"),
	}
	result, err := classifier.Classify(ctx, query, c.Int("top-n"), opts...)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	if result.Degraded {
		fmt.Fprintln(os.Stderr, "Warning: semantic signal unavailable, results are lexical-only")
	}
	for i, hit := range result.Hits {
		fmt.Printf("%2d. %s  %s  (score %.4f)\n", i+1, hit.Code, hit.Title, hit.Score)
	}

	return nil
}

func incomeCommand(c *cli.Context) error {
	ctx := context.Background()

	// No embedder needed for a keyed lookup; open storage directly.
	engine, err := occupations.NewEngine(c.String("db"),
		occupations.WithEmbedder(noEmbedder{}))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer engine.Close()

	service, err := engine.NewIncomeService()
	if err != nil {
		return fmt.Errorf("failed to create income service: %w", err)
	}

	stats, err := service.Lookup(ctx, core.TaxonomyCode(c.String("code")))
	if err != nil {
		return err
	}

	fmt.Printf("SSYK %s (%s), monthly salary SEK:\n", stats.Code, stats.Year)
	fmt.Printf("  10th percentile: %d\n", stats.Percentile10)
	fmt.Printf("  Lower quartile:  %d\n", stats.LowerQuartile)
	fmt.Printf("  Median:          %d\n", stats.Median)
	fmt.Printf("  Upper quartile:  %d\n", stats.UpperQuartile)
	fmt.Printf("  90th percentile: %d\n", stats.Percentile90)
	fmt.Printf("  Mean:            %d\n", stats.Mean)

	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	config := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder, err := engine.NewReembedder(config, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to create reembedder: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

// noEmbedder satisfies ai.Embedder for commands that never embed.
type noEmbedder struct{}

func (noEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return nil, fmt.Errorf("embedding not available in this command")
}

func (noEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, fmt.Errorf("embedding not available in this command")
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
