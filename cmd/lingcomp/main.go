// Copyright 2025 Poiesic Systems
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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/subosito/gotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/lingcomp"
	"github.com/poiesic/lingcomp/ai"
	"github.com/poiesic/lingcomp/features"
	"github.com/poiesic/lingcomp/rag"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lingcomp",
		Usage: "Linguistic feature extraction for message variants and document Q&A",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load environment variables from this file if it exists",
				Value: ".env",
			},
		},
		Before:   setup,
		Commands: commands(),
	}
}

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "features",
			Usage:  "Extract linguistic features from every column of a message table",
			Action: featuresCommand,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "input",
					Aliases: []string{"i"},
					Usage:   "CSV file with one column per message variant",
					Value:   features.DefaultInputPath,
				},
				&cli.StringFlag{
					Name:  "features-out",
					Usage: "Destination of the table with derived feature columns",
					Value: features.DefaultFeaturesPath,
				},
				&cli.StringFlag{
					Name:  "summary-out",
					Usage: "Destination of the per-column summary table",
					Value: features.DefaultSummaryPath,
				},
				&cli.IntFlag{
					Name:  "workers",
					Usage: "Number of rows analyzed concurrently",
					Value: 1,
				},
				&cli.StringFlag{
					Name:  "cache-db",
					Usage: "Path to BadgerDB feature cache directory (disabled when empty)",
				},
				&cli.BoolFlag{
					Name:  "skip-bad-rows",
					Usage: "Skip rows that fail analysis instead of aborting the run",
				},
				&cli.BoolFlag{
					Name:  "progress",
					Usage: "Report progress on stderr",
				},
			},
		},
		{
			Name:   "index",
			Usage:  "Embed a directory of documents into a vector index",
			Action: indexCommand,
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:  "docs",
					Usage: "Directory of .txt and .md documents",
					Value: "rag_docs",
				},
				dbFlag(),
				&cli.IntFlag{
					Name:  "chunk-size",
					Usage: "Maximum characters per chunk",
					Value: rag.DefaultChunkSize,
				},
				&cli.IntFlag{
					Name:  "chunk-overlap",
					Usage: "Characters shared by consecutive chunks",
					Value: rag.DefaultChunkOverlap,
				},
				&cli.IntFlag{
					Name:  "batch-size",
					Usage: "Number of chunks embedded per request",
					Value: rag.DefaultBatchSize,
				},
				&cli.IntFlag{
					Name:  "workers",
					Usage: "Number of embedding requests in flight",
					Value: rag.DefaultWorkers,
				},
				&cli.IntFlag{
					Name:  "max-retries",
					Usage: "Maximum attempts per embedding request",
					Value: rag.DefaultMaxRetries,
				},
				&cli.DurationFlag{
					Name:  "retry-delay",
					Usage: "Base delay for exponential backoff",
					Value: rag.DefaultRetryDelay,
				},
			}, embeddingFlags()...),
		},
		{
			Name:      "ask",
			Usage:     "Answer a question from the indexed documents",
			ArgsUsage: "QUERY...",
			Action:    askCommand,
			Flags: append([]cli.Flag{
				dbFlag(),
				&cli.IntFlag{
					Name:  "top-k",
					Usage: "Number of chunks used as context",
					Value: rag.DefaultTopK,
				},
				&cli.BoolFlag{
					Name:  "show-context",
					Usage: "Print the retrieved chunks before the answer",
				},
				&cli.StringFlag{
					Name:    "generation-host",
					Usage:   "Chat completion service host URL",
					Value:   ai.DefaultGenerationHost,
					EnvVars: []string{"LINGCOMP_GENERATION_HOST"},
				},
				&cli.StringFlag{
					Name:    "generation-model",
					Usage:   "Chat completion model name",
					Value:   ai.DefaultGenerationModel,
					EnvVars: []string{"LINGCOMP_GENERATION_MODEL"},
				},
				&cli.StringFlag{
					Name:    "api-key",
					Usage:   "API key for the generation service",
					EnvVars: []string{"LINGCOMP_API_KEY"},
				},
				&cli.Float64Flag{
					Name:  "temperature",
					Usage: "Sampling temperature",
					Value: 0.1,
				},
				&cli.IntFlag{
					Name:  "max-tokens",
					Usage: "Maximum answer length in tokens (0 for the server default)",
				},
			}, embeddingFlags()...),
		},
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "Path to BadgerDB index directory",
		Value:   "rag_index",
	}
}

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL",
			Value:   ai.DefaultEmbeddingHost,
			EnvVars: []string{"LINGCOMP_EMBEDDING_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			Value:   ai.DefaultEmbeddingModel,
			EnvVars: []string{"LINGCOMP_EMBEDDING_MODEL"},
		},
	}
}

func featuresCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var opts []lingcomp.AnalyzerOption
	if path := c.String("cache-db"); path != "" {
		opts = append(opts, lingcomp.WithFeatureCachePath(path))
	}
	analyzer, err := lingcomp.NewAnalyzer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}
	defer analyzer.Close()

	pipeline, err := analyzer.NewFeaturePipeline(processorOptions(c, os.Stderr)...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	result, err := pipeline.Run(ctx, features.RunConfig{
		InputPath:    c.String("input"),
		FeaturesPath: c.String("features-out"),
		SummaryPath:  c.String("summary-out"),
	})
	if err != nil {
		return fmt.Errorf("feature extraction failed: %w", err)
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Saved per-row features to %s\n", result.Config.FeaturesPath)
	fmt.Fprintf(out, "Saved summary to %s\n", result.Config.SummaryPath)
	if result.SkippedRows > 0 {
		fmt.Fprintf(out, "Skipped %d rows\n", result.SkippedRows)
	}
	return nil
}

func processorOptions(c *cli.Context, progress io.Writer) []features.Option {
	opts := []features.Option{features.WithWorkers(c.Int("workers"))}
	if c.Bool("skip-bad-rows") {
		opts = append(opts, features.WithRowErrorPolicy(features.SkipRow))
	}
	if c.Bool("progress") {
		opts = append(opts, features.WithProgress(progress))
	}
	return opts
}

func indexCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	docs, err := rag.LoadDirectory(c.String("docs"))
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}

	kb, err := openKnowledgeBase(c)
	if err != nil {
		return err
	}
	defer kb.Close()

	indexer, err := kb.NewIndexer(
		rag.WithChunking(c.Int("chunk-size"), c.Int("chunk-overlap")),
		rag.WithBatchSize(c.Int("batch-size")),
		rag.WithWorkers(c.Int("workers")),
		rag.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
		rag.WithIndexProgress(os.Stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create indexer: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Documents: %s\n", c.String("docs"))
	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	result, err := indexer.Index(ctx, docs)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Indexed %d chunks from %d documents in %s\n",
		result.Chunks, result.Documents, result.Duration.Round(time.Millisecond))
	return nil
}

func askCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a query is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kb, err := openKnowledgeBase(c)
	if err != nil {
		return err
	}
	defer kb.Close()

	engine, err := kb.NewQueryEngine(rag.WithTopK(c.Int("top-k")))
	if err != nil {
		return fmt.Errorf("failed to create query engine: %w", err)
	}

	answer, err := engine.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	out := c.App.Writer
	if c.Bool("show-context") {
		for i, src := range answer.Sources {
			fmt.Fprintf(out, "[%d] %s #%d (score %.3f)\n%s\n\n",
				i+1, src.Chunk.Source, src.Chunk.Ordinal, src.Score, src.Chunk.Text)
		}
	}
	fmt.Fprintln(out, answer.Text)
	return nil
}

// aiConfig builds the provider configuration from whichever AI flags the
// command defines.
func aiConfig(c *cli.Context) (*ai.Config, error) {
	opts := []ai.ConfigOption{
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	}
	if c.String("generation-host") != "" {
		opts = append(opts,
			ai.WithGenerationHost(c.String("generation-host")),
			ai.WithGenerationModel(c.String("generation-model")),
			ai.WithAPIKey(c.String("api-key")),
			ai.WithTemperature(c.Float64("temperature")),
			ai.WithMaxTokens(c.Int("max-tokens")),
		)
	}

	config := ai.NewConfig(opts...)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return config, nil
}

func openKnowledgeBase(c *cli.Context) (*lingcomp.KnowledgeBase, error) {
	config, err := aiConfig(c)
	if err != nil {
		return nil, err
	}
	kb, err := lingcomp.OpenKnowledgeBase(c.String("db"), lingcomp.WithAIConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	return kb, nil
}

func setup(c *cli.Context) error {
	if err := loadEnv(c.String("env-file")); err != nil {
		return err
	}
	return setupLogger(c)
}

// loadEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := gotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", s)
}

func setupLogger(c *cli.Context) error {
	level, err := parseLevel(c.String("log-level"))
	if err != nil {
		return err
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	return nil
}
