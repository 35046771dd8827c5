package features

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/poiesic/lingcomp/core"
	"github.com/poiesic/lingcomp/tabular"
)

// Default file locations of a run.
const (
	DefaultInputPath    = "messages.csv"
	DefaultFeaturesPath = "messages_with_features.csv"
	DefaultSummaryPath  = "summary_features_by_method.csv"
)

// RunConfig names the files of a run. Empty fields take the defaults.
type RunConfig struct {
	InputPath    string
	FeaturesPath string
	SummaryPath  string
}

func (c RunConfig) withDefaults() RunConfig {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.FeaturesPath == "" {
		c.FeaturesPath = DefaultFeaturesPath
	}
	if c.SummaryPath == "" {
		c.SummaryPath = DefaultSummaryPath
	}
	return c
}

// RunResult describes a completed run.
type RunResult struct {
	RunID       string
	Config      RunConfig
	Features    *core.FeatureTable
	Summaries   []*core.Summary
	SkippedRows int
	Duration    time.Duration
}

// Pipeline runs the read, extract, summarize and write stages.
type Pipeline struct {
	processor *Processor
	logger    *slog.Logger
}

// NewPipeline creates a pipeline around a processor.
func NewPipeline(processor *Processor, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default().With("component", "feature-pipeline")
	}
	return &Pipeline{processor: processor, logger: logger}
}

// Release frees the processor's worker pool.
func (p *Pipeline) Release() {
	p.processor.Release()
}

// Run reads cfg.InputPath, writes the feature table and the summary table and
// returns both. Write failures are returned as-is; partially written files are
// left in place.
func (p *Pipeline) Run(ctx context.Context, cfg RunConfig) (*RunResult, error) {
	cfg = cfg.withDefaults()
	start := time.Now()
	runID := uuid.NewString()
	logger := p.logger.With("run", runID)

	table, err := tabular.ReadTable(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.InputPath, err)
	}
	logger.Info("loaded table", "path", cfg.InputPath, "columns", len(table.Columns), "rows", table.RowCount())

	ft, err := p.processor.Process(ctx, table)
	if err != nil {
		return nil, err
	}

	if err := tabular.WriteFeatureTable(cfg.FeaturesPath, ft); err != nil {
		return nil, fmt.Errorf("writing %s: %w", cfg.FeaturesPath, err)
	}
	logger.Info("saved features", "path", cfg.FeaturesPath)

	summaries, err := Summarize(ft)
	if err != nil {
		return nil, err
	}
	if err := tabular.WriteSummary(cfg.SummaryPath, summaries); err != nil {
		return nil, fmt.Errorf("writing %s: %w", cfg.SummaryPath, err)
	}
	logger.Info("saved summary", "path", cfg.SummaryPath)

	skipped := 0
	for _, fc := range ft.Features {
		for _, rec := range fc.Records {
			if rec == nil {
				skipped++
			}
		}
	}

	return &RunResult{
		RunID:       runID,
		Config:      cfg,
		Features:    ft,
		Summaries:   summaries,
		SkippedRows: skipped,
		Duration:    time.Since(start),
	}, nil
}
