package features

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/lingcomp/core"
	"github.com/poiesic/lingcomp/nlp"
	"github.com/poiesic/lingcomp/progress"
	"github.com/poiesic/lingcomp/storage"
)

// RowErrorPolicy decides what happens when extraction fails on a row.
type RowErrorPolicy int

const (
	// FailBatch aborts the run with the first failing row in row order.
	FailBatch RowErrorPolicy = iota
	// SkipRow logs the failure and leaves the row's derived cells empty.
	SkipRow
)

func (p RowErrorPolicy) String() string {
	switch p {
	case FailBatch:
		return "fail-batch"
	case SkipRow:
		return "skip-row"
	default:
		return "unknown"
	}
}

// Processor extends a table with the features of every cell.
type Processor struct {
	extractor *Extractor
	pool      *ants.Pool
	workers   int
	cache     storage.FeatureCache
	policy    RowErrorPolicy
	progress  io.Writer
	logger    *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor) error

// WithWorkers sets the number of rows extracted concurrently.
// Default is 1, which extracts rows one at a time on the calling goroutine.
func WithWorkers(n int) Option {
	return func(p *Processor) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidWorkers, n)
		}
		p.workers = n
		return nil
	}
}

// WithFeatureCache memoizes records by the content ID of the cell text.
// The processor does not close the cache.
func WithFeatureCache(cache storage.FeatureCache) Option {
	return func(p *Processor) error {
		p.cache = cache
		return nil
	}
}

// WithRowErrorPolicy sets the row error policy. Default is FailBatch.
func WithRowErrorPolicy(policy RowErrorPolicy) Option {
	return func(p *Processor) error {
		p.policy = policy
		return nil
	}
}

// WithProgress reports per-column progress to w.
func WithProgress(w io.Writer) Option {
	return func(p *Processor) error {
		p.progress = w
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewProcessor creates a processor over the given toolkit.
// Call Release when done to free the worker pool.
func NewProcessor(toolkit nlp.Toolkit, opts ...Option) (*Processor, error) {
	extractor, err := NewExtractor(toolkit)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		extractor: extractor,
		workers:   1,
		policy:    FailBatch,
		logger:    slog.Default().With("component", "feature-processor"),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.workers > 1 {
		pool, err := ants.NewPool(p.workers)
		if err != nil {
			return nil, err
		}
		p.pool = pool
	}
	return p, nil
}

// Release frees the worker pool. The processor must not be used afterwards.
func (p *Processor) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// Process validates table and computes the features of every cell, column by
// column in declaration order. Row order is preserved.
func (p *Processor) Process(ctx context.Context, table *core.Table) (*core.FeatureTable, error) {
	if err := core.ValidateTable(table); err != nil {
		return nil, err
	}

	ft := &core.FeatureTable{
		Source:   table,
		Features: make([]core.FeatureColumn, 0, len(table.Columns)),
	}
	for _, name := range table.Columns {
		records, err := p.processColumn(ctx, name, table.Column(name))
		if err != nil {
			return nil, err
		}
		ft.Features = append(ft.Features, core.FeatureColumn{Name: name, Records: records})
	}
	return ft, nil
}

func (p *Processor) processColumn(ctx context.Context, name string, cells []core.Cell) ([]*core.FeatureRecord, error) {
	var tracker *progress.Tracker
	if p.progress != nil {
		tracker = progress.NewTracker(p.progress, name, "rows", len(cells), max(len(cells)/100, 1))
		tracker.Start()
		defer tracker.Finish()
	}

	records := make([]*core.FeatureRecord, len(cells))
	errs := make([]error, len(cells))

	if p.pool == nil {
		for i, cell := range cells {
			records[i], errs[i] = p.extractCell(ctx, cell)
			tracker.Increment(1)
			if errs[i] != nil && p.policy == FailBatch {
				break
			}
		}
	} else {
		var wg sync.WaitGroup
		for i, cell := range cells {
			wg.Add(1)
			err := p.pool.Submit(func() {
				defer wg.Done()
				records[i], errs[i] = p.extractCell(ctx, cell)
				tracker.Increment(1)
			})
			if err != nil {
				wg.Done()
				errs[i] = err
			}
		}
		wg.Wait()
	}

	for i, err := range errs {
		if err == nil {
			continue
		}
		if p.policy == FailBatch || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
		}
		p.logger.Warn("skipping row", "column", name, "row", i, "err", err)
		records[i] = nil
	}
	return records, nil
}

func (p *Processor) extractCell(ctx context.Context, cell core.Cell) (*core.FeatureRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := cell.Text()
	if p.cache == nil {
		return p.extractor.Extract(ctx, text)
	}

	id := core.IDFromContent(text)
	cached, err := p.cache.GetFeatures(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		p.logger.Warn("feature cache read failed", "err", err)
	}

	record, err := p.extractor.Extract(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := p.cache.PutFeatures(ctx, id, record); err != nil {
		p.logger.Warn("feature cache write failed", "err", err)
	}
	return record, nil
}
