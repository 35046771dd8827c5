package rag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/lingcomp/ai"
	"github.com/poiesic/lingcomp/core"
	"github.com/poiesic/lingcomp/progress"
	"github.com/poiesic/lingcomp/storage"
)

// Default indexing parameters.
const (
	DefaultBatchSize  = 32
	DefaultWorkers    = 2
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// IndexResult describes a completed indexing run.
type IndexResult struct {
	Documents int
	Chunks    int
	Manifest  *core.IndexManifest
	Duration  time.Duration
}

// Indexer embeds document chunks and stores them in a chunk repository.
type Indexer struct {
	repo       storage.ChunkRepository
	provider   ai.AIProvider
	chunkSize  int
	overlap    int
	batchSize  int
	workers    int
	maxRetries int
	retryDelay time.Duration
	progress   io.Writer
	logger     *slog.Logger
}

// IndexerOption configures an Indexer.
type IndexerOption func(*Indexer) error

// WithChunking sets the chunk size and overlap in characters.
func WithChunking(size, overlap int) IndexerOption {
	return func(ix *Indexer) error {
		ix.chunkSize = size
		ix.overlap = overlap
		return nil
	}
}

// WithBatchSize sets how many chunks are embedded per request.
func WithBatchSize(n int) IndexerOption {
	return func(ix *Indexer) error {
		if n < 1 {
			return fmt.Errorf("batch size must be at least 1, got %d", n)
		}
		ix.batchSize = n
		return nil
	}
}

// WithWorkers sets how many batches are embedded concurrently.
func WithWorkers(n int) IndexerOption {
	return func(ix *Indexer) error {
		if n < 1 {
			return fmt.Errorf("workers must be at least 1, got %d", n)
		}
		ix.workers = n
		return nil
	}
}

// WithRetry sets the attempts and base backoff delay for embedding requests.
func WithRetry(maxAttempts int, baseDelay time.Duration) IndexerOption {
	return func(ix *Indexer) error {
		if maxAttempts < 1 {
			return ErrInvalidMaxAttempts
		}
		ix.maxRetries = maxAttempts
		ix.retryDelay = baseDelay
		return nil
	}
}

// WithIndexProgress reports embedding progress to w.
func WithIndexProgress(w io.Writer) IndexerOption {
	return func(ix *Indexer) error {
		ix.progress = w
		return nil
	}
}

// WithIndexLogger sets a custom logger.
func WithIndexLogger(logger *slog.Logger) IndexerOption {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// NewIndexer creates an indexer writing to repo with embeddings from provider.
func NewIndexer(repo storage.ChunkRepository, provider ai.AIProvider, opts ...IndexerOption) (*Indexer, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	ix := &Indexer{
		repo:       repo,
		provider:   provider,
		chunkSize:  DefaultChunkSize,
		overlap:    DefaultChunkOverlap,
		batchSize:  DefaultBatchSize,
		workers:    DefaultWorkers,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		logger:     slog.Default().With("component", "rag-indexer"),
	}
	for _, opt := range opts {
		if err := opt(ix); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

// Index replaces the repository contents with the chunks of docs and saves
// a manifest recording the embedding model and vector size.
func (ix *Indexer) Index(ctx context.Context, docs []*core.Document) (*IndexResult, error) {
	start := time.Now()
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	chunker, err := NewChunker(ix.chunkSize, ix.overlap)
	if err != nil {
		return nil, err
	}
	chunks, err := chunker.Chunk(docs)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, ErrNoDocuments
	}
	ix.logger.Info("chunked documents", "documents", len(docs), "chunks", len(chunks))

	if err := ix.embedAll(ctx, chunks); err != nil {
		return nil, err
	}

	dims := len(chunks[0].Vector)
	for _, chunk := range chunks {
		if len(chunk.Vector) != dims {
			return nil, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, dims, len(chunk.Vector))
		}
	}

	// The previous index stays in place until every chunk is embedded.
	if err := ix.repo.DeleteAllChunks(ctx); err != nil {
		return nil, fmt.Errorf("clearing index: %w", err)
	}
	if _, err := ix.repo.AddChunks(ctx, chunks...); err != nil {
		return nil, fmt.Errorf("storing chunks: %w", err)
	}

	manifest := &core.IndexManifest{
		EmbeddingModel: ix.provider.EmbeddingModel(),
		Dimensions:     dims,
		ChunkCount:     len(chunks),
		UpdatedAt:      time.Now().UTC(),
	}
	if err := ix.repo.SaveManifest(ctx, manifest); err != nil {
		return nil, fmt.Errorf("saving manifest: %w", err)
	}

	ix.logger.Info("index built", "chunks", len(chunks), "model", manifest.EmbeddingModel, "dimensions", dims)
	return &IndexResult{
		Documents: len(docs),
		Chunks:    len(chunks),
		Manifest:  manifest,
		Duration:  time.Since(start),
	}, nil
}

// embedAll fills the Vector of every chunk, batchSize chunks per request,
// with up to workers requests in flight.
func (ix *Indexer) embedAll(ctx context.Context, chunks []*core.Chunk) error {
	pool, err := ants.NewPool(ix.workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	var tracker *progress.Tracker
	if ix.progress != nil {
		tracker = progress.NewTracker(ix.progress, "Embedding", "chunks", len(chunks), ix.batchSize)
		tracker.Start()
		defer tracker.Finish()
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for begin := 0; begin < len(chunks); begin += ix.batchSize {
		batch := chunks[begin:min(begin+ix.batchSize, len(chunks))]
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if err := ix.embedBatch(ctx, batch); err != nil {
				setErr(err)
				return
			}
			tracker.Increment(len(batch))
		})
		if err != nil {
			wg.Done()
			setErr(err)
			break
		}
	}
	wg.Wait()
	return firstErr
}

func (ix *Indexer) embedBatch(ctx context.Context, batch []*core.Chunk) error {
	texts := make([]string, len(batch))
	for i, chunk := range batch {
		texts[i] = chunk.Text
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		vectors, err = ix.provider.Embedder().EmbedTexts(ctx, texts)
		return err
	}, ix.maxRetries, ix.retryDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", ix.maxRetries, err)
	}
	if len(vectors) != len(batch) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(batch), len(vectors))
	}

	for i := range batch {
		batch[i].Vector = NormalizeVector(vectors[i])
	}
	return nil
}
