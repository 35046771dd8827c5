package storage

import (
	"context"

	"github.com/poiesic/lingcomp/core"
)

// Repository defines the common operations for all repositories.
type Repository interface {
	// Close releases resources held by the repository.
	Close() error
}

// ChunkRepository stores embedded document chunks and answers vector queries.
type ChunkRepository interface {
	Repository

	// AddChunks stores one or more chunks.
	// Chunks with ID=0 get a content-derived ID.
	// Existing chunks with the same ID are overwritten.
	AddChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error)

	// GetChunk retrieves a single chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error)

	// GetChunks retrieves multiple chunks by their IDs.
	// Returns only the chunks that exist (no error for missing chunks).
	GetChunks(ctx context.Context, ids ...core.ID) ([]*core.Chunk, error)

	// CountChunks returns the number of stored chunks.
	CountChunks(ctx context.Context) (int, error)

	// DeleteAllChunks removes every chunk and the manifest.
	DeleteAllChunks(ctx context.Context) error

	// FindSimilar finds chunks whose vectors are similar to the given vector.
	// Returns up to limit results with similarity >= minSimilarity.
	// Results are ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.ChunkResult, error)

	// SaveManifest records how the index was built.
	SaveManifest(ctx context.Context, manifest *core.IndexManifest) error

	// LoadManifest returns the stored manifest, or nil if none was saved.
	LoadManifest(ctx context.Context) (*core.IndexManifest, error)
}

// FeatureCache memoizes feature records by the content ID of the analyzed text.
type FeatureCache interface {
	Repository

	// GetFeatures returns the cached record for id.
	// Returns ErrNotFound on a miss.
	GetFeatures(ctx context.Context, id core.ID) (*core.FeatureRecord, error)

	// PutFeatures stores the record for id, replacing any previous value.
	PutFeatures(ctx context.Context, id core.ID, record *core.FeatureRecord) error
}
