package badger

import (
	"context"
	"errors"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lingcomp/core"
	"github.com/poiesic/lingcomp/storage"
)

// ChunkRepository implements storage.ChunkRepository using BadgerDB.
type ChunkRepository struct {
	backend *Backend
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
func NewChunkRepository(backend *Backend) *ChunkRepository {
	return &ChunkRepository{
		backend: backend,
	}
}

// Close is a no-op; the backend owns the database handle.
func (r *ChunkRepository) Close() error {
	return nil
}

// AddChunks stores one or more chunks.
func (r *ChunkRepository) AddChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error) {
	for _, chunk := range chunks {
		if err := core.ValidateChunk(chunk); err != nil {
			return nil, err
		}
	}

	// Large batches can exceed a single transaction; badger's WriteBatch splits them.
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	wb := r.backend.db.NewWriteBatch()

	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			wb.Cancel()
			return nil, err
		}
		if chunk.Id == 0 {
			chunk.Id = core.ChunkID(chunk.Source, chunk.Ordinal, chunk.Text)
		}
		if err := wb.Set(makeChunkKey(chunk.Id), storage.MarshalChunk(chunk)); err != nil {
			wb.Cancel()
			return nil, err
		}
	}

	if err := wb.Flush(); err != nil {
		return nil, err
	}
	return chunks, nil
}

// GetChunk retrieves a single chunk by ID.
func (r *ChunkRepository) GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error) {
	var result *core.Chunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readChunk(tx, makeChunkKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetChunks retrieves multiple chunks by their IDs.
func (r *ChunkRepository) GetChunks(ctx context.Context, ids ...core.ID) ([]*core.Chunk, error) {
	var result []*core.Chunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			chunk, err := readChunk(tx, makeChunkKey(id))
			if err != nil {
				return err
			}
			if chunk != nil {
				result = append(result, chunk)
			}
		}
		return nil
	}, false)
	return result, err
}

// CountChunks returns the number of stored chunks.
func (r *ChunkRepository) CountChunks(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// DeleteAllChunks removes every chunk and the manifest.
func (r *ChunkRepository) DeleteAllChunks(ctx context.Context) error {
	return r.backend.dropPrefix([]byte(chunkRecordPrefix), []byte(manifestKey))
}

// FindSimilar finds chunks similar to the given vector.
// Vectors are stored normalized, so the dot product is the cosine similarity.
func (r *ChunkRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.ChunkResult, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var results []*core.ChunkResult

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var chunk *core.Chunk
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalChunk(val)
				return err
			})
			if err != nil {
				return err
			}

			// Skip chunks without embeddings
			if len(chunk.Vector) == 0 {
				continue
			}

			similarity := dotProduct(vector, chunk.Vector)
			if similarity >= minSimilarity {
				results = append(results, &core.ChunkResult{
					Chunk: chunk,
					Score: similarity,
				})
			}
		}

		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Sort by similarity descending; ties keep key order
	slices.SortStableFunc(results, func(a, b *core.ChunkResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// SaveManifest records how the index was built.
func (r *ChunkRepository) SaveManifest(ctx context.Context, manifest *core.IndexManifest) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(manifestKey), storage.MarshalManifest(manifest)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadManifest returns the stored manifest, or nil if none was saved.
func (r *ChunkRepository) LoadManifest(ctx context.Context) (*core.IndexManifest, error) {
	var manifest *core.IndexManifest
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(manifestKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			manifest, unmarshalErr = storage.UnmarshalManifest(val)
			return unmarshalErr
		})
	}, false)

	return manifest, err
}

// readChunk reads a chunk from the transaction.
// Returns nil without error if the key does not exist.
func readChunk(tx *badger.Txn, key []byte) (*core.Chunk, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var chunk *core.Chunk
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		chunk, unmarshalErr = storage.UnmarshalChunk(val)
		return unmarshalErr
	})
	return chunk, err
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
