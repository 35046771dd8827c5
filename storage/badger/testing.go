package badger

import "github.com/poiesic/lingcomp/storage"

// NewMemoryRepositories opens an in-memory backend with both repositories on it.
func NewMemoryRepositories() (storage.ChunkRepository, storage.FeatureCache, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	return NewChunkRepository(backend), NewFeatureCache(backend), backend, nil
}
