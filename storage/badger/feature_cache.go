package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lingcomp/core"
	"github.com/poiesic/lingcomp/storage"
)

// FeatureCache implements storage.FeatureCache using BadgerDB.
type FeatureCache struct {
	backend *Backend
}

var _ storage.FeatureCache = (*FeatureCache)(nil)

// NewFeatureCache creates a new FeatureCache.
func NewFeatureCache(backend *Backend) *FeatureCache {
	return &FeatureCache{
		backend: backend,
	}
}

// Close is a no-op; the backend owns the database handle.
func (c *FeatureCache) Close() error {
	return nil
}

// GetFeatures returns the cached record for id. A stored record that no
// longer passes validation is reported as a miss.
func (c *FeatureCache) GetFeatures(ctx context.Context, id core.ID) (*core.FeatureRecord, error) {
	var record *core.FeatureRecord
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeFeatureKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			record, unmarshalErr = storage.UnmarshalFeatureRecord(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}
	if err := core.ValidateFeatureRecord(record); err != nil {
		return nil, storage.ErrNotFound
	}
	return record, nil
}

// PutFeatures stores the record for id.
func (c *FeatureCache) PutFeatures(ctx context.Context, id core.ID, record *core.FeatureRecord) error {
	if err := core.ValidateFeatureRecord(record); err != nil {
		return err
	}
	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeFeatureKey(id), storage.MarshalFeatureRecord(record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
