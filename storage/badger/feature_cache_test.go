package badger

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lingcomp/core"
	"github.com/poiesic/lingcomp/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureCache_Miss(t *testing.T) {
	_, cache, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	_, err = cache.GetFeatures(context.Background(), core.IDFromContent("nothing here"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFeatureCache_PutGet(t *testing.T) {
	_, cache, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	id := core.IDFromContent("Start today!")
	record := &core.FeatureRecord{CharLen: 12, WordLen: 2, TokenLen: 3, TemporalRef: true, TTR: 1, ExclamCount: 1, Readability: 77.91}

	require.NoError(t, cache.PutFeatures(ctx, id, record))

	got, err := cache.GetFeatures(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestFeatureCache_IsolatedFromChunks(t *testing.T) {
	chunks, cache, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, cache.PutFeatures(ctx, core.ID(7), &core.FeatureRecord{WordLen: 1}))

	count, err := chunks.CountChunks(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFeatureCache_RejectsInvalidRecords(t *testing.T) {
	_, cache, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	id := core.IDFromContent("stale entry")
	bad := &core.FeatureRecord{WordLen: 2, Sentiment: 3.5}

	err = cache.PutFeatures(ctx, id, bad)
	assert.ErrorIs(t, err, core.ErrInvalidFeatureRecord)

	// written around the cache API, e.g. by an older build
	err = backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeFeatureKey(id), storage.MarshalFeatureRecord(bad)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	require.NoError(t, err)

	_, err = cache.GetFeatures(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
