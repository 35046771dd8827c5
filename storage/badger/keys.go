package badger

import (
	"encoding/binary"

	"github.com/poiesic/lingcomp/core"
)

const (
	chunkRecordPrefix   = "chunkrec:"
	featureRecordPrefix = "featrec:"
	manifestKey         = "manifest"
)

// makeChunkKey generates a key for a chunk by ID.
// Format: prefix + big-endian ID
func makeChunkKey(id core.ID) []byte {
	return makeIDKey(chunkRecordPrefix, id)
}

// makeFeatureKey generates a key for a cached feature record by content ID.
func makeFeatureKey(id core.ID) []byte {
	return makeIDKey(featureRecordPrefix, id)
}

func makeIDKey(prefix string, id core.ID) []byte {
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
