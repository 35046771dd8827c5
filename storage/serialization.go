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



package storage

import (
	"fmt"

	"github.com/poiesic/lingcomp/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalChunk serializes a Chunk to bytes.
func MarshalChunk(chunk *core.Chunk) []byte {
	buf := make([]byte, core.ChunkMUS.Size(*chunk))
	core.ChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalChunk deserializes a Chunk from bytes.
func UnmarshalChunk(data []byte) (*core.Chunk, error) {
	chunk, _, err := core.ChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &chunk, nil
}

// MarshalFeatureRecord serializes a FeatureRecord to bytes.
func MarshalFeatureRecord(record *core.FeatureRecord) []byte {
	buf := make([]byte, core.FeatureRecordMUS.Size(*record))
	core.FeatureRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalFeatureRecord deserializes a FeatureRecord from bytes.
func UnmarshalFeatureRecord(data []byte) (*core.FeatureRecord, error) {
	record, _, err := core.FeatureRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}

// MarshalManifest serializes an IndexManifest to bytes.
func MarshalManifest(manifest *core.IndexManifest) []byte {
	buf := make([]byte, core.IndexManifestMUS.Size(*manifest))
	core.IndexManifestMUS.Marshal(*manifest, buf)
	return buf
}

// UnmarshalManifest deserializes an IndexManifest from bytes.
func UnmarshalManifest(data []byte) (*core.IndexManifest, error) {
	manifest, _, err := core.IndexManifestMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &manifest, nil
}
