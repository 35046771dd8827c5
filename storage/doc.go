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



// Package storage provides the storage abstraction layer for lingcomp.
//
// This package defines repository interfaces that decouple storage implementation
// from the pipelines. Two repositories exist:
//
//   - ChunkRepository: embedded document chunks plus the index manifest, used by
//     the retrieval pipeline for vector search
//   - FeatureCache: feature records keyed by the content ID of the analyzed text,
//     used by the feature pipeline to skip repeated NLP work
//
// The badger sub-package implements both on a single BadgerDB backend. Records
// are encoded with the MUS serializers defined in core.
//
// # Usage
//
//	backend, err := badger.OpenBackend("/path/to/index", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	chunks := badger.NewChunkRepository(backend)
//
// Use in tests with in-memory storage:
//
//	chunks, cache, backend, err := badger.NewMemoryRepositories()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
