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


// Package rag indexes a directory of documents into a vector store and
// answers questions over it.
//
// Indexing loads .txt and .md files, splits them into overlapping chunks,
// embeds the chunks in batches and stores them with a manifest naming the
// embedding model. Querying embeds the question, retrieves the most similar
// chunks and asks a chat model to answer from them.
//
//	docs, err := rag.LoadDirectory("rag_docs")
//	indexer, err := rag.NewIndexer(repo, provider)
//	result, err := indexer.Index(ctx, docs)
//
//	engine, err := rag.NewQueryEngine(repo, provider, rag.WithTopK(3))
//	answer, err := engine.Query(ctx, "How do habits form?")
package rag
