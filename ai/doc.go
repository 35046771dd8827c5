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


// Package ai provides abstractions for the AI services used by lingcomp's
// retrieval pipeline.
//
// Feature extraction never calls a model; only indexing and question
// answering do. The interfaces here keep the rag package independent of
// any particular provider:
//
//   - Embedder: Generates vector embeddings from text
//   - Generator: Answers a prompt with a chat model
//   - AIProvider: Aggregates both for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, ...) return
// interface types. Mock constructors return concrete types so tests can
// inspect call counts and inject behavior.
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithAPIKey(os.Getenv("LINGCOMP_API_KEY")))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Embedder().EmbedText(ctx, "Hello world")
//	answer, err := provider.Generator().Generate(ctx, "", "Summarize habit research")
package ai
