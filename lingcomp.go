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


// Package lingcomp wires storage, language tools and AI services into the
// two entry points of the module: an Analyzer for feature runs over message
// tables and a KnowledgeBase for indexing and querying reference documents.
package lingcomp

import (
	"errors"
	"log/slog"

	"github.com/poiesic/lingcomp/ai"
	"github.com/poiesic/lingcomp/ai/openai"
	"github.com/poiesic/lingcomp/features"
	"github.com/poiesic/lingcomp/nlp"
	"github.com/poiesic/lingcomp/nlp/english"
	"github.com/poiesic/lingcomp/rag"
	"github.com/poiesic/lingcomp/storage"
	"github.com/poiesic/lingcomp/storage/badger"
)

// Analyzer owns the NLP toolkit and the optional feature cache.
type Analyzer struct {
	toolkit     nlp.Toolkit
	ownsToolkit bool
	backend     *badger.Backend
	cache       storage.FeatureCache
	logger      *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*analyzerOptions)

type analyzerOptions struct {
	toolkit   nlp.Toolkit
	cachePath string
}

// WithToolkit uses toolkit instead of the default English toolkit.
// The caller keeps ownership and closes it.
func WithToolkit(toolkit nlp.Toolkit) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.toolkit = toolkit
	}
}

// WithFeatureCachePath persists extracted features in a badger database at path.
func WithFeatureCachePath(path string) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.cachePath = path
	}
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(opts ...AnalyzerOption) (*Analyzer, error) {
	options := &analyzerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	a := &Analyzer{
		toolkit: options.toolkit,
		logger:  slog.Default().With("component", "analyzer"),
	}
	if a.toolkit == nil {
		toolkit, err := english.NewToolkit()
		if err != nil {
			return nil, err
		}
		a.toolkit = toolkit
		a.ownsToolkit = true
	}

	if options.cachePath != "" {
		backend, err := badger.OpenBackend(options.cachePath, false)
		if err != nil {
			a.closeToolkit()
			return nil, err
		}
		a.backend = backend
		a.cache = badger.NewFeatureCache(backend)
	}
	return a, nil
}

// Toolkit returns the NLP toolkit in use.
func (a *Analyzer) Toolkit() nlp.Toolkit {
	return a.toolkit
}

// NewProcessor creates a feature processor using the analyzer's toolkit and cache.
// Options are applied after the cache option and may override it.
func (a *Analyzer) NewProcessor(opts ...features.Option) (*features.Processor, error) {
	if a.cache != nil {
		opts = append([]features.Option{features.WithFeatureCache(a.cache)}, opts...)
	}
	return features.NewProcessor(a.toolkit, opts...)
}

// NewFeaturePipeline creates a feature pipeline. Release it when done.
func (a *Analyzer) NewFeaturePipeline(opts ...features.Option) (*features.Pipeline, error) {
	processor, err := a.NewProcessor(opts...)
	if err != nil {
		return nil, err
	}
	return features.NewPipeline(processor, nil), nil
}

func (a *Analyzer) closeToolkit() error {
	if a.ownsToolkit {
		return a.toolkit.Close()
	}
	return nil
}

// Close closes the cache and, when the analyzer created it, the toolkit.
func (a *Analyzer) Close() error {
	var errs []error
	if err := a.closeToolkit(); err != nil {
		a.logger.Error("error closing toolkit", "err", err)
		errs = append(errs, err)
	}
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Error("error closing feature cache", "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// KnowledgeBase is a vector index of reference documents on badger storage.
type KnowledgeBase struct {
	backend  *badger.Backend
	chunks   *badger.ChunkRepository
	provider ai.AIProvider
	logger   *slog.Logger
}

// KnowledgeBaseOption configures a KnowledgeBase.
type KnowledgeBaseOption func(*knowledgeBaseOptions)

type knowledgeBaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the configuration of the OpenAI-compatible provider.
func WithAIConfig(config *ai.Config) KnowledgeBaseOption {
	return func(o *knowledgeBaseOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider uses provider instead of building one from the config.
// The knowledge base closes it.
func WithAIProvider(provider ai.AIProvider) KnowledgeBaseOption {
	return func(o *knowledgeBaseOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps the index in memory; the path is ignored.
func WithInMemory() KnowledgeBaseOption {
	return func(o *knowledgeBaseOptions) {
		o.inMemory = true
	}
}

// OpenKnowledgeBase opens or creates the index stored at path.
func OpenKnowledgeBase(path string, opts ...KnowledgeBaseOption) (*KnowledgeBase, error) {
	options := &knowledgeBaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	backend, err := badger.OpenBackend(path, options.inMemory)
	if err != nil {
		provider.Close()
		return nil, err
	}

	return &KnowledgeBase{
		backend:  backend,
		chunks:   badger.NewChunkRepository(backend),
		provider: provider,
		logger:   slog.Default().With("component", "knowledge-base"),
	}, nil
}

// ChunkRepository returns the underlying chunk store.
func (kb *KnowledgeBase) ChunkRepository() storage.ChunkRepository {
	return kb.chunks
}

// NewIndexer creates an indexer writing to this knowledge base.
func (kb *KnowledgeBase) NewIndexer(opts ...rag.IndexerOption) (*rag.Indexer, error) {
	return rag.NewIndexer(kb.chunks, kb.provider, opts...)
}

// NewQueryEngine creates a query engine reading from this knowledge base.
func (kb *KnowledgeBase) NewQueryEngine(opts ...rag.QueryOption) (*rag.QueryEngine, error) {
	return rag.NewQueryEngine(kb.chunks, kb.provider, opts...)
}

// Close closes the provider and the storage backend.
func (kb *KnowledgeBase) Close() error {
	if err := kb.provider.Close(); err != nil {
		kb.logger.Error("error closing AI provider", "err", err)
	}
	if err := kb.chunks.Close(); err != nil {
		kb.logger.Error("error closing chunk repository", "err", err)
		return err
	}
	if err := kb.backend.Close(); err != nil {
		kb.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
