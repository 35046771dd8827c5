package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/prompts"

	"github.com/poiesic/lingcomp/ai"
	"github.com/poiesic/lingcomp/core"
	"github.com/poiesic/lingcomp/storage"
)

// DefaultTopK is the number of chunks retrieved per query.
const DefaultTopK = 3

// minCosine admits every stored chunk; ranking alone selects the top k.
const minCosine = -1

const qaTemplate = `Context information is below.
---------------------
{{.context}}
---------------------
Given the context information and not prior knowledge, answer the query.
Query: {{.query}}
Answer: `

// Answer is a generated response with the chunks it was grounded on.
type Answer struct {
	Query   string
	Text    string
	Sources []*core.ChunkResult
}

// QueryEngine retrieves relevant chunks and answers questions from them.
type QueryEngine struct {
	repo     storage.ChunkRepository
	provider ai.AIProvider
	topK     int
	system   string
	prompt   prompts.PromptTemplate
	logger   *slog.Logger
}

// QueryOption configures a QueryEngine.
type QueryOption func(*QueryEngine) error

// WithTopK sets the number of chunks retrieved per query.
func WithTopK(k int) QueryOption {
	return func(e *QueryEngine) error {
		if k < 1 {
			return fmt.Errorf("top-k must be at least 1, got %d", k)
		}
		e.topK = k
		return nil
	}
}

// WithSystemPrompt sets an instruction sent as the system message.
func WithSystemPrompt(system string) QueryOption {
	return func(e *QueryEngine) error {
		e.system = system
		return nil
	}
}

// WithQueryLogger sets a custom logger.
func WithQueryLogger(logger *slog.Logger) QueryOption {
	return func(e *QueryEngine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewQueryEngine creates a query engine over repo.
func NewQueryEngine(repo storage.ChunkRepository, provider ai.AIProvider, opts ...QueryOption) (*QueryEngine, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	e := &QueryEngine{
		repo:     repo,
		provider: provider,
		topK:     DefaultTopK,
		prompt:   prompts.NewPromptTemplate(qaTemplate, []string{"context", "query"}),
		logger:   slog.Default().With("component", "rag-query"),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Retrieve returns the top-k chunks most similar to query, best first.
func (e *QueryEngine) Retrieve(ctx context.Context, query string) ([]*core.ChunkResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	manifest, err := e.repo.LoadManifest(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	if manifest == nil {
		return nil, ErrEmptyIndex
	}
	if manifest.EmbeddingModel != e.provider.EmbeddingModel() {
		return nil, fmt.Errorf("%w: index uses %q, query uses %q",
			ErrModelMismatch, manifest.EmbeddingModel, e.provider.EmbeddingModel())
	}

	vector, err := e.provider.Embedder().EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	if len(vector) != manifest.Dimensions {
		return nil, fmt.Errorf("%w: index has %d, query has %d", ErrDimensionMismatch, manifest.Dimensions, len(vector))
	}

	results, err := e.repo.FindSimilar(ctx, NormalizeVector(vector), minCosine, e.topK)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("retrieved chunks", "count", len(results))
	return results, nil
}

// Query retrieves context for query and asks the generator to answer it.
func (e *QueryEngine) Query(ctx context.Context, query string) (*Answer, error) {
	results, err := e.Retrieve(ctx, query)
	if err != nil {
		return nil, err
	}

	prompt, err := e.RenderPrompt(query, results)
	if err != nil {
		return nil, err
	}

	text, err := e.provider.Generator().Generate(ctx, e.system, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}
	return &Answer{Query: query, Text: text, Sources: results}, nil
}

// RenderPrompt fills the question-answering template with the retrieved chunks.
func (e *QueryEngine) RenderPrompt(query string, results []*core.ChunkResult) (string, error) {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Chunk.Text
	}
	return e.prompt.Format(map[string]any{
		"context": strings.Join(parts, "\n\n"),
		"query":   query,
	})
}
