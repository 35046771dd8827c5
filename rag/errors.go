package rag

import "errors"

var (
	// ErrNoDocuments is returned when a directory holds no loadable documents.
	ErrNoDocuments = errors.New("no documents to index")

	// ErrModelMismatch is returned when the index was built with a different embedding model.
	ErrModelMismatch = errors.New("index was built with a different embedding model")

	// ErrEmptyIndex is returned when querying an index that was never built.
	ErrEmptyIndex = errors.New("index is empty")

	// ErrEmptyQuery is returned for a blank query.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrRepositoryRequired is returned when a chunk repository is not provided.
	ErrRepositoryRequired = errors.New("chunk repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrInvalidMaxAttempts is returned when maxAttempts is not positive.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrDimensionMismatch is returned when embeddings of one index differ in length.
	ErrDimensionMismatch = errors.New("embedding dimensions differ")
)
