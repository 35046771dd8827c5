// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Generator,
// and ai.AIProvider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vector, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	gen := mock.NewMockGenerator()
//	gen.GenerateFunc = func(ctx context.Context, system, prompt string) (string, error) {
//	    return "forty-two", nil
//	}
//
// # Default Behavior
//
//   - MockEmbedder: hashed bag-of-words unit vectors, so texts sharing words score higher
//   - MockGenerator: returns a fixed answer and records the last prompt
//   - MockProvider: aggregates mock embedder and generator
package mock
