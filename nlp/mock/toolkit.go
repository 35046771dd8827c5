package mock

import "github.com/poiesic/lingcomp/nlp"

// MockToolkit is a test double for nlp.Toolkit.
type MockToolkit struct {
	tagger      *MockTagger
	sentiment   *MockSentiment
	readability *MockReadability
	closed      bool
}

// NewMockToolkit creates a toolkit with default mock services.
//
// Returns nlp.Toolkit interface for consistency with production constructors.
// Use GetMockTagger() and friends to reach concrete types for assertions.
func NewMockToolkit() nlp.Toolkit {
	return &MockToolkit{
		tagger:      NewMockTagger(),
		sentiment:   NewMockSentiment(),
		readability: NewMockReadability(),
	}
}

// NewMockToolkitWithServices creates a toolkit from custom mock services.
func NewMockToolkitWithServices(tagger *MockTagger, sentiment *MockSentiment, readability *MockReadability) nlp.Toolkit {
	return &MockToolkit{
		tagger:      tagger,
		sentiment:   sentiment,
		readability: readability,
	}
}

func (t *MockToolkit) Tagger() nlp.Tagger {
	return t.tagger
}

func (t *MockToolkit) Sentiment() nlp.SentimentScorer {
	return t.sentiment
}

func (t *MockToolkit) Readability() nlp.ReadabilityScorer {
	return t.readability
}

// Close marks the toolkit closed.
func (t *MockToolkit) Close() error {
	t.closed = true
	return nil
}

// Closed reports whether Close was called.
func (t *MockToolkit) Closed() bool {
	return t.closed
}

// GetMockTagger returns the underlying mock tagger.
func (t *MockToolkit) GetMockTagger() *MockTagger {
	return t.tagger
}

// GetMockSentiment returns the underlying mock sentiment scorer.
func (t *MockToolkit) GetMockSentiment() *MockSentiment {
	return t.sentiment
}

// GetMockReadability returns the underlying mock readability scorer.
func (t *MockToolkit) GetMockReadability() *MockReadability {
	return t.readability
}
