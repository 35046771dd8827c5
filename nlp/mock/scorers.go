package mock

import (
	"sync/atomic"
)

// DefaultScore is the readability returned when nothing is scripted.
const DefaultScore = 60.0

// MockSentiment is a test double for nlp.SentimentScorer.
type MockSentiment struct {
	// Scores maps an exact input text to its compound score.
	// Populate before use; it is read concurrently.
	Scores map[string]float64

	// CompoundFunc is called if set and no score matches.
	CompoundFunc func(text string) (float64, error)

	callCount atomic.Int64
}

// NewMockSentiment creates a sentiment scorer that returns 0 by default.
func NewMockSentiment() *MockSentiment {
	return &MockSentiment{Scores: make(map[string]float64)}
}

// Compound returns the scripted score for text.
func (m *MockSentiment) Compound(text string) (float64, error) {
	m.callCount.Add(1)
	if score, ok := m.Scores[text]; ok {
		return score, nil
	}
	if m.CompoundFunc != nil {
		return m.CompoundFunc(text)
	}
	return 0, nil
}

// CallCount returns the number of Compound calls.
func (m *MockSentiment) CallCount() int {
	return int(m.callCount.Load())
}

// MockReadability is a test double for nlp.ReadabilityScorer.
type MockReadability struct {
	// Scores maps an exact input text to its score.
	// Populate before use; it is read concurrently.
	Scores map[string]float64

	// FleschFunc is called if set and no score matches.
	FleschFunc func(text string) (float64, error)

	callCount atomic.Int64
}

// NewMockReadability creates a readability scorer returning DefaultScore.
func NewMockReadability() *MockReadability {
	return &MockReadability{Scores: make(map[string]float64)}
}

// FleschReadingEase returns the scripted score for text.
func (m *MockReadability) FleschReadingEase(text string) (float64, error) {
	m.callCount.Add(1)
	if score, ok := m.Scores[text]; ok {
		return score, nil
	}
	if m.FleschFunc != nil {
		return m.FleschFunc(text)
	}
	return DefaultScore, nil
}

// CallCount returns the number of FleschReadingEase calls.
func (m *MockReadability) CallCount() int {
	return int(m.callCount.Load())
}
