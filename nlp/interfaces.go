package nlp

import "context"

// Tagger splits text into tokens with part-of-speech and dependency labels and
// recognizes named entities.
// Implementations must be thread-safe for concurrent use.
type Tagger interface {
	// Tag analyzes text and returns its tokens and entities.
	// Token order follows the input text.
	// Returns an error if the underlying model fails.
	Tag(ctx context.Context, text string) (*Doc, error)
}

// SentimentScorer rates the polarity of text.
// Implementations must be thread-safe for concurrent use.
type SentimentScorer interface {
	// Compound returns a normalized polarity score in [-1, 1].
	Compound(text string) (float64, error)
}

// ReadabilityScorer rates how easy text is to read.
// Implementations must be thread-safe for concurrent use.
type ReadabilityScorer interface {
	// FleschReadingEase returns the Flesch reading-ease score of text.
	// Higher is easier; the value is not clamped to any range.
	FleschReadingEase(text string) (float64, error)
}

// Toolkit aggregates the NLP services used for feature extraction.
// A toolkit is constructed once at startup and shared by every extraction.
type Toolkit interface {
	// Tagger returns the tokenizer, tagger and entity recognizer.
	Tagger() Tagger

	// Sentiment returns the sentiment scorer.
	Sentiment() SentimentScorer

	// Readability returns the readability scorer.
	Readability() ReadabilityScorer

	// Close releases resources held by the toolkit and its services.
	Close() error
}
