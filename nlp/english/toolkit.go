// Package english wires the default English NLP toolkit.
package english

import (
	"fmt"
	"log/slog"

	"github.com/poiesic/lingcomp/nlp"
	"github.com/poiesic/lingcomp/nlp/prose"
	"github.com/poiesic/lingcomp/nlp/readability"
	"github.com/poiesic/lingcomp/nlp/vader"
)

// Toolkit combines the prose tagger, VADER sentiment and Flesch readability.
type Toolkit struct {
	tagger      *prose.Tagger
	sentiment   *vader.Scorer
	readability readability.Scorer
}

// NewToolkit builds the English toolkit. Tagger options are passed through.
//
// Returns nlp.Toolkit interface for consistency with the mock constructors.
func NewToolkit(opts ...prose.Option) (nlp.Toolkit, error) {
	opts = append([]prose.Option{prose.WithLogger(slog.Default().With("component", "english-toolkit"))}, opts...)
	tagger, err := prose.NewTagger(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tagger: %w", err)
	}
	return &Toolkit{
		tagger:      tagger,
		sentiment:   vader.NewScorer(),
		readability: readability.NewScorer(),
	}, nil
}

// Tagger returns the prose tagger.
func (t *Toolkit) Tagger() nlp.Tagger {
	return t.tagger
}

// Sentiment returns the VADER scorer.
func (t *Toolkit) Sentiment() nlp.SentimentScorer {
	return t.sentiment
}

// Readability returns the Flesch scorer.
func (t *Toolkit) Readability() nlp.ReadabilityScorer {
	return t.readability
}

// Close is a no-op; every service is in-process.
func (t *Toolkit) Close() error {
	return nil
}
