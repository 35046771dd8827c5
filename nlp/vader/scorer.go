// Package vader scores sentiment with the VADER lexicon.
package vader

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/poiesic/lingcomp/nlp"
)

// Scorer computes VADER compound polarity.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ nlp.SentimentScorer = (*Scorer)(nil)

// NewScorer loads the VADER lexicon.
func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the normalized compound score in [-1, 1].
func (s *Scorer) Compound(text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	return s.analyzer.PolarityScores(text).Compound, nil
}
