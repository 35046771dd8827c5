package features

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/lingcomp/core"
	"github.com/poiesic/lingcomp/nlp"
)

// temporalKeywords are matched as substrings of the lowercased text.
var temporalKeywords = []string{
	"today", "tomorrow", "tonight", "morning", "evening",
	"daily", "each day", "every day", "this week", "next week",
	"in 10 minutes", "routine",
}

// Extractor computes the feature record of a single text value.
// It holds no state besides the toolkit and is safe for concurrent use.
type Extractor struct {
	toolkit nlp.Toolkit
}

// NewExtractor creates an extractor over the given toolkit.
func NewExtractor(toolkit nlp.Toolkit) (*Extractor, error) {
	if toolkit == nil {
		return nil, ErrToolkitRequired
	}
	return &Extractor{toolkit: toolkit}, nil
}

// Extract computes all nine features of text. A failure of any language tool
// yields ErrExtractionFailed and no record.
func (e *Extractor) Extract(ctx context.Context, text string) (*core.FeatureRecord, error) {
	doc, err := e.toolkit.Tagger().Tag(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: tagging: %w", ErrExtractionFailed, err)
	}
	sentiment, err := e.toolkit.Sentiment().Compound(text)
	if err != nil {
		return nil, fmt.Errorf("%w: sentiment: %w", ErrExtractionFailed, err)
	}
	readability, err := e.toolkit.Readability().FleschReadingEase(text)
	if err != nil {
		return nil, fmt.Errorf("%w: readability: %w", ErrExtractionFailed, err)
	}

	words := alphaWords(doc.Tokens)
	return &core.FeatureRecord{
		CharLen:         utf8.RuneCountInString(text),
		WordLen:         len(words),
		TokenLen:        len(doc.Tokens),
		Sentiment:       sentiment,
		ActionVerbCount: ActionVerbCount(doc.Tokens),
		TemporalRef:     HasTemporalReference(text, doc.Entities),
		TTR:             TypeTokenRatio(words),
		ExclamCount:     strings.Count(text, "!"),
		Readability:     readability,
	}, nil
}

func alphaWords(tokens []nlp.Token) []string {
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.IsAlpha {
			words = append(words, tok.Text)
		}
	}
	return words
}

// ActionVerbCount counts main verbs: VERB tokens that are not auxiliaries or copulas.
func ActionVerbCount(tokens []nlp.Token) int {
	n := 0
	for _, tok := range tokens {
		if tok.POS == nlp.POSVerb && tok.Dep != nlp.DepAux && tok.Dep != nlp.DepCop {
			n++
		}
	}
	return n
}

// HasTemporalReference reports whether a DATE or TIME entity was found or the
// lowercased text contains a temporal keyword.
func HasTemporalReference(text string, entities []nlp.Entity) bool {
	for _, ent := range entities {
		if ent.Label == nlp.EntityDate || ent.Label == nlp.EntityTime {
			return true
		}
	}
	lower := strings.ToLower(text)
	for _, kw := range temporalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// TypeTokenRatio returns distinct lowercased words over all words, or 0 when
// there are no words.
func TypeTokenRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	distinct := make(map[string]struct{}, len(words))
	for _, w := range words {
		distinct[strings.ToLower(w)] = struct{}{}
	}
	return float64(len(distinct)) / float64(len(words))
}
