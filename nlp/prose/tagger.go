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

// Package prose implements nlp.Tagger on top of the prose tokenizer and
// averaged-perceptron tagger, with temporal entities from the when parser.
package prose

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	jdprose "github.com/jdkato/prose/v2"

	"github.com/poiesic/lingcomp/nlp"
)

// Tagger tokenizes and tags English text.
type Tagger struct {
	temporal *temporalRecognizer
	now      func() time.Time
	logger   *slog.Logger
}

var _ nlp.Tagger = (*Tagger)(nil)

// Option configures a Tagger.
type Option func(*Tagger) error

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tagger) error {
		t.logger = logger
		return nil
	}
}

// WithClock sets the reference time used to resolve relative dates.
func WithClock(now func() time.Time) Option {
	return func(t *Tagger) error {
		if now == nil {
			return fmt.Errorf("clock must not be nil")
		}
		t.now = now
		return nil
	}
}

// NewTagger creates a Tagger.
func NewTagger(opts ...Option) (*Tagger, error) {
	t := &Tagger{
		temporal: newTemporalRecognizer(),
		now:      time.Now,
		logger:   slog.Default().With("component", "prose-tagger"),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Tag tokenizes text, assigns parts of speech and dependency labels and
// collects entities.
func (t *Tagger) Tag(ctx context.Context, text string) (*nlp.Doc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := jdprose.NewDocument(text, jdprose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("tagging text: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]nlp.Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tokens = append(tokens, nlp.Token{
			Text:    tok.Text,
			Tag:     tok.Tag,
			IsAlpha: nlp.IsAlpha(tok.Text),
		})
	}
	assignLabels(tokens)

	var entities []nlp.Entity
	for _, ent := range doc.Entities() {
		entities = append(entities, nlp.Entity{Text: ent.Text, Label: ent.Label})
	}
	temporal, err := t.temporal.find(text, tokens, t.now())
	if err != nil {
		t.logger.Debug("temporal parse failed", "err", err)
	}
	entities = append(entities, temporal...)

	return &nlp.Doc{Tokens: tokens, Entities: entities}, nil
}
