package prose

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lingcomp/nlp"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
}

func TestTaggerTokens(t *testing.T) {
	tagger, err := NewTagger(WithClock(fixedClock))
	require.NoError(t, err)

	doc, err := tagger.Tag(context.Background(), "Go now!!")
	require.NoError(t, err)
	require.NotEmpty(t, doc.Tokens)

	assert.Equal(t, "Go", doc.Tokens[0].Text)
	assert.True(t, doc.Tokens[0].IsAlpha)
	for _, tok := range doc.Tokens {
		assert.NotEmpty(t, tok.POS)
		assert.NotEmpty(t, tok.Dep)
		if tok.Text == "!" {
			assert.False(t, tok.IsAlpha)
		}
	}
}

func TestTaggerTemporalEntity(t *testing.T) {
	tagger, err := NewTagger(WithClock(fixedClock))
	require.NoError(t, err)

	doc, err := tagger.Tag(context.Background(), "Let's meet tomorrow")
	require.NoError(t, err)

	var labels []string
	for _, ent := range doc.Entities {
		labels = append(labels, ent.Label)
	}
	assert.Contains(t, labels, nlp.EntityDate)
}

func TestTaggerEmptyText(t *testing.T) {
	tagger, err := NewTagger()
	require.NoError(t, err)

	doc, err := tagger.Tag(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, doc.Tokens)
}

func TestTaggerCancelledContext(t *testing.T) {
	tagger, err := NewTagger()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tagger.Tag(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithClockRejectsNil(t *testing.T) {
	_, err := NewTagger(WithClock(nil))
	assert.Error(t, err)
}

func temporalEntities(doc *nlp.Doc) []nlp.Entity {
	var out []nlp.Entity
	for _, ent := range doc.Entities {
		if ent.Label == nlp.EntityDate || ent.Label == nlp.EntityTime {
			out = append(out, ent)
		}
	}
	return out
}

func TestTaggerIgnoresNonTemporalWords(t *testing.T) {
	tagger, err := NewTagger(WithClock(fixedClock))
	require.NoError(t, err)

	for _, text := range []string{
		"Start now!",
		"Stand up right now",
		"May you stay healthy",
		"March forward",
		"Enjoy the sun",
	} {
		t.Run(text, func(t *testing.T) {
			doc, err := tagger.Tag(context.Background(), text)
			require.NoError(t, err)
			assert.Empty(t, temporalEntities(doc))
		})
	}
}

func TestTaggerTemporalSpans(t *testing.T) {
	tagger, err := NewTagger(WithClock(fixedClock))
	require.NoError(t, err)

	tests := []struct {
		text string
		want nlp.Entity
	}{
		{"Walk for 30 minutes", nlp.Entity{Text: "30 minutes", Label: nlp.EntityTime}},
		{"Stretch for two weeks", nlp.Entity{Text: "two weeks", Label: nlp.EntityDate}},
		{"See you in May", nlp.Entity{Text: "May", Label: nlp.EntityDate}},
		{"Start now and walk tomorrow", nlp.Entity{Text: "tomorrow", Label: nlp.EntityDate}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			doc, err := tagger.Tag(context.Background(), tt.text)
			require.NoError(t, err)
			found := temporalEntities(doc)
			assert.Contains(t, found, tt.want)
			for _, ent := range found {
				assert.NotEqual(t, "now", ent.Text)
			}
		})
	}
}
