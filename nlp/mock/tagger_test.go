package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lingcomp/nlp"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("1234!!! ok")
	require.Len(t, tokens, 5)
	assert.Equal(t, "1234", tokens[0].Text)
	assert.False(t, tokens[0].IsAlpha)
	assert.Equal(t, nlp.POSPunct, tokens[1].POS)
	assert.Equal(t, "ok", tokens[4].Text)
	assert.True(t, tokens[4].IsAlpha)
}

func TestMockTaggerScripted(t *testing.T) {
	doc := &nlp.Doc{Entities: []nlp.Entity{{Text: "tomorrow", Label: nlp.EntityDate}}}
	tagger := NewMockTagger().Script("see you tomorrow", doc)

	got, err := tagger.Tag(context.Background(), "see you tomorrow")
	require.NoError(t, err)
	assert.Same(t, doc, got)

	got, err = tagger.Tag(context.Background(), "other")
	require.NoError(t, err)
	assert.Len(t, got.Tokens, 1)
	assert.Equal(t, 2, tagger.CallCount())

	tagger.Reset()
	assert.Equal(t, 0, tagger.CallCount())
}

func TestMockToolkitAccessors(t *testing.T) {
	toolkit := NewMockToolkit().(*MockToolkit)
	toolkit.GetMockSentiment().Scores["yay"] = 0.8

	score, err := toolkit.Sentiment().Compound("yay")
	require.NoError(t, err)
	assert.Equal(t, 0.8, score)

	r, err := toolkit.Readability().FleschReadingEase("x")
	require.NoError(t, err)
	assert.Equal(t, DefaultScore, r)

	require.NoError(t, toolkit.Close())
	assert.True(t, toolkit.Closed())
}
