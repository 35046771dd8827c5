package features

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lingcomp/nlp"
	"github.com/poiesic/lingcomp/nlp/mock"
)

func newTestExtractor(t *testing.T) (*Extractor, *mock.MockToolkit) {
	t.Helper()
	toolkit := mock.NewMockToolkit().(*mock.MockToolkit)
	e, err := NewExtractor(toolkit)
	require.NoError(t, err)
	return e, toolkit
}

func TestNewExtractorRequiresToolkit(t *testing.T) {
	_, err := NewExtractor(nil)
	assert.ErrorIs(t, err, ErrToolkitRequired)
}

func TestExtractDigitsAndPunctuation(t *testing.T) {
	e, _ := newTestExtractor(t)

	rec, err := e.Extract(context.Background(), "1234!!!")
	require.NoError(t, err)
	assert.Equal(t, 7, rec.CharLen)
	assert.Equal(t, 0, rec.WordLen)
	assert.Equal(t, 4, rec.TokenLen)
	assert.Equal(t, 0.0, rec.TTR)
	assert.Equal(t, 3, rec.ExclamCount)
}

func TestExtractExclamations(t *testing.T) {
	e, _ := newTestExtractor(t)

	rec, err := e.Extract(context.Background(), "Go now!!")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.ExclamCount)
	assert.Equal(t, 2, rec.WordLen)
}

func TestExtractCharLenCountsRunes(t *testing.T) {
	e, _ := newTestExtractor(t)

	rec, err := e.Extract(context.Background(), "café")
	require.NoError(t, err)
	assert.Equal(t, 4, rec.CharLen)
}

func TestExtractTemporalKeywords(t *testing.T) {
	e, _ := newTestExtractor(t)

	rec, err := e.Extract(context.Background(), "Let's go tomorrow morning")
	require.NoError(t, err)
	assert.True(t, rec.TemporalRef)

	rec, err = e.Extract(context.Background(), "Let's go sometime")
	require.NoError(t, err)
	assert.False(t, rec.TemporalRef)

	rec, err = e.Extract(context.Background(), "Stick to your ROUTINE")
	require.NoError(t, err)
	assert.True(t, rec.TemporalRef)
}

func TestExtractTemporalEntity(t *testing.T) {
	e, toolkit := newTestExtractor(t)
	toolkit.GetMockTagger().Script("see you on Friday", &nlp.Doc{
		Entities: []nlp.Entity{{Text: "Friday", Label: nlp.EntityDate}},
	})

	rec, err := e.Extract(context.Background(), "see you on Friday")
	require.NoError(t, err)
	assert.True(t, rec.TemporalRef)
}

func TestExtractActionVerbs(t *testing.T) {
	e, toolkit := newTestExtractor(t)
	text := "I will try to walk and I am happy"
	toolkit.GetMockTagger().Script(text, &nlp.Doc{Tokens: []nlp.Token{
		{Text: "I", POS: nlp.POSPron, Dep: nlp.DepOther, IsAlpha: true},
		{Text: "will", POS: nlp.POSAux, Dep: nlp.DepAux, IsAlpha: true},
		{Text: "try", POS: nlp.POSVerb, Dep: nlp.DepRoot, IsAlpha: true},
		{Text: "to", POS: nlp.POSPart, Dep: nlp.DepOther, IsAlpha: true},
		{Text: "walk", POS: nlp.POSVerb, Dep: nlp.DepOther, IsAlpha: true},
		{Text: "and", POS: nlp.POSCconj, Dep: nlp.DepOther, IsAlpha: true},
		{Text: "I", POS: nlp.POSPron, Dep: nlp.DepOther, IsAlpha: true},
		{Text: "am", POS: nlp.POSAux, Dep: nlp.DepCop, IsAlpha: true},
		{Text: "happy", POS: nlp.POSAdj, Dep: nlp.DepOther, IsAlpha: true},
	}})

	rec, err := e.Extract(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.ActionVerbCount)
	assert.Equal(t, 9, rec.WordLen)
	assert.InDelta(t, 8.0/9.0, rec.TTR, 1e-9)
}

func TestActionVerbCountExcludesAuxiliaryVerbs(t *testing.T) {
	tokens := []nlp.Token{
		{Text: "have", POS: nlp.POSVerb, Dep: nlp.DepAux},
		{Text: "been", POS: nlp.POSVerb, Dep: nlp.DepCop},
		{Text: "run", POS: nlp.POSVerb, Dep: nlp.DepRoot},
	}
	assert.Equal(t, 1, ActionVerbCount(tokens))
}

func TestTypeTokenRatio(t *testing.T) {
	assert.Equal(t, 0.0, TypeTokenRatio(nil))
	assert.InDelta(t, 2.0/3.0, TypeTokenRatio([]string{"the", "The", "cat"}), 1e-9)
	assert.Equal(t, 1.0, TypeTokenRatio([]string{"a", "b"}))
}

func TestExtractToolFailure(t *testing.T) {
	boom := errors.New("model failure")

	e, toolkit := newTestExtractor(t)
	toolkit.GetMockSentiment().CompoundFunc = func(string) (float64, error) { return 0, boom }

	rec, err := e.Extract(context.Background(), "anything")
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.ErrorIs(t, err, boom)

	e, toolkit = newTestExtractor(t)
	toolkit.GetMockTagger().TagFunc = func(context.Context, string) (*nlp.Doc, error) { return nil, boom }
	_, err = e.Extract(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrExtractionFailed)

	e, toolkit = newTestExtractor(t)
	toolkit.GetMockReadability().FleschFunc = func(string) (float64, error) { return 0, boom }
	_, err = e.Extract(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractPassesScoresThrough(t *testing.T) {
	e, toolkit := newTestExtractor(t)
	toolkit.GetMockSentiment().Scores["great"] = 0.6249
	toolkit.GetMockReadability().Scores["great"] = -12.5

	rec, err := e.Extract(context.Background(), "great")
	require.NoError(t, err)
	assert.Equal(t, 0.6249, rec.Sentiment)
	assert.Equal(t, -12.5, rec.Readability)
}
