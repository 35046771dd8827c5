package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lingcomp/core"
)

func TestSummarize(t *testing.T) {
	ft := &core.FeatureTable{
		Source: core.NewTable([]string{"technique_A"}, [][]string{{"a"}, {"b"}, {"c"}}),
		Features: []core.FeatureColumn{{
			Name: "technique_A",
			Records: []*core.FeatureRecord{
				{WordLen: 2, Sentiment: 0.5, ActionVerbCount: 1, TemporalRef: true, TTR: 1, ExclamCount: 1, Readability: 100},
				{WordLen: 1, Sentiment: 0, ActionVerbCount: 0, TemporalRef: false, TTR: 1, ExclamCount: 0, Readability: 50},
				{WordLen: 1, Sentiment: 0, ActionVerbCount: 0, TemporalRef: false, TTR: 0.5, ExclamCount: 0, Readability: 0},
			},
		}},
	}

	summaries, err := Summarize(ft)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "technique_A", s.Method)
	assert.Equal(t, 1.33, s.AvgWordLen)
	assert.Equal(t, 0.17, s.AvgSentiment)
	assert.Equal(t, 0.33, s.AvgActionVerbCount)
	assert.Equal(t, 33.33, s.PctTemporalRef)
	assert.Equal(t, 0.83, s.AvgTTR)
	assert.Equal(t, 0.33, s.AvgExclamCount)
	assert.Equal(t, 50.0, s.AvgReadability)
}

func TestSummarizeExcludesSkippedRows(t *testing.T) {
	ft := &core.FeatureTable{
		Source: core.NewTable([]string{"m"}, [][]string{{"a"}, {"b"}}),
		Features: []core.FeatureColumn{{
			Name:    "m",
			Records: []*core.FeatureRecord{nil, {WordLen: 4, TemporalRef: true}},
		}},
	}

	summaries, err := Summarize(ft)
	require.NoError(t, err)
	assert.Equal(t, 4.0, summaries[0].AvgWordLen)
	assert.Equal(t, 100.0, summaries[0].PctTemporalRef)
}

func TestSummarizeEmptyColumn(t *testing.T) {
	ft := &core.FeatureTable{
		Source:   core.NewTable([]string{"m"}, [][]string{{"a"}}),
		Features: []core.FeatureColumn{{Name: "m", Records: []*core.FeatureRecord{nil}}},
	}

	_, err := Summarize(ft)
	assert.ErrorIs(t, err, ErrEmptyColumn)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
	assert.Equal(t, 2.0, Round2(2))
}
