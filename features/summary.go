package features

import (
	"fmt"
	"math"

	"github.com/poiesic/lingcomp/core"
)

// Round2 rounds v to two decimals, ties away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize averages each feature column into one summary row per column,
// in column order. Skipped rows are excluded from the means.
func Summarize(ft *core.FeatureTable) ([]*core.Summary, error) {
	summaries := make([]*core.Summary, 0, len(ft.Features))
	for _, fc := range ft.Features {
		s, err := summarizeColumn(fc)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func summarizeColumn(fc core.FeatureColumn) (*core.Summary, error) {
	var n int
	var wordLen, sentiment, actionVerbs, temporal, ttr, exclam, readability float64
	for _, rec := range fc.Records {
		if rec == nil {
			continue
		}
		n++
		wordLen += float64(rec.WordLen)
		sentiment += rec.Sentiment
		actionVerbs += float64(rec.ActionVerbCount)
		if rec.TemporalRef {
			temporal++
		}
		ttr += rec.TTR
		exclam += float64(rec.ExclamCount)
		readability += rec.Readability
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyColumn, fc.Name)
	}

	mean := func(sum float64) float64 { return sum / float64(n) }
	return &core.Summary{
		Method:             fc.Name,
		AvgWordLen:         Round2(mean(wordLen)),
		AvgSentiment:       Round2(mean(sentiment)),
		AvgActionVerbCount: Round2(mean(actionVerbs)),
		PctTemporalRef:     Round2(mean(temporal) * 100),
		AvgTTR:             Round2(mean(ttr)),
		AvgExclamCount:     Round2(mean(exclam)),
		AvgReadability:     Round2(mean(readability)),
	}, nil
}
