package prose

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/lingcomp/nlp"
)

func tagged(pairs ...string) []nlp.Token {
	tokens := make([]nlp.Token, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		tokens = append(tokens, nlp.Token{Text: pairs[i], Tag: pairs[i+1]})
	}
	return tokens
}

func TestAssignLabelsModalAndCopula(t *testing.T) {
	tokens := tagged(
		"I", "PRP", "will", "MD", "try", "VB", "to", "TO", "walk", "VB",
		"and", "CC", "I", "PRP", "am", "VBP", "happy", "JJ", ".", ".",
	)
	assignLabels(tokens)

	assert.Equal(t, nlp.DepAux, tokens[1].Dep)
	assert.Equal(t, nlp.POSAux, tokens[1].POS)
	assert.Equal(t, nlp.DepRoot, tokens[2].Dep)
	assert.Equal(t, nlp.POSVerb, tokens[2].POS)
	assert.Equal(t, nlp.POSVerb, tokens[4].POS)
	assert.Equal(t, nlp.DepOther, tokens[4].Dep)
	assert.Equal(t, nlp.DepCop, tokens[7].Dep)
	assert.Equal(t, nlp.POSAux, tokens[7].POS)
	assert.Equal(t, nlp.DepPunct, tokens[9].Dep)
}

func TestAssignLabelsAuxiliaryBeforeVerb(t *testing.T) {
	tokens := tagged("I", "PRP", "am", "VBP", "not", "RB", "going", "VBG")
	assignLabels(tokens)

	assert.Equal(t, nlp.DepAux, tokens[1].Dep)
	assert.Equal(t, nlp.DepRoot, tokens[3].Dep)
}

func TestAssignLabelsHaveAsMainVerb(t *testing.T) {
	tokens := tagged("We", "PRP", "have", "VBP", "time", "NN")
	assignLabels(tokens)

	assert.Equal(t, nlp.POSVerb, tokens[1].POS)
	assert.Equal(t, nlp.DepRoot, tokens[1].Dep)
}

func TestAssignLabelsGapLimit(t *testing.T) {
	tokens := tagged("did", "VBD", "you", "PRP", "really", "RB", "truly", "RB", "honestly", "RB", "go", "VB")
	assignLabels(tokens)

	// the verb is beyond the allowed gap, so "did" is a main verb
	assert.Equal(t, nlp.DepRoot, tokens[0].Dep)
	assert.Equal(t, nlp.POSVerb, tokens[5].POS)
}

func TestUniversalPOSFallsBackOnText(t *testing.T) {
	assert.Equal(t, nlp.POSPunct, universalPOS("", "!!"))
	assert.Equal(t, nlp.POSX, universalPOS("", "zz"))
	assert.Equal(t, nlp.POSNoun, universalPOS("NNS", "dogs"))
}

func TestTemporalLabel(t *testing.T) {
	assert.Equal(t, nlp.EntityTime, temporalLabel("at 5pm"))
	assert.Equal(t, nlp.EntityTime, temporalLabel("10:30"))
	assert.Equal(t, nlp.EntityTime, temporalLabel("noon"))
	assert.Equal(t, nlp.EntityDate, temporalLabel("tomorrow"))
	assert.Equal(t, nlp.EntityDate, temporalLabel("next friday"))
}

func TestAcceptSpan(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		start  int
		span   string
		tokens []nlp.Token
		want   bool
	}{
		{"bare now", "Start now", 6, "now", nil, false},
		{"modal may", "May you rest", 0, "May", tagged("May", "MD", "you", "PRP", "rest", "VB"), false},
		{"verb march", "March forward", 0, "March", tagged("March", "VB", "forward", "RB"), false},
		{"month after preposition", "Due in March", 7, "March", tagged("Due", "JJ", "in", "IN", "March", "NNP"), true},
		{"month without lead word", "Call March", 5, "March", tagged("Call", "VB", "March", "NNP"), false},
		{"lowercase abbreviation", "the sun", 4, "sun", nil, false},
		{"capitalised abbreviation", "on Sun", 3, "Sun", nil, true},
		{"multi-word span", "next Friday", 0, "next Friday", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, acceptSpan(tt.text, tt.start, tt.span, tt.tokens))
		})
	}
}

func TestFindAddsDurations(t *testing.T) {
	base := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	found, err := newTemporalRecognizer().find("Walk for 30 minutes then rest 2 days", nil, base)
	assert.NoError(t, err)
	assert.Contains(t, found, nlp.Entity{Text: "30 minutes", Label: nlp.EntityTime})
	assert.Contains(t, found, nlp.Entity{Text: "2 days", Label: nlp.EntityDate})
}
