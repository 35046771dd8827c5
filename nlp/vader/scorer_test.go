package vader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundPolarity(t *testing.T) {
	s := NewScorer()

	pos, err := s.Compound("I love this, it is wonderful!")
	require.NoError(t, err)
	assert.Greater(t, pos, 0.0)

	neg, err := s.Compound("This is terrible and I hate it.")
	require.NoError(t, err)
	assert.Less(t, neg, 0.0)
}

func TestCompoundNeutralAndEmpty(t *testing.T) {
	s := NewScorer()

	score, err := s.Compound("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	score, err = s.Compound("The meeting is in room four.")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, score, 0.3)
}

func TestCompoundBounded(t *testing.T) {
	s := NewScorer()
	score, err := s.Compound("GREAT GREAT GREAT!!! best amazing awesome love love love")
	require.NoError(t, err)
	assert.LessOrEqual(t, score, 1.0)
	assert.GreaterOrEqual(t, score, -1.0)
}
