package english

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToolkit(t *testing.T) {
	toolkit, err := NewToolkit()
	require.NoError(t, err)
	defer toolkit.Close()

	require.NotNil(t, toolkit.Tagger())
	require.NotNil(t, toolkit.Sentiment())
	require.NotNil(t, toolkit.Readability())

	doc, err := toolkit.Tagger().Tag(context.Background(), "Start today!")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Tokens)

	score, err := toolkit.Readability().FleschReadingEase("")
	require.NoError(t, err)
	assert.Equal(t, 206.84, score)
}
