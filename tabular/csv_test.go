package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/lingcomp/core"
)

func TestReadPadsShortRecords(t *testing.T) {
	input := "\uFEFFtechnique_A,technique_B\n\"Start today!\",Go\nMaybe later\n"
	table, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"technique_A", "technique_B"}, table.Columns)
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Start today!", table.Column("technique_A")[0].Text())
	assert.Equal(t, core.CellMissing, table.Column("technique_B")[1].Kind)
}

func TestReadRejectsLongRecords(t *testing.T) {
	_, err := Read(strings.NewReader("a\n1,2\n"))
	assert.ErrorIs(t, err, core.ErrRaggedTable)
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFeatureTableRoundTrip(t *testing.T) {
	source := core.NewTable([]string{"m"}, [][]string{{"hi, there"}, {"x"}})
	ft := &core.FeatureTable{
		Source: source,
		Features: []core.FeatureColumn{{
			Name: "m",
			Records: []*core.FeatureRecord{
				{CharLen: 9, WordLen: 2, TokenLen: 3, TTR: 1, Readability: 120.5},
				nil,
			},
		}},
	}

	path := filepath.Join(t.TempDir(), "features.csv")
	require.NoError(t, WriteFeatureTable(path, ft))

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Len(t, table.Columns, 10)
	assert.Equal(t, "hi, there", table.Column("m")[0].Raw())
	assert.Equal(t, "9", table.Column("m_char_len")[0].Raw())
	assert.Equal(t, "120.5", table.Column("m_readability")[0].Raw())
	assert.Equal(t, core.CellMissing, table.Column("m_char_len")[1].Kind)
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	err := WriteSummary(path, []*core.Summary{{Method: "technique_A", AvgWordLen: 1.5, PctTemporalRef: 50}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Method,Avg Word Len,Avg Sentiment,Avg Action Verb Count,% Temporal Ref,Avg TTR,Avg Exclam Count,Avg Readability", lines[0])
	assert.Equal(t, "technique_A,1.5,0,0,50,0,0,0", lines[1])
}
