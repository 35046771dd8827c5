package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// CellKind identifies how a raw table field was interpreted at ingestion.
type CellKind int

const (
	// CellText is a free-text value.
	CellText CellKind = iota + 1
	// CellMissing is an empty field or an NA marker.
	CellMissing
	// CellScalar is a field that parses as a number.
	CellScalar
)

func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellMissing:
		return "missing"
	case CellScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// missingMarkers are the field values treated as missing, in addition to blank fields.
var missingMarkers = map[string]struct{}{
	"NA": {}, "N/A": {}, "NaN": {}, "nan": {}, "null": {}, "NULL": {}, "None": {},
}

// Cell is a single table value resolved once at ingestion.
type Cell struct {
	Kind CellKind
	raw  string
}

// NewCell resolves a raw field into a Cell.
func NewCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellMissing, raw: raw}
	}
	if _, ok := missingMarkers[trimmed]; ok {
		return Cell{Kind: CellMissing, raw: raw}
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellScalar, raw: raw}
	}
	return Cell{Kind: CellText, raw: raw}
}

// Raw returns the field exactly as it was read.
func (c Cell) Raw() string {
	return c.raw
}

// Text returns the uniform text representation used for analysis.
// Missing cells are empty; scalars are their trimmed literal.
func (c Cell) Text() string {
	switch c.Kind {
	case CellMissing:
		return ""
	case CellScalar:
		return strings.TrimSpace(c.raw)
	default:
		return c.raw
	}
}

// Table is a rectangular set of message columns, one per generation method.
// Rows are aligned positionally; there is no join key.
type Table struct {
	Columns []string
	Cells   map[string][]Cell
}

// NewTable builds a table from a header and row-major records.
// Short records are padded with missing cells.
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{
		Columns: append([]string(nil), header...),
		Cells:   make(map[string][]Cell, len(header)),
	}
	for i, name := range header {
		col := make([]Cell, len(rows))
		for r, row := range rows {
			if i < len(row) {
				col[r] = NewCell(row[i])
			} else {
				col[r] = NewCell("")
			}
		}
		t.Cells[name] = col
	}
	return t
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Cells[t.Columns[0]])
}

// Column returns the cells of the named column.
func (t *Table) Column(name string) []Cell {
	return t.Cells[name]
}

// FeatureSuffixes are the derived column suffixes, in FeatureRecord order.
var FeatureSuffixes = []string{
	"char_len",
	"word_len",
	"token_len",
	"sentiment",
	"action_verb_count",
	"temporal_ref",
	"ttr",
	"exclam_count",
	"readability",
}

// FeatureColumnName returns the derived column name for a source column and suffix.
func FeatureColumnName(column, suffix string) string {
	return column + "_" + suffix
}

// FeatureRecord holds the nine linguistic features of a single text value.
type FeatureRecord struct {
	CharLen         int
	WordLen         int
	TokenLen        int
	Sentiment       float64 // VADER compound score in [-1, 1]
	ActionVerbCount int
	TemporalRef     bool
	TTR             float64 // type-token ratio in [0, 1]
	ExclamCount     int
	Readability     float64 // Flesch reading ease, unbounded
}

// Values returns the features in FeatureSuffixes order.
func (f *FeatureRecord) Values() []float64 {
	temporal := 0.0
	if f.TemporalRef {
		temporal = 1
	}
	return []float64{
		float64(f.CharLen),
		float64(f.WordLen),
		float64(f.TokenLen),
		f.Sentiment,
		float64(f.ActionVerbCount),
		temporal,
		f.TTR,
		float64(f.ExclamCount),
		f.Readability,
	}
}

// Strings returns the features formatted for tabular output.
// Counts and the temporal flag are written as integers.
func (f *FeatureRecord) Strings() []string {
	temporal := "0"
	if f.TemporalRef {
		temporal = "1"
	}
	return []string{
		strconv.Itoa(f.CharLen),
		strconv.Itoa(f.WordLen),
		strconv.Itoa(f.TokenLen),
		FormatFloat(f.Sentiment),
		strconv.Itoa(f.ActionVerbCount),
		temporal,
		FormatFloat(f.TTR),
		strconv.Itoa(f.ExclamCount),
		FormatFloat(f.Readability),
	}
}

// FormatFloat formats a float with the shortest exact representation.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FeatureColumn holds the feature records of one source column.
// A nil record marks a row that was skipped.
type FeatureColumn struct {
	Name    string
	Records []*FeatureRecord
}

// FeatureTable is the source table with nine derived columns per source column.
type FeatureTable struct {
	Source   *Table
	Features []FeatureColumn
}

// Header returns the original columns followed by the derived columns of each
// original column, in declaration order.
func (ft *FeatureTable) Header() []string {
	header := append([]string(nil), ft.Source.Columns...)
	for _, fc := range ft.Features {
		for _, suffix := range FeatureSuffixes {
			header = append(header, FeatureColumnName(fc.Name, suffix))
		}
	}
	return header
}

// Rows returns the table body in row-major order.
func (ft *FeatureTable) Rows() [][]string {
	n := ft.Source.RowCount()
	rows := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, 0, len(ft.Source.Columns)*(1+len(FeatureSuffixes)))
		for _, name := range ft.Source.Columns {
			row = append(row, ft.Source.Cells[name][r].Raw())
		}
		for _, fc := range ft.Features {
			if rec := fc.Records[r]; rec != nil {
				row = append(row, rec.Strings()...)
			} else {
				row = append(row, make([]string, len(FeatureSuffixes))...)
			}
		}
		rows[r] = row
	}
	return rows
}

// SummaryHeader is the column header of the summary table.
var SummaryHeader = []string{
	"Method",
	"Avg Word Len",
	"Avg Sentiment",
	"Avg Action Verb Count",
	"% Temporal Ref",
	"Avg TTR",
	"Avg Exclam Count",
	"Avg Readability",
}

// Summary is the per-method aggregate of a feature column.
type Summary struct {
	Method             string
	AvgWordLen         float64
	AvgSentiment       float64
	AvgActionVerbCount float64
	PctTemporalRef     float64
	AvgTTR             float64
	AvgExclamCount     float64
	AvgReadability     float64
}

// Strings returns the summary formatted for tabular output.
func (s *Summary) Strings() []string {
	return []string{
		s.Method,
		FormatFloat(s.AvgWordLen),
		FormatFloat(s.AvgSentiment),
		FormatFloat(s.AvgActionVerbCount),
		FormatFloat(s.PctTemporalRef),
		FormatFloat(s.AvgTTR),
		FormatFloat(s.AvgExclamCount),
		FormatFloat(s.AvgReadability),
	}
}

// Document is a source text loaded for retrieval.
type Document struct {
	Path string
	Text string
}

// Chunk is an embedded slice of a document stored in the vector index.
type Chunk struct {
	Id      ID
	Source  string    // Path of the originating document
	Ordinal int       // Position of the chunk within its document
	Text    string
	Vector  []float32 // Normalized embedding (populated by the indexer)
}

// ChunkID returns the content-derived ID for a chunk of a document.
func ChunkID(source string, ordinal int, text string) ID {
	return IDFromContent(source + "\x00" + strconv.Itoa(ordinal) + "\x00" + text)
}

// ChunkResult is a chunk match from vector similarity search.
type ChunkResult struct {
	Chunk *Chunk
	Score float32
}

// IndexManifest describes how a vector index was built.
type IndexManifest struct {
	EmbeddingModel string
	Dimensions     int
	ChunkCount     int
	UpdatedAt      time.Time
}
