// Package tabular reads and writes the comma-separated tables of a feature run.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poiesic/lingcomp/core"
)

const bom = "\uFEFF"

// ErrNoHeader is returned when the input has no header record.
var ErrNoHeader = errors.New("table has no header")

// ReadTable reads a table with a header record from path.
// Records shorter than the header are padded with missing cells.
func ReadTable(path string) (*core.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read reads a table with a header record from r.
func Read(r io.Reader) (*core.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	for i, row := range rows {
		if len(row) > len(header) {
			return nil, fmt.Errorf("%w: record %d has %d fields, header has %d",
				core.ErrRaggedTable, i+1, len(row), len(header))
		}
	}
	return core.NewTable(header, rows), nil
}

// WriteFeatureTable writes the header and every row of ft to path.
func WriteFeatureTable(path string, ft *core.FeatureTable) error {
	return writeFile(path, ft.Header(), ft.Rows())
}

// WriteSummary writes the summary header and one row per summary to path.
func WriteSummary(path string, summaries []*core.Summary) error {
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = s.Strings()
	}
	return writeFile(path, core.SummaryHeader, rows)
}

func writeFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, header, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write writes a header and rows to w.
func Write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
