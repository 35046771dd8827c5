// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.



package core

import (
	"fmt"
	"math"
)

// ValidateTable validates a Table according to domain rules.
//
// Validation rules:
//   - At least one column and one row
//   - Column names are non-empty and unique
//   - Every column has the same number of cells
func ValidateTable(table *Table) error {
	if table == nil {
		return fmt.Errorf("%w: table is nil", ErrInvalidTable)
	}

	if len(table.Columns) == 0 {
		return fmt.Errorf("%w: %w: no columns", ErrInvalidTable, ErrEmptyTable)
	}

	seen := make(map[string]struct{}, len(table.Columns))
	rows := -1
	for _, name := range table.Columns {
		if name == "" {
			return fmt.Errorf("%w: %w", ErrInvalidTable, ErrEmptyColumnName)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %w: %q", ErrInvalidTable, ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}

		cells, ok := table.Cells[name]
		if !ok {
			return fmt.Errorf("%w: column %q has no cells", ErrInvalidTable, name)
		}
		if rows >= 0 && len(cells) != rows {
			return fmt.Errorf("%w: %w: %q has %d rows, expected %d", ErrInvalidTable, ErrRaggedTable, name, len(cells), rows)
		}
		rows = len(cells)
	}

	if rows == 0 {
		return fmt.Errorf("%w: %w: no rows", ErrInvalidTable, ErrEmptyTable)
	}

	return nil
}

// ValidateFeatureRecord checks the range invariants of a FeatureRecord.
//
// Validation rules:
//   - Counts are non-negative
//   - Sentiment is within [-1, 1]
//   - TTR is within [0, 1]
//   - Readability is a finite number (any sign)
func ValidateFeatureRecord(rec *FeatureRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidFeatureRecord)
	}
	if rec.CharLen < 0 || rec.WordLen < 0 || rec.TokenLen < 0 || rec.ActionVerbCount < 0 || rec.ExclamCount < 0 {
		return fmt.Errorf("%w: negative count", ErrInvalidFeatureRecord)
	}
	if rec.Sentiment < -1 || rec.Sentiment > 1 || math.IsNaN(rec.Sentiment) {
		return fmt.Errorf("%w: sentiment %v out of range", ErrInvalidFeatureRecord, rec.Sentiment)
	}
	if rec.TTR < 0 || rec.TTR > 1 || math.IsNaN(rec.TTR) {
		return fmt.Errorf("%w: ttr %v out of range", ErrInvalidFeatureRecord, rec.TTR)
	}
	if math.IsNaN(rec.Readability) || math.IsInf(rec.Readability, 0) {
		return fmt.Errorf("%w: readability is not finite", ErrInvalidFeatureRecord)
	}
	return nil
}

// ValidateChunk validates a Chunk according to domain rules.
//
// NOT validated (populated by the indexer):
//   - Vector (can be empty until embedded)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}
	if chunk.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}
	if chunk.Ordinal < 0 {
		return fmt.Errorf("%w: negative ordinal %d", ErrInvalidChunk, chunk.Ordinal)
	}
	return nil
}
