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

import "errors"

// Domain validation errors
var (
	// ErrInvalidTable indicates a Table failed validation.
	ErrInvalidTable = errors.New("invalid table")

	// ErrEmptyTable indicates a table with no columns or no rows.
	ErrEmptyTable = errors.New("table is empty")

	// ErrDuplicateColumn indicates two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrEmptyColumnName indicates a column with a blank name.
	ErrEmptyColumnName = errors.New("column name cannot be empty")

	// ErrRaggedTable indicates columns of different lengths.
	ErrRaggedTable = errors.New("columns have different lengths")

	// ErrInvalidFeatureRecord indicates a FeatureRecord failed validation.
	ErrInvalidFeatureRecord = errors.New("invalid feature record")

	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyContent indicates the Text field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)
