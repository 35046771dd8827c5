package features

import "errors"

var (
	// ErrToolkitRequired is returned when an NLP toolkit is not provided.
	ErrToolkitRequired = errors.New("nlp toolkit required")

	// ErrExtractionFailed is returned when a language tool fails on a text value.
	ErrExtractionFailed = errors.New("feature extraction failed")

	// ErrEmptyColumn is returned when a column has no rows to summarize.
	ErrEmptyColumn = errors.New("column has no rows to summarize")

	// ErrInvalidWorkers is returned when the worker count is below one.
	ErrInvalidWorkers = errors.New("worker count must be at least 1")
)
