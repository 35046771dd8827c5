// Package features computes linguistic features of text tables and
// summarizes them per column.
//
// The flow of a run is:
//   - Extractor derives nine features from one text value
//   - Processor applies the extractor to every cell of every column
//   - Summarize averages each column's features into one Summary row
//   - Pipeline reads the input table, writes the feature table and the
//     summary table, and logs where they went
//
// Rows can be processed in parallel on a worker pool. Output row order is
// always the input row order.
package features
