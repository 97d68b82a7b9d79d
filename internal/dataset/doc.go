// Package dataset loads rental listing records from CSV files.
//
// The loader maps header columns to listing fields by name, tolerates
// malformed rows by skipping and counting them, and fails only when the
// file is missing or its header is unusable. Column names can be remapped
// via configuration for datasets with different headers.
package dataset
