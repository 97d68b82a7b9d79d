// Package model defines the core data structures used throughout rentsum.
//
// This package contains the following main types:
//   - Listing: One rental property record parsed from a CSV row
//   - MarketReport: The aggregate summary computed from a dataset
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (dataset, stats, report, database) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
