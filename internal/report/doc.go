// Package report renders market reports in multiple output formats.
//
// Three writers are provided: a localized human-readable text writer
// (the default), a Markdown writer for documentation and sharing, and a
// JSON writer for machine consumption. All writers implement the same
// Writer interface so the CLI can swap formats without branching on
// report structure.
package report
