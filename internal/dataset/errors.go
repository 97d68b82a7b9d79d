package dataset

import "errors"

// Loading errors.
// These are the only fatal conditions: a missing file or an unusable
// header aborts the run, while malformed data rows are skipped and
// counted instead.
//
// Design decision: We use package-level sentinel errors so callers can
// distinguish input errors from parse errors with errors.Is() while the
// wrapped message carries the concrete path or column name.
var (
	// ErrFileNotFound is returned when the dataset file does not exist.
	ErrFileNotFound = errors.New("dataset file not found")

	// ErrNoHeader is returned when the file is empty or its header row
	// lacks the required price and size columns.
	ErrNoHeader = errors.New("dataset has no usable header row")
)
