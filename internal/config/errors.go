package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoDataFile is returned when no dataset path is configured.
	ErrNoDataFile = errors.New("no data file specified: provide a CSV path with --file")

	// ErrInvalidTop is returned when the top listing count is not positive.
	ErrInvalidTop = errors.New("invalid top count: must be positive")

	// ErrUnsupportedLanguage is returned when the requested report
	// language has no compiled-in label catalog.
	ErrUnsupportedLanguage = errors.New("unsupported language: use en or tr")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
