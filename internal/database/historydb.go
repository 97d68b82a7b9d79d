package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/rentsum/internal/model"
)

// dbFileName is the SQLite database file name inside the data directory.
const dbFileName = "rentsum.db"

// HistoryDB provides SQLite-based storage for report runs.
// It manages connection pooling and provides methods for saving and
// querying past runs.
//
// Design decision: We store the full report as JSON rather than
// normalizing it into columns. Reports are small, written once, and read
// back whole; a summary JSON column covers the listing use case without
// schema churn when the report format grows.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; keep the pool minimal.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Report runs store complete market reports as JSON
	CREATE TABLE IF NOT EXISTS report_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_file TEXT NOT NULL,
		language TEXT NOT NULL,
		metric TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		report_json TEXT NOT NULL,
		summary_json TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_source ON report_runs(source_file);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON report_runs(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// runSummary is the compact per-run summary stored next to the full report.
type runSummary struct {
	ListingCount int     `json:"listing_count"`
	SkippedRows  int     `json:"skipped_rows"`
	AveragePrice float64 `json:"average_price"`
	MedianPrice  float64 `json:"median_price"`
}

// SaveRun saves a complete market report as a new run.
func (hdb *HistoryDB) SaveRun(ctx context.Context, report *model.MarketReport) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	summary := runSummary{
		ListingCount: report.ListingCount,
		SkippedRows:  report.SkippedRows,
		AveragePrice: report.AveragePrice,
		MedianPrice:  report.MedianPrice,
	}
	summaryJSON, _ := json.Marshal(summary) //nolint:errcheck,errchkjson // plain struct; Marshal won't fail

	query := `
	INSERT INTO report_runs (source_file, language, metric, report_json, summary_json)
	VALUES (?, ?, ?, ?, ?)
	`

	_, err = hdb.db.ExecContext(ctx, query,
		report.SourceFile,
		report.Language,
		report.Metric,
		string(reportJSON),
		string(summaryJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save report run: %w", err)
	}

	return nil
}

// RunMetadata contains summary information about a stored run.
// This is used for displaying run history without loading full reports.
type RunMetadata struct {
	// ID is the unique identifier of the run in the database.
	ID int64

	// SourceFile is the dataset path the report was computed from.
	SourceFile string

	// Language is the language the report was requested in.
	Language string

	// Metric is the premium ranking metric name.
	Metric string

	// Timestamp is when the run was saved.
	Timestamp time.Time

	// ListingCount is the number of valid rows in the run.
	ListingCount int

	// SkippedRows is the number of skipped rows in the run.
	SkippedRows int

	// AveragePrice is the mean rent of the run.
	AveragePrice float64

	// MedianPrice is the median rent of the run.
	MedianPrice float64
}

// ListRuns retrieves run metadata for a source file, newest first.
func (hdb *HistoryDB) ListRuns(ctx context.Context, sourceFile string) ([]RunMetadata, error) {
	query := `
	SELECT id, source_file, language, metric, timestamp, summary_json
	FROM report_runs
	WHERE source_file = ?
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var results []RunMetadata
	for rows.Next() {
		var meta RunMetadata
		var timestamp string
		var summaryJSON sql.NullString

		if err := rows.Scan(&meta.ID, &meta.SourceFile, &meta.Language, &meta.Metric, &timestamp, &summaryJSON); err != nil {
			return nil, fmt.Errorf("failed to scan run metadata: %w", err)
		}

		meta.Timestamp = parseTimestamp(timestamp)

		if summaryJSON.Valid && summaryJSON.String != "" {
			var s runSummary
			if err := json.Unmarshal([]byte(summaryJSON.String), &s); err == nil {
				meta.ListingCount = s.ListingCount
				meta.SkippedRows = s.SkippedRows
				meta.AveragePrice = s.AveragePrice
				meta.MedianPrice = s.MedianPrice
			}
		}

		results = append(results, meta)
	}

	return results, rows.Err()
}

// GetRunByID retrieves a stored report by its database ID.
// Returns (nil, nil) when no run with that ID exists.
func (hdb *HistoryDB) GetRunByID(ctx context.Context, id int64) (*model.MarketReport, error) {
	query := `
	SELECT report_json FROM report_runs
	WHERE id = ?
	`

	var reportJSON string
	err := hdb.db.QueryRowContext(ctx, query, id).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report run: %w", err)
	}

	var report model.MarketReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// LatestRuns retrieves up to n full reports for a source file, newest first.
func (hdb *HistoryDB) LatestRuns(ctx context.Context, sourceFile string, n int) ([]*model.MarketReport, error) {
	query := `
	SELECT report_json FROM report_runs
	WHERE source_file = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	rows, err := hdb.db.QueryContext(ctx, query, sourceFile, n)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest runs: %w", err)
	}
	defer rows.Close()

	var reports []*model.MarketReport
	for rows.Next() {
		var reportJSON string
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		var report model.MarketReport
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			continue // Skip malformed reports
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// ListSources returns all source files that have stored runs.
func (hdb *HistoryDB) ListSources(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT source_file FROM report_runs
	ORDER BY source_file
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var source string
		if err := rows.Scan(&source); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		sources = append(sources, source)
	}

	return sources, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
