// Package database provides SQLite-based storage for report run history.
//
// Each successful report run is stored as a JSON blob with a small
// summary column for cheap history listings. The history command reads
// this database to list, show, and compare past runs.
package database
