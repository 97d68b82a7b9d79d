package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/nao1215/rentsum/internal/model"
)

// Dataset holds the listings parsed from one CSV file.
// Listings preserve file order, which the premium ranking uses to break
// ties deterministically.
type Dataset struct {
	// Source is the path the dataset was loaded from.
	Source string

	// Listings are the successfully parsed rows in file order.
	Listings []model.Listing

	// SkippedRows counts rows excluded due to unparsable required fields.
	SkippedRows int
}

// Load reads the entire CSV file at path into a Dataset.
//
// The first row must be a header; columns are matched case-insensitively
// against cols. Rows whose price or size cannot be parsed are skipped and
// counted rather than failing the run. Optional numeric fields that are
// missing or empty are treated as absent (zero).
func Load(path string, cols Columns, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(path) //nolint:gosec // User-provided dataset path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	r := csv.NewReader(f)
	// Rows with a wrong field count are handled as skips, not as errors,
	// so disable the reader's own field count check.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s is empty", ErrNoHeader, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrNoHeader, err)
	}

	idx := indexHeader(header)
	fields, err := resolveFields(idx, cols)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Source: path}

	for rowNum := 2; ; rowNum++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A malformed CSV row (bad quoting etc.); the reader resumes
			// at the next record, so count it as a skip.
			ds.SkippedRows++
			logger.Debug("skipping malformed row", "row", rowNum, "error", err)
			continue
		}

		listing, ok := fields.parseRow(record)
		if !ok {
			ds.SkippedRows++
			logger.Debug("skipping row with unparsable required fields", "row", rowNum)
			continue
		}

		ds.Listings = append(ds.Listings, listing)
	}

	logger.Debug("dataset loaded",
		"source", path,
		"listings", len(ds.Listings),
		"skipped", ds.SkippedRows,
	)

	return ds, nil
}

// indexHeader maps normalized column names to their positions.
func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[normalize(name)] = i
	}
	return idx
}

// normalize lowercases and trims a header cell. The reference dataset
// ships its header with a UTF-8 BOM on the first cell, so strip that too.
func normalize(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.TrimSpace(name))
}

// fieldIndexes holds resolved column positions for one file.
// A value of -1 means the column is absent.
type fieldIndexes struct {
	id            int
	price         int
	bedrooms      int
	bathrooms     int
	size          int
	subwayMinutes int
	buildingAge   int
	hasWasher     int
	hasElevator   int
	hasDishwasher int
	hasGym        int
}

// resolveFields maps the configured column names onto header positions.
// Price and size must be present; everything else is optional.
func resolveFields(idx map[string]int, cols Columns) (*fieldIndexes, error) {
	lookup := func(name string) int {
		if pos, ok := idx[normalize(name)]; ok {
			return pos
		}
		return -1
	}

	f := &fieldIndexes{
		id:            lookup(cols.ID),
		price:         lookup(cols.Price),
		bedrooms:      lookup(cols.Bedrooms),
		bathrooms:     lookup(cols.Bathrooms),
		size:          lookup(cols.Size),
		subwayMinutes: lookup(cols.SubwayMinutes),
		buildingAge:   lookup(cols.BuildingAge),
		hasWasher:     lookup(cols.HasWasher),
		hasElevator:   lookup(cols.HasElevator),
		hasDishwasher: lookup(cols.HasDishwasher),
		hasGym:        lookup(cols.HasGym),
	}

	if f.price < 0 {
		return nil, fmt.Errorf("%w: missing required column %q", ErrNoHeader, cols.Price)
	}
	if f.size < 0 {
		return nil, fmt.Errorf("%w: missing required column %q", ErrNoHeader, cols.Size)
	}

	return f, nil
}

// parseRow converts one CSV record into a Listing.
// Returns ok=false when a required numeric field is missing or malformed.
func (f *fieldIndexes) parseRow(record []string) (model.Listing, bool) {
	price, ok := parseFloat(record, f.price)
	if !ok {
		return model.Listing{}, false
	}
	size, ok := parseInt(record, f.size)
	if !ok {
		return model.Listing{}, false
	}

	listing := model.Listing{
		Price:         price,
		Size:          size,
		HasWasher:     parseBool(record, f.hasWasher),
		HasElevator:   parseBool(record, f.hasElevator),
		HasDishwasher: parseBool(record, f.hasDishwasher),
		HasGym:        parseBool(record, f.hasGym),
	}

	// Optional numeric fields: absent or empty values become zero.
	listing.ID, _ = parseInt(record, f.id)
	listing.Bedrooms, _ = parseFloat(record, f.bedrooms)
	listing.Bathrooms, _ = parseFloat(record, f.bathrooms)
	listing.SubwayMinutes, _ = parseInt(record, f.subwayMinutes)
	listing.BuildingAge, _ = parseInt(record, f.buildingAge)

	return listing, true
}

// cell returns the trimmed value at pos, or "" when the column is absent
// or the row is short.
func cell(record []string, pos int) string {
	if pos < 0 || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

// parseFloat parses a float cell. Empty cells report ok=false.
func parseFloat(record []string, pos int) (float64, bool) {
	s := cell(record, pos)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseInt parses an integer cell. Empty cells report ok=false.
func parseInt(record []string, pos int) (int, bool) {
	s := cell(record, pos)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseBool parses a 0/1 amenity cell. Only "1" means true, matching the
// dataset encoding; everything else (including absent columns) is false.
func parseBool(record []string, pos int) bool {
	return cell(record, pos) == "1"
}
