package config

import (
	"errors"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected
// default values. This serves as living documentation of the defaults.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default DataFile is RealEstateDB.csv", func(t *testing.T) {
		t.Parallel()
		if cfg.DataFile != "RealEstateDB.csv" {
			t.Errorf("expected DataFile to be 'RealEstateDB.csv', got '%s'", cfg.DataFile)
		}
	})

	t.Run("default Language is en", func(t *testing.T) {
		t.Parallel()
		if cfg.Language != "en" {
			t.Errorf("expected Language to be 'en', got '%s'", cfg.Language)
		}
	})

	t.Run("default TopN is 5", func(t *testing.T) {
		t.Parallel()
		if cfg.TopN != 5 {
			t.Errorf("expected TopN to be 5, got %d", cfg.TopN)
		}
	})

	t.Run("default Metric is price", func(t *testing.T) {
		t.Parallel()
		if cfg.Metric != "price" {
			t.Errorf("expected Metric to be 'price', got '%s'", cfg.Metric)
		}
	})

	t.Run("default DBDir is set", func(t *testing.T) {
		t.Parallel()
		if cfg.DBDir == "" {
			t.Error("expected DBDir to be populated from XDG data dir")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty data file", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.DataFile = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoDataFile) {
			t.Errorf("expected ErrNoDataFile, got %v", err)
		}
	})

	t.Run("zero top count", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.TopN = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTop) {
			t.Errorf("expected ErrInvalidTop, got %v", err)
		}
	})

	t.Run("negative top count", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.TopN = -3
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTop) {
			t.Errorf("expected ErrInvalidTop, got %v", err)
		}
	})

	t.Run("unsupported language", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Language = "fr"
		if err := cfg.Validate(); !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
		}
	})

	t.Run("turkish is supported", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Language = "tr"
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})
}

// TestFileApply tests config-file precedence over defaults.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("set fields override defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		f := &File{
			Language: "tr",
			Top:      10,
			Metric:   "price_per_sqft",
			DataFile: "other.csv",
			Columns:  map[string]string{"price": "rent"},
		}
		f.Apply(cfg)

		if cfg.Language != "tr" || cfg.TopN != 10 || cfg.Metric != "price_per_sqft" {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if cfg.DataFile != "other.csv" {
			t.Errorf("expected DataFile other.csv, got %s", cfg.DataFile)
		}
		if cfg.ColumnOverrides["price"] != "rent" {
			t.Errorf("expected column override, got %v", cfg.ColumnOverrides)
		}
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if cfg.Language != DefaultLanguage || cfg.TopN != DefaultTopN || cfg.DataFile != DefaultDataFile {
			t.Errorf("expected defaults to survive empty file, got %+v", cfg)
		}
	})
}
