package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nao1215/rentsum/internal/i18n"
	"github.com/nao1215/rentsum/internal/model"
)

// createTestReport creates a report with sample data for testing.
func createTestReport() *model.MarketReport {
	return &model.MarketReport{
		SourceFile:          "RealEstateDB.csv",
		Language:            "en",
		Metric:              "price",
		ListingCount:        4,
		SkippedRows:         1,
		AveragePrice:        3000,
		MedianPrice:         3000,
		AverageSize:         650,
		AveragePricePerSqft: 4.61,
		PriceByBedrooms: []model.BedroomAverage{
			{Bedrooms: 1, AveragePrice: 2000, ListingCount: 2},
			{Bedrooms: 2, AveragePrice: 4000, ListingCount: 2},
		},
		Amenities: model.AmenityShares{Washer: 0.5, Elevator: 0.25, Dishwasher: 0.25, Gym: 0.25},
		TopListings: []model.Listing{
			{ID: 4, Price: 4500, Bedrooms: 2, Bathrooms: 2, Size: 900},
			{ID: 2, Price: 3500, Bedrooms: 2, Bathrooms: 1, Size: 700},
		},
	}
}

// TestTextWriter tests the localized human-readable report writer.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes english labels", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf, i18n.NewLocalizer("en"))
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"Rental Market Summary",
			"Listings analyzed: 4",
			"Skipped rows: 1",
			"Average monthly rent: $3,000",
			"Top listings by price:",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\noutput:\n%s", want, output)
			}
		}
	})

	t.Run("writes turkish labels", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf, i18n.NewLocalizer("tr"))
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"Kira Piyasası Özeti",
			"İncelenen ilan sayısı",
			"Atlanan satır sayısı",
			"Fiyata göre en pahalı ilanlar:",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\noutput:\n%s", want, output)
			}
		}
	})

	t.Run("top listings rendered in rank order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf, i18n.NewLocalizer("en"))
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		first := strings.Index(output, "ID 4:")
		second := strings.Index(output, "ID 2:")
		if first < 0 || second < 0 || first > second {
			t.Errorf("expected ID 4 before ID 2\noutput:\n%s", output)
		}
	})

	t.Run("psf metric changes the section title", func(t *testing.T) {
		t.Parallel()

		report := createTestReport()
		report.Metric = "price_per_sqft"

		var buf bytes.Buffer
		w := NewTextWriter(&buf, i18n.NewLocalizer("en"))
		if _, err := w.Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Top listings by price per sqft:") {
			t.Error("expected psf section title")
		}
	})

	t.Run("empty report prints notice", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewTextWriter(&buf, i18n.NewLocalizer("en"))
		if _, err := w.Write(&model.MarketReport{SourceFile: "x.csv"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No usable listings found") {
			t.Errorf("expected empty notice, got:\n%s", buf.String())
		}
	})

	t.Run("output is deterministic", func(t *testing.T) {
		t.Parallel()

		var first, second bytes.Buffer
		if _, err := NewTextWriter(&first, i18n.NewLocalizer("en")).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := NewTextWriter(&second, i18n.NewLocalizer("en")).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			t.Error("expected byte-identical output for identical reports")
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes title and tables", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf, i18n.NewLocalizer("en"))
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Rental Market Summary") {
			t.Error("expected H1 title")
		}
		if !strings.Contains(output, "|") {
			t.Error("expected markdown tables")
		}
		if !strings.Contains(output, "mermaid") {
			t.Error("expected mermaid pie chart block")
		}
	})

	t.Run("empty report prints notice", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf, i18n.NewLocalizer("en"))
		if _, err := w.Write(&model.MarketReport{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No usable listings found") {
			t.Error("expected empty notice")
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded model.MarketReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded.ListingCount != 4 || decoded.SkippedRows != 1 {
			t.Errorf("unexpected decoded report: %+v", decoded)
		}
		if len(decoded.TopListings) != 2 {
			t.Errorf("expected 2 top listings, got %d", len(decoded.TopListings))
		}
	})
}

// TestMultiWriter tests writing to several destinations at once.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, jsonBuf bytes.Buffer
	mw := NewMultiWriter(
		NewTextWriter(&text, i18n.NewLocalizer("en")),
		NewJSONWriter(&jsonBuf),
	)

	n, err := mw.Write(createTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != text.Len()+jsonBuf.Len() {
		t.Errorf("expected total bytes %d, got %d", text.Len()+jsonBuf.Len(), n)
	}
	if text.Len() == 0 || jsonBuf.Len() == 0 {
		t.Error("expected both writers to receive output")
	}
}
