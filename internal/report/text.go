package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/rentsum/internal/i18n"
	"github.com/nao1215/rentsum/internal/model"
)

// ruleWidth is the width of the section rule lines.
const ruleWidth = 70

// TextWriter outputs localized human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because it works in all terminals and pipes cleanly to
// files or other tools. Every label and number goes through the
// Localizer, so the whole report renders in one language.
type TextWriter struct {
	baseWriter

	loc *i18n.Localizer
}

// NewTextWriter creates a TextWriter that outputs to the given writer
// in the Localizer's language.
func NewTextWriter(output io.Writer, loc *i18n.Localizer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
		loc:        loc,
	}
}

// Write outputs the full report in localized text format.
// The output is deterministic for a given report: no timestamps, no
// map-ordered sections.
func (w *TextWriter) Write(report *model.MarketReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)

	if !report.HasListings() {
		sb.WriteString(w.loc.Label("report.no_listings"))
		sb.WriteString("\n")
		return w.output.Write([]byte(sb.String()))
	}

	w.writeSummary(&sb, report)
	w.writeBedroomAverages(&sb, report)
	w.writeAmenities(&sb, report)
	w.writeTopListings(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report title and source file.
func (w *TextWriter) writeHeader(sb *strings.Builder, report *model.MarketReport) {
	title := w.loc.Label("report.title")

	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	w.writeLine(sb, "report.source", report.SourceFile)
	sb.WriteString("\n")
}

// writeSummary writes the aggregate statistics section.
func (w *TextWriter) writeSummary(sb *strings.Builder, report *model.MarketReport) {
	w.writeLine(sb, "report.count", w.loc.Count(report.ListingCount))
	w.writeLine(sb, "report.skipped", w.loc.Count(report.SkippedRows))
	w.writeLine(sb, "report.avg_price", w.loc.Money(report.AveragePrice))
	w.writeLine(sb, "report.median_price", w.loc.Money(report.MedianPrice))
	w.writeLine(sb, "report.avg_size",
		w.loc.Number(report.AverageSize)+" "+w.loc.Label("unit.sqft"))
	w.writeLine(sb, "report.avg_psf", w.loc.MoneyPrecise(report.AveragePricePerSqft))
	sb.WriteString("\n")
}

// writeBedroomAverages writes the per-bedroom-count price breakdown.
func (w *TextWriter) writeBedroomAverages(sb *strings.Builder, report *model.MarketReport) {
	if len(report.PriceByBedrooms) == 0 {
		return
	}

	sb.WriteString(w.loc.Label("report.by_bedrooms"))
	sb.WriteString("\n")

	for _, group := range report.PriceByBedrooms {
		sb.WriteString(fmt.Sprintf("  %s %s: %s (%s %s)\n",
			w.loc.Number(group.Bedrooms),
			w.loc.Label("unit.bedrooms"),
			w.loc.Money(group.AveragePrice),
			w.loc.Count(group.ListingCount),
			w.loc.Label("unit.listings"),
		))
	}
	sb.WriteString("\n")
}

// writeAmenities writes the amenity share section.
func (w *TextWriter) writeAmenities(sb *strings.Builder, report *model.MarketReport) {
	sb.WriteString(w.loc.Label("report.amenities"))
	sb.WriteString("\n")

	amenities := []struct {
		key   string
		share float64
	}{
		{"amenity.washer", report.Amenities.Washer},
		{"amenity.elevator", report.Amenities.Elevator},
		{"amenity.dishwasher", report.Amenities.Dishwasher},
		{"amenity.gym", report.Amenities.Gym},
	}

	for _, a := range amenities {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", w.loc.Label(a.key), w.loc.Percent(a.share)))
	}
	sb.WriteString("\n")
}

// writeTopListings writes the premium ranking section.
func (w *TextWriter) writeTopListings(sb *strings.Builder, report *model.MarketReport) {
	if len(report.TopListings) == 0 {
		return
	}

	sb.WriteString(w.loc.Label(topTitleKey(report.Metric)))
	sb.WriteString("\n")

	for _, l := range report.TopListings {
		sb.WriteString(fmt.Sprintf("  ID %d: %s | %s %s / %s %s | %s %s | %s/%s\n",
			l.ID,
			w.loc.Money(l.Price),
			w.loc.Number(l.Bedrooms),
			w.loc.Label("unit.bedrooms"),
			w.loc.Number(l.Bathrooms),
			w.loc.Label("unit.bathrooms"),
			w.loc.Count(l.Size),
			w.loc.Label("unit.sqft"),
			w.loc.MoneyPrecise(l.PricePerSquareFoot()),
			w.loc.Label("unit.sqft"),
		))
	}

	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}

// writeLine writes one "label: value" line.
func (w *TextWriter) writeLine(sb *strings.Builder, labelKey, value string) {
	sb.WriteString(w.loc.Label(labelKey))
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

// topTitleKey returns the label key of the top-listing section title for
// the given metric name.
func topTitleKey(metric string) string {
	if metric == "price_per_sqft" {
		return "report.top_by_psf"
	}
	return "report.top_by_price"
}
