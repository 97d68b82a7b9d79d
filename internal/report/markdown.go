package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/rentsum/internal/i18n"
	"github.com/nao1215/rentsum/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, lists, and mermaid charts.
// Labels go through the same Localizer as the text writer so the Markdown
// report is localized too.
type MarkdownWriter struct {
	baseWriter

	loc *i18n.Localizer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, loc *i18n.Localizer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		loc:        loc,
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.MarketReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(w.loc.Label("report.title"))
	md.PlainText("")

	if !report.HasListings() {
		md.PlainText(w.loc.Label("report.no_listings"))
		return len(md.String()), md.Build()
	}

	w.writeSummaryTable(md, report)
	w.writeBedroomChart(md, report)
	w.writeAmenityTable(md, report)
	w.writeTopListingsTable(md, report)

	return len(md.String()), md.Build()
}

// writeSummaryTable writes the aggregate statistics table.
func (w *MarkdownWriter) writeSummaryTable(md *markdown.Markdown, report *model.MarketReport) {
	md.Table(markdown.TableSet{
		Header: []string{"", ""},
		Rows: [][]string{
			{w.loc.Label("report.source"), "`" + report.SourceFile + "`"},
			{w.loc.Label("report.count"), w.loc.Count(report.ListingCount)},
			{w.loc.Label("report.skipped"), w.loc.Count(report.SkippedRows)},
			{w.loc.Label("report.avg_price"), w.loc.Money(report.AveragePrice)},
			{w.loc.Label("report.median_price"), w.loc.Money(report.MedianPrice)},
			{w.loc.Label("report.avg_size"), w.loc.Number(report.AverageSize) + " " + w.loc.Label("unit.sqft")},
			{w.loc.Label("report.avg_psf"), w.loc.MoneyPrecise(report.AveragePricePerSqft)},
		},
	})
	md.PlainText("")
}

// writeBedroomChart writes a mermaid pie chart of the bedroom distribution.
func (w *MarkdownWriter) writeBedroomChart(md *markdown.Markdown, report *model.MarketReport) {
	if len(report.PriceByBedrooms) == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(w.loc.Label("report.by_bedrooms")),
		piechart.WithShowData(true),
	)

	for _, group := range report.PriceByBedrooms {
		label := w.loc.Number(group.Bedrooms) + " " + w.loc.Label("unit.bedrooms")
		chart.LabelAndIntValue(label, uint64(group.ListingCount)) //nolint:gosec // ListingCount is non-negative
	}

	md.PlainText(w.loc.Label("report.by_bedrooms"))
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{w.loc.Label("unit.bedrooms"), w.loc.Label("report.avg_price"), w.loc.Label("unit.listings")},
		Rows:   bedroomRows(w.loc, report.PriceByBedrooms),
	})
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// bedroomRows builds the per-bedroom table rows.
func bedroomRows(loc *i18n.Localizer, groups []model.BedroomAverage) [][]string {
	rows := make([][]string, len(groups))
	for i, g := range groups {
		rows[i] = []string{
			loc.Number(g.Bedrooms),
			loc.Money(g.AveragePrice),
			loc.Count(g.ListingCount),
		}
	}
	return rows
}

// writeAmenityTable writes the amenity share table.
func (w *MarkdownWriter) writeAmenityTable(md *markdown.Markdown, report *model.MarketReport) {
	md.PlainText(w.loc.Label("report.amenities"))
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"", "%"},
		Rows: [][]string{
			{w.loc.Label("amenity.washer"), w.loc.Percent(report.Amenities.Washer)},
			{w.loc.Label("amenity.elevator"), w.loc.Percent(report.Amenities.Elevator)},
			{w.loc.Label("amenity.dishwasher"), w.loc.Percent(report.Amenities.Dishwasher)},
			{w.loc.Label("amenity.gym"), w.loc.Percent(report.Amenities.Gym)},
		},
	})
	md.PlainText("")
}

// writeTopListingsTable writes the premium ranking table.
func (w *MarkdownWriter) writeTopListingsTable(md *markdown.Markdown, report *model.MarketReport) {
	if len(report.TopListings) == 0 {
		return
	}

	md.H2(w.loc.Label(topTitleKey(report.Metric)))
	md.PlainText("")

	rows := make([][]string, len(report.TopListings))
	for i, l := range report.TopListings {
		rows[i] = []string{
			strconv.Itoa(l.ID),
			w.loc.Money(l.Price),
			w.loc.Number(l.Bedrooms),
			w.loc.Number(l.Bathrooms),
			w.loc.Count(l.Size),
			w.loc.MoneyPrecise(l.PricePerSquareFoot()),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{
			"ID",
			w.loc.Label("unit.price"),
			w.loc.Label("unit.bedrooms"),
			w.loc.Label("unit.bathrooms"),
			w.loc.Label("unit.sqft"),
			"$/" + w.loc.Label("unit.sqft"),
		},
		Rows: rows,
	})
	md.PlainText("")
}
