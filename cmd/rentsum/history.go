package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/rentsum/internal/config"
	"github.com/nao1215/rentsum/internal/database"
	"github.com/nao1215/rentsum/internal/i18n"
	"github.com/nao1215/rentsum/internal/model"
	"github.com/nao1215/rentsum/internal/report"
)

// Constants for market trend direction.
const (
	trendDirectionUp        = "up"
	trendDirectionDown      = "down"
	trendDirectionUnchanged = "unchanged"
)

// NewHistoryCmd creates the history command.
// This command inspects past report runs stored in the database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [dataset-file]",
		Short: "Inspect and compare past report runs",
		Long: `History shows past report runs stored in the local database.

By default it compares the latest two runs for the given dataset file and
shows how the market moved: changes in listing count, average and median
rent, average size, and rent per square foot.

The comparison requires at least two runs in the database for the
specified dataset. Use 'rentsum report' to analyze a dataset and save
runs.

Examples:
  # Compare the latest two runs for a dataset
  rentsum history RealEstateDB.csv

  # List all runs for a dataset
  rentsum history --list RealEstateDB.csv

  # Show a stored report by run ID
  rentsum history --show-id 5 RealEstateDB.csv

  # Compare the latest run with a specific run by ID
  rentsum history --with-run-id 3 RealEstateDB.csv

  # Output the comparison in JSON format
  rentsum history --json RealEstateDB.csv

  # List all datasets in the database
  rentsum history --list-sources`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List run history for the specified dataset file")
	cmd.Flags().BoolP("list-sources", "L", false,
		"List all dataset files in the database")

	// Run selection flags
	cmd.Flags().Int64P("show-id", "s", 0,
		"Show the stored report for a specific run ID (use --list to see IDs)")
	cmd.Flags().Int64P("with-run-id", "i", 0,
		"Compare the latest run with a specific run by ID")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output result in JSON format")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	// Handle --list-sources flag first (requires database but no dataset)
	listSources, err := cmd.Flags().GetBool("list-sources")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database
	var sourceFile string
	if !listSources {
		if len(args) == 0 {
			return errors.New("dataset file is required (use --list-sources to see stored datasets)")
		}
		sourceFile = args[0]
	}

	// Use XDG data directory for the database
	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	// Handle --list-sources flag
	if listSources {
		return listStoredSources(ctx, db)
	}

	// Handle --list flag
	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listRunHistory(ctx, db, sourceFile)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	// Handle --show-id flag
	showID, err := cmd.Flags().GetInt64("show-id")
	if err != nil {
		return err
	}
	if showID > 0 {
		return showStoredRun(ctx, db, sourceFile, showID, jsonOutput)
	}

	withRunID, err := cmd.Flags().GetInt64("with-run-id")
	if err != nil {
		return err
	}

	// Default: compare runs
	return runComparison(ctx, db, sourceFile, withRunID, jsonOutput)
}

// listStoredSources lists all dataset files that have runs in the database.
func listStoredSources(ctx context.Context, db *database.HistoryDB) error {
	sources, err := db.ListSources(ctx)
	if err != nil {
		return fmt.Errorf("failed to list datasets: %w", err)
	}

	if len(sources) == 0 {
		fmt.Println("No report runs found in the database.")
		fmt.Println("\nUse 'rentsum report --file <dataset>' to analyze a dataset.")
		return nil
	}

	fmt.Printf("Stored datasets (%d):\n\n", len(sources))
	for _, source := range sources {
		fmt.Printf("  • %s\n", source)
	}
	fmt.Println("\nUse 'rentsum history --list <dataset>' to see run history for a dataset.")

	return nil
}

// listRunHistory lists all run records for a specific dataset file.
func listRunHistory(ctx context.Context, db *database.HistoryDB, sourceFile string) error {
	runs, err := db.ListRuns(ctx, sourceFile)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Printf("No run history found for %s\n", sourceFile)
		fmt.Println("\nUse 'rentsum report' to analyze this dataset.")
		return nil
	}

	fmt.Printf("Run history for %s (%d runs):\n\n", sourceFile, len(runs))
	fmt.Printf("  %-6s  %-20s  %-10s  %-10s  %s\n", "ID", "Date", "Listings", "Skipped", "Avg Rent")
	fmt.Println("  " + strings.Repeat("-", 64))

	for _, meta := range runs {
		fmt.Printf("  %-6d  %-20s  %-10d  %-10d  $%.0f\n",
			meta.ID,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.ListingCount,
			meta.SkippedRows,
			meta.AveragePrice,
		)
	}

	fmt.Println("\nUse 'rentsum history <dataset>' to compare the latest two runs.")
	fmt.Println("Use 'rentsum history --show-id <id> <dataset>' to show a stored report.")

	return nil
}

// showStoredRun renders a stored report by its run ID.
func showStoredRun(ctx context.Context, db *database.HistoryDB, sourceFile string, id int64, jsonOutput bool) error {
	stored, err := db.GetRunByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get run with ID %d: %w", id, err)
	}
	if stored == nil {
		return fmt.Errorf("run with ID %d not found", id)
	}
	if stored.SourceFile != sourceFile {
		return fmt.Errorf("run ID %d belongs to %s, not %s", id, stored.SourceFile, sourceFile)
	}

	if jsonOutput {
		writer := report.NewJSONWriter(os.Stdout)
		_, err := writer.Write(stored)
		return err
	}

	// Render the stored report in the language it was generated with.
	writer := report.NewTextWriter(os.Stdout, i18n.NewLocalizer(stored.Language))
	_, err = writer.Write(stored)
	return err
}

// runComparison compares two stored runs for a dataset.
func runComparison(ctx context.Context, db *database.HistoryDB, sourceFile string, withRunID int64, jsonOutput bool) error {
	latest, err := db.LatestRuns(ctx, sourceFile, 2)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	if len(latest) == 0 {
		return fmt.Errorf("no run history found for %s", sourceFile)
	}
	if len(latest) < 2 && withRunID == 0 {
		return fmt.Errorf("at least 2 runs are required for comparison (found %d)", len(latest))
	}

	// Latest run is always the current one
	current := latest[0]

	var previous *model.MarketReport
	if withRunID > 0 {
		previous, err = db.GetRunByID(ctx, withRunID)
		if err != nil {
			return fmt.Errorf("failed to get run with ID %d: %w", withRunID, err)
		}
		if previous == nil {
			return fmt.Errorf("run with ID %d not found", withRunID)
		}
		// Validate that the run ID belongs to the same dataset
		if previous.SourceFile != sourceFile {
			return fmt.Errorf("run ID %d belongs to %s, not %s", withRunID, previous.SourceFile, sourceFile)
		}
	} else {
		previous = latest[1]
	}

	comparison := compareRuns(previous, current)

	if jsonOutput {
		return outputComparisonJSON(comparison)
	}
	return outputComparisonText(comparison)
}

// ComparisonResult holds the result of comparing two report runs.
type ComparisonResult struct {
	// SourceFile is the dataset both runs were computed from.
	SourceFile string `json:"source_file"`

	// PreviousRun contains summary figures from the older run.
	PreviousRun RunSnapshot `json:"previous_run"`

	// CurrentRun contains summary figures from the newer run.
	CurrentRun RunSnapshot `json:"current_run"`

	// ListingCountDelta is the change in valid listing count.
	ListingCountDelta int `json:"listing_count_delta"`

	// AveragePriceDelta is the change in mean monthly rent.
	AveragePriceDelta float64 `json:"average_price_delta"`

	// MedianPriceDelta is the change in median monthly rent.
	MedianPriceDelta float64 `json:"median_price_delta"`

	// AverageSizeDelta is the change in mean listing size.
	AverageSizeDelta float64 `json:"average_size_delta"`

	// AveragePricePerSqftDelta is the change in mean rent per square foot.
	AveragePricePerSqftDelta float64 `json:"average_price_per_sqft_delta"`

	// Trend describes the overall rent direction: "up", "down", or "unchanged".
	Trend string `json:"trend"`
}

// RunSnapshot contains summary figures of a run for comparison display.
type RunSnapshot struct {
	// GeneratedAt is when the run was computed.
	GeneratedAt time.Time `json:"generated_at"`

	// ListingCount is the number of valid listings in the run.
	ListingCount int `json:"listing_count"`

	// SkippedRows is the number of skipped rows in the run.
	SkippedRows int `json:"skipped_rows"`

	// AveragePrice is the mean monthly rent.
	AveragePrice float64 `json:"average_price"`

	// MedianPrice is the median monthly rent.
	MedianPrice float64 `json:"median_price"`

	// AverageSize is the mean listing size in square feet.
	AverageSize float64 `json:"average_size"`

	// AveragePricePerSqft is the mean rent per square foot.
	AveragePricePerSqft float64 `json:"average_price_per_sqft"`
}

// snapshotOf extracts the comparison snapshot from a report.
func snapshotOf(r *model.MarketReport) RunSnapshot {
	return RunSnapshot{
		GeneratedAt:         r.GeneratedAt,
		ListingCount:        r.ListingCount,
		SkippedRows:         r.SkippedRows,
		AveragePrice:        r.AveragePrice,
		MedianPrice:         r.MedianPrice,
		AverageSize:         r.AverageSize,
		AveragePricePerSqft: r.AveragePricePerSqft,
	}
}

// compareRuns compares two report runs and generates a comparison result.
func compareRuns(previous, current *model.MarketReport) *ComparisonResult {
	result := &ComparisonResult{
		SourceFile:  current.SourceFile,
		PreviousRun: snapshotOf(previous),
		CurrentRun:  snapshotOf(current),
	}

	result.ListingCountDelta = result.CurrentRun.ListingCount - result.PreviousRun.ListingCount
	result.AveragePriceDelta = result.CurrentRun.AveragePrice - result.PreviousRun.AveragePrice
	result.MedianPriceDelta = result.CurrentRun.MedianPrice - result.PreviousRun.MedianPrice
	result.AverageSizeDelta = result.CurrentRun.AverageSize - result.PreviousRun.AverageSize
	result.AveragePricePerSqftDelta = result.CurrentRun.AveragePricePerSqft - result.PreviousRun.AveragePricePerSqft

	// Median is more robust to outlier listings than the mean, so the
	// overall trend follows the median.
	switch {
	case result.MedianPriceDelta > 0:
		result.Trend = trendDirectionUp
	case result.MedianPriceDelta < 0:
		result.Trend = trendDirectionDown
	default:
		result.Trend = trendDirectionUnchanged
	}

	return result
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(result *ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonText outputs the comparison result in human-readable text format.
func outputComparisonText(result *ComparisonResult) error {
	fmt.Printf("Run Comparison: %s\n", result.SourceFile)
	fmt.Println(strings.Repeat("=", 64))

	fmt.Printf("\nRent Trend: %s\n", formatTrend(result.Trend))

	fmt.Printf("\nPrevious run: %s\n", result.PreviousRun.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Current run:  %s\n", result.CurrentRun.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Println("\nMarket Summary:")
	fmt.Printf("  %-18s  %-12s  %-12s  %-10s\n", "Metric", "Previous", "Current", "Change")
	fmt.Println("  " + strings.Repeat("-", 58))
	fmt.Printf("  %-18s  %-12d  %-12d  %-10s\n", "Listings",
		result.PreviousRun.ListingCount, result.CurrentRun.ListingCount,
		formatDelta(result.ListingCountDelta))
	fmt.Printf("  %-18s  $%-11.0f  $%-11.0f  %-10s\n", "Average rent",
		result.PreviousRun.AveragePrice, result.CurrentRun.AveragePrice,
		formatMoneyDelta(result.AveragePriceDelta))
	fmt.Printf("  %-18s  $%-11.0f  $%-11.0f  %-10s\n", "Median rent",
		result.PreviousRun.MedianPrice, result.CurrentRun.MedianPrice,
		formatMoneyDelta(result.MedianPriceDelta))
	fmt.Printf("  %-18s  %-12.0f  %-12.0f  %-10s\n", "Average size",
		result.PreviousRun.AverageSize, result.CurrentRun.AverageSize,
		formatFloatDelta(result.AverageSizeDelta))
	fmt.Printf("  %-18s  $%-11.2f  $%-11.2f  %-10s\n", "Rent per sqft",
		result.PreviousRun.AveragePricePerSqft, result.CurrentRun.AveragePricePerSqft,
		formatMoneyDelta2(result.AveragePricePerSqftDelta))

	return nil
}

// formatTrend formats the rent trend for display.
func formatTrend(trend string) string {
	switch trend {
	case trendDirectionUp:
		return "UP (median rent increased)"
	case trendDirectionDown:
		return "DOWN (median rent decreased)"
	default:
		return "UNCHANGED"
	}
}

// formatDelta formats an integer delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}

// formatFloatDelta formats a float delta with sign and no decimals.
func formatFloatDelta(delta float64) string {
	if delta > 0 {
		return fmt.Sprintf("+%.0f", delta)
	}
	return fmt.Sprintf("%.0f", delta)
}

// formatMoneyDelta formats a currency delta with sign and no decimals.
func formatMoneyDelta(delta float64) string {
	if delta > 0 {
		return fmt.Sprintf("+$%.0f", delta)
	} else if delta < 0 {
		return fmt.Sprintf("-$%.0f", -delta)
	}
	return "$0"
}

// formatMoneyDelta2 formats a currency delta with sign and two decimals.
func formatMoneyDelta2(delta float64) string {
	if delta > 0 {
		return fmt.Sprintf("+$%.2f", delta)
	} else if delta < 0 {
		return fmt.Sprintf("-$%.2f", -delta)
	}
	return "$0.00"
}
