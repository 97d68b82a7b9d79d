package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/rentsum/internal/config"
	"github.com/nao1215/rentsum/internal/database"
	"github.com/nao1215/rentsum/internal/dataset"
	"github.com/nao1215/rentsum/internal/i18n"
	"github.com/nao1215/rentsum/internal/model"
	"github.com/nao1215/rentsum/internal/report"
	"github.com/nao1215/rentsum/internal/stats"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analyze a rental listing CSV and print a market summary",
		Long: `Report reads a CSV dataset of rental listings and prints a market summary.

The summary includes:
- Listing count and skipped row count
- Average and median monthly rent
- Average size and average rent per square foot
- Average rent grouped by bedroom count
- Amenity shares (washer, elevator, dishwasher, gym)
- The most premium listings ranked by price or price per square foot

Rows with an unparsable price or size are skipped and counted; other
malformed fields are treated as absent.

Examples:
  # Summarize the default dataset (RealEstateDB.csv)
  rentsum report

  # Summarize a specific file in Turkish
  rentsum report --file listings.csv --lang tr

  # Rank the top 10 listings by rent per square foot
  rentsum report --top 10 --metric price_per_sqft

  # Output a JSON report to a file
  rentsum report --json --output report.json

  # Use a custom configuration file
  rentsum report -c myconfig.yaml

Configuration file (.rentsum) example:
  language: tr
  top: 10
  metric: price_per_sqft
  dataFile: listings.csv
  columns:
    price: monthly_rent
    size: area_sqft`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	// Dataset flags
	cmd.Flags().StringP("file", "f", "",
		fmt.Sprintf("CSV dataset to analyze (default: %s)", config.DefaultDataFile))

	// Report content flags
	cmd.Flags().StringP("lang", "l", "",
		"Report language: en or tr (default: en)")
	cmd.Flags().IntP("top", "n", 0,
		fmt.Sprintf("Number of premium listings to display (default: %d)", config.DefaultTopN))
	cmd.Flags().String("metric", "",
		"Premium ranking metric: price or price_per_sqft (default: price)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .rentsum in current or home directory)")

	// Report format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().Bool("no-save", false,
		"Do not save this run to the history database")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	// Build config from the config file and flags
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	return runReport(cmd.Context(), cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and cobra command flags.
// Precedence is flag > config file > default.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configFilePath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configFilePath

	// Load defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags override config file values, so only apply flags the user set.
	if cmd.Flags().Changed("file") {
		if cfg.DataFile, err = cmd.Flags().GetString("file"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("lang") {
		if cfg.Language, err = cmd.Flags().GetString("lang"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("top") {
		if cfg.TopN, err = cmd.Flags().GetInt("top"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("metric") {
		if cfg.Metric, err = cmd.Flags().GetString("metric"); err != nil {
			return nil, err
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.NoSave, err = cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runReport loads the dataset, computes the summary, and outputs the report.
func runReport(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	metric, err := stats.ParseMetric(cfg.Metric)
	if err != nil {
		return err
	}

	logger.Info("starting report",
		"file", cfg.DataFile,
		"lang", cfg.Language,
		"top", cfg.TopN,
		"metric", cfg.Metric,
	)

	cols := dataset.DefaultColumns()
	if len(cfg.ColumnOverrides) > 0 {
		cols = cols.Override(cfg.ColumnOverrides)
	}

	ds, err := dataset.Load(cfg.DataFile, cols, logger)
	if err != nil {
		return err
	}

	logger.Info("dataset loaded",
		"listings", len(ds.Listings),
		"skipped", ds.SkippedRows,
	)

	marketReport := stats.BuildReport(ds, metric, cfg.TopN, cfg.Language)

	if err := outputReport(cfg, marketReport); err != nil {
		return err
	}

	// Save to the history database unless disabled. A save failure should
	// not fail a run whose report was already delivered.
	if !cfg.NoSave {
		if err := saveReport(ctx, cfg, marketReport, logger); err != nil {
			logger.Error("failed to save report to history", "error", err)
		}
	}

	return nil
}

// outputReport outputs the market report in the requested format.
func outputReport(cfg *config.Config, marketReport *model.MarketReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output, i18n.NewLocalizer(cfg.Language))
	default:
		writer = report.NewTextWriter(output, i18n.NewLocalizer(cfg.Language))
	}

	_, err := writer.Write(marketReport)
	return err
}

// saveReport saves the market report to the history database.
func saveReport(ctx context.Context, cfg *config.Config, marketReport *model.MarketReport, logger *slog.Logger) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := db.SaveRun(ctx, marketReport); err != nil {
		return fmt.Errorf("failed to save report run: %w", err)
	}

	logger.Info("report saved to history", "file", cfg.DataFile, "dir", cfg.DBDir)
	return nil
}
