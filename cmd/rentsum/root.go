// Package main provides the entry point for the rentsum CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for rentsum.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rentsum",
		Short: "Rental listing market summary tool",
		Long: `rentsum reads a CSV dataset of rental listings and produces a market
summary report: listing counts, average and median rent, size statistics,
average rent per bedroom count, amenity shares, and a ranking of the most
premium listings.

Reports are localized (English and Turkish) and can be rendered as plain
text, JSON, or Markdown. Each run is saved to a local history database so
market changes can be tracked over time with 'rentsum history'.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
