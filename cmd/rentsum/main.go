// Package main provides the entry point for the rentsum CLI.
//
// rentsum summarizes rental listing CSV datasets. It computes market
// aggregates, ranks the most premium listings, and renders a localized
// report in text, JSON, or Markdown format.
//
// Usage:
//
//	rentsum report --file RealEstateDB.csv
//	rentsum report --lang tr --top 10
//
// See --help for all available options.
package main

// main is the entry point for rentsum.
func main() {
	Execute()
}
