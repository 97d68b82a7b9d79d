package model

import "time"

// MarketReport is the aggregate summary computed from a rental dataset.
// It is ephemeral per invocation but JSON-serializable so it can be
// emitted with --json and stored in the run history database.
//
// Design decision: The report carries only derived values, never the full
// dataset. Keeping it small makes history storage cheap and lets report
// writers render without re-reading the CSV.
type MarketReport struct {
	// SourceFile is the path of the CSV file the report was computed from.
	SourceFile string `json:"source_file"`

	// Language is the language code the report was requested in.
	Language string `json:"language"`

	// Metric is the premium ranking metric name used for TopListings.
	Metric string `json:"metric"`

	// GeneratedAt is when the report was computed.
	// Text and Markdown writers deliberately omit it so that two runs on
	// the same input produce byte-identical output.
	GeneratedAt time.Time `json:"generated_at"`

	// ListingCount is the number of rows that parsed successfully.
	ListingCount int `json:"listing_count"`

	// SkippedRows is the number of rows excluded due to unparsable
	// required numeric fields.
	SkippedRows int `json:"skipped_rows"`

	// AveragePrice is the arithmetic mean of monthly rents.
	AveragePrice float64 `json:"average_price"`

	// MedianPrice is the median monthly rent.
	MedianPrice float64 `json:"median_price"`

	// AverageSize is the arithmetic mean of unit sizes in square feet.
	AverageSize float64 `json:"average_size"`

	// AveragePricePerSqft is the mean of per-listing price-per-sqft values.
	AveragePricePerSqft float64 `json:"average_price_per_sqft"`

	// PriceByBedrooms holds mean rents grouped by bedroom count,
	// ordered by ascending bedroom count.
	PriceByBedrooms []BedroomAverage `json:"price_by_bedrooms,omitempty"`

	// Amenities holds the share of listings offering each amenity.
	Amenities AmenityShares `json:"amenities"`

	// TopListings is the premium ranking, ordered by descending metric
	// score with ties broken by original row order.
	TopListings []Listing `json:"top_listings,omitempty"`
}

// BedroomAverage is the mean rent for one bedroom-count group.
type BedroomAverage struct {
	// Bedrooms is the bedroom count of this group.
	Bedrooms float64 `json:"bedrooms"`

	// AveragePrice is the mean monthly rent within the group.
	AveragePrice float64 `json:"average_price"`

	// ListingCount is the number of listings in the group.
	ListingCount int `json:"listing_count"`
}

// AmenityShares holds the fraction (0..1) of listings with each amenity.
type AmenityShares struct {
	// Washer is the share of listings with an in-unit washer.
	Washer float64 `json:"washer"`

	// Elevator is the share of listings in buildings with an elevator.
	Elevator float64 `json:"elevator"`

	// Dishwasher is the share of listings with a dishwasher.
	Dishwasher float64 `json:"dishwasher"`

	// Gym is the share of listings in buildings with a gym.
	Gym float64 `json:"gym"`
}

// HasListings returns true if at least one row parsed successfully.
func (r *MarketReport) HasListings() bool {
	return r.ListingCount > 0
}

// TotalRows returns the number of rows read, valid and skipped combined.
func (r *MarketReport) TotalRows() int {
	return r.ListingCount + r.SkippedRows
}
