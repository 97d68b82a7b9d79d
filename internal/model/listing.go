package model

// Listing represents one rental property record parsed from a CSV row.
// The field set mirrors the columns of the rental dataset: price and size
// drive the aggregate statistics, the remaining fields describe the unit.
type Listing struct {
	// ID is the listing identifier from the dataset.
	ID int `json:"id"`

	// Price is the monthly rent in dollars.
	Price float64 `json:"price"`

	// Bedrooms is the bedroom count. Fractional values (e.g. 1.5 for a
	// convertible) appear in some datasets, so this is a float.
	Bedrooms float64 `json:"bedrooms"`

	// Bathrooms is the bathroom count.
	Bathrooms float64 `json:"bathrooms"`

	// Size is the unit size in square feet.
	Size int `json:"size"`

	// SubwayMinutes is the walking time to the nearest subway station.
	SubwayMinutes int `json:"subway_minutes"`

	// BuildingAge is the building age in years.
	BuildingAge int `json:"building_age"`

	// Amenity flags. The dataset encodes these as 0/1 columns.

	// HasWasher reports whether the unit has an in-unit washer.
	HasWasher bool `json:"has_washer"`

	// HasElevator reports whether the building has an elevator.
	HasElevator bool `json:"has_elevator"`

	// HasDishwasher reports whether the unit has a dishwasher.
	HasDishwasher bool `json:"has_dishwasher"`

	// HasGym reports whether the building has a gym.
	HasGym bool `json:"has_gym"`
}

// PricePerSquareFoot returns the monthly rent divided by the unit size.
// Returns 0 for zero-size listings to avoid division by zero; such
// listings simply rank last on the price-per-sqft metric.
func (l Listing) PricePerSquareFoot() float64 {
	if l.Size == 0 {
		return 0
	}
	return l.Price / float64(l.Size)
}
