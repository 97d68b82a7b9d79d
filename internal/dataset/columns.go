package dataset

import "strings"

// Columns maps logical listing fields to CSV header names.
// Header matching is case-insensitive, so "Price" and "price" both work.
type Columns struct {
	// ID is the listing identifier column.
	ID string

	// Price is the monthly rent column. Required.
	Price string

	// Bedrooms is the bedroom count column.
	Bedrooms string

	// Bathrooms is the bathroom count column.
	Bathrooms string

	// Size is the square-footage column. Required.
	Size string

	// SubwayMinutes is the walking-time-to-subway column.
	SubwayMinutes string

	// BuildingAge is the building age column.
	BuildingAge string

	// HasWasher, HasElevator, HasDishwasher, and HasGym are the 0/1
	// amenity columns.
	HasWasher     string
	HasElevator   string
	HasDishwasher string
	HasGym        string
}

// DefaultColumns returns the column names of the reference rental dataset.
func DefaultColumns() Columns {
	return Columns{
		ID:            "ID",
		Price:         "price",
		Bedrooms:      "countofbedrooms",
		Bathrooms:     "countofbathrooms",
		Size:          "size",
		SubwayMinutes: "minimumtosubway",
		BuildingAge:   "buildingage",
		HasWasher:     "haswasher",
		HasElevator:   "haselevator",
		HasDishwasher: "hasdishwasher",
		HasGym:        "hasgym",
	}
}

// Override applies configuration overrides keyed by logical field name.
// Unknown keys are ignored so an old config file does not break loading.
func (c Columns) Override(overrides map[string]string) Columns {
	for key, name := range overrides {
		if name == "" {
			continue
		}
		switch strings.ToLower(key) {
		case "id":
			c.ID = name
		case "price":
			c.Price = name
		case "bedrooms":
			c.Bedrooms = name
		case "bathrooms":
			c.Bathrooms = name
		case "size":
			c.Size = name
		case "subway_minutes":
			c.SubwayMinutes = name
		case "building_age":
			c.BuildingAge = name
		case "has_washer":
			c.HasWasher = name
		case "has_elevator":
			c.HasElevator = name
		case "has_dishwasher":
			c.HasDishwasher = name
		case "has_gym":
			c.HasGym = name
		}
	}
	return c
}
