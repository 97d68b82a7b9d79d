package config

// File represents the structure of the .rentsum configuration file.
// Every field is optional; unset fields keep their defaults, and CLI
// flags override anything set here.
type File struct {
	// Language is the default report language code.
	Language string `yaml:"language,omitempty"`

	// Top is the default number of premium listings to display.
	Top int `yaml:"top,omitempty"`

	// Metric is the default premium ranking metric
	// ("price" or "price_per_sqft").
	Metric string `yaml:"metric,omitempty"`

	// DataFile is the default CSV dataset path.
	DataFile string `yaml:"dataFile,omitempty"`

	// Columns renames CSV header columns, keyed by logical field name:
	// id, price, bedrooms, bathrooms, size, subway_minutes, building_age,
	// has_washer, has_elevator, has_dishwasher, has_gym.
	Columns map[string]string `yaml:"columns,omitempty"`
}

// Apply copies the file's settings onto cfg, skipping unset fields.
// Flag overrides are applied after this, so precedence is
// flag > file > default.
func (f *File) Apply(cfg *Config) {
	if f.Language != "" {
		cfg.Language = f.Language
	}
	if f.Top > 0 {
		cfg.TopN = f.Top
	}
	if f.Metric != "" {
		cfg.Metric = f.Metric
	}
	if f.DataFile != "" {
		cfg.DataFile = f.DataFile
	}
	if len(f.Columns) > 0 {
		cfg.ColumnOverrides = f.Columns
	}
}
