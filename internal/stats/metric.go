package stats

import (
	"errors"
	"fmt"

	"github.com/nao1215/rentsum/internal/model"
)

// Metric selects how listings are scored for the premium ranking.
//
// Design decision: We use iota-based constants with a parse function
// rather than raw strings so an invalid metric fails at flag/config
// parsing time instead of silently ranking by a zero score.
type Metric int

const (
	// MetricPrice ranks listings by monthly rent. This is the default
	// and matches the historical behavior of the report.
	MetricPrice Metric = iota

	// MetricPricePerSqft ranks listings by rent divided by unit size.
	// Zero-size listings score 0 and rank last.
	MetricPricePerSqft
)

// ErrUnknownMetric is returned by ParseMetric for unrecognized names.
var ErrUnknownMetric = errors.New("unknown premium metric")

// metricNames maps each metric to its flag/config name.
var metricNames = map[Metric]string{
	MetricPrice:        "price",
	MetricPricePerSqft: "price_per_sqft",
}

// ParseMetric converts a flag or config value into a Metric.
func ParseMetric(name string) (Metric, error) {
	for m, n := range metricNames {
		if n == name {
			return m, nil
		}
	}
	return MetricPrice, fmt.Errorf("%w: %q (supported: price, price_per_sqft)", ErrUnknownMetric, name)
}

// String returns the flag/config name of the metric.
func (m Metric) String() string {
	if n, ok := metricNames[m]; ok {
		return n
	}
	return "unknown"
}

// Score returns the ranking score of a listing under this metric.
func (m Metric) Score(l model.Listing) float64 {
	if m == MetricPricePerSqft {
		return l.PricePerSquareFoot()
	}
	return l.Price
}
