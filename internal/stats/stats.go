package stats

import (
	"sort"
	"time"

	"github.com/nao1215/rentsum/internal/dataset"
	"github.com/nao1215/rentsum/internal/model"
)

// BuildReport computes the full market report for a dataset.
// lang is recorded on the report so history rendering can reuse the
// language the report was requested in.
func BuildReport(ds *dataset.Dataset, metric Metric, topN int, lang string) *model.MarketReport {
	listings := ds.Listings

	report := &model.MarketReport{
		SourceFile:   ds.Source,
		Language:     lang,
		Metric:       metric.String(),
		GeneratedAt:  time.Now().UTC(),
		ListingCount: len(listings),
		SkippedRows:  ds.SkippedRows,
	}

	if len(listings) == 0 {
		return report
	}

	report.AveragePrice = meanOf(listings, func(l model.Listing) float64 { return l.Price })
	report.MedianPrice = medianPrice(listings)
	report.AverageSize = meanOf(listings, func(l model.Listing) float64 { return float64(l.Size) })
	report.AveragePricePerSqft = meanOf(listings, model.Listing.PricePerSquareFoot)
	report.PriceByBedrooms = averagePriceByBedrooms(listings)
	report.Amenities = amenityShares(listings)
	report.TopListings = TopListings(listings, metric, topN)

	return report
}

// TopListings returns the first n listings ranked by descending metric
// score. Ties keep their original row order, so repeated runs over the
// same file always produce the same ranking.
func TopListings(listings []model.Listing, metric Metric, n int) []model.Listing {
	if n <= 0 || len(listings) == 0 {
		return nil
	}

	ranked := make([]model.Listing, len(listings))
	copy(ranked, listings)

	sort.SliceStable(ranked, func(i, j int) bool {
		return metric.Score(ranked[i]) > metric.Score(ranked[j])
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// meanOf computes the arithmetic mean of a derived value over listings.
func meanOf(listings []model.Listing, value func(model.Listing) float64) float64 {
	if len(listings) == 0 {
		return 0
	}

	var sum float64
	for _, l := range listings {
		sum += value(l)
	}
	return sum / float64(len(listings))
}

// medianPrice returns the median monthly rent.
// For an even count, the mean of the two middle values is used.
func medianPrice(listings []model.Listing) float64 {
	if len(listings) == 0 {
		return 0
	}

	prices := make([]float64, len(listings))
	for i, l := range listings {
		prices[i] = l.Price
	}
	sort.Float64s(prices)

	mid := len(prices) / 2
	if len(prices)%2 == 1 {
		return prices[mid]
	}
	return (prices[mid-1] + prices[mid]) / 2
}

// averagePriceByBedrooms groups listings by bedroom count and computes
// the mean rent per group, ordered by ascending bedroom count.
func averagePriceByBedrooms(listings []model.Listing) []model.BedroomAverage {
	type group struct {
		sum   float64
		count int
	}

	groups := make(map[float64]*group)
	for _, l := range listings {
		g, ok := groups[l.Bedrooms]
		if !ok {
			g = &group{}
			groups[l.Bedrooms] = g
		}
		g.sum += l.Price
		g.count++
	}

	bedrooms := make([]float64, 0, len(groups))
	for b := range groups {
		bedrooms = append(bedrooms, b)
	}
	sort.Float64s(bedrooms)

	result := make([]model.BedroomAverage, 0, len(bedrooms))
	for _, b := range bedrooms {
		g := groups[b]
		result = append(result, model.BedroomAverage{
			Bedrooms:     b,
			AveragePrice: g.sum / float64(g.count),
			ListingCount: g.count,
		})
	}
	return result
}

// amenityShares computes the fraction of listings with each amenity.
func amenityShares(listings []model.Listing) model.AmenityShares {
	if len(listings) == 0 {
		return model.AmenityShares{}
	}

	var washer, elevator, dishwasher, gym int
	for _, l := range listings {
		if l.HasWasher {
			washer++
		}
		if l.HasElevator {
			elevator++
		}
		if l.HasDishwasher {
			dishwasher++
		}
		if l.HasGym {
			gym++
		}
	}

	total := float64(len(listings))
	return model.AmenityShares{
		Washer:     float64(washer) / total,
		Elevator:   float64(elevator) / total,
		Dishwasher: float64(dishwasher) / total,
		Gym:        float64(gym) / total,
	}
}
