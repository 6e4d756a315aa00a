// Package chart derives plottable series from a dataset.
package chart

import (
	"github.com/fossee/beamreport-go/pkg/beamreport/models"
)

// Split builds the sign-split series pair for the given quantity.
//
// The axis bounds are min(values)-margin and max(values)+margin. The
// margin applies even when the extreme is exactly zero, so the axis
// range is never degenerate and bars of zero height still render
// inside a valid plot area.
func Split(d *models.Dataset, q models.Quantity, margin float64) models.SeriesPair {
	samples := d.Samples()

	pair := models.SeriesPair{
		Quantity: q,
		Positive: make([]models.Point, 0, len(samples)),
		Negative: make([]models.Point, 0, len(samples)),
	}

	min, max := q.Of(samples[0]), q.Of(samples[0])
	for _, s := range samples {
		v := q.Of(s)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}

		if v >= 0 {
			pair.Positive = append(pair.Positive, models.Point{X: s.Position, Y: v})
			pair.Negative = append(pair.Negative, models.Point{X: s.Position})
		} else {
			pair.Positive = append(pair.Positive, models.Point{X: s.Position})
			pair.Negative = append(pair.Negative, models.Point{X: s.Position, Y: v})
		}
	}

	pair.Bounds = models.AxisBounds{Min: min - margin, Max: max + margin}
	return pair
}
