package models

// Quantity selects which measured value a chart plots.
type Quantity string

const (
	// QuantityShear plots the shear force column.
	QuantityShear Quantity = "shear"
	// QuantityMoment plots the bending moment column.
	QuantityMoment Quantity = "moment"
)

// Of returns the sample value this quantity selects.
func (q Quantity) Of(s Sample) float64 {
	if q == QuantityMoment {
		return s.Moment
	}
	return s.Shear
}

// Point is one (x, y) chart coordinate.
type Point struct {
	X float64
	Y float64
}

// AxisBounds is the vertical plotting range for a chart.
type AxisBounds struct {
	// Min is min(values) - margin.
	Min float64
	// Max is max(values) + margin.
	Max float64
}

// SeriesPair holds the sign-split series for one plotted quantity.
// Positive carries the original value where it is non-negative and zero
// otherwise; Negative carries the value where it is negative and zero
// otherwise. Both series have one point per sample, sharing the sample
// positions as x coordinates.
type SeriesPair struct {
	// Quantity is the plotted quantity.
	Quantity Quantity
	// Positive is the non-negative half of the split.
	Positive []Point
	// Negative is the negative half of the split.
	Negative []Point
	// Bounds is the y-axis range, always computed from the data.
	Bounds AxisBounds
}
