// Package models defines the data structures shared across the report pipeline.
package models

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset indicates a dataset was constructed with no samples.
var ErrEmptyDataset = errors.New("dataset contains no samples")

// Sample represents one measured point along the beam.
type Sample struct {
	// Position is the distance from the left support in meters.
	Position float64
	// Shear is the internal shear force at Position, in kN.
	Shear float64
	// Moment is the internal bending moment at Position, in kN·m.
	Moment float64
}

// Dataset is an ordered, immutable collection of samples.
// Positions are non-decreasing; the span is derived at construction.
type Dataset struct {
	samples []Sample
	span    float64
}

// NewDataset validates the samples and builds a Dataset.
// The sample order is preserved. Positions must be non-decreasing;
// equal consecutive positions are accepted.
func NewDataset(samples []Sample) (*Dataset, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyDataset
	}

	span := samples[0].Position
	for i, s := range samples {
		if i > 0 && s.Position < samples[i-1].Position {
			return nil, fmt.Errorf("positions out of order: sample %d at x=%g follows x=%g",
				i+1, s.Position, samples[i-1].Position)
		}
		if s.Position > span {
			span = s.Position
		}
	}

	ds := &Dataset{
		samples: make([]Sample, len(samples)),
		span:    span,
	}
	copy(ds.samples, samples)
	return ds, nil
}

// Samples returns the samples in input order.
// Callers must not modify the returned slice.
func (d *Dataset) Samples() []Sample {
	return d.samples
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.samples)
}

// Span returns the beam length, the maximum position across all samples.
func (d *Dataset) Span() float64 {
	return d.span
}

// Extreme is a value paired with the position where it occurs.
type Extreme struct {
	Value    float64
	Position float64
}

// MaxShear returns the largest shear value and its position.
func (d *Dataset) MaxShear() Extreme {
	return d.extreme(QuantityShear, func(v, best float64) bool { return v > best })
}

// MinShear returns the smallest shear value and its position.
func (d *Dataset) MinShear() Extreme {
	return d.extreme(QuantityShear, func(v, best float64) bool { return v < best })
}

// MaxMoment returns the largest bending moment and its position.
func (d *Dataset) MaxMoment() Extreme {
	return d.extreme(QuantityMoment, func(v, best float64) bool { return v > best })
}

// ZeroShear returns the position of the first sample with exactly zero
// shear, the point of maximum moment for a uniformly distributed load.
// ok is false when no sample crosses zero exactly.
func (d *Dataset) ZeroShear() (position float64, ok bool) {
	for _, s := range d.samples {
		if s.Shear == 0 {
			return s.Position, true
		}
	}
	return 0, false
}

func (d *Dataset) extreme(q Quantity, better func(v, best float64) bool) Extreme {
	best := Extreme{Value: q.Of(d.samples[0]), Position: d.samples[0].Position}
	for _, s := range d.samples[1:] {
		if v := q.Of(s); better(v, best.Value) {
			best = Extreme{Value: v, Position: s.Position}
		}
	}
	return best
}
