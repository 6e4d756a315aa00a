package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fossee/beamreport-go/pkg/beamreport/models"
)

func beamDataset(t *testing.T) *models.Dataset {
	t.Helper()
	samples := make([]models.Sample, 11)
	for i := range samples {
		x := 1.5 * float64(i)
		samples[i] = models.Sample{
			Position: x,
			Shear:    45 - 9*float64(i),
			Moment:   3 * x * (15 - x),
		}
	}
	ds, err := models.NewDataset(samples)
	require.NoError(t, err)
	return ds
}

func TestSplitShearBounds(t *testing.T) {
	ds := beamDataset(t)
	pair := Split(ds, models.QuantityShear, 10)

	// Shear runs -45..45, so a margin of 10 gives (-55, 55).
	assert.Equal(t, -55.0, pair.Bounds.Min)
	assert.Equal(t, 55.0, pair.Bounds.Max)
	assert.Len(t, pair.Positive, 11)
	assert.Len(t, pair.Negative, 11)
}

func TestSplitExclusive(t *testing.T) {
	ds := beamDataset(t)
	pair := Split(ds, models.QuantityShear, 10)

	for i, s := range ds.Samples() {
		pos, neg := pair.Positive[i], pair.Negative[i]
		assert.Equal(t, s.Position, pos.X)
		assert.Equal(t, s.Position, neg.X)

		switch {
		case s.Shear > 0:
			assert.Equal(t, s.Shear, pos.Y)
			assert.Zero(t, neg.Y)
		case s.Shear < 0:
			assert.Zero(t, pos.Y)
			assert.Equal(t, s.Shear, neg.Y)
		default:
			assert.Zero(t, pos.Y)
			assert.Zero(t, neg.Y)
		}
	}
}

func TestSplitBoundsBracketData(t *testing.T) {
	ds := beamDataset(t)

	for _, q := range []models.Quantity{models.QuantityShear, models.QuantityMoment} {
		pair := Split(ds, q, 10)
		for _, s := range ds.Samples() {
			v := q.Of(s)
			assert.Less(t, pair.Bounds.Min, v)
			assert.Greater(t, pair.Bounds.Max, v)
		}
	}
}

func TestSplitAllNonNegative(t *testing.T) {
	ds := beamDataset(t)
	pair := Split(ds, models.QuantityMoment, 20)

	// All moments are non-negative: the negative series is all zeros
	// but the axis range must stay valid.
	for _, p := range pair.Negative {
		assert.Zero(t, p.Y)
	}
	assert.Equal(t, -20.0, pair.Bounds.Min)
	assert.Equal(t, 188.75, pair.Bounds.Max)
	assert.Less(t, pair.Bounds.Min, pair.Bounds.Max)
}

func TestSplitZeroExtremesStillMargined(t *testing.T) {
	ds, err := models.NewDataset([]models.Sample{
		{Position: 0, Shear: 0},
		{Position: 1, Shear: 0},
	})
	require.NoError(t, err)

	pair := Split(ds, models.QuantityShear, 10)
	assert.Equal(t, -10.0, pair.Bounds.Min)
	assert.Equal(t, 10.0, pair.Bounds.Max)
}
