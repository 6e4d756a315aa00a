package latex

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fossee/beamreport-go/pkg/beamreport/chart"
	"github.com/fossee/beamreport-go/pkg/beamreport/config"
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

func tempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beam.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0644))
	return path
}

func TestPreamble(t *testing.T) {
	f := Preamble(config.Default())

	assert.Equal(t, "preamble", f.Name)
	assert.Contains(t, f.Body, `\documentclass[12pt, a4paper]{report}`)
	assert.Contains(t, f.Body, `\definecolor{shearpositive}{RGB}{70, 130, 180}`)
	assert.Contains(t, f.Body, `\definecolor{momentnegative}{RGB}{255, 140, 0}`)
	assert.Contains(t, f.Body, `pdftitle={Structural Analysis Report}`)
	assert.Contains(t, f.Body, `\begin{document}`)
}

func TestTitlePage(t *testing.T) {
	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	f := TitlePage(config.Default(), date)

	assert.Contains(t, f.Body, "Structural Analysis Report")
	assert.Contains(t, f.Body, "Simply Supported Beam Analysis")
	assert.Contains(t, f.Body, "FOSSEE Beam Analysis")
	assert.Contains(t, f.Body, "March 14, 2026")
	// The default method line contains an ampersand; it must arrive escaped.
	assert.Contains(t, f.Body, `Shear Force \& Bending Moment Analysis`)
}

func TestTOC(t *testing.T) {
	f := TOC()
	assert.Contains(t, f.Body, `\tableofcontents`)
}

func TestIntroduction(t *testing.T) {
	image := tempImage(t)
	f, err := Introduction(beamDataset(t), image)
	require.NoError(t, err)

	assert.Contains(t, f.Body, filepath.ToSlash(image))
	assert.Contains(t, f.Body, `\textbf{Total Length:} 15.0 meters`)
}

func TestIntroductionMissingImage(t *testing.T) {
	_, err := Introduction(beamDataset(t), filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestDataTable(t *testing.T) {
	f := DataTable(beamDataset(t))

	// First and last rows with the fixed formatting rule:
	// positions one decimal, values two.
	assert.Contains(t, f.Body, `0.0 & 45.00 & 0.00 \\`)
	assert.Contains(t, f.Body, `15.0 & -45.00 & 0.00 \\`)
	assert.Contains(t, f.Body, `7.5 & 0.00 & 168.75 \\`)

	// Interpretation summary.
	assert.Contains(t, f.Body, "45.00 kN (at x = 0.0 m)")
	assert.Contains(t, f.Body, "-45.00 kN (at x = 15.0 m)")
	assert.Contains(t, f.Body, "168.75 kN$\\cdot$m (at x = 7.5 m)")
	assert.Contains(t, f.Body, "Zero Shear Location:} x = 7.5 m")
}

func TestDataTableNoZeroShear(t *testing.T) {
	ds, err := models.NewDataset([]models.Sample{
		{Position: 0, Shear: 10, Moment: 0},
		{Position: 5, Shear: -10, Moment: 0},
	})
	require.NoError(t, err)

	f := DataTable(ds)
	assert.Contains(t, f.Body, "Zero Shear Location:} x = N/A m")
}

func TestShearChart(t *testing.T) {
	ds := beamDataset(t)
	pair := chart.Split(ds, models.QuantityShear, 10)
	f := ShearChart(ds, pair)

	assert.Contains(t, f.Body, "ymin=-55,")
	assert.Contains(t, f.Body, "ymax=55,")
	assert.Contains(t, f.Body, "xmin=-0.5,")
	assert.Contains(t, f.Body, "xmax=15.5,")
	assert.Contains(t, f.Body, "xtick={0,1.5,3,4.5,6,7.5,9,10.5,12,13.5,15}")
	assert.Contains(t, f.Body, "fill=shearpositive,")
	assert.Contains(t, f.Body, "fill=shearnegative,")
	// The split series: x=0 carries +45 in the positive plot and a
	// zero-height bar in the negative one.
	assert.Contains(t, f.Body, "(0, 45.00)")
	assert.Contains(t, f.Body, "(0, 0.00)")
	assert.Contains(t, f.Body, "(15, -45.00)")
	assert.Contains(t, f.Body, `\label{fig:sfd}`)
}

func TestMomentChart(t *testing.T) {
	ds := beamDataset(t)
	pair := chart.Split(ds, models.QuantityMoment, 20)
	f := MomentChart(ds, pair)

	assert.Contains(t, f.Body, "ymin=-20,")
	assert.Contains(t, f.Body, "ymax=188.75,")
	assert.Contains(t, f.Body, "fill=momentpositive,")
	assert.Contains(t, f.Body, "fill=momentnegative,")
	assert.Contains(t, f.Body, "(7.5, 168.75)")
	assert.Contains(t, f.Body, "maximum at x = 7.5 m")
	assert.Contains(t, f.Body, `\label{fig:bmd}`)
}

func TestConclusion(t *testing.T) {
	f := Conclusion(beamDataset(t))

	assert.Contains(t, f.Body, `Maximum Positive Shear & 45.00 kN & x = 0.0 m \\`)
	assert.Contains(t, f.Body, `Maximum Negative Shear & -45.00 kN & x = 15.0 m \\`)
	assert.Contains(t, f.Body, `Maximum Bending Moment & 168.75 kN$\cdot$m & x = 7.5 m \\`)
	assert.Contains(t, f.Body, `\end{document}`)
}
