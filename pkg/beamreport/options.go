// Package beamreport generates a beam analysis PDF report from an
// Excel force table: a single linear pipeline of load, fragment
// generation, assembly, two-pass LaTeX compilation and cleanup.
package beamreport

import (
	"time"

	"go.uber.org/zap"
)

// Defaults for the command surface.
const (
	// DefaultInput is the expected force table filename.
	DefaultInput = "Force Table.xlsx"
	// DefaultImage is the beam diagram filename, resolved beside the input.
	DefaultImage = "simply_supported_beam.png"
	// DefaultOutputName is the output file stem.
	DefaultOutputName = "Beam_Analysis_Report"
)

// Options configures one report generation run.
type Options struct {
	// InputPath is the Excel force table.
	InputPath string
	// ImagePath is the beam diagram included in the introduction.
	ImagePath string
	// OutputName is the output file stem; the .tex and .pdf are
	// written next to the input. Defaults to DefaultOutputName.
	OutputName string
	// ConfigPath is an optional YAML report configuration.
	ConfigPath string
	// TexOnly stops after writing the .tex source.
	TexOnly bool
	// KeepAux skips auxiliary-file cleanup after compilation.
	KeepAux bool
	// Logger receives staged progress messages. Defaults to a no-op.
	Logger *zap.Logger
	// Now supplies the title-page date. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) outputName() string {
	if o.OutputName != "" {
		return o.OutputName
	}
	return DefaultOutputName
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
