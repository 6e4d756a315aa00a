package beamreport

import (
	"fmt"
)

// LoadError indicates the input data could not be loaded: source
// missing, schema mismatch, empty or non-numeric data. Fatal; nothing
// is rendered.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load data from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// AssetError indicates a referenced static asset is missing. Fatal;
// surfaces at fragment-build time, before anything is rendered.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("missing asset %s: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// RenderError indicates the external compiler failed or produced no
// output. Cleanup still runs before this is returned; the wrapped
// error carries the compiler diagnostics when available.
type RenderError struct {
	Stem string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s: %v", e.Stem, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
