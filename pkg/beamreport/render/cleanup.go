package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// AuxExtensions is the fixed set of auxiliary files the LaTeX engine
// leaves behind. The .tex source and .pdf output are never touched.
var AuxExtensions = []string{".aux", ".log", ".out", ".toc"}

// CleanAux removes the auxiliary files for the given stem. Missing
// files are not an error, so the operation is idempotent. Removal
// failures are returned as warnings for the caller to log; they never
// escalate.
func CleanAux(dir, stem string) []error {
	var warnings []error
	for _, ext := range AuxExtensions {
		path := filepath.Join(dir, stem+ext)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			warnings = append(warnings, fmt.Errorf("could not remove %s: %w", path, err))
		}
	}
	return warnings
}
