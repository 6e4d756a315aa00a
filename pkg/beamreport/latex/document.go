// Package latex renders the report fragments and assembles the final
// document source. Each builder is a pure function from the dataset
// (plus configuration) to one fragment; only the assembly order is
// significant.
package latex

import (
	"fmt"
	"strconv"
	"strings"
)

// Fragment is one self-contained section of the generated document.
type Fragment struct {
	// Name identifies the fragment in diagnostics.
	Name string
	// Body is the LaTeX source of the section.
	Body string
}

// Assemble concatenates fragments in the order given. An empty
// fragment is a programming error and fails immediately.
func Assemble(fragments ...Fragment) (string, error) {
	if len(fragments) == 0 {
		return "", fmt.Errorf("no fragments to assemble")
	}

	var sb strings.Builder
	for _, f := range fragments {
		if strings.TrimSpace(f.Body) == "" {
			return "", fmt.Errorf("empty fragment: %s", f.Name)
		}
		sb.WriteString(f.Body)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Escape makes configuration-supplied text safe for insertion into
// LaTeX source. It covers the reserved characters, not full sanitizing
// of arbitrary input.
func Escape(s string) string {
	return latexEscaper.Replace(s)
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Formatting rule for the whole document: positions use one decimal,
// shear and moment values use two.
func fmtPosition(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func fmtValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// fmtAxis renders axis bounds and tick positions compactly.
func fmtAxis(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
