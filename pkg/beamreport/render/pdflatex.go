// Package render drives the external LaTeX toolchain and cleans up
// the auxiliary files it produces.
package render

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Passes names the fixed two-pass protocol. The first pass writes the
// cross-reference and TOC files; the second resolves them. This is
// required fixed-point iteration, not error recovery, and it is always
// exactly two passes.
var Passes = []string{"structure", "resolve"}

// PassError reports a failed compiler invocation.
type PassError struct {
	// Pass is the protocol pass that failed ("structure" or "resolve").
	Pass string
	// Output is the tail of the compiler's combined output.
	Output string
	// Err is the underlying exec error.
	Err error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("%s pass failed: %v", e.Pass, e.Err)
}

func (e *PassError) Unwrap() error {
	return e.Err
}

// Compiler invokes the LaTeX engine on an assembled document.
type Compiler struct {
	// Engine is the compiler binary, e.g. "pdflatex".
	Engine string
	// Dir is the working directory holding the .tex source.
	Dir string
	// Logger reports per-pass progress; nil means no logging.
	Logger *zap.Logger
}

// Compile runs the engine twice on <stem>.tex in the compiler's
// working directory. It stops at the first failing pass and returns a
// *PassError carrying the compiler diagnostics.
func (c *Compiler) Compile(ctx context.Context, stem string) error {
	log := c.Logger
	if log == nil {
		log = zap.NewNop()
	}

	for i, pass := range Passes {
		log.Info("compiling",
			zap.String("pass", pass),
			zap.Int("run", i+1),
			zap.Int("of", len(Passes)))

		cmd := exec.CommandContext(ctx, c.Engine, "-interaction=nonstopmode", stem+".tex")
		cmd.Dir = c.Dir

		out, err := cmd.CombinedOutput()
		if err != nil {
			return &PassError{Pass: pass, Output: tail(out, 2048), Err: err}
		}
	}
	return nil
}

// tail returns the last n bytes of the output as a string. LaTeX puts
// the actual error at the end of a very long transcript.
func tail(out []byte, n int) string {
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return strings.TrimSpace(string(out))
}
