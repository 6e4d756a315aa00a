package beamreport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fossee/beamreport-go/pkg/beamreport/chart"
	"github.com/fossee/beamreport-go/pkg/beamreport/config"
	"github.com/fossee/beamreport-go/pkg/beamreport/latex"
	"github.com/fossee/beamreport-go/pkg/beamreport/loader"
	"github.com/fossee/beamreport-go/pkg/beamreport/models"
	"github.com/fossee/beamreport-go/pkg/beamreport/render"
)

// Generate runs the full pipeline and returns the path of the produced
// artifact: the .pdf, or the .tex when opts.TexOnly is set.
//
// Load, assemble and write failures abort before any compiler
// invocation. A compiler failure still runs cleanup before being
// returned as a *RenderError.
func Generate(ctx context.Context, opts Options) (string, error) {
	log := opts.logger()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return "", err
	}

	log.Info("loading data", zap.String("input", opts.InputPath))
	ds, err := loader.Load(opts.InputPath)
	if err != nil {
		return "", &LoadError{Source: opts.InputPath, Err: err}
	}
	log.Info("data loaded",
		zap.Int("samples", ds.Len()),
		zap.Float64("span_m", ds.Span()))

	log.Info("generating document")
	doc, err := buildDocument(ds, cfg, opts)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(opts.InputPath)
	stem := opts.outputName()
	texPath := filepath.Join(dir, stem+".tex")

	log.Info("writing source", zap.String("path", texPath))
	if err := os.WriteFile(texPath, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", texPath, err)
	}

	if opts.TexOnly {
		log.Info("skipping compilation")
		return texPath, nil
	}

	compiler := &render.Compiler{Engine: cfg.Engine, Dir: dir, Logger: log}
	compileErr := compiler.Compile(ctx, stem)
	if compileErr != nil {
		var passErr *render.PassError
		if errors.As(compileErr, &passErr) {
			log.Error("compilation failed",
				zap.String("pass", passErr.Pass),
				zap.String("diagnostics", passErr.Output))
		} else {
			log.Error("compilation failed", zap.Error(compileErr))
		}
	}

	// Cleanup runs whether or not compilation succeeded.
	if !opts.KeepAux {
		log.Info("cleaning auxiliary files")
		for _, w := range render.CleanAux(dir, stem) {
			log.Warn("cleanup", zap.Error(w))
		}
	}

	if compileErr != nil {
		return "", &RenderError{Stem: stem, Err: compileErr}
	}

	pdfPath := filepath.Join(dir, stem+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &RenderError{Stem: stem, Err: fmt.Errorf("compiler reported success but %s does not exist", pdfPath)}
	}

	log.Info("report generated", zap.String("path", pdfPath))
	return pdfPath, nil
}

// buildDocument produces the assembled LaTeX source. Fragment order is
// fixed: preamble, title, TOC, introduction, data table, shear chart,
// moment chart, conclusion.
func buildDocument(ds *models.Dataset, cfg config.Config, opts Options) (string, error) {
	intro, err := latex.Introduction(ds, opts.ImagePath)
	if err != nil {
		return "", &AssetError{Path: opts.ImagePath, Err: err}
	}

	shear := chart.Split(ds, models.QuantityShear, cfg.Charts.ShearMargin)
	moment := chart.Split(ds, models.QuantityMoment, cfg.Charts.MomentMargin)

	return latex.Assemble(
		latex.Preamble(cfg),
		latex.TitlePage(cfg, opts.now()),
		latex.TOC(),
		intro,
		latex.DataTable(ds),
		latex.ShearChart(ds, shear),
		latex.MomentChart(ds, moment),
		latex.Conclusion(ds),
	)
}
