// Package main provides the CLI entry point for beamreport.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fossee/beamreport-go/pkg/beamreport"
)

var (
	imagePath  string
	outputName string
	configPath string
	texOnly    bool
	keepAux    bool
	verbose    bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beamreport [input.xlsx]",
		Short: "Generate a beam analysis PDF report from an Excel force table",
		Long: `beamreport reads shear force and bending moment samples from an Excel
workbook, renders a LaTeX report with data table and force diagrams,
and compiles it to PDF with two pdflatex passes.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&imagePath, "image", "i", "", "Beam diagram image (default: simply_supported_beam.png beside the input)")
	rootCmd.Flags().StringVarP(&outputName, "output", "o", beamreport.DefaultOutputName, "Output file stem")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Report configuration YAML file")
	rootCmd.Flags().BoolVar(&texOnly, "tex-only", false, "Write the .tex source without compiling")
	rootCmd.Flags().BoolVar(&keepAux, "keep-aux", false, "Keep auxiliary files after compilation")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := beamreport.DefaultInput
	if len(args) == 1 {
		inputPath = args[0]
	}

	image := imagePath
	if image == "" {
		image = filepath.Join(filepath.Dir(inputPath), beamreport.DefaultImage)
	}

	opts := beamreport.Options{
		InputPath:  inputPath,
		ImagePath:  image,
		OutputName: outputName,
		ConfigPath: configPath,
		TexOnly:    texOnly,
		KeepAux:    keepAux,
		Logger:     logger,
	}

	artifact, err := beamreport.Generate(cmd.Context(), opts)
	if err != nil {
		return err
	}

	fmt.Println(artifact)
	return nil
}
