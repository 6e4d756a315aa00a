// Package config holds the report configuration: title-page metadata,
// chart margins, colors and the LaTeX engine. Values come from an
// optional YAML file layered over built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// RGB is a 24-bit color used by the LaTeX color definitions.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// String renders the color in xcolor's RGB model syntax.
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// ChartsConfig holds the axis margins applied to the computed value
// range of each chart. Margins must be positive so the axis always
// strictly brackets the data.
type ChartsConfig struct {
	ShearMargin  float64 `yaml:"shear_margin"`
	MomentMargin float64 `yaml:"moment_margin"`
}

// ColorsConfig holds the chart and accent colors.
type ColorsConfig struct {
	ShearPositive  RGB `yaml:"shear_positive"`
	ShearNegative  RGB `yaml:"shear_negative"`
	MomentPositive RGB `yaml:"moment_positive"`
	MomentNegative RGB `yaml:"moment_negative"`
	Accent         RGB `yaml:"accent"`
}

// Config is the full report configuration.
type Config struct {
	// Title is the report title, also used for the PDF metadata and
	// the page header.
	Title string `yaml:"title"`
	// Subtitle is the second title-page line.
	Subtitle string `yaml:"subtitle"`
	// Project is the project name shown on the title page.
	Project string `yaml:"project"`
	// DocumentType is the document classification line.
	DocumentType string `yaml:"document_type"`
	// Method is the analysis method line.
	Method string `yaml:"method"`
	// Author is the PDF author metadata.
	Author string `yaml:"author"`
	// Engine is the LaTeX compiler binary.
	Engine string `yaml:"engine"`

	Charts ChartsConfig `yaml:"charts"`
	Colors ColorsConfig `yaml:"colors"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:        "Structural Analysis Report",
		Subtitle:     "Simply Supported Beam Analysis",
		Project:      "FOSSEE Beam Analysis",
		DocumentType: "Engineering Analysis Report",
		Method:       "Shear Force & Bending Moment Analysis",
		Author:       "FOSSEE Project",
		Engine:       "pdflatex",
		Charts: ChartsConfig{
			ShearMargin:  10,
			MomentMargin: 20,
		},
		Colors: ColorsConfig{
			ShearPositive:  RGB{70, 130, 180},  // steel blue
			ShearNegative:  RGB{220, 20, 60},   // crimson
			MomentPositive: RGB{34, 139, 34},   // forest green
			MomentNegative: RGB{255, 140, 0},   // dark orange
			Accent:         RGB{0, 51, 102},    // dark blue
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults unchanged. Environment variables referenced in
// the file body are expanded; a .env file in the working directory is
// loaded first when present.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// Optional; absence is not an error.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Charts.ShearMargin <= 0 {
		return fmt.Errorf("charts.shear_margin must be positive, got %g", c.Charts.ShearMargin)
	}
	if c.Charts.MomentMargin <= 0 {
		return fmt.Errorf("charts.moment_margin must be positive, got %g", c.Charts.MomentMargin)
	}
	if c.Engine == "" {
		return fmt.Errorf("engine must not be empty")
	}
	return nil
}
