package latex

import (
	"strings"
	"text/template"

	"github.com/fossee/beamreport-go/pkg/beamreport/config"
)

// newTemplate parses a fragment template. The delimiters are << >>
// because LaTeX source is full of braces.
func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Delims("<<", ">>").Parse(text))
}

var preambleTmpl = newTemplate("preamble", `\documentclass[12pt, a4paper]{report}

\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage{geometry}
\usepackage{graphicx}
\usepackage{booktabs}
\usepackage{array}
\usepackage{float}
\usepackage{xcolor}
\usepackage{colortbl}
\usepackage{tikz}
\usepackage{pgfplots}
\usepackage{hyperref}
\usepackage{fancyhdr}
\usepackage{titlesec}
\usepackage{tocloft}

\geometry{
    left=25mm,
    right=25mm,
    top=25mm,
    bottom=25mm
}

\pgfplotsset{compat=1.18}

\definecolor{shearpositive}{RGB}{<<.ShearPositive>>}
\definecolor{shearnegative}{RGB}{<<.ShearNegative>>}
\definecolor{momentpositive}{RGB}{<<.MomentPositive>>}
\definecolor{momentnegative}{RGB}{<<.MomentNegative>>}
\definecolor{titleblue}{RGB}{<<.Accent>>}

\hypersetup{
    colorlinks=true,
    linkcolor=titleblue,
    filecolor=magenta,
    urlcolor=cyan,
    pdftitle={<<.Title>>},
    pdfauthor={<<.Author>>},
}

\pagestyle{fancy}
\fancyhf{}
\fancyhead[L]{\small <<.Title>>}
\fancyhead[R]{\small \leftmark}
\fancyfoot[C]{\thepage}
\renewcommand{\headrulewidth}{0.4pt}
\renewcommand{\footrulewidth}{0.4pt}

\titleformat{\chapter}[display]
  {\normalfont\huge\bfseries\color{titleblue}}
  {\chaptertitlename\ \thechapter}{20pt}{\Huge}

\begin{document}
`)

type preambleData struct {
	Title          string
	Author         string
	ShearPositive  string
	ShearNegative  string
	MomentPositive string
	MomentNegative string
	Accent         string
}

// Preamble builds the document class, package and color setup.
func Preamble(cfg config.Config) Fragment {
	var sb strings.Builder
	mustExecute(preambleTmpl, &sb, preambleData{
		Title:          Escape(cfg.Title),
		Author:         Escape(cfg.Author),
		ShearPositive:  cfg.Colors.ShearPositive.String(),
		ShearNegative:  cfg.Colors.ShearNegative.String(),
		MomentPositive: cfg.Colors.MomentPositive.String(),
		MomentNegative: cfg.Colors.MomentNegative.String(),
		Accent:         cfg.Colors.Accent.String(),
	})
	return Fragment{Name: "preamble", Body: sb.String()}
}

// mustExecute panics on template execution failure. The templates are
// static and the data structs are typed, so a failure here is a bug.
func mustExecute(t *template.Template, sb *strings.Builder, data any) {
	if err := t.Execute(sb, data); err != nil {
		panic(err)
	}
}
