package latex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fossee/beamreport-go/pkg/beamreport/config"
	"github.com/fossee/beamreport-go/pkg/beamreport/models"
)

// ErrAssetNotFound indicates a referenced static asset is missing.
var ErrAssetNotFound = errors.New("asset not found")

var titleTmpl = newTemplate("title", `\begin{titlepage}
    \centering

    \vspace*{2cm}

    {\Huge\bfseries\color{titleblue} <<.Title>> \par}

    \vspace{1cm}

    {\LARGE\bfseries <<.Subtitle>> \par}

    \vspace{2cm}

    \noindent\rule{\textwidth}{2pt}

    \vspace{2cm}

    {\Large\textbf{Project:} <<.Project>> \par}

    \vspace{0.5cm}

    {\Large\textbf{Document Type:} <<.DocumentType>> \par}

    \vspace{0.5cm}

    {\Large\textbf{Analysis Method:} <<.Method>> \par}

    \vspace{3cm}

    {\large\textbf{Date:} <<.Date>> \par}

    \vfill

    \noindent\rule{\textwidth}{1pt}

    \vspace{0.5cm}

    {\small Generated using Go and \LaTeX{} \par}

\end{titlepage}
`)

type titleData struct {
	Title        string
	Subtitle     string
	Project      string
	DocumentType string
	Method       string
	Date         string
}

// TitlePage builds the title page. The date is injected so callers
// control it; the pipeline passes the current time.
func TitlePage(cfg config.Config, date time.Time) Fragment {
	var sb strings.Builder
	mustExecute(titleTmpl, &sb, titleData{
		Title:        Escape(cfg.Title),
		Subtitle:     Escape(cfg.Subtitle),
		Project:      Escape(cfg.Project),
		DocumentType: Escape(cfg.DocumentType),
		Method:       Escape(cfg.Method),
		Date:         date.Format("January 2, 2006"),
	})
	return Fragment{Name: "title", Body: sb.String()}
}

// TOC builds the table of contents directive. Page numbers resolve on
// the second compile pass.
func TOC() Fragment {
	return Fragment{Name: "toc", Body: `\tableofcontents
\thispagestyle{empty}
\newpage
`}
}

var introTmpl = newTemplate("introduction", `\chapter{Introduction}

\section{Overview}

This report presents a comprehensive structural analysis of a simply supported beam
subjected to a uniformly distributed load. The analysis includes the calculation and
visualization of internal forces, specifically the Shear Force Diagram (SFD) and
Bending Moment Diagram (BMD).

\section{Simply Supported Beam}

A simply supported beam is a fundamental structural element that rests on two
supports --- a pinned support at one end and a roller support at the other. This
configuration allows the beam to:

\begin{itemize}
    \item Resist vertical loads through reaction forces at the supports
    \item Freely expand or contract due to thermal effects (roller support)
    \item Rotate freely at both support points
\end{itemize}

\subsection{Beam Configuration}

The beam under analysis has the following configuration:

\begin{figure}[H]
    \centering
    \includegraphics[width=0.85\textwidth]{<<.ImagePath>>}
    \caption{Simply Supported Beam with Pinned and Roller Supports}
    \label{fig:beam_diagram}
\end{figure}

\textbf{Beam Parameters:}
\begin{itemize}
    \item \textbf{Total Length:} <<.Span>> meters
    \item \textbf{Left Support:} Pinned support (restricts horizontal and vertical displacement)
    \item \textbf{Right Support:} Roller support (restricts only vertical displacement)
    \item \textbf{Loading:} Uniformly distributed load
\end{itemize}

\section{Analysis Objectives}

The objectives of this structural analysis are:

\begin{enumerate}
    \item Calculate shear forces at critical points along the beam
    \item Calculate bending moments at critical points along the beam
    \item Generate Shear Force Diagram (SFD)
    \item Generate Bending Moment Diagram (BMD)
    \item Identify maximum shear force and bending moment locations
\end{enumerate}

\newpage
`)

type introData struct {
	ImagePath string
	Span      string
}

// Introduction builds the introduction chapter with the beam diagram.
// The image file must exist; the error surfaces here rather than as a
// compile failure inside the external renderer.
func Introduction(d *models.Dataset, imagePath string) (Fragment, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return Fragment{}, fmt.Errorf("%w: %s", ErrAssetNotFound, imagePath)
	}

	var sb strings.Builder
	mustExecute(introTmpl, &sb, introData{
		// LaTeX wants forward slashes regardless of platform.
		ImagePath: filepath.ToSlash(imagePath),
		Span:      fmtPosition(d.Span()),
	})
	return Fragment{Name: "introduction", Body: sb.String()}, nil
}

var tableTmpl = newTemplate("data table", `\chapter{Input Data}

\section{Force and Moment Data}

The following table presents the calculated values of shear force and bending
moment at various positions along the beam. These values were obtained from
structural analysis calculations.

\begin{table}[H]
    \centering
    \caption{Shear Force and Bending Moment Values Along the Beam}
    \label{tab:force_data}
    \vspace{0.5cm}
    \begin{tabular}{|c|c|c|}
        \hline
        \rowcolor{titleblue!20}
        \textbf{Position (x)} & \textbf{Shear Force (V)} & \textbf{Bending Moment (M)} \\
        \textbf{[meters]} & \textbf{[kN]} & \textbf{[kN$\cdot$m]} \\
        \hline
<<range .Rows>>        <<.Position>> & <<.Shear>> & <<.Moment>> \\
        \hline
<<end>>    \end{tabular}
\end{table}

\section{Data Interpretation}

From the table above, we can observe:

\begin{itemize}
    \item \textbf{Maximum Positive Shear Force:} <<.MaxShear.Value>> kN (at x = <<.MaxShear.Position>> m)
    \item \textbf{Maximum Negative Shear Force:} <<.MinShear.Value>> kN (at x = <<.MinShear.Position>> m)
    \item \textbf{Maximum Bending Moment:} <<.MaxMoment.Value>> kN$\cdot$m (at x = <<.MaxMoment.Position>> m)
    \item \textbf{Zero Shear Location:} x = <<.ZeroShear>> m (point of maximum moment)
\end{itemize}

\newpage
`)

type tableRow struct {
	Position string
	Shear    string
	Moment   string
}

type extremeData struct {
	Value    string
	Position string
}

type tableData struct {
	Rows      []tableRow
	MaxShear  extremeData
	MinShear  extremeData
	MaxMoment extremeData
	ZeroShear string
}

func formatExtreme(e models.Extreme) extremeData {
	return extremeData{Value: fmtValue(e.Value), Position: fmtPosition(e.Position)}
}

// DataTable builds the input data chapter: the full sample table and
// the interpretation summary.
func DataTable(d *models.Dataset) Fragment {
	data := tableData{
		MaxShear:  formatExtreme(d.MaxShear()),
		MinShear:  formatExtreme(d.MinShear()),
		MaxMoment: formatExtreme(d.MaxMoment()),
		ZeroShear: "N/A",
	}
	if pos, ok := d.ZeroShear(); ok {
		data.ZeroShear = fmtPosition(pos)
	}
	for _, s := range d.Samples() {
		data.Rows = append(data.Rows, tableRow{
			Position: fmtPosition(s.Position),
			Shear:    fmtValue(s.Shear),
			Moment:   fmtValue(s.Moment),
		})
	}

	var sb strings.Builder
	mustExecute(tableTmpl, &sb, data)
	return Fragment{Name: "data table", Body: sb.String()}
}

var conclusionTmpl = newTemplate("conclusion", `\chapter{Conclusion}

\section{Summary of Results}

This structural analysis report has presented a comprehensive analysis of a simply
supported beam with the following key findings:

\begin{table}[H]
    \centering
    \caption{Summary of Critical Values}
    \vspace{0.5cm}
    \begin{tabular}{|l|c|c|}
        \hline
        \rowcolor{titleblue!20}
        \textbf{Parameter} & \textbf{Value} & \textbf{Location} \\
        \hline
        Maximum Positive Shear & <<.MaxShear.Value>> kN & x = <<.MaxShear.Position>> m \\
        \hline
        Maximum Negative Shear & <<.MinShear.Value>> kN & x = <<.MinShear.Position>> m \\
        \hline
        Maximum Bending Moment & <<.MaxMoment.Value>> kN$\cdot$m & x = <<.MaxMoment.Position>> m \\
        \hline
    \end{tabular}
\end{table}

\section{Design Recommendations}

Based on the analysis results, the following recommendations are made for the
design of this simply supported beam:

\begin{enumerate}
    \item \textbf{Shear Reinforcement:} Provide adequate shear reinforcement near
          the supports where shear forces are maximum.

    \item \textbf{Flexural Reinforcement:} Provide maximum flexural reinforcement
          at the midspan where the bending moment is maximum.

    \item \textbf{Deflection Check:} Verify that the beam deflection under service
          loads is within acceptable limits.

    \item \textbf{Support Design:} Design the supports to safely transfer the
          reaction forces to the foundation.
\end{enumerate}

\section{Report Generation}

This report was automatically generated using:
\begin{itemize}
    \item Go for data processing and \LaTeX{} generation
    \item TikZ/PGFPlots for vector graphics diagrams
    \item \LaTeX{} for professional document formatting
\end{itemize}

\end{document}
`)

type conclusionData struct {
	MaxShear  extremeData
	MinShear  extremeData
	MaxMoment extremeData
}

// Conclusion builds the closing chapter. The critical-value locations
// are computed from the data rather than assumed from the idealized
// load case.
func Conclusion(d *models.Dataset) Fragment {
	var sb strings.Builder
	mustExecute(conclusionTmpl, &sb, conclusionData{
		MaxShear:  formatExtreme(d.MaxShear()),
		MinShear:  formatExtreme(d.MinShear()),
		MaxMoment: formatExtreme(d.MaxMoment()),
	})
	return Fragment{Name: "conclusion", Body: sb.String()}
}
