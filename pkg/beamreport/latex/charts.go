package latex

import (
	"strings"

	"github.com/fossee/beamreport-go/pkg/beamreport/models"
)

// axisTmpl is the shared pgfplots bar chart: two sign-split series,
// data-driven axis bounds and a dashed zero line.
var axisTmpl = newTemplate("axis", `\begin{figure}[H]
    \centering
    \begin{tikzpicture}
        \begin{axis}[
            width=0.95\textwidth,
            height=8cm,
            xlabel={Position along beam (m)},
            ylabel={<<.YLabel>>},
            title={\textbf{<<.Title>>}},
            xmin=<<.XMin>>,
            xmax=<<.XMax>>,
            ymin=<<.YMin>>,
            ymax=<<.YMax>>,
            xtick={<<.Ticks>>},
            grid=both,
            grid style={line width=0.2pt, draw=gray!30},
            major grid style={line width=0.4pt, draw=gray!50},
            axis lines=middle,
            axis line style={->, thick},
            legend style={
                at={(0.98,0.98)},
                anchor=north east,
                draw=black,
                fill=white,
                font=\small
            },
            every axis plot/.append style={thick},
            ybar,
            bar width=8pt,
            enlarge x limits=0.05,
        ]

        \addplot[
            fill=<<.PosColor>>,
            draw=<<.PosColor>>!80!black,
        ] coordinates {
<<.PosCoords>>        };
        \addlegendentry{<<.PosLegend>>}

        \addplot[
            fill=<<.NegColor>>,
            draw=<<.NegColor>>!80!black,
        ] coordinates {
<<.NegCoords>>        };
        \addlegendentry{<<.NegLegend>>}

        \draw[black, thick, dashed] (axis cs:<<.XMin>>,0) -- (axis cs:<<.XMax>>,0);

        \end{axis}
    \end{tikzpicture}
    \caption{<<.Caption>>}
    \label{<<.Label>>}
\end{figure}
`)

type axisData struct {
	Title     string
	YLabel    string
	Caption   string
	Label     string
	XMin      string
	XMax      string
	YMin      string
	YMax      string
	Ticks     string
	PosColor  string
	NegColor  string
	PosLegend string
	NegLegend string
	PosCoords string
	NegCoords string
}

// renderAxis fills the shared axis template from the series pair.
func renderAxis(d *models.Dataset, pair models.SeriesPair, data axisData) string {
	data.XMin = fmtAxis(-0.5)
	data.XMax = fmtAxis(d.Span() + 0.5)
	data.YMin = fmtAxis(pair.Bounds.Min)
	data.YMax = fmtAxis(pair.Bounds.Max)
	data.Ticks = tickList(d)
	data.PosCoords = coordinateBlock(pair.Positive)
	data.NegCoords = coordinateBlock(pair.Negative)

	var sb strings.Builder
	mustExecute(axisTmpl, &sb, data)
	return sb.String()
}

func tickList(d *models.Dataset) string {
	ticks := make([]string, 0, d.Len())
	for _, s := range d.Samples() {
		ticks = append(ticks, fmtAxis(s.Position))
	}
	return strings.Join(ticks, ",")
}

func coordinateBlock(points []models.Point) string {
	var sb strings.Builder
	for _, p := range points {
		sb.WriteString("            (")
		sb.WriteString(fmtAxis(p.X))
		sb.WriteString(", ")
		sb.WriteString(fmtValue(p.Y))
		sb.WriteString(")\n")
	}
	return sb.String()
}

var sfdTmpl = newTemplate("shear chart", `\chapter{Analysis Results}

\section{Shear Force Diagram (SFD)}

The Shear Force Diagram shows the variation of internal shear force along the
length of the beam. Positive shear forces are shown in \textcolor{shearpositive}{\textbf{blue}}
and negative shear forces are shown in \textcolor{shearnegative}{\textbf{red}}.

<<.Chart>>
\subsection{SFD Observations}

\begin{itemize}
    \item The shear force is maximum positive at the left support
    \item The shear force decreases linearly under uniformly distributed load
    \item The shear force crosses zero near the midpoint of the beam
    \item The shear force is maximum negative at the right support
    \item The slope of the SFD equals the intensity of the distributed load
\end{itemize}

\newpage
`)

// ShearChart builds the shear force diagram section.
func ShearChart(d *models.Dataset, pair models.SeriesPair) Fragment {
	chart := renderAxis(d, pair, axisData{
		Title:     "Shear Force Diagram",
		YLabel:    "Shear Force (kN)",
		Caption:   "Shear Force Diagram showing the distribution of shear force along the beam",
		Label:     "fig:sfd",
		PosColor:  "shearpositive",
		NegColor:  "shearnegative",
		PosLegend: "Positive Shear",
		NegLegend: "Negative Shear",
	})

	var sb strings.Builder
	mustExecute(sfdTmpl, &sb, struct{ Chart string }{chart})
	return Fragment{Name: "shear chart", Body: sb.String()}
}

var bmdTmpl = newTemplate("moment chart", `\section{Bending Moment Diagram (BMD)}

The Bending Moment Diagram shows the variation of internal bending moment along
the length of the beam. Positive (sagging) moments are shown in
\textcolor{momentpositive}{\textbf{green}} and negative (hogging) moments in
\textcolor{momentnegative}{\textbf{orange}}.

<<.Chart>>
\subsection{BMD Observations}

\begin{itemize}
    \item The bending moment is zero at both supports (simply supported conditions)
    \item The bending moment is maximum at x = <<.MaxPosition>> m
    \item Maximum bending moment value: <<.MaxValue>> kN$\cdot$m
    \item The BMD follows a parabolic curve for uniformly distributed loads
    \item The slope of the BMD at any point equals the shear force at that point
\end{itemize}

\newpage
`)

// MomentChart builds the bending moment diagram section.
func MomentChart(d *models.Dataset, pair models.SeriesPair) Fragment {
	chart := renderAxis(d, pair, axisData{
		Title:     "Bending Moment Diagram",
		YLabel:    "Bending Moment (kN$\\cdot$m)",
		Caption:   "Bending Moment Diagram showing the distribution of bending moment along the beam",
		Label:     "fig:bmd",
		PosColor:  "momentpositive",
		NegColor:  "momentnegative",
		PosLegend: "Sagging Moment",
		NegLegend: "Hogging Moment",
	})

	max := d.MaxMoment()
	var sb strings.Builder
	mustExecute(bmdTmpl, &sb, struct {
		Chart       string
		MaxPosition string
		MaxValue    string
	}{chart, fmtPosition(max.Position), fmtValue(max.Value)})
	return Fragment{Name: "moment chart", Body: sb.String()}
}
