package trace

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(10).Align(lipgloss.Right)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// ReportOptions shapes the printed report.
type ReportOptions struct {
	Metric      string // plotted metric
	GraphWidth  int
	GraphHeight int
}

// Report renders a summary table per result and a plot of the chosen metric.
func Report(results []Result, opts ReportOptions) string {
	if opts.Metric == "" {
		opts.Metric = MetricSpread
	}
	if opts.GraphWidth <= 0 {
		opts.GraphWidth = 60
	}
	if opts.GraphHeight <= 0 {
		opts.GraphHeight = 8
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("IRIS TRACE  %d run(s)", len(results))) + "\n")
	for _, r := range results {
		b.WriteString(summary(r, opts) + "\n")
	}
	return b.String()
}

func summary(r Result, opts ReportOptions) string {
	var s strings.Builder
	sc := r.Scenario
	s.WriteString(nameStyle.Render(sc.Name()) + "\n")
	s.WriteString(fmt.Sprintf("%d frames @ %d fps, clicks at %v\n\n", sc.Frames, sc.FPS, r.Clicks))
	s.WriteString(labelStyle.Render("metric") + valueStyle.Render("min") + valueStyle.Render("mean") + valueStyle.Render("max") + "\n")
	for _, m := range Metrics {
		st := r.Stats(m)
		s.WriteString(labelStyle.Render(m) +
			valueStyle.Render(fmt.Sprintf("%.2f", st.Min)) +
			valueStyle.Render(fmt.Sprintf("%.2f", st.Mean)) +
			valueStyle.Render(fmt.Sprintf("%.2f", st.Max)) + "\n")
	}
	if series := r.Series[opts.Metric]; len(series) > 1 {
		chart := asciigraph.Plot(series,
			asciigraph.Height(opts.GraphHeight),
			asciigraph.Width(opts.GraphWidth),
			asciigraph.Caption(opts.Metric))
		s.WriteString(graphStyle.Render(chart))
	}
	return boxStyle.Render(s.String())
}
