package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/ecomdash/internal/insights"
	"github.com/samber/lo"
)

type chartPoint struct {
	Label     string
	Value     float64
	Text      string // full value, shown in the key
	Short     string // compact value, shown under the column
	Highlight bool
}

type barChart struct {
	Title  string
	XTitle string
	YTitle string
	Points []chartPoint
}

type pieSlice struct {
	Label string
	Value float64
	Share float64 // percent of the chart total
	Text  string
}

type pieChart struct {
	Title  string
	Slices []pieSlice
}

func newPieChart(title string, points []chartPoint) pieChart {
	shares := insights.Shares(lo.Map(points, func(p chartPoint, _ int) float64 { return p.Value }))
	return pieChart{
		Title: title,
		Slices: lo.Map(points, func(p chartPoint, i int) pieSlice {
			return pieSlice{Label: p.Label, Value: p.Value, Share: shares[i], Text: p.Text}
		}),
	}
}

const (
	minChartWidth  = 20
	minPlotHeight  = 4
	chartIndent    = "  "
	maxKeyLabelLen = 32
	topMarker      = "★"
)

// renderBarChart draws c as a column chart with each column labelled by its
// compact value. The key below the plot lists the columns left to right with
// their full label and value.
func renderBarChart(c barChart, w, plotH int) string {
	if w < minChartWidth {
		w = minChartWidth
	}
	if plotH < minPlotHeight {
		plotH = minPlotHeight
	}
	innerW := w - len(chartIndent)

	var sb strings.Builder
	sb.WriteString(chartIndent + chartTitleStyle.Render(c.Title) + "\n")
	sb.WriteString(chartIndent + sepStyle.Render(strings.Repeat("─", innerW)) + "\n")

	if len(c.Points) == 0 {
		sb.WriteString(chartIndent + dimStyle.Render("No data available"))
		return sb.String()
	}

	sb.WriteString(chartIndent + chartAxisStyle.Render("▲ "+c.YTitle) + "\n")
	for _, line := range strings.Split(renderColumns(c.Points, innerW, plotH), "\n") {
		sb.WriteString(chartIndent + line + "\n")
	}
	sb.WriteString(chartIndent + chartAxisStyle.Render(c.XTitle+" ▶") + "\n")
	sb.WriteString(renderChartKey(c, innerW))
	return sb.String()
}

func renderColumns(points []chartPoint, w, h int) string {
	barStyle := lipgloss.NewStyle().Foreground(colorBlue)
	topStyle := lipgloss.NewStyle().Foreground(colorAccent)
	data := lo.Map(points, func(p chartPoint, i int) barchart.BarData {
		label := p.Short
		if label == "" {
			label = strconv.Itoa(i + 1)
		}
		style := barStyle
		if p.Highlight {
			style = topStyle
		}
		return barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: p.Label, Value: p.Value, Style: style},
			},
		}
	})

	bc := barchart.New(w, h,
		barchart.WithDataSet(data),
		barchart.WithBarGap(1),
		barchart.WithStyles(chartAxisStyle, chartLabelStyle),
	)
	bc.Draw()
	return bc.View()
}

// renderChartKey lists "n  label  value" rows, values right-aligned.
func renderChartKey(c barChart, w int) string {
	numW := len(strconv.Itoa(len(c.Points)))
	labelW := lo.Min([]int{maxKeyLabelLen, lo.Max(lo.Map(c.Points, func(p chartPoint, _ int) int {
		return lipgloss.Width(p.Label)
	}))})
	valueW := lo.Max(lo.Map(c.Points, func(p chartPoint, _ int) int { return len(p.Text) }))

	header := fmt.Sprintf("%*s  %s  %*s", numW, "#", padRight(c.XTitle, labelW), valueW, c.YTitle)
	lines := []string{chartIndent + dimStyle.Render(fitAnsiWidth(header, w))}
	for i, p := range c.Points {
		num := fmt.Sprintf("%*d", numW, i+1)
		label := truncateLabel(p.Label, labelW)
		row := dimStyle.Render(num) + "  " +
			chartLabelStyle.Render(padRight(label, labelW)) + "  " +
			chartValueStyle.Render(fmt.Sprintf("%*s", valueW, p.Text))
		if p.Highlight {
			row += " " + lipgloss.NewStyle().Foreground(colorAccent).Render(topMarker)
		}
		lines = append(lines, chartIndent+fitAnsiWidth(row, w))
	}
	return strings.Join(lines, "\n")
}

// renderPieChart draws the shares of c as one segmented strip followed by a
// legend with absolute values and percentages.
func renderPieChart(c pieChart, w int) string {
	if w < minChartWidth {
		w = minChartWidth
	}
	innerW := w - len(chartIndent)

	var sb strings.Builder
	sb.WriteString(chartIndent + chartTitleStyle.Render(c.Title) + "\n")
	sb.WriteString(chartIndent + sepStyle.Render(strings.Repeat("─", innerW)) + "\n")

	if len(c.Slices) == 0 {
		sb.WriteString(chartIndent + dimStyle.Render("No data available"))
		return sb.String()
	}

	segments := pieSegments(lo.Map(c.Slices, func(s pieSlice, _ int) float64 { return s.Share }), innerW)
	var strip strings.Builder
	for i, n := range segments {
		strip.WriteString(lipgloss.NewStyle().Foreground(seriesColor(i)).Render(strings.Repeat("█", n)))
	}
	sb.WriteString(chartIndent + strip.String() + "\n")
	sb.WriteString(chartIndent + strip.String() + "\n\n")

	labelW := lo.Min([]int{maxKeyLabelLen, lo.Max(lo.Map(c.Slices, func(s pieSlice, _ int) int {
		return lipgloss.Width(s.Label)
	}))})
	valueW := lo.Max(lo.Map(c.Slices, func(s pieSlice, _ int) int { return len(s.Text) }))
	lines := make([]string, 0, len(c.Slices))
	for i, s := range c.Slices {
		marker := lipgloss.NewStyle().Foreground(seriesColor(i)).Render("●")
		row := marker + " " +
			chartLabelStyle.Render(padRight(truncateLabel(s.Label, labelW), labelW)) + "  " +
			dimStyle.Render(fmt.Sprintf("%*s", valueW, s.Text)) + "  " +
			chartValueStyle.Render(fmt.Sprintf("%6s", insights.FormatPercent(s.Share)))
		lines = append(lines, chartIndent+fitAnsiWidth(row, innerW))
	}
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}

// pieSegments splits width cells between shares. Every positive share gets at
// least one cell and the result always sums to width.
func pieSegments(shares []float64, width int) []int {
	out := make([]int, len(shares))
	if len(shares) == 0 || width <= 0 {
		return out
	}
	total := lo.Sum(shares)
	if total <= 0 {
		out[len(out)-1] = width
		return out
	}

	used := 0
	for i, s := range shares {
		n := int(math.Round(s / total * float64(width)))
		if n < 1 && s > 0 {
			n = 1
		}
		out[i] = n
		used += n
	}

	// Hand rounding drift to the largest segment.
	largest := 0
	for i := range out {
		if out[i] > out[largest] {
			largest = i
		}
	}
	out[largest] += width - used
	if out[largest] < 0 {
		out[largest] = 0
	}
	return out
}

func truncateLabel(s string, maxW int) string {
	if lipgloss.Width(s) <= maxW {
		return s
	}
	if maxW <= 1 {
		return "…"
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > maxW {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
