package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/ecomdash/internal/insights"
	zone "github.com/lrstanley/bubblezone"
	"github.com/samber/lo"
)

type metricCard struct {
	Label string
	Value string
}

type noteKind int

const (
	noteInfo noteKind = iota
	noteSuccess
)

type panelNote struct {
	Kind noteKind
	Text string
}

// panelSpec is the content of one insight panel before it is laid out.
type panelSpec struct {
	Insight insights.Insight
	Header  string
	Metrics []metricCard
	Control *topNControl
	Bars    *barChart
	Pie     *pieChart
	Note    panelNote
}

// buildPanel returns the panel for the selected insight. Exactly one panel
// exists per state.
func buildPanel(s UIState) panelSpec {
	switch s.Selected {
	case insights.Categories:
		return categoriesPanel()
	case insights.Products:
		return productsPanel(s.TopNProducts)
	case insights.Customers:
		return customersPanel(s.TopNCustomers)
	default:
		return orderValuePanel()
	}
}

func orderValuePanel() panelSpec {
	stats := insights.OrderValues()
	return panelSpec{
		Insight: insights.OrderValue,
		Header:  insights.OrderValue.Header(),
		Metrics: []metricCard{
			{Label: "Minimum Order Value", Value: insights.FormatCurrency(stats.Min)},
			{Label: "Maximum Order Value", Value: insights.FormatCurrency(stats.Max)},
			{Label: "Average Order Value", Value: insights.FormatCurrency(stats.Avg)},
		},
		Note: panelNote{Kind: noteInfo, Text: insights.OrderValueNote},
	}
}

func categoriesPanel() panelSpec {
	top := insights.TopCategory()
	points := lo.Map(insights.CategoryTotals(), func(r insights.CategoryRecord, _ int) chartPoint {
		return chartPoint{
			Label:     r.Category,
			Value:     float64(r.TotalSold),
			Text:      insights.FormatCount(r.TotalSold),
			Short:     insights.FormatCompact(float64(r.TotalSold)),
			Highlight: r.Category == top.Category,
		}
	})
	return panelSpec{
		Insight: insights.Categories,
		Header:  insights.Categories.Header(),
		Bars: &barChart{
			Title:  "Top Selling Categories",
			XTitle: "Category",
			YTitle: "Total Sold",
			Points: points,
		},
		Note: panelNote{Kind: noteSuccess, Text: insights.CategoriesNote},
	}
}

func productsPanel(topN int) panelSpec {
	rows := insights.TopProducts(topN)
	n := len(rows)
	points := lo.Map(rows, func(r insights.ProductRecord, _ int) chartPoint {
		return chartPoint{
			Label: r.Product,
			Value: float64(r.Sales),
			Text:  insights.FormatCount(r.Sales),
			Short: insights.FormatCompact(float64(r.Sales)),
		}
	})
	pie := newPieChart(fmt.Sprintf("Sales Distribution for Top %d", n), points)
	minN, maxN := topNBounds(insights.Products)
	return panelSpec{
		Insight: insights.Products,
		Header:  insights.Products.Header(),
		Control: &topNControl{Label: "Select Top N Products", Value: n, Min: minN, Max: maxN},
		Bars: &barChart{
			Title:  fmt.Sprintf("Top %d Products", n),
			XTitle: "Product",
			YTitle: "Sales",
			Points: points,
		},
		Pie:  &pie,
		Note: panelNote{Kind: noteInfo, Text: insights.ProductsNote},
	}
}

func customersPanel(topN int) panelSpec {
	rows := insights.TopCustomers(topN)
	n := len(rows)
	points := lo.Map(rows, func(r insights.CustomerRecord, _ int) chartPoint {
		return chartPoint{
			Label: r.Customer,
			Value: r.TotalSpend,
			Text:  insights.FormatCurrency(r.TotalSpend),
			Short: "$" + insights.FormatCompact(r.TotalSpend),
		}
	})
	minN, maxN := topNBounds(insights.Customers)
	return panelSpec{
		Insight: insights.Customers,
		Header:  insights.Customers.Header(),
		Control: &topNControl{Label: "Select Top N Customers", Value: n, Min: minN, Max: maxN},
		Bars: &barChart{
			Title:  fmt.Sprintf("Top %d Customers", n),
			XTitle: "Customer",
			YTitle: "Total Spend ($)",
			Points: points,
		},
		Note: panelNote{Kind: noteSuccess, Text: insights.CustomersNote},
	}
}

// sideBySideMinWidth is the narrowest layout that puts the bar and pie chart
// next to each other.
const sideBySideMinWidth = 100

// renderPanel lays out p in w columns. Charts use chartH rows for the plot.
func renderPanel(p panelSpec, w, chartH int, zones *zone.Manager) string {
	var sections []string

	sections = append(sections, chartIndent+panelHeaderStyle.Render("▾ "+p.Header))

	if p.Control != nil {
		sections = append(sections, renderTopNSlider(*p.Control, w, zones))
	}
	if len(p.Metrics) > 0 {
		sections = append(sections, renderMetricCards(p.Metrics, w))
	}

	switch {
	case p.Bars != nil && p.Pie != nil && w >= sideBySideMinWidth:
		colW := w / 2
		left := lipgloss.NewStyle().Width(colW).Render(renderBarChart(*p.Bars, colW, chartH))
		right := lipgloss.NewStyle().Width(w - colW).Render(renderPieChart(*p.Pie, w-colW))
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	case p.Bars != nil:
		sections = append(sections, renderBarChart(*p.Bars, w, chartH))
		if p.Pie != nil {
			sections = append(sections, renderPieChart(*p.Pie, w))
		}
	}

	if p.Note.Text != "" {
		sections = append(sections, renderNote(p.Note, w))
	}

	return strings.Join(sections, "\n\n")
}

func renderMetricCards(cards []metricCard, w int) string {
	if len(cards) == 0 {
		return ""
	}
	gap := 1
	cardW := (w - len(chartIndent) - gap*(len(cards)-1)) / len(cards)
	stacked := cardW < 22
	if stacked {
		cardW = w - len(chartIndent)
	}

	// Width includes padding but not the border.
	style := metricCardStyle.Width(cardW - 2)
	rendered := lo.Map(cards, func(c metricCard, _ int) string {
		return style.Render(metricLabelStyle.Render(c.Label) + "\n" + metricValueStyle.Render(c.Value))
	})

	var block string
	if stacked {
		block = lipgloss.JoinVertical(lipgloss.Left, rendered...)
	} else {
		spaced := make([]string, 0, len(rendered)*2)
		for i, r := range rendered {
			if i > 0 {
				spaced = append(spaced, strings.Repeat(" ", gap))
			}
			spaced = append(spaced, r)
		}
		block = lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
	}
	return indentBlock(block, chartIndent)
}

func renderNote(n panelNote, w int) string {
	style := noteInfoStyle
	if n.Kind == noteSuccess {
		style = noteSuccessStyle
	}
	return indentBlock(style.Width(w-len(chartIndent)-1).Render(n.Text), chartIndent)
}

func indentBlock(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}
