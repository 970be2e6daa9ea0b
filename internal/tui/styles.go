package tui

import "github.com/charmbracelet/lipgloss"

// ─── Color Palette ──────────────────────────────────────────────────────────
// Overwritten by applyTheme; the defaults below are Catppuccin Mocha.

var (
	colorBase     = lipgloss.Color("#1E1E2E")
	colorMantle   = lipgloss.Color("#181825")
	colorSurface0 = lipgloss.Color("#313244")
	colorSurface1 = lipgloss.Color("#45475A")
	colorText     = lipgloss.Color("#CDD6F4")
	colorSubtext  = lipgloss.Color("#A6ADC8")
	colorDim      = lipgloss.Color("#585B70")

	colorAccent   = lipgloss.Color("#CBA6F7")
	colorBlue     = lipgloss.Color("#89B4FA")
	colorSapphire = lipgloss.Color("#74C7EC")
	colorGreen    = lipgloss.Color("#A6E3A1")
	colorYellow   = lipgloss.Color("#F9E2AF")
	colorRed      = lipgloss.Color("#F38BA8")
	colorPeach    = lipgloss.Color("#FAB387")
	colorTeal     = lipgloss.Color("#94E2D5")
	colorLavender = lipgloss.Color("#B4BEFE")
	colorSky      = lipgloss.Color("#89DCEB")
	colorFlamingo = lipgloss.Color("#F2CDCD")
)

// ─── Reusable Styles ────────────────────────────────────────────────────────
// Built from the palette in rebuildStyles.

var (
	titleStyle   lipgloss.Style
	captionStyle lipgloss.Style
	labelStyle   lipgloss.Style
	dimStyle     lipgloss.Style
	helpKeyStyle lipgloss.Style
	sepStyle     lipgloss.Style

	buttonActiveStyle   lipgloss.Style
	buttonInactiveStyle lipgloss.Style

	panelHeaderStyle lipgloss.Style

	metricCardStyle  lipgloss.Style
	metricLabelStyle lipgloss.Style
	metricValueStyle lipgloss.Style

	noteInfoStyle    lipgloss.Style
	noteSuccessStyle lipgloss.Style

	// ─── Chart Styles ───────────────────────────────────────────────

	chartTitleStyle lipgloss.Style
	chartAxisStyle  lipgloss.Style
	chartLabelStyle lipgloss.Style
	chartValueStyle lipgloss.Style

	sliderLabelStyle lipgloss.Style
	sliderValueStyle lipgloss.Style
)

func rebuildStyles() {
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	captionStyle = lipgloss.NewStyle().Foreground(colorSubtext).Italic(true)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	dimStyle = lipgloss.NewStyle().Foreground(colorDim)
	helpKeyStyle = lipgloss.NewStyle().Foreground(colorSapphire).Bold(true)
	sepStyle = lipgloss.NewStyle().Foreground(colorSurface1)

	buttonActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorMantle).
		Background(colorAccent).
		Align(lipgloss.Center)
	buttonInactiveStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSurface0).
		Align(lipgloss.Center)

	panelHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)

	metricCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface1).
		Padding(0, 1)
	metricLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	metricValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)

	noteInfoStyle = lipgloss.NewStyle().
		Foreground(colorSky).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(colorSky).
		PaddingLeft(1)
	noteSuccessStyle = lipgloss.NewStyle().
		Foreground(colorGreen).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(colorGreen).
		PaddingLeft(1)

	chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	chartAxisStyle = lipgloss.NewStyle().Foreground(colorDim)
	chartLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	chartValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)

	sliderLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	sliderValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

// seriesColor picks a color for the idx-th slice of a multi-color chart.
func seriesColor(idx int) lipgloss.Color {
	palette := []lipgloss.Color{
		colorBlue, colorPeach, colorGreen, colorLavender, colorYellow,
		colorTeal, colorRed, colorSky, colorFlamingo, colorSapphire,
	}
	if idx < 0 {
		idx = 0
	}
	return palette[idx%len(palette)]
}
