package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/ecomdash/internal/insights"
)

// ─── Help Overlay ───────────────────────────────────────────────────────────

type helpEntry struct{ key, desc string }

type helpSection struct {
	title   string
	entries []helpEntry
}

func helpSections() []helpSection {
	insightEntries := make([]helpEntry, 0, len(insights.All())+1)
	for i, in := range insights.All() {
		insightEntries = append(insightEntries, helpEntry{
			key:  string(rune('1' + i)),
			desc: in.Button(),
		})
	}
	insightEntries = append(insightEntries,
		helpEntry{"Tab / Shift+Tab", "Next / previous insight"},
		helpEntry{"Click", "Select an insight button"},
	)

	return []helpSection{
		{title: "Insights", entries: insightEntries},
		{title: "Top N (products & customers)", entries: []helpEntry{
			{"← → / h l", "Show one fewer / one more"},
			{"- +", "Same as ← →"},
			{"Home / End", "Jump to the smallest / largest N"},
			{"Click", "Pick a stop on the slider"},
		}},
		{title: "View", entries: []helpEntry{
			{"↑↓ / j k", "Scroll the panel"},
			{"PgUp / PgDn", "Scroll half a page"},
			{"t", "Cycle color theme (saved to settings)"},
		}},
		{title: "Global", entries: []helpEntry{
			{"?", "Toggle this help"},
			{"q / Ctrl+C", "Quit"},
		}},
	}
}

// renderHelpOverlay draws a centered help popup listing the key bindings.
// Any key dismisses it.
func (m Model) renderHelpOverlay(screenW, screenH int) string {
	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	descStyle := lipgloss.NewStyle().Foreground(colorText)
	dimHintStyle := lipgloss.NewStyle().Foreground(colorDim).Italic(true)

	var lines []string
	lines = append(lines, titleStyle.Render("  "+insights.PageTitle+" Help"), "")

	for _, sec := range helpSections() {
		lines = append(lines, headingStyle.Render("  "+sec.title), "")
		for _, e := range sec.entries {
			lines = append(lines, "    "+helpKeyStyle.Render(padRight(e.key, 18))+descStyle.Render(e.desc))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "  "+dimStyle.Render("Theme: ")+labelStyle.Render(ThemeName()))
	lines = append(lines, "  "+dimHintStyle.Render("Press any key to dismiss"))

	contentW := 0
	for _, line := range lines {
		contentW = max(contentW, lipgloss.Width(line))
	}

	boxW := contentW + 4
	if boxW > screenW-4 {
		boxW = screenW - 4
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Width(boxW).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
