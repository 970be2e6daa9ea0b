package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/ecomdash/internal/config"
	"github.com/janekbaraniewski/ecomdash/internal/insights"
	zone "github.com/lrstanley/bubblezone"
)

const (
	minWidth           = 48
	minHeight          = 16
	defaultChartHeight = 12
)

// ThemeChangedMsg asks the dashboard to switch to the named theme, e.g. after
// the config file changed on disk.
type ThemeChangedMsg struct {
	Name string
}

// themeSaveDelay debounces theme saves so a burst of theme key presses
// writes the settings file once.
var themeSaveDelay = 300 * time.Millisecond

type themeSaveDueMsg struct {
	seq int
}

type themePersistedMsg struct {
	seq int
	err error
}

type Options struct {
	// ChartHeight is the plot height of bar charts in rows.
	ChartHeight int
	// ConfigPath is where theme changes are saved. Empty disables saving.
	ConfigPath string
}

// Model is the bubbletea model of the dashboard. All navigation state lives in
// state and changes only through dispatch.
type Model struct {
	state UIState

	width  int
	height int
	offset int // vertical scroll offset of the active panel

	showHelp    bool
	chartHeight int
	configPath  string
	status      string

	// themeSeq counts local theme changes; savedSeq is the latest one on disk.
	// Reloads from the watcher are ignored while they differ.
	themeSeq int
	savedSeq int

	zones *zone.Manager
	help  help.Model
}

func NewModel(opts Options) Model {
	chartH := opts.ChartHeight
	if chartH <= 0 {
		chartH = defaultChartHeight
	}
	return Model{
		state:       DefaultState(),
		chartHeight: chartH,
		configPath:  opts.ConfigPath,
		zones:       zone.New(),
		help:        help.New(),
	}
}

// State returns the current UI state.
func (m Model) State() UIState { return m.state }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.offset = clamp(m.offset, 0, m.maxOffset())
		return m, nil

	case ThemeChangedMsg:
		if m.themeSeq != m.savedSeq {
			return m, nil
		}
		if msg.Name != ActiveTheme().Name && SetThemeByName(msg.Name) {
			m.status = "theme reloaded"
		}
		return m, nil

	case themeSaveDueMsg:
		if msg.seq != m.themeSeq {
			return m, nil
		}
		return m, m.persistThemeCmd(msg.seq, ActiveTheme().Name)

	case themePersistedMsg:
		if msg.seq > m.savedSeq {
			m.savedSeq = msg.seq
		}
		if msg.err != nil {
			m.status = "theme save failed"
		} else {
			m.status = "theme saved"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

// dispatch runs a through Reduce. Switching panels resets the scroll offset;
// top-N values are kept.
func (m Model) dispatch(a Action) Model {
	prev := m.state.Selected
	m.state = Reduce(m.state, a)
	if m.state.Selected != prev {
		m.offset = 0
	}
	m.offset = clamp(m.offset, 0, m.maxOffset())
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.OrderValue):
		m = m.dispatch(SelectOrderValue())
	case key.Matches(msg, keys.Categories):
		m = m.dispatch(SelectCategories())
	case key.Matches(msg, keys.Products):
		m = m.dispatch(SelectProducts())
	case key.Matches(msg, keys.Customers):
		m = m.dispatch(SelectCustomers())
	case key.Matches(msg, keys.Next):
		m = m.dispatch(CycleInsight{Step: 1})
	case key.Matches(msg, keys.Prev):
		m = m.dispatch(CycleInsight{Step: -1})
	case key.Matches(msg, keys.Less):
		m = m.dispatch(StepTopN{Delta: -1})
	case key.Matches(msg, keys.More):
		m = m.dispatch(StepTopN{Delta: 1})
	case key.Matches(msg, keys.TopMin):
		minN, _ := topNBounds(m.state.Selected)
		m = m.dispatch(SetTopN{Insight: m.state.Selected, N: minN})
	case key.Matches(msg, keys.TopMax):
		_, maxN := topNBounds(m.state.Selected)
		m = m.dispatch(SetTopN{Insight: m.state.Selected, N: maxN})
	case key.Matches(msg, keys.Up):
		m.offset = clamp(m.offset-1, 0, m.maxOffset())
	case key.Matches(msg, keys.Down):
		m.offset = clamp(m.offset+1, 0, m.maxOffset())
	case key.Matches(msg, keys.PageUp):
		m.offset = clamp(m.offset-m.pageStep(), 0, m.maxOffset())
	case key.Matches(msg, keys.PageDown):
		m.offset = clamp(m.offset+m.pageStep(), 0, m.maxOffset())
	case key.Matches(msg, keys.Theme):
		CycleTheme()
		if m.configPath == "" {
			return m, nil
		}
		m.themeSeq++
		seq := m.themeSeq
		return m, tea.Tick(themeSaveDelay, func(time.Time) tea.Msg {
			return themeSaveDueMsg{seq: seq}
		})
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.showHelp {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			m.offset = clamp(m.offset-3, 0, m.maxOffset())
		}
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			m.offset = clamp(m.offset+3, 0, m.maxOffset())
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionRelease {
			return m.handleClick(msg)
		}
	}
	return m
}

func (m Model) handleClick(msg tea.MouseMsg) Model {
	if m.zones == nil {
		return m
	}
	for _, in := range insights.All() {
		if m.inZone(insightZone(in), msg) {
			return m.dispatch(SelectInsight{Insight: in})
		}
	}
	if _, ok := m.state.TopN(); !ok {
		return m
	}
	switch {
	case m.inZone(zoneTopNDec, msg):
		return m.dispatch(StepTopN{Delta: -1})
	case m.inZone(zoneTopNInc, msg):
		return m.dispatch(StepTopN{Delta: 1})
	}
	minN, maxN := topNBounds(m.state.Selected)
	for n := minN; n <= maxN; n++ {
		if m.inZone(topNStopZone(n), msg) {
			return m.dispatch(SetTopN{Insight: m.state.Selected, N: n})
		}
	}
	return m
}

func (m Model) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

func insightZone(in insights.Insight) string { return "insight-" + string(in) }

func (m Model) persistThemeCmd(seq int, name string) tea.Cmd {
	path := m.configPath
	return func() tea.Msg {
		err := config.SaveThemeTo(path, name)
		if err != nil {
			log.Printf("theme persist: %v", err)
		}
		return themePersistedMsg{seq: seq, err: err}
	}
}

func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return dimStyle.Render(fmt.Sprintf("\n  Terminal too small. Resize to at least %d×%d.", minWidth, minHeight))
	}
	if m.showHelp {
		return m.renderHelpOverlay(m.width, m.height)
	}
	view := m.renderDashboard()
	if m.zones != nil {
		view = m.zones.Scan(view)
	}
	return view
}

func (m Model) renderDashboard() string {
	header := m.renderHeader(m.width)
	footer := m.renderFooter(m.width, true)
	content := m.renderContent(m.width, m.contentHeight())
	return header + "\n" + content + "\n" + footer
}

func (m Model) panelLines(w int) []string {
	return strings.Split(renderPanel(buildPanel(m.state), w, m.chartHeight, m.zones), "\n")
}

// renderContent shows the visible window of the panel. When the panel does not
// fit, the last row becomes a scroll indicator.
func (m Model) renderContent(w, h int) string {
	lines := m.panelLines(w)
	if len(lines) <= h {
		return padToSize(strings.Join(lines, "\n"), h)
	}
	visible := h - 1
	offset := clamp(m.offset, 0, len(lines)-visible)
	body := strings.Join(lines[offset:offset+visible], "\n")
	return body + "\n" + renderScrollBarLine(w, offset, visible, len(lines))
}

func (m Model) contentHeight() int {
	h := m.height - lineCount(m.renderHeader(m.width)) - lineCount(m.renderFooter(m.width, true))
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) maxOffset() int {
	if m.width <= 0 || m.height <= 0 {
		return 0
	}
	total := len(m.panelLines(m.width))
	h := m.contentHeight()
	if total <= h {
		return 0
	}
	return total - (h - 1)
}

func (m Model) pageStep() int {
	return clamp(m.contentHeight()/2, 3, 40)
}

func (m Model) renderHeader(w int) string {
	title := titleStyle.Render(insights.PageTitle)
	info := dimStyle.Render(ThemeName())
	if m.status != "" {
		info = labelStyle.Render(m.status) + dimStyle.Render(" · ") + info
	}
	gap := w - 1 - lipgloss.Width(title) - lipgloss.Width(info)
	if gap < 1 {
		gap = 1
	}

	sep := sepStyle.Render(strings.Repeat("━", w))
	lines := []string{
		fitAnsiWidth(" "+title+strings.Repeat(" ", gap)+info, w),
		fitAnsiWidth(" "+captionStyle.Render(insights.PageCaption), w),
		sep,
		m.renderSelector(w),
		sep,
	}
	return strings.Join(lines, "\n")
}

// renderSelector draws one button per insight; the selected one is filled.
func (m Model) renderSelector(w int) string {
	all := insights.All()
	gap := 1
	buttonW := (w - 2 - gap*(len(all)-1)) / len(all)
	if buttonW < 6 {
		buttonW = 6
	}

	var parts []string
	for i, in := range all {
		style := buttonInactiveStyle
		if in == m.state.Selected {
			style = buttonActiveStyle
		}
		label := truncateLabel(in.Button(), buttonW-2)
		btn := style.Width(buttonW).Render(label)
		if m.zones != nil {
			btn = m.zones.Mark(insightZone(in), btn)
		}
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
		}
		parts = append(parts, btn)
	}
	return " " + strings.Join(parts, "")
}

func (m Model) renderFooter(w int, withHelp bool) string {
	sep := sepStyle.Render(strings.Repeat("━", w))
	lines := []string{
		sep,
		fitAnsiWidth(" "+noteSuccessStyle.Render(insights.FooterNote), w),
	}
	if withHelp {
		lines = append(lines, fitAnsiWidth(" "+m.help.ShortHelpView(keys.shortHelp()), w))
	}
	return strings.Join(lines, "\n")
}

// RenderSnapshot renders the full page for s without an interactive program:
// the whole panel is printed, with no scrolling, click zones or key help.
func RenderSnapshot(s UIState, width, chartHeight int) string {
	if width < minWidth {
		width = minWidth
	}
	if chartHeight <= 0 {
		chartHeight = defaultChartHeight
	}
	m := Model{state: s, width: width, chartHeight: chartHeight}
	panel := renderPanel(buildPanel(s), width, chartHeight, nil)
	return m.renderHeader(width) + "\n" + panel + "\n" + m.renderFooter(width, false)
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

func padToSize(content string, h int) string {
	lines := strings.Split(content, "\n")
	for len(lines) < h {
		lines = append(lines, "")
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	return strings.Join(lines, "\n")
}
