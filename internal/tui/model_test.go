package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janekbaraniewski/ecomdash/internal/config"
	"github.com/janekbaraniewski/ecomdash/internal/insights"
)

func sizedModel(t *testing.T, w, h int) Model {
	t.Helper()
	updated, _ := NewModel(Options{ChartHeight: 8}).Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func pressKey(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "end":
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModel_NumberKeysSelectInsight(t *testing.T) {
	m := sizedModel(t, 120, 40)
	for k, want := range map[string]insights.Insight{
		"2": insights.Categories,
		"3": insights.Products,
		"4": insights.Customers,
		"1": insights.OrderValue,
	} {
		m, _ = pressKey(t, m, k)
		if m.State().Selected != want {
			t.Fatalf("key %q selected %q, want %q", k, m.State().Selected, want)
		}
	}
}

func TestModel_TabCyclesInsights(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m, _ = pressKey(t, m, "tab")
	if m.State().Selected != insights.Categories {
		t.Fatalf("tab selected %q, want categories", m.State().Selected)
	}
	m, _ = pressKey(t, m, "shift+tab")
	m, _ = pressKey(t, m, "shift+tab")
	if m.State().Selected != insights.Customers {
		t.Fatalf("shift+tab selected %q, want customers", m.State().Selected)
	}
}

func TestModel_ArrowsAdjustTopNAndPersist(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m, _ = pressKey(t, m, "3")
	m, _ = pressKey(t, m, "left")
	m, _ = pressKey(t, m, "left")
	if got := m.State().TopNProducts; got != 3 {
		t.Fatalf("TopNProducts = %d, want 3", got)
	}

	m, _ = pressKey(t, m, "4")
	m, _ = pressKey(t, m, "right")
	if got := m.State().TopNCustomers; got != 5 {
		t.Fatalf("TopNCustomers = %d, want clamped 5", got)
	}

	m, _ = pressKey(t, m, "3")
	if got := m.State().TopNProducts; got != 3 {
		t.Fatalf("TopNProducts after navigation = %d, want 3", got)
	}
}

func TestModel_ArrowsIgnoredWithoutControl(t *testing.T) {
	m := sizedModel(t, 120, 40)
	before := m.State()
	m, _ = pressKey(t, m, "left")
	if m.State() != before {
		t.Fatalf("state changed on order value panel: %+v", m.State())
	}
}

func TestModel_QuitReturnsQuitCmd(t *testing.T) {
	m := sizedModel(t, 120, 40)
	_, cmd := pressKey(t, m, "q")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("cmd returned %T, want tea.QuitMsg", cmd())
	}
}

func TestModel_HelpToggleSwallowsNextKey(t *testing.T) {
	m := sizedModel(t, 120, 40)
	m, _ = pressKey(t, m, "?")
	if !strings.Contains(m.View(), "Press any key to dismiss") {
		t.Fatal("help overlay not shown")
	}
	m, _ = pressKey(t, m, "2")
	if m.State().Selected != insights.OrderValue {
		t.Fatal("key that dismissed help should not change the selection")
	}
	if strings.Contains(m.View(), "Press any key to dismiss") {
		t.Fatal("help overlay still shown")
	}
}

func TestModel_ViewShowsOnlySelectedPanel(t *testing.T) {
	m := sizedModel(t, 120, 60)
	headers := map[insights.Insight]string{}
	for _, in := range insights.All() {
		headers[in] = in.Header()
	}

	for i, in := range insights.All() {
		m, _ = pressKey(t, m, string(rune('1'+i)))
		view := m.View()
		for other, h := range headers {
			has := strings.Contains(view, h)
			if other == in && !has {
				t.Fatalf("%s view missing its header %q", in, h)
			}
			if other != in && has {
				t.Fatalf("%s view also shows %q", in, h)
			}
		}
		for _, want := range []string{insights.PageTitle, insights.PageCaption, insights.FooterNote} {
			if !strings.Contains(view, want) {
				t.Fatalf("%s view missing %q", in, want)
			}
		}
	}
}

func TestModel_ViewFitsTerminalHeight(t *testing.T) {
	m := sizedModel(t, 80, 24)
	m, _ = pressKey(t, m, "3")
	if got := lineCount(m.View()); got != 24 {
		t.Fatalf("view has %d lines, want 24", got)
	}
	if m.maxOffset() == 0 {
		t.Fatal("products panel should overflow a 24-line terminal")
	}

	m, _ = pressKey(t, m, "end")
	m, _ = pressKey(t, m, "down")
	if m.offset != 1 {
		t.Fatalf("offset = %d, want 1", m.offset)
	}
	m, _ = pressKey(t, m, "2")
	if m.offset != 0 {
		t.Fatalf("offset after switching panels = %d, want 0", m.offset)
	}
}

func TestModel_TooSmall(t *testing.T) {
	m := sizedModel(t, 30, 10)
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Fatalf("unexpected view for tiny terminal: %q", m.View())
	}
}

// instantThemeSaves removes the save debounce for the test.
func instantThemeSaves(t *testing.T) {
	t.Helper()
	prev := themeSaveDelay
	themeSaveDelay = 0
	t.Cleanup(func() { themeSaveDelay = prev })
}

// runCmd executes cmd and feeds its message back into m.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	updated, next := m.Update(cmd())
	return updated.(Model), next
}

func TestModel_ThemeKeyCyclesAndPersists(t *testing.T) {
	saved, savedIdx := snapshotThemeState()
	t.Cleanup(func() { restoreThemeState(saved, savedIdx) })
	instantThemeSaves(t)

	path := filepath.Join(t.TempDir(), "settings.json")
	updated, _ := NewModel(Options{ConfigPath: path}).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := updated.(Model)

	before := ActiveTheme().Name
	m, cmd := pressKey(t, m, "t")
	after := ActiveTheme().Name
	if after == before {
		t.Fatalf("theme did not change from %q", before)
	}

	m, cmd = runCmd(t, m, cmd) // debounce fires
	m, cmd = runCmd(t, m, cmd) // save completes
	if cmd != nil {
		t.Fatal("unexpected follow-up command after save")
	}
	if m.status != "theme saved" {
		t.Fatalf("status = %q, want theme saved", m.status)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Theme != after {
		t.Fatalf("saved theme = %q, want %q", cfg.Theme, after)
	}
}

func TestModel_ThemeBurstSavesOnlyLatest(t *testing.T) {
	saved, savedIdx := snapshotThemeState()
	t.Cleanup(func() { restoreThemeState(saved, savedIdx) })
	instantThemeSaves(t)

	path := filepath.Join(t.TempDir(), "settings.json")
	updated, _ := NewModel(Options{ConfigPath: path}).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := updated.(Model)

	m, first := pressKey(t, m, "t")
	middle := ActiveTheme().Name
	m, second := pressKey(t, m, "t")
	final := ActiveTheme().Name

	m, cmd := runCmd(t, m, first)
	if cmd != nil {
		t.Fatal("superseded save should not write the file")
	}

	// A reload of the earlier theme arriving before the latest save lands
	// must not undo the local change.
	updated, _ = m.Update(ThemeChangedMsg{Name: middle})
	m = updated.(Model)
	if ActiveTheme().Name != final {
		t.Fatalf("active theme = %q, want %q", ActiveTheme().Name, final)
	}

	m, cmd = runCmd(t, m, second)
	m, _ = runCmd(t, m, cmd)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Theme != final {
		t.Fatalf("saved theme = %q, want %q", cfg.Theme, final)
	}

	// Once the save is on disk, external edits apply again.
	external := "Grayscale"
	if final == external {
		external = "Nord"
	}
	updated, _ = m.Update(ThemeChangedMsg{Name: external})
	if ActiveTheme().Name != external {
		t.Fatalf("reload after save ignored, active = %q", ActiveTheme().Name)
	}
	_ = updated
}

func TestModel_ThemeKeyWithoutConfigPath(t *testing.T) {
	saved, savedIdx := snapshotThemeState()
	t.Cleanup(func() { restoreThemeState(saved, savedIdx) })

	m := sizedModel(t, 120, 40)
	before := ActiveTheme().Name
	_, cmd := pressKey(t, m, "t")
	if cmd != nil {
		t.Fatal("no save should be scheduled without a config path")
	}
	if ActiveTheme().Name == before {
		t.Fatal("theme did not change")
	}
}

func TestModel_ThemeChangedMsg(t *testing.T) {
	saved, savedIdx := snapshotThemeState()
	t.Cleanup(func() { restoreThemeState(saved, savedIdx) })

	m := sizedModel(t, 120, 40)
	updated, _ := m.Update(ThemeChangedMsg{Name: "nord"})
	m = updated.(Model)
	if ActiveTheme().Name != "Nord" {
		t.Fatalf("active theme = %q, want Nord", ActiveTheme().Name)
	}
	if m.status != "theme reloaded" {
		t.Fatalf("status = %q", m.status)
	}

	updated, _ = m.Update(ThemeChangedMsg{Name: "no such theme"})
	if ActiveTheme().Name != "Nord" {
		t.Fatal("unknown theme should leave the active theme alone")
	}
	_ = updated
}

func TestRenderSnapshot_ContainsWholePanel(t *testing.T) {
	s := Reduce(DefaultState(), SelectCategories())
	out := RenderSnapshot(s, 100, 8)
	for _, want := range []string{
		insights.PageTitle,
		insights.Categories.Header(),
		"Clothing",
		"Home & Kitchen",
		"204,204",
		insights.FooterNote,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("snapshot missing %q", want)
		}
	}
	if strings.Contains(out, insights.OrderValue.Header()) {
		t.Fatal("snapshot shows a panel that is not selected")
	}
}
