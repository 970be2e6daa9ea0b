package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/ecomdash/internal/insights"
	zone "github.com/lrstanley/bubblezone"
)

// waitForZone renders m and waits until the zone manager has registered id.
// Zones are recorded asynchronously after Scan.
func waitForZone(t *testing.T, m Model, id string) (string, *zone.ZoneInfo) {
	t.Helper()
	view := m.View()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if z := m.zones.Get(id); z != nil && !z.IsZero() {
			return view, z
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("zone %q never registered", id)
	return "", nil
}

// findInView returns the cell position of the first occurrence of needle in
// the plain-text view.
func findInView(t *testing.T, view, needle string) (x, y int) {
	t.Helper()
	for y, line := range strings.Split(ansi.Strip(view), "\n") {
		if i := strings.Index(line, needle); i >= 0 {
			return ansi.StringWidth(line[:i]), y
		}
	}
	t.Fatalf("%q not found in view", needle)
	return 0, 0
}

// sliderArrows locates the decrement and increment arrows of the top-N slider.
func sliderArrows(t *testing.T, view string) (decX, incX, y int) {
	t.Helper()
	for y, line := range strings.Split(ansi.Strip(view), "\n") {
		dec := strings.Index(line, "◀")
		inc := strings.LastIndex(line, "▶")
		if dec >= 0 && inc > dec {
			return ansi.StringWidth(line[:dec]), ansi.StringWidth(line[:inc]), y
		}
	}
	t.Fatal("slider not found in view")
	return 0, 0, 0
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	updated, cmd := m.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	})
	if cmd != nil {
		t.Fatal("click should not return a command")
	}
	return updated.(Model)
}

func buttonText(in insights.Insight) string {
	label := in.Button()
	if _, rest, ok := strings.Cut(label, " "); ok {
		return rest
	}
	return label
}

func TestMouseClickSelectsInsightButtons(t *testing.T) {
	m := sizedModel(t, 120, 50)
	order := []insights.Insight{insights.Products, insights.Categories, insights.Customers, insights.OrderValue}
	for _, in := range order {
		view, _ := waitForZone(t, m, insightZone(in))
		x, y := findInView(t, view, buttonText(in))
		m = click(t, m, x+2, y)
		if m.State().Selected != in {
			t.Fatalf("click on %q selected %q", buttonText(in), m.State().Selected)
		}
	}
}

func TestMouseClickSliderArrows(t *testing.T) {
	for _, tc := range []struct {
		key  string
		topN func(UIState) int
	}{
		{"3", func(s UIState) int { return s.TopNProducts }},
		{"4", func(s UIState) int { return s.TopNCustomers }},
	} {
		m := sizedModel(t, 120, 50)
		m, _ = pressKey(t, m, tc.key)

		view, _ := waitForZone(t, m, zoneTopNDec)
		decX, _, y := sliderArrows(t, view)
		m = click(t, m, decX, y)
		if got := tc.topN(m.State()); got != 4 {
			t.Fatalf("key %s: after ◀ top N = %d, want 4", tc.key, got)
		}

		view, _ = waitForZone(t, m, zoneTopNInc)
		_, incX, y := sliderArrows(t, view)
		m = click(t, m, incX, y)
		if got := tc.topN(m.State()); got != 5 {
			t.Fatalf("key %s: after ▶ top N = %d, want 5", tc.key, got)
		}

		// Already at the maximum: stays clamped.
		m = click(t, m, incX, y)
		if got := tc.topN(m.State()); got != 5 {
			t.Fatalf("key %s: ▶ past max gave %d", tc.key, got)
		}
	}
}

func TestMouseClickSliderStops(t *testing.T) {
	for _, key := range []string{"3", "4"} {
		m := sizedModel(t, 120, 50)
		m, _ = pressKey(t, m, key)
		for _, n := range []int{2, 1, 5} {
			_, z := waitForZone(t, m, topNStopZone(n))
			m = click(t, m, z.StartX, z.StartY)
			got, _ := m.State().TopN()
			if got != n {
				t.Fatalf("key %s: click on stop %d gave top N %d", key, n, got)
			}
		}
	}
}

func TestMouseClicksIgnoredWhileHelpOpen(t *testing.T) {
	m := sizedModel(t, 120, 50)
	m, _ = pressKey(t, m, "3")
	view, _ := waitForZone(t, m, zoneTopNDec)
	btnX, btnY := findInView(t, view, buttonText(insights.Categories))
	decX, _, sliderY := sliderArrows(t, view)

	m, _ = pressKey(t, m, "?")
	before := m.State()
	m = click(t, m, btnX+2, btnY)
	m = click(t, m, decX, sliderY)
	if m.State() != before {
		t.Fatalf("clicks under the help overlay changed state: %+v", m.State())
	}
}

func TestMouseSliderClickIgnoredWithoutControl(t *testing.T) {
	m := sizedModel(t, 120, 50)
	m, _ = pressKey(t, m, "3")
	view, _ := waitForZone(t, m, zoneTopNDec)
	decX, _, y := sliderArrows(t, view)

	m, _ = pressKey(t, m, "2")
	m.View()
	before := m.State()
	m = click(t, m, decX, y)
	if m.State() != before {
		t.Fatalf("click on categories panel changed state: %+v", m.State())
	}
	if m.State().TopNProducts != insights.DefaultTopN {
		t.Fatalf("TopNProducts = %d, want untouched %d", m.State().TopNProducts, insights.DefaultTopN)
	}
}

func TestMouseWheelScrollsPanel(t *testing.T) {
	m := sizedModel(t, 80, 24)
	m, _ = pressKey(t, m, "3")

	updated, _ := m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m = updated.(Model)
	if m.offset != 3 {
		t.Fatalf("offset = %d, want 3", m.offset)
	}

	updated, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	updated, _ = updated.(Model).Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := updated.(Model).offset; got != 0 {
		t.Fatalf("offset = %d, want clamped 0", got)
	}
}
