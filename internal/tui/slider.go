package tui

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"
)

// topNControl describes a bounded integer range control.
type topNControl struct {
	Label string
	Value int
	Min   int
	Max   int
}

const (
	zoneTopNDec = "topn-dec"
	zoneTopNInc = "topn-inc"
)

func topNStopZone(n int) string { return fmt.Sprintf("topn-%d", n) }

// renderTopNSlider draws the label with the current value and a track with one
// stop per allowed value. Stops and arrows are click targets when zones is set.
func renderTopNSlider(ctl topNControl, w int, zones *zone.Manager) string {
	mark := func(id, s string) string {
		if zones == nil {
			return s
		}
		return zones.Mark(id, s)
	}

	head := chartIndent + sliderLabelStyle.Render(ctl.Label) + "  " +
		sliderValueStyle.Render(fmt.Sprintf("%d", ctl.Value))

	stops := ctl.Max - ctl.Min + 1
	if stops < 1 {
		return head
	}

	minLabel := fmt.Sprintf("%d", ctl.Min)
	maxLabel := fmt.Sprintf("%d", ctl.Max)
	trackW := w - len(chartIndent) - len(minLabel) - len(maxLabel) - 6
	gap := 1
	if stops > 1 {
		gap = clamp((trackW-stops)/(stops-1), 1, 8)
	}

	filled := sliderValueStyle
	rail := sepStyle

	var track strings.Builder
	for i := 0; i < stops; i++ {
		n := ctl.Min + i
		if i > 0 {
			if n <= ctl.Value {
				track.WriteString(filled.Render(strings.Repeat("━", gap)))
			} else {
				track.WriteString(rail.Render(strings.Repeat("─", gap)))
			}
		}
		stop := rail.Render("○")
		switch {
		case n == ctl.Value:
			stop = filled.Render("●")
		case n < ctl.Value:
			stop = filled.Render("•")
		}
		track.WriteString(mark(topNStopZone(n), stop))
	}

	line := chartIndent +
		mark(zoneTopNDec, dimStyle.Render(minLabel+" ◀")) + " " +
		track.String() + " " +
		mark(zoneTopNInc, dimStyle.Render("▶ "+maxLabel))

	return head + "\n" + line
}
