package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const (
	sliderZoneID       = "slider"
	defaultSliderWidth = 40
	minSliderWidth     = 10
	maxSliderWidth     = 60
)

// Slider is an integer range control from 0 to Max. Tracking is true while
// the user drags it.
type Slider struct {
	Value    int
	Max      int
	Width    int
	tracking bool
}

// NewSlider returns a slider at zero.
func NewSlider(maximum int) Slider {
	if maximum < 1 {
		maximum = 1
	}
	return Slider{Max: maximum, Width: defaultSliderWidth}
}

// Tracking reports whether a drag is in progress.
func (s Slider) Tracking() bool { return s.tracking }

// SetValue clamps v into range.
func (s Slider) SetValue(v int) Slider {
	switch {
	case v < 0:
		v = 0
	case v > s.Max:
		v = s.Max
	}
	s.Value = v
	return s
}

// ValueAt maps a column on the bar to a value, clamping columns outside it.
func (s Slider) ValueAt(x int) int {
	if s.Width <= 1 {
		return s.Value
	}
	if x < 0 {
		x = 0
	}
	if x > s.Width-1 {
		x = s.Width - 1
	}
	return (x*s.Max + (s.Width-1)/2) / (s.Width - 1)
}

// knob returns the column the knob is drawn at.
func (s Slider) knob() int {
	if s.Max == 0 || s.Width <= 1 {
		return 0
	}
	return (s.Value*(s.Width-1) + s.Max/2) / s.Max
}

// Bar renders the track with the knob.
func (s Slider) Bar() string {
	knob := s.knob()
	var b strings.Builder
	b.WriteString(Current.SliderFill.Render(strings.Repeat("━", knob)))
	if s.tracking {
		b.WriteString(Current.SliderKnobActive.Render("●"))
	} else {
		b.WriteString(Current.SliderKnob.Render("●"))
	}
	if rest := s.Width - knob - 1; rest > 0 {
		b.WriteString(Current.SliderTrack.Render(strings.Repeat("─", rest)))
	}
	return b.String()
}

// Scale renders the range labels under the bar.
func (s Slider) Scale() string {
	left, right := "0", fmt.Sprintf("%d", s.Max)
	gap := s.Width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return Current.Subtle.Render(left + strings.Repeat(" ", gap) + right)
}

func sliderWidth(termWidth int) int {
	w := termWidth - 20
	switch {
	case w < minSliderWidth:
		return minSliderWidth
	case w > maxSliderWidth:
		return maxSliderWidth
	default:
		return w
	}
}

// sliderColumn returns the mouse column relative to the slider bar. ok is
// false when the bar has not been rendered yet or, with requireInside, when
// the event is outside it.
func sliderColumn(zones *zone.Manager, msg tea.MouseMsg, requireInside bool) (int, bool) {
	if zones == nil {
		return 0, false
	}
	z := zones.Get(sliderZoneID)
	if z == nil || z.IsZero() {
		return 0, false
	}
	if requireInside && !z.InBounds(msg) {
		return 0, false
	}
	return msg.X - z.StartX, true
}
