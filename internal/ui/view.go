package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	var b strings.Builder

	title := "Countdown"
	if m.version != "" {
		title += " " + m.version
	}
	b.WriteString(Current.Title.Render(title))
	b.WriteString("\n\n")

	clock := lipgloss.JoinHorizontal(lipgloss.Center,
		Current.Minutes.Render(m.Minutes),
		" ",
		Current.Seconds.Render(m.Seconds),
	)
	b.WriteString(Current.Clock.Render(clock))
	b.WriteString("\n\n")

	b.WriteString(" " + markSlider(m) + " " + Current.Subtle.Render(fmt.Sprintf("%d min", m.Slider.Value)))
	b.WriteString("\n")
	b.WriteString(" " + m.Slider.Scale())
	b.WriteString("\n\n")

	b.WriteString(statusView(m))
	b.WriteString("\n\n")

	b.WriteString(Current.Help.Render(m.help.View(m.keys.ForState(m.State(), m.Slider.tracking))))
	return b.String()
}

func markSlider(m Model) string {
	if m.zones == nil {
		return m.Slider.Bar()
	}
	return m.zones.Mark(sliderZoneID, m.Slider.Bar())
}

func statusView(m Model) string {
	switch {
	case m.Slider.tracking:
		return Current.AdjustingStatus.Render("Adjusting… release to start")
	case m.State() == StateRunning:
		return Current.RunningStatus.Render("Counting down")
	default:
		return Current.IdleStatus.Render("Drag the slider to set a time")
	}
}
