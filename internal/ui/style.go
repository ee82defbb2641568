// Package ui provides the terminal user interface of the countdown timer.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Warning:   lipgloss.AdaptiveColor{Light: "#D98E04", Dark: "#F5B041"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title            lipgloss.Style
	Minutes          lipgloss.Style
	Seconds          lipgloss.Style
	Clock            lipgloss.Style
	RunningStatus    lipgloss.Style
	IdleStatus       lipgloss.Style
	AdjustingStatus  lipgloss.Style
	SliderFill       lipgloss.Style
	SliderTrack      lipgloss.Style
	SliderKnob       lipgloss.Style
	SliderKnobActive lipgloss.Style
	Subtle           lipgloss.Style
	Help             lipgloss.Style
	Error            lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.Copy().
			Bold(true).
			Foreground(defaultColors.Highlight),

		Minutes: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Highlight),

		Seconds: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Special),

		Clock: base.Copy().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 2),

		RunningStatus: base.Copy().
			Foreground(defaultColors.Special),

		IdleStatus: base.Copy().
			Foreground(defaultColors.Subtle),

		AdjustingStatus: base.Copy().
			Foreground(defaultColors.Warning),

		SliderFill: lipgloss.NewStyle().
			Foreground(defaultColors.Highlight),

		SliderTrack: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		SliderKnob: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Highlight),

		SliderKnobActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(defaultColors.Warning),

		Subtle: lipgloss.NewStyle().
			Foreground(defaultColors.Subtle),

		Help: base.Copy().
			Foreground(defaultColors.Subtle),

		Error: base.Copy().
			Foreground(defaultColors.Error),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
