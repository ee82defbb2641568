package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stigoleg/countdown/internal/countdown"
	"github.com/stigoleg/countdown/internal/util"
)

const bigStep = 5

// suspendMsg asks the screen to pause audio and suspend the program.
type suspendMsg struct{}

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.Slider.Width = sliderWidth(msg.Width)
		return m, nil

	case tea.BlurMsg:
		m.sounds.Pool.AutoPause()
		return m, nil

	case tea.FocusMsg, tea.ResumeMsg:
		m.sounds.Pool.AutoResume()
		return m, nil

	case suspendMsg:
		m.sounds.Pool.AutoPause()
		return m, tea.Suspend

	case tea.KeyMsg:
		return handleKey(msg, m)

	case tea.MouseMsg:
		return handleMouse(msg, m)
	}

	if m.session == nil {
		return m, nil
	}

	s, ev, cmd := m.session.Update(msg)
	m.session = &s
	switch ev {
	case countdown.EventTick:
		m = m.updateRemainTimes(s.Remaining())
		m = m.updateSlider(s.Remaining())
		return m, cmd
	case countdown.EventFinish:
		return m.completeCountDown()
	}
	return m, cmd
}

func handleKey(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case m.Slider.tracking && key.Matches(msg, m.keys.Cancel):
		return cancelTracking(m), nil

	case key.Matches(msg, m.keys.Quit):
		if m.ShowHelp && msg.String() != "ctrl+c" {
			m.ShowHelp = false
			m.help.ShowAll = false
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleHelp):
		m.ShowHelp = !m.ShowHelp
		m.help.ShowAll = m.ShowHelp
		return m, nil

	case key.Matches(msg, m.keys.Suspend):
		return Update(suspendMsg{}, m)

	case key.Matches(msg, m.keys.Decrease):
		return drag(m, m.Slider.Value-1), nil
	case key.Matches(msg, m.keys.Increase):
		return drag(m, m.Slider.Value+1), nil
	case key.Matches(msg, m.keys.DecreaseBig):
		return drag(m, m.Slider.Value-bigStep), nil
	case key.Matches(msg, m.keys.IncreaseBig):
		return drag(m, m.Slider.Value+bigStep), nil
	case key.Matches(msg, m.keys.Min):
		return drag(m, 0), nil
	case key.Matches(msg, m.keys.Max):
		return drag(m, m.Slider.Max), nil

	case key.Matches(msg, m.keys.Release):
		if !m.Slider.tracking {
			return m, nil
		}
		return stopTracking(m)
	}

	return m, nil
}

func handleMouse(msg tea.MouseMsg, m Model) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		x, ok := sliderColumn(m.zones, msg, true)
		if !ok {
			return m, nil
		}
		return drag(m, m.Slider.ValueAt(x)), nil

	case tea.MouseActionMotion:
		if !m.Slider.tracking {
			return m, nil
		}
		x, ok := sliderColumn(m.zones, msg, false)
		if !ok {
			return m, nil
		}
		return moveSlider(m, m.Slider.ValueAt(x)), nil

	case tea.MouseActionRelease:
		if !m.Slider.tracking {
			return m, nil
		}
		return stopTracking(m)
	}

	return m, nil
}

// drag begins a drag if none is in progress, then moves the slider.
func drag(m Model, value int) Model {
	if !m.Slider.tracking {
		m = startTracking(m)
	}
	return moveSlider(m, value)
}

// startTracking cancels any running countdown when the user grabs the slider.
func startTracking(m Model) Model {
	m = m.stopCountDown()
	m.Slider.tracking = true
	return m
}

// moveSlider follows a user change of the slider with the labels.
func moveSlider(m Model, value int) Model {
	m.Slider = m.Slider.SetValue(value)
	return m.updateRemainTimes(util.MinutesToDuration(m.Slider.Value))
}

// cancelTracking abandons a drag. The countdown it replaced is already gone,
// so the screen returns to idle at zero.
func cancelTracking(m Model) Model {
	m.Slider.tracking = false
	m = moveSlider(m, 0)
	return m.stopCountDown()
}

// stopTracking starts a countdown for the released value, or stays idle at zero.
func stopTracking(m Model) (Model, tea.Cmd) {
	m.Slider.tracking = false
	if m.Slider.Value == 0 {
		return m.stopCountDown(), nil
	}
	return m.startCountDown()
}
