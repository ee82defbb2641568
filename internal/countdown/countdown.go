// Package countdown provides the single-shot countdown session that drives
// the timer screen. A session ticks once per Interval on the bubbletea event
// loop and reports when it reaches zero.
package countdown

import (
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// Interval is the period between tick events.
const Interval = time.Second

// Event describes what a message meant for a session.
type Event int

const (
	// EventNone means the message was not for this session or changed nothing visible.
	EventNone Event = iota
	// EventTick means one interval elapsed and time remains.
	EventTick
	// EventFinish means the session reached zero.
	EventFinish
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventTick:
		return "Tick"
	case EventFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// Session is one countdown from a selected duration to zero. Once a session
// is dropped by its owner, messages addressed to it are ignored by any newer
// session because every session carries its own timer ID.
type Session struct {
	timer timer.Model
	total time.Duration
}

// Start creates a running session for total and returns the command that
// schedules its first tick.
func Start(total time.Duration) (Session, tea.Cmd) {
	if total < 0 {
		total = 0
	}
	s := Session{
		timer: timer.NewWithInterval(total, Interval),
		total: total,
	}
	if total == 0 {
		id := s.timer.ID()
		return s, func() tea.Msg { return timer.TimeoutMsg{ID: id} }
	}
	return s, s.timer.Init()
}

// ID returns the identifier carried by this session's messages.
func (s Session) ID() int {
	return s.timer.ID()
}

// Total returns the duration the session was started with.
func (s Session) Total() time.Duration {
	return s.total
}

// Remaining returns the time left, never negative.
func (s Session) Remaining() time.Duration {
	if s.timer.Timeout < 0 {
		return 0
	}
	return s.timer.Timeout
}

// Running reports whether the session still has time left.
func (s Session) Running() bool {
	return s.timer.Running()
}

// Update feeds a message to the session.
func (s Session) Update(msg tea.Msg) (Session, Event, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		if msg.ID != s.timer.ID() || !s.timer.Running() {
			return s, EventNone, nil
		}
		var cmd tea.Cmd
		s.timer, cmd = s.timer.Update(msg)
		if s.timer.Timedout() {
			// The finish event arrives as a TimeoutMsg from cmd.
			return s, EventNone, cmd
		}
		return s, EventTick, cmd

	case timer.TimeoutMsg:
		if msg.ID != s.timer.ID() {
			return s, EventNone, nil
		}
		return s, EventFinish, nil
	}

	return s, EventNone, nil
}
