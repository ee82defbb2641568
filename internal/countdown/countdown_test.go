package countdown

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func tickFor(s Session) timer.TickMsg {
	return timer.TickMsg{ID: s.ID()}
}

func TestStart(t *testing.T) {
	s, cmd := Start(25 * time.Minute)

	require.NotNil(t, cmd, "expected a command scheduling the first tick")
	assert.Equal(t, 25*time.Minute, s.Total())
	assert.Equal(t, 25*time.Minute, s.Remaining())
	assert.Equal(t, int64(1500000), s.Remaining().Milliseconds())
	assert.True(t, s.Running())
}

func TestStartZeroFinishesImmediately(t *testing.T) {
	s, cmd := Start(0)
	require.NotNil(t, cmd)

	msg := cmd()
	timeout, ok := msg.(timer.TimeoutMsg)
	require.True(t, ok, "expected TimeoutMsg, got %T", msg)
	assert.Equal(t, s.ID(), timeout.ID)

	_, ev, _ := s.Update(msg)
	assert.Equal(t, EventFinish, ev)
}

func TestSessionsHaveDistinctIDs(t *testing.T) {
	a, _ := Start(time.Minute)
	b, _ := Start(time.Minute)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestTickDecrementsOneInterval(t *testing.T) {
	s, _ := Start(time.Minute)

	s, ev, cmd := s.Update(tickFor(s))

	assert.Equal(t, EventTick, ev)
	assert.NotNil(t, cmd)
	assert.Equal(t, 59*time.Second, s.Remaining())
}

func TestOneMinuteSessionFinishesAfterSixtyTicks(t *testing.T) {
	s, _ := Start(time.Minute)

	var ev Event
	for i := 0; i < 59; i++ {
		s, ev, _ = s.Update(tickFor(s))
		require.Equal(t, EventTick, ev, "tick %d", i+1)
	}
	assert.Equal(t, time.Second, s.Remaining())

	s, ev, _ = s.Update(tickFor(s))
	assert.Equal(t, EventNone, ev, "the last tick defers to the timeout message")
	assert.Equal(t, time.Duration(0), s.Remaining())
	assert.False(t, s.Running())

	_, ev, _ = s.Update(timer.TimeoutMsg{ID: s.ID()})
	assert.Equal(t, EventFinish, ev)
}

func TestTicksAfterTimeoutAreIgnored(t *testing.T) {
	s, _ := Start(time.Second)
	s, _, _ = s.Update(tickFor(s))
	require.False(t, s.Running())

	s, ev, cmd := s.Update(tickFor(s))
	assert.Equal(t, EventNone, ev)
	assert.Nil(t, cmd)
	assert.Equal(t, time.Duration(0), s.Remaining())
}

func TestForeignMessagesAreIgnored(t *testing.T) {
	old, _ := Start(time.Minute)
	s, _ := Start(time.Minute)

	tests := []struct {
		name string
		msg  any
	}{
		{name: "tick from another session", msg: timer.TickMsg{ID: old.ID()}},
		{name: "tick without id", msg: timer.TickMsg{}},
		{name: "timeout from another session", msg: timer.TimeoutMsg{ID: old.ID()}},
		{name: "unrelated message", msg: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ev, cmd := s.Update(tt.msg)
			assert.Equal(t, EventNone, ev)
			assert.Nil(t, cmd)
			assert.Equal(t, time.Minute, got.Remaining())
		})
	}
}

func TestRemainingIsMultipleOfInterval(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		minutes := rapid.IntRange(1, 90).Draw(t, "minutes")
		total := time.Duration(minutes) * time.Minute
		ticks := rapid.IntRange(0, minutes*60).Draw(t, "ticks")

		s, _ := Start(total)
		for i := 0; i < ticks; i++ {
			s, _, _ = s.Update(tickFor(s))
		}

		remaining := s.Remaining()
		if remaining < 0 {
			t.Fatalf("remaining %v is negative", remaining)
		}
		if remaining%Interval != 0 {
			t.Fatalf("remaining %v is not a multiple of %v", remaining, Interval)
		}
		if want := total - time.Duration(ticks)*Interval; remaining != want {
			t.Fatalf("remaining = %v after %d ticks, want %v", remaining, ticks, want)
		}
	})
}
