package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"
)

func TestProgramDragStartAndCancel(t *testing.T) {
	m, pool := newTestModel(0)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	waitFor := func(s string) {
		teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
			return bytes.Contains(out, []byte(s))
		}, teatest.WithDuration(3*time.Second), teatest.WithCheckInterval(20*time.Millisecond))
	}

	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	waitFor("release to start")

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor("Counting down")

	tm.Send(tea.KeyMsg{Type: tea.KeyLeft})
	waitFor("release to start")

	require.NoError(t, tm.Quit())
	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	require.True(t, ok)

	require.Equal(t, StateIdle, final.State())
	require.True(t, final.Slider.Tracking())
	require.Equal(t, 1, final.Slider.Value)
	require.Len(t, pool.playsOf(final.sounds.Tick), 1)
	require.GreaterOrEqual(t, pool.stopCount(), 2)
}
