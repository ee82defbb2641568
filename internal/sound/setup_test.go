package sound

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSounds(t *testing.T) {
	t.Run("built-in tones", func(t *testing.T) {
		s := LoadSounds(&Nop{}, Options{})
		assert.True(t, s.Tick.Valid())
		assert.True(t, s.Bell.Valid())
		assert.NotEqual(t, s.Tick, s.Bell)
	})

	t.Run("unreadable file leaves handle unloaded", func(t *testing.T) {
		p := newSpeaker(&fakeOutput{}, testRate)
		s := LoadSounds(p, Options{BellFile: filepath.Join(t.TempDir(), "missing.wav")})
		assert.True(t, s.Tick.Valid())
		assert.False(t, s.Bell.Valid())
		assert.Zero(t, p.Play(s.Bell, Once(1)))
	})
}

func TestSetupMute(t *testing.T) {
	s := Setup(Options{Mute: true})
	_, ok := s.Pool.(*Nop)
	assert.True(t, ok, "mute should select the silent pool, got %T", s.Pool)
	assert.True(t, s.Tick.Valid())
}

type beepRecorder struct {
	mu    sync.Mutex
	calls []float64
	done  chan struct{}
}

func (r *beepRecorder) beep(freq float64, _ int) error {
	r.mu.Lock()
	r.calls = append(r.calls, freq)
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func TestSystemPool(t *testing.T) {
	rec := &beepRecorder{done: make(chan struct{}, 4)}
	p := NewSystem()
	p.beep = rec.beep

	tick, err := p.Load(TickTone)
	require.NoError(t, err)
	bell, err := p.Load(BellTone)
	require.NoError(t, err)

	assert.Zero(t, p.Play(tick, Forever(1)), "loops are not supported")
	assert.Zero(t, p.Play(bell, Once(0)), "silent plays are skipped")

	p.AutoPause()
	assert.Zero(t, p.Play(bell, Once(1)), "paused pool drops beeps")
	p.AutoResume()

	require.NotZero(t, p.Play(bell, Once(1)))
	select {
	case <-rec.done:
	case <-time.After(time.Second):
		t.Fatal("system beep was not played")
	}

	rec.mu.Lock()
	assert.Equal(t, []float64{BellTone.Freq}, rec.calls)
	rec.mu.Unlock()

	require.NoError(t, p.Release())
	assert.Zero(t, p.Play(bell, Once(1)))
}
