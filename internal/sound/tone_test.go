package sound

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneBufferLength(t *testing.T) {
	format := beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}

	tests := []struct {
		name string
		tone Tone
	}{
		{name: "tick", tone: TickTone},
		{name: "bell", tone: BellTone},
		{name: "period shorter than length", tone: Tone{Label: "x", Freq: 100, Length: 200 * time.Millisecond, Period: 100 * time.Millisecond, Gain: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := tt.tone.Buffer(format)
			require.NoError(t, err)

			want := testRate.N(tt.tone.Period)
			if tt.tone.Period < tt.tone.Length {
				want = testRate.N(tt.tone.Length)
			}
			assert.Equal(t, want, buf.Len())
		})
	}
}

func TestTickToneIsSilentAfterClick(t *testing.T) {
	samples := make([][2]float64, testRate.N(time.Second))
	n, ok := TickTone.Streamer(testRate).Stream(samples)
	require.True(t, ok)
	require.Equal(t, len(samples), n)

	audible := testRate.N(TickTone.Length)
	var peak float64
	for _, s := range samples[:audible] {
		assert.LessOrEqual(t, abs(s[0]), TickTone.Gain)
		if v := abs(s[0]); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 0.0)

	for i, s := range samples[audible:] {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d after the click is not silent: %v", audible+i, s)
		}
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tick.wav")
	fileFormat := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, wav.Encode(f, shortTone.Streamer(fileFormat.SampleRate), fileFormat))
	require.NoError(t, f.Close())

	src := File(path)
	assert.Equal(t, "tick.wav", src.Name())

	buf, err := src.Buffer(beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2})
	require.NoError(t, err)
	assert.InDelta(t, testRate.N(shortTone.Period), buf.Len(), 16, "resampled length should match the clip duration")
}

func TestFileSourceErrors(t *testing.T) {
	format := beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}

	_, err := File(filepath.Join(t.TempDir(), "missing.wav")).Buffer(format)
	assert.ErrorContains(t, err, "open sound")

	bogus := filepath.Join(t.TempDir(), "bogus.wav")
	require.NoError(t, os.WriteFile(bogus, []byte("not a wav file"), 0o644))
	_, err = File(bogus).Buffer(format)
	assert.ErrorContains(t, err, "decode sound")
}
