package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone is a synthesized clip: a decaying sine with an optional octave
// overtone, followed by silence up to Period.
type Tone struct {
	Label    string
	Freq     float64
	Overtone float64
	Length   time.Duration
	Period   time.Duration
	Decay    float64
	Gain     float64
}

// TickTone is a short click once per second, so looping it ticks in step with
// the countdown.
var TickTone = Tone{
	Label:  "tick",
	Freq:   1200,
	Length: 30 * time.Millisecond,
	Period: time.Second,
	Decay:  60,
	Gain:   0.5,
}

// BellTone is a two second ring.
var BellTone = Tone{
	Label:    "bell",
	Freq:     880,
	Overtone: 0.4,
	Length:   2 * time.Second,
	Period:   2 * time.Second,
	Decay:    2.5,
	Gain:     0.6,
}

// Name implements Source.
func (t Tone) Name() string { return t.Label }

// Buffer implements Source.
func (t Tone) Buffer(format beep.Format) (*beep.Buffer, error) {
	buf := beep.NewBuffer(format)
	buf.Append(t.Streamer(format.SampleRate))
	return buf, nil
}

// Streamer returns a finite streamer of the tone at sr.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	period := t.Period
	if period < t.Length {
		period = t.Length
	}
	total := sr.N(period)
	audible := sr.N(t.Length)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			var v float64
			if pos < audible {
				v = t.sample(float64(pos) / float64(sr))
			}
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}

func (t Tone) sample(sec float64) float64 {
	envelope := math.Exp(-sec * t.Decay)
	s := math.Sin(2*math.Pi*t.Freq*sec) + t.Overtone*math.Sin(4*math.Pi*t.Freq*sec)
	return t.Gain * envelope * s / (1 + t.Overtone)
}

// DurationMillis is the audible length in milliseconds, used by the system
// beep pool.
func (t Tone) DurationMillis() int {
	return int(t.Length / time.Millisecond)
}
