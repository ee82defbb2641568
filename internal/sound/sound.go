// Package sound provides the sound pool used by the timer screen: a small
// set of clips loaded once, played by handle, paused and resumed together and
// released on teardown.
package sound

import "github.com/faiface/beep"

// SoundID identifies a loaded clip. The zero value means nothing is loaded.
type SoundID int

// Valid reports whether the handle refers to a loaded clip.
func (id SoundID) Valid() bool { return id > 0 }

// StreamID identifies one playback of a clip. Zero means nothing is playing.
type StreamID int

// PlayOptions controls a single playback.
type PlayOptions struct {
	// Volume is linear, 0 (silent) to 1 (unit).
	Volume float64
	// Loop is the number of extra repeats. Negative loops forever.
	Loop int
}

// Once plays a clip a single time at volume.
func Once(volume float64) PlayOptions {
	return PlayOptions{Volume: volume}
}

// Forever loops a clip until it is stopped.
func Forever(volume float64) PlayOptions {
	return PlayOptions{Volume: volume, Loop: -1}
}

// Source produces the PCM data of a clip.
type Source interface {
	Name() string
	Buffer(format beep.Format) (*beep.Buffer, error)
}

// Pool loads and plays clips.
type Pool interface {
	// Load decodes src and returns its handle.
	Load(src Source) (SoundID, error)
	// Play starts a new stream of id. Invalid handles play nothing.
	Play(id SoundID, opts PlayOptions) StreamID
	// StopAll ends every active stream.
	StopAll()
	// AutoPause pauses every active stream.
	AutoPause()
	// AutoResume resumes the streams paused by AutoPause.
	AutoResume()
	// Release stops playback and frees all loaded clips.
	Release() error
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
