package sound

import (
	"log"
	"sync"

	"github.com/gen2brain/beeep"
)

type systemSound struct {
	name     string
	freq     float64
	duration int
}

// System is a Pool backed by the platform beep. It is used when no audio
// device can be opened. Looping playback is not supported and is skipped.
type System struct {
	mu         sync.Mutex
	sounds     map[SoundID]systemSound
	nextSound  SoundID
	nextStream StreamID
	paused     bool
	released   bool

	beep func(freq float64, duration int) error
}

// NewSystem returns a pool that plays through beeep.
func NewSystem() *System {
	return &System{
		sounds: make(map[SoundID]systemSound),
		beep:   beeep.Beep,
	}
}

// Load implements Pool. Tones keep their pitch and length, any other source
// plays as the default system beep.
func (p *System) Load(src Source) (SoundID, error) {
	s := systemSound{
		name:     src.Name(),
		freq:     beeep.DefaultFreq,
		duration: beeep.DefaultDuration,
	}
	if tone, ok := src.(Tone); ok {
		s.freq = tone.Freq
		s.duration = tone.DurationMillis()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextSound++
	p.sounds[p.nextSound] = s
	return p.nextSound, nil
}

// Play implements Pool.
func (p *System) Play(id SoundID, opts PlayOptions) StreamID {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.sounds[id]
	if !ok || p.released || p.paused || clampVolume(opts.Volume) == 0 {
		return 0
	}
	if opts.Loop != 0 {
		log.Printf("sound: system beep cannot loop %s, skipping", s.name)
		return 0
	}

	p.nextStream++
	beepFn := p.beep
	go func() {
		if err := beepFn(s.freq, s.duration); err != nil {
			log.Printf("sound: system beep for %s failed: %v", s.name, err)
		}
	}()
	return p.nextStream
}

// StopAll implements Pool. System beeps are too short to interrupt.
func (p *System) StopAll() {}

// AutoPause implements Pool. Beeps requested while paused are dropped.
func (p *System) AutoPause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = true
}

// AutoResume implements Pool.
func (p *System) AutoResume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = false
}

// Release implements Pool.
func (p *System) Release() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sounds = make(map[SoundID]systemSound)
	p.released = true
	return nil
}
