package sound

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// DefaultSampleRate is the mixing rate of the speaker pool.
const DefaultSampleRate = beep.SampleRate(44100)

const bufferDuration = 100 * time.Millisecond

// output is the audio device the pool mixes into.
type output interface {
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Clear()
	Close()
}

type deviceOutput struct{}

func (deviceOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (deviceOutput) Lock() { speaker.Lock() }
func (deviceOutput) Unlock() { speaker.Unlock() }
func (deviceOutput) Clear() { speaker.Clear() }
func (deviceOutput) Close() { speaker.Close() }

type stream struct {
	ctrl       *beep.Ctrl
	autoPaused bool
}

// Speaker is a Pool that mixes clips on the default audio device.
//
// Lock order is output first, then mu. Stream completion callbacks run on the
// speaker goroutine with the output lock already held.
type Speaker struct {
	mu         sync.Mutex
	out        output
	format     beep.Format
	sounds     map[SoundID]*beep.Buffer
	streams    map[StreamID]*stream
	nextSound  SoundID
	nextStream StreamID
	released   bool
}

// NewSpeaker opens the audio device at sampleRate.
func NewSpeaker(sampleRate beep.SampleRate) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(bufferDuration)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return newSpeaker(deviceOutput{}, sampleRate), nil
}

func newSpeaker(out output, sampleRate beep.SampleRate) *Speaker {
	return &Speaker{
		out:     out,
		format:  beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2},
		sounds:  make(map[SoundID]*beep.Buffer),
		streams: make(map[StreamID]*stream),
	}
}

// Load implements Pool.
func (p *Speaker) Load(src Source) (SoundID, error) {
	buf, err := src.Buffer(p.format)
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return 0, fmt.Errorf("load %s: pool released", src.Name())
	}
	p.nextSound++
	p.sounds[p.nextSound] = buf
	log.Printf("sound: loaded %s (%d samples) as %d", src.Name(), buf.Len(), p.nextSound)
	return p.nextSound, nil
}

// Play implements Pool.
func (p *Speaker) Play(id SoundID, opts PlayOptions) StreamID {
	p.mu.Lock()
	buf, ok := p.sounds[id]
	if !ok || p.released {
		p.mu.Unlock()
		return 0
	}

	count := opts.Loop + 1
	if opts.Loop < 0 {
		count = -1
	}
	ctrl := &beep.Ctrl{
		Streamer: withVolume(beep.Loop(count, buf.Streamer(0, buf.Len())), opts.Volume),
	}
	p.nextStream++
	sid := p.nextStream
	p.streams[sid] = &stream{ctrl: ctrl}
	p.mu.Unlock()

	p.out.Play(beep.Seq(ctrl, beep.Callback(func() { p.retire(sid) })))
	return sid
}

func (p *Speaker) retire(sid StreamID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.streams, sid)
}

// Active returns the number of streams that have not finished or been stopped.
func (p *Speaker) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.streams)
}

// StopAll implements Pool.
func (p *Speaker) StopAll() {
	p.out.Lock()
	defer p.out.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Speaker) stopLocked() {
	for sid, s := range p.streams {
		// A nil streamer ends the Ctrl, which drains it from the mixer.
		s.ctrl.Streamer = nil
		delete(p.streams, sid)
	}
}

// AutoPause implements Pool.
func (p *Speaker) AutoPause() {
	p.out.Lock()
	defer p.out.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.streams {
		if !s.ctrl.Paused {
			s.ctrl.Paused = true
			s.autoPaused = true
		}
	}
}

// AutoResume implements Pool.
func (p *Speaker) AutoResume() {
	p.out.Lock()
	defer p.out.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.streams {
		if s.autoPaused {
			s.ctrl.Paused = false
			s.autoPaused = false
		}
	}
}

// Release implements Pool.
func (p *Speaker) Release() error {
	p.out.Lock()
	p.mu.Lock()
	if p.released {
		p.mu.Unlock()
		p.out.Unlock()
		return nil
	}
	p.stopLocked()
	p.sounds = make(map[SoundID]*beep.Buffer)
	p.released = true
	p.mu.Unlock()
	p.out.Unlock()

	p.out.Clear()
	p.out.Close()
	log.Printf("sound: speaker released")
	return nil
}

// withVolume scales s by a linear volume.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	volume = clampVolume(volume)
	if volume == 1 {
		return s
	}
	if volume == 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
