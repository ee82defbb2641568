package sound

import (
	"log"
)

// Options selects the pool and clips for the timer screen.
type Options struct {
	Mute     bool
	TickFile string
	BellFile string
}

// Sounds is the pool together with the two handles the timer screen plays.
// A handle that failed to load stays zero.
type Sounds struct {
	Pool Pool
	Tick SoundID
	Bell SoundID
}

// Setup opens the speaker, falling back to the system beep, and loads the
// tick and bell clips.
func Setup(opts Options) Sounds {
	var pool Pool
	switch {
	case opts.Mute:
		pool = &Nop{}
	default:
		sp, err := NewSpeaker(DefaultSampleRate)
		if err != nil {
			log.Printf("sound: %v, falling back to system beep", err)
			pool = NewSystem()
		} else {
			pool = sp
		}
	}
	return LoadSounds(pool, opts)
}

// LoadSounds loads the tick and bell clips into pool. Files override the
// built-in tones.
func LoadSounds(pool Pool, opts Options) Sounds {
	return Sounds{
		Pool: pool,
		Tick: load(pool, source(opts.TickFile, TickTone)),
		Bell: load(pool, source(opts.BellFile, BellTone)),
	}
}

func source(path string, fallback Tone) Source {
	if path != "" {
		return File(path)
	}
	return fallback
}

func load(pool Pool, src Source) SoundID {
	id, err := pool.Load(src)
	if err != nil {
		log.Printf("sound: failed to load %s: %v", src.Name(), err)
		return 0
	}
	return id
}
