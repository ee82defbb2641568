package sound

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// resampleQuality is passed to beep.Resample when a file's rate differs from
// the pool's.
const resampleQuality = 4

// File is a WAV clip on disk.
type File string

// Name implements Source.
func (f File) Name() string { return filepath.Base(string(f)) }

// Buffer implements Source.
func (f File) Buffer(format beep.Format) (*beep.Buffer, error) {
	fh, err := os.Open(string(f))
	if err != nil {
		return nil, fmt.Errorf("open sound %s: %w", f, err)
	}

	streamer, fileFormat, err := wav.Decode(fh)
	if err != nil {
		fh.Close()
		return nil, fmt.Errorf("decode sound %s: %w", f, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != format.SampleRate {
		s = beep.Resample(resampleQuality, fileFormat.SampleRate, format.SampleRate, streamer)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read sound %s: %w", f, err)
	}
	return buf, nil
}
