package sound

// Nop is a Pool that loads handles but never makes a sound. It backs --mute.
type Nop struct {
	next SoundID
}

func (p *Nop) Load(Source) (SoundID, error) {
	p.next++
	return p.next, nil
}

func (p *Nop) Play(SoundID, PlayOptions) StreamID { return 0 }
func (p *Nop) StopAll() {}
func (p *Nop) AutoPause() {}
func (p *Nop) AutoResume() {}
func (p *Nop) Release() error { return nil }
