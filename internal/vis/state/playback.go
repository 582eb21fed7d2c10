package state

import "time"

// PlaybackState manages frame-by-frame playback of a recorded run. Unlike
// a continuous-time animation, a mine only has as many distinct states as
// moves in its program, so playback advances in whole frames rather than
// interpolating between them.
type PlaybackState struct {
	Frame      int     // Current frame index
	MaxFrame   int     // Last valid frame index
	Speed      float64 // Frames per second
	Playing    bool    // Whether playback is active
	lastUpdate time.Time
	accum      float64
}

// NewPlaybackState creates a new playback state for a recording with
// maxFrame as its last valid index.
func NewPlaybackState(maxFrame int) *PlaybackState {
	return &PlaybackState{
		MaxFrame:   maxFrame,
		Speed:      4,
		lastUpdate: time.Now(),
	}
}

// TogglePlay toggles playback on/off.
func (p *PlaybackState) TogglePlay() {
	p.Playing = !p.Playing
	if p.Playing {
		p.lastUpdate = time.Now()
		if p.Frame >= p.MaxFrame {
			p.Frame = 0
		}
	}
}

// Play starts playback.
func (p *PlaybackState) Play() {
	p.Playing = true
	p.lastUpdate = time.Now()
}

// Pause stops playback.
func (p *PlaybackState) Pause() {
	p.Playing = false
}

// Reset rewinds to the first frame.
func (p *PlaybackState) Reset() {
	p.Frame = 0
	p.accum = 0
	p.Playing = false
}

// Advance steps playback forward by however many frames elapsed since the
// last call, at the current Speed.
func (p *PlaybackState) Advance() {
	if !p.Playing {
		return
	}

	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	p.lastUpdate = now

	p.accum += elapsed * p.Speed
	for p.accum >= 1 {
		p.accum--
		p.Frame++
		if p.Frame >= p.MaxFrame {
			p.Frame = p.MaxFrame
			p.Playing = false
			break
		}
	}
}

// SetFrame jumps directly to frame n, clamped to [0, MaxFrame].
func (p *PlaybackState) SetFrame(n int) {
	if n < 0 {
		n = 0
	}
	if n > p.MaxFrame {
		n = p.MaxFrame
	}
	p.Frame = n
}

// StepForward advances by one frame and pauses.
func (p *PlaybackState) StepForward() {
	p.Pause()
	p.SetFrame(p.Frame + 1)
}

// StepBack rewinds by one frame and pauses.
func (p *PlaybackState) StepBack() {
	p.Pause()
	p.SetFrame(p.Frame - 1)
}

// SetSpeed sets the playback speed in frames per second.
func (p *PlaybackState) SetSpeed(speed float64) {
	if speed < 0.5 {
		speed = 0.5
	}
	if speed > 60 {
		speed = 60
	}
	p.Speed = speed
}

// Progress returns current progress as 0-1.
func (p *PlaybackState) Progress() float64 {
	if p.MaxFrame <= 0 {
		return 0
	}
	return float64(p.Frame) / float64(p.MaxFrame)
}
