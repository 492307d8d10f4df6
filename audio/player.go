// Package audio provides the shelf's track player: transport controls and
// an amplitude envelope for the waveform strip. It degrades silently when
// no audio backend is available; the shelf never fails over sound.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Volume limits in effects.Volume units (base-2 exponent)
const (
	volumeStep = 0.25
	volumeMin  = -4.0
	volumeMax  = 1.0
)

// Player wraps a seekable track with pause, seek and volume controls
//
// Before Start, controls mutate directly; after Start, mutations happen
// under the speaker lock so the mixer never observes a torn state
type Player struct {
	mu sync.Mutex

	format   beep.Format
	track    beep.StreamSeeker
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	started  bool
	disabled bool
}

// NewPlayer wraps the track; playback starts paused
func NewPlayer(format beep.Format, track beep.StreamSeeker) *Player {
	ctrl := &beep.Ctrl{Streamer: track, Paused: true}
	volume := &effects.Volume{Streamer: ctrl, Base: 2, Volume: 0}
	return &Player{
		format: format,
		track:  track,
		ctrl:   ctrl,
		volume: volume,
	}
}

// Start opens the speaker and attaches the track
// Failure disables the player instead of propagating: transport calls
// become no-ops and the UI just shows a silent waveform
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.disabled {
		return
	}
	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/10)); err != nil {
		p.disabled = true
		return
	}
	speaker.Play(p.volume)
	p.started = true
}

// Stop tears the speaker down
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	speaker.Close()
	p.started = false
}

// Disabled reports whether the audio backend was unavailable
func (p *Player) Disabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disabled
}

// Toggle flips play/pause and returns true when now playing
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked(func() {
		p.ctrl.Paused = !p.ctrl.Paused
	})
	return !p.ctrl.Paused
}

// Playing reports whether the track is currently audible
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.ctrl.Paused
}

// Seek jumps to the given offset, clamped to the track bounds
func (p *Player) Seek(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.format.SampleRate.N(d)
	if n < 0 {
		n = 0
	}
	if max := p.track.Len(); n > max {
		n = max
	}
	p.locked(func() {
		_ = p.track.Seek(n)
	})
}

// SeekBy moves relative to the current position
func (p *Player) SeekBy(delta time.Duration) {
	p.Seek(p.Position() + delta)
}

// Position returns the playback offset
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	var n int
	p.locked(func() {
		n = p.track.Position()
	})
	return p.format.SampleRate.D(n)
}

// Length returns the track duration
func (p *Player) Length() time.Duration {
	return p.format.SampleRate.D(p.track.Len())
}

// VolumeUp raises the volume one step; returns the new level
func (p *Player) VolumeUp() float64 {
	return p.adjustVolume(volumeStep)
}

// VolumeDown lowers the volume one step; returns the new level
func (p *Player) VolumeDown() float64 {
	return p.adjustVolume(-volumeStep)
}

// Volume returns the current level in effects.Volume units
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume.Volume
}

func (p *Player) adjustVolume(delta float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked(func() {
		v := p.volume.Volume + delta
		if v < volumeMin {
			v = volumeMin
		}
		if v > volumeMax {
			v = volumeMax
		}
		p.volume.Volume = v
		p.volume.Silent = v <= volumeMin
	})
	return p.volume.Volume
}

// locked runs fn under the speaker lock once the mixer is live
func (p *Player) locked(fn func()) {
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
