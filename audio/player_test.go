package audio

import (
	"testing"
	"time"
)

// Player tests run against an unstarted player: no speaker, no audio
// device, same control logic

// TestPlayerToggle verifies pause state flips
func TestPlayerToggle(t *testing.T) {
	p := NewPlayer(DemoFormat, DemoTrack())

	if p.Playing() {
		t.Error("player born playing, want paused")
	}
	if !p.Toggle() {
		t.Error("first toggle did not start playback")
	}
	if p.Toggle() {
		t.Error("second toggle did not pause")
	}
}

// TestPlayerSeekClamps verifies seek bounds
func TestPlayerSeekClamps(t *testing.T) {
	p := NewPlayer(DemoFormat, DemoTrack())

	p.Seek(time.Second)
	if got := p.Position(); got < 900*time.Millisecond || got > 1100*time.Millisecond {
		t.Errorf("Position after Seek(1s) = %v", got)
	}

	p.Seek(-time.Second)
	if got := p.Position(); got != 0 {
		t.Errorf("Position after negative seek = %v, want 0", got)
	}

	p.Seek(time.Hour)
	if got := p.Position(); got != p.Length() {
		t.Errorf("Position after overlong seek = %v, want %v", got, p.Length())
	}

	p.Seek(0)
	p.SeekBy(500 * time.Millisecond)
	if got := p.Position(); got < 400*time.Millisecond || got > 600*time.Millisecond {
		t.Errorf("Position after SeekBy = %v", got)
	}
}

// TestPlayerVolumeClamps verifies the volume range and step
func TestPlayerVolumeClamps(t *testing.T) {
	p := NewPlayer(DemoFormat, DemoTrack())

	if got := p.VolumeUp(); got != volumeStep {
		t.Errorf("VolumeUp from 0 = %v, want %v", got, volumeStep)
	}

	for i := 0; i < 50; i++ {
		p.VolumeUp()
	}
	if got := p.Volume(); got != volumeMax {
		t.Errorf("volume ceiling = %v, want %v", got, volumeMax)
	}

	for i := 0; i < 100; i++ {
		p.VolumeDown()
	}
	if got := p.Volume(); got != volumeMin {
		t.Errorf("volume floor = %v, want %v", got, volumeMin)
	}
}
