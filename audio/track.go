package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// DemoFormat is the stereo format of the built-in track
var DemoFormat = beep.Format{
	SampleRate:  beep.SampleRate(44100),
	NumChannels: 2,
	Precision:   2,
}

// note is one segment of the demo melody
type note struct {
	freq int // 0 = rest
	dur  time.Duration
	gain float64 // effects.Gain factor, output = input * (1 + gain)
}

// demoMelody gives the waveform strip visible dynamics: loud and soft
// notes separated by rests
var demoMelody = []note{
	{440, 400 * time.Millisecond, 0},
	{0, 150 * time.Millisecond, 0},
	{554, 400 * time.Millisecond, -0.4},
	{0, 150 * time.Millisecond, 0},
	{659, 600 * time.Millisecond, -0.2},
	{0, 300 * time.Millisecond, 0},
	{440, 250 * time.Millisecond, -0.7},
	{554, 250 * time.Millisecond, -0.5},
	{659, 800 * time.Millisecond, 0},
	{0, 400 * time.Millisecond, 0},
	{330, 700 * time.Millisecond, -0.3},
	{440, 900 * time.Millisecond, -0.1},
}

// DemoTrack synthesizes the built-in melody into a seekable buffer
func DemoTrack() beep.StreamSeeker {
	sr := DemoFormat.SampleRate
	buf := beep.NewBuffer(DemoFormat)

	for _, n := range demoMelody {
		samples := sr.N(n.dur)
		if n.freq == 0 {
			buf.Append(beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, float64(n.freq))
		if err != nil {
			buf.Append(beep.Silence(samples))
			continue
		}
		buf.Append(&effects.Gain{
			Streamer: beep.Take(samples, tone),
			Gain:     n.gain,
		})
	}

	return buf.Streamer(0, buf.Len())
}
