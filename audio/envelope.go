package audio

import "github.com/gopxl/beep"

// envelopeChunk is the read granularity while scanning the track
const envelopeChunk = 512

// Envelope scans the whole track and returns per-bucket amplitude peaks
// in [0, 1], the data behind the waveform strip
//
// The streamer is rewound before and after the scan, so the player can
// share it. Returns nil for an empty track or non-positive bucket count
func Envelope(track beep.StreamSeeker, buckets int) []float64 {
	total := track.Len()
	if total <= 0 || buckets <= 0 {
		return nil
	}
	if err := track.Seek(0); err != nil {
		return nil
	}

	peaks := make([]float64, buckets)
	samples := make([][2]float64, envelopeChunk)
	pos := 0

	for {
		n, ok := track.Stream(samples)
		for i := 0; i < n; i++ {
			amp := samples[i][0]
			if amp < 0 {
				amp = -amp
			}
			if r := samples[i][1]; r > amp {
				amp = r
			} else if -r > amp {
				amp = -r
			}

			bucket := (pos + i) * buckets / total
			if bucket >= buckets {
				bucket = buckets - 1
			}
			if amp > peaks[bucket] {
				peaks[bucket] = amp
			}
		}
		pos += n
		if !ok || n == 0 {
			break
		}
	}

	_ = track.Seek(0)

	for i, p := range peaks {
		if p > 1 {
			peaks[i] = 1
		}
	}
	return peaks
}
