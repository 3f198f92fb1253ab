// Package waveform reduces audio to peak envelopes and draws them in sync
// with playback.
package waveform

import "math"

// Envelope is a fixed-length sequence of peak magnitudes in [0, 1],
// one per display bucket.
type Envelope []float64

// BucketCount returns how many bars of barWidth+barGap fit into width.
func BucketCount(width, barWidth, barGap int) int {
	step := barWidth + barGap
	if width <= 0 || step <= 0 {
		return 0
	}
	return width / step
}

// Peaks reduces samples to buckets peak values. Each bucket covers
// ceil(len(samples)/buckets) samples; buckets past the end stay zero.
func Peaks(samples []float64, buckets int) Envelope {
	if buckets <= 0 {
		return nil
	}
	env := make(Envelope, buckets)
	if len(samples) == 0 {
		return env
	}

	per := (len(samples) + buckets - 1) / buckets
	for i := range env {
		start := i * per
		if start >= len(samples) {
			break
		}
		end := min(start+per, len(samples))

		var peak float64
		for _, s := range samples[start:end] {
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
		env[i] = min(peak, 1)
	}
	return env
}

// Progress returns current/duration clamped to [0, 1], or 0 while the
// duration is unknown.
func Progress(current, duration float64) float64 {
	if duration <= 0 || math.IsNaN(current) {
		return 0
	}
	return math.Max(0, math.Min(1, current/duration))
}
