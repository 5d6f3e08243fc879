// Package audio supplies live audio levels for voice-reactive mode.
package audio

import (
	"errors"
	"math"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// VoiceLow and VoiceHigh bound the speech band in Hz.
	VoiceLow  = 300.0
	VoiceHigh = 3400.0
)

var ErrNoInputDevice = errors.New("no audio input device")

// LevelSource reports a level in [0, 1].
type LevelSource interface {
	Level() float64
}

// Fixed is a constant level.
type Fixed float64

func (f Fixed) Level() float64 { return clamp01(float64(f)) }

func clamp01(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
