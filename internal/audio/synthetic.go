package audio

import (
	"math"
	"time"
)

// Synthetic is a speech-like envelope: syllables at about 4 Hz grouped into
// phrases with pauses between them.
type Synthetic struct {
	start time.Time
	now   func() time.Time
}

func NewSynthetic() *Synthetic {
	return NewSyntheticClock(time.Now)
}

// NewSyntheticClock reads time from now, for replay and tests.
func NewSyntheticClock(now func() time.Time) *Synthetic {
	return &Synthetic{start: now(), now: now}
}

func (s *Synthetic) Level() float64 {
	return Envelope(s.now().Sub(s.start).Seconds())
}

// Envelope is the synthetic level at t seconds.
func Envelope(t float64) float64 {
	phrase := 0.5 + 0.5*math.Sin(2*math.Pi*0.25*t)
	if phrase < 0.3 {
		return 0
	}
	syllable := math.Pow(math.Abs(math.Sin(2*math.Pi*4.3*t/2)), 1.5)
	jitter := 0.85 + 0.15*math.Sin(2*math.Pi*13.1*t)
	return clamp01(syllable * jitter * phrase)
}
