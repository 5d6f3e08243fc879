package audio

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/fft"
)

// Meter turns microphone input into a smoothed voice-band level.
type Meter struct {
	stream *portaudio.Stream

	// analysis scratch
	window  []float64
	samples []float64

	mu       sync.Mutex
	level    float64
	maxLevel float64
}

func NewMeter() *Meter {
	w := make([]float64, BufferSize)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(BufferSize-1)))
	}
	return &Meter{
		window:   w,
		samples:  make([]float64, BufferSize),
		maxLevel: 0.1,
	}
}

// Start opens the default input device.
func (m *Meter) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio: initialize: %w", err)
	}
	if _, err := portaudio.DefaultInputDevice(); err != nil {
		portaudio.Terminate()
		return fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, SampleRate, BufferSize, m.Process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio: open input: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio: start input: %w", err)
	}
	m.stream = stream
	return nil
}

func (m *Meter) Stop() {
	if m.stream == nil {
		return
	}
	m.stream.Stop()
	m.stream.Close()
	m.stream = nil
	portaudio.Terminate()
}

func (m *Meter) Level() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

// Process analyses one input buffer. It is the portaudio callback.
func (m *Meter) Process(in []float32) {
	n := len(in)
	if n > BufferSize {
		n = BufferSize
	}
	for i := range m.samples {
		m.samples[i] = 0
	}
	for i := 0; i < n; i++ {
		m.samples[i] = float64(in[i]) * m.window[i]
	}
	spectrum := fft.FFTReal(m.samples)

	binHz := float64(SampleRate) / float64(BufferSize)
	lo, hi := int(VoiceLow/binHz), int(math.Ceil(VoiceHigh/binHz))
	var sum float64
	for i := lo; i <= hi && i < BufferSize/2; i++ {
		sum += cmplx.Abs(spectrum[i])
	}
	raw := sum / float64(hi-lo+1) / 8

	m.mu.Lock()
	defer m.mu.Unlock()
	if raw > m.maxLevel {
		m.maxLevel = raw
	} else {
		m.maxLevel *= 0.999
	}
	gain := 1.0
	if m.maxLevel > 0.001 {
		gain = math.Min(1/m.maxLevel, 50)
	}
	m.level = m.level*0.8 + clamp01(raw*gain)*0.2
}
