package audio

import (
	"math"
	"time"

	"github.com/vovakirdan/quantum-shift/internal/state"
)

// DefaultSampleRate is used when a manager is not given one.
const DefaultSampleRate = 44100

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSawtooth
	WaveSquare
)

func (w Wave) String() string {
	switch w {
	case WaveSawtooth:
		return "sawtooth"
	case WaveSquare:
		return "square"
	default:
		return "sine"
	}
}

// Tone is a synthesized effect: a linear frequency sweep under a linear gain
// fade, cut off at Stop.
type Tone struct {
	Wave    Wave
	StartHz float64
	EndHz   float64
	Ramp    time.Duration // frequency sweep length
	Gain    float64       // starting gain
	Fade    time.Duration // gain reaches zero here
	Stop    time.Duration
}

// tones are the fallback cues used when an effect asset is missing.
var tones = map[state.SoundKind]Tone{
	state.SoundRealityShift: {
		Wave: WaveSine, StartHz: 200, EndHz: 600, Ramp: 200 * time.Millisecond,
		Gain: 0.3, Fade: 300 * time.Millisecond, Stop: 500 * time.Millisecond,
	},
	state.SoundTimeReverse: {
		Wave: WaveSawtooth, StartHz: 400, EndHz: 100, Ramp: 400 * time.Millisecond,
		Gain: 0.2, Fade: 500 * time.Millisecond, Stop: 500 * time.Millisecond,
	},
	state.SoundPuzzleSolved: {
		Wave: WaveSquare, StartHz: 300, EndHz: 600, Ramp: 100 * time.Millisecond,
		Gain: 0.2, Fade: 200 * time.Millisecond, Stop: 500 * time.Millisecond,
	},
}

// ToneFor returns the synthesized fallback for an effect. Music has none.
func ToneFor(kind state.SoundKind) (Tone, bool) {
	t, ok := tones[kind]
	return t, ok
}

// FrequencyAt returns the oscillator frequency at offset sec.
func (t Tone) FrequencyAt(sec float64) float64 {
	return t.StartHz + (t.EndHz-t.StartHz)*progress(sec, t.Ramp)
}

// GainAt returns the gain at offset sec.
func (t Tone) GainAt(sec float64) float64 {
	return t.Gain * (1 - progress(sec, t.Fade))
}

func progress(sec float64, d time.Duration) float64 {
	total := d.Seconds()
	if total <= 0 || sec >= total {
		return 1
	}
	if sec <= 0 {
		return 0
	}
	return sec / total
}

// Render produces mono samples in [-1, 1] up to the stop time.
func (t Tone) Render(sampleRate int) []float32 {
	if sampleRate <= 0 {
		return nil
	}
	n := int(t.Stop.Seconds() * float64(sampleRate))
	out := make([]float32, n)

	phase := 0.0
	for i := range out {
		sec := float64(i) / float64(sampleRate)
		out[i] = float32(t.Wave.sample(phase) * t.GainAt(sec))
		phase += t.FrequencyAt(sec) / float64(sampleRate)
		phase -= math.Floor(phase)
	}
	return out
}

// sample evaluates one period of the wave at phase in [0, 1).
func (w Wave) sample(phase float64) float64 {
	switch w {
	case WaveSawtooth:
		return 2*phase - 1
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
