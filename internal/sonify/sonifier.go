// Package sonify maps per-generation grid statistics onto short stereo
// tones: pitch follows population, volume follows birth/death activity, and
// stereo pan follows the birth/death imbalance.
package sonify

import (
	"math"
	"time"

	"github.com/singer-songwriter/game-of-life/pkg/life"
)

// Player consumes 16-bit little-endian stereo PCM at the sonifier's sample
// rate. A nil player disables sonification entirely.
type Player interface {
	Play(pcm []byte)
}

// DefaultSampleRate is the PCM rate tones are synthesized at.
const DefaultSampleRate = 44100

// DefaultBaseFreq is the drone's fundamental when nothing else is
// configured (A2).
const DefaultBaseFreq = 110.0

// Pentatonic intervals keep the drone pleasant rather than dissonant as the
// population wanders.
var scaleRatios = []float64{1, 9.0 / 8, 5.0 / 4, 3.0 / 2, 5.0 / 3, 2}

// burstBirths is the births-per-step level that triggers the octave-up
// accent layer.
const burstBirths = 10

// Sonifier synthesizes one tone per generation from the engine's metrics.
type Sonifier struct {
	sampleRate int
	baseFreq   float64
	player     Player
	enabled    bool
}

// New creates a sonifier speaking through the given player. A nil player
// leaves it permanently disabled.
func New(player Player, baseFreq float64) *Sonifier {
	if baseFreq <= 0 {
		baseFreq = DefaultBaseFreq
	}
	return &Sonifier{
		sampleRate: DefaultSampleRate,
		baseFreq:   baseFreq,
		player:     player,
		enabled:    player != nil,
	}
}

// Enabled reports whether tones are currently produced.
func (s *Sonifier) Enabled() bool { return s.enabled }

// Toggle flips sound on or off and returns the new state. It can never
// enable a sonifier constructed without a player.
func (s *Sonifier) Toggle() bool {
	if s.player == nil {
		return false
	}
	s.enabled = !s.enabled
	return s.enabled
}

// Update turns one generation's metrics into sound. maxPopulation is the
// cell count of the grid; interval is the time until the next generation,
// which the tone fills.
func (s *Sonifier) Update(m life.Metrics, maxPopulation int, interval time.Duration) {
	if !s.enabled || maxPopulation <= 0 {
		return
	}
	duration := interval
	if duration <= 0 {
		duration = 100 * time.Millisecond
	}

	// Pitch: population density picks a pentatonic step.
	density := float64(m.Population) / float64(maxPopulation)
	idx := int(density * float64(len(scaleRatios)-1))
	if idx < 0 {
		idx = 0
	} else if idx > len(scaleRatios)-1 {
		idx = len(scaleRatios) - 1
	}
	freq := s.baseFreq * scaleRatios[idx]

	// Volume: total churn relative to the grid size.
	activity := float64(m.Births+m.Deaths) / float64(maxPopulation)
	amplitude := 0.1 + 0.4*activity

	// Pan: birth/death imbalance pushes the drone off center.
	pan := 0.5
	if m.Population > 0 {
		volatility := math.Abs(float64(m.Births-m.Deaths)) / float64(m.Population)
		if volatility > 1 {
			volatility = 1
		}
		if m.Births > m.Deaths {
			pan += 0.3 * volatility
		} else {
			pan -= 0.3 * volatility
		}
	}
	if pan < 0.1 {
		pan = 0.1
	} else if pan > 0.9 {
		pan = 0.9
	}

	s.player.Play(s.tone(freq, duration, amplitude, pan))

	// Accent layer: an octave up when a step produces a burst of births.
	if m.Births > burstBirths {
		accentAmp := 0.1 * math.Min(float64(m.Births)/100, 1)
		s.player.Play(s.tone(freq*2, duration*3/10, accentAmp, 0.5))
	}
}

// tone renders a sine with 2nd and 3rd harmonics, faded in and out against
// clicks, as interleaved 16-bit LE stereo PCM.
func (s *Sonifier) tone(freq float64, duration time.Duration, amplitude, pan float64) []byte {
	n := int(float64(s.sampleRate) * duration.Seconds())
	if n <= 0 {
		return nil
	}

	wave := make([]float64, n)
	for i := range wave {
		t := float64(i) / float64(s.sampleRate)
		wave[i] = amplitude * (0.6*math.Sin(2*math.Pi*freq*t) +
			0.3*math.Sin(4*math.Pi*freq*t) +
			0.1*math.Sin(6*math.Pi*freq*t))
	}

	fade := n / 10
	if fade > 100 {
		fade = 100
	}
	for i := 0; i < fade; i++ {
		g := float64(i) / float64(fade)
		wave[i] *= g
		wave[n-1-i] *= g
	}

	pcm := make([]byte, 4*n)
	for i, v := range wave {
		left := sample16(v * (1 - pan))
		right := sample16(v * pan)
		pcm[4*i+0] = byte(left)
		pcm[4*i+1] = byte(left >> 8)
		pcm[4*i+2] = byte(right)
		pcm[4*i+3] = byte(right >> 8)
	}
	return pcm
}

func sample16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
