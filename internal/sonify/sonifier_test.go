package sonify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/singer-songwriter/game-of-life/pkg/life"
)

type capturePlayer struct {
	played [][]byte
}

func (c *capturePlayer) Play(pcm []byte) { c.played = append(c.played, pcm) }

func TestToneShape(t *testing.T) {
	s := New(&capturePlayer{}, 110)
	pcm := s.tone(220, 100*time.Millisecond, 0.3, 0.5)

	wantSamples := DefaultSampleRate / 10
	require.Len(t, pcm, 4*wantSamples, "stereo 16-bit frames")

	// Fades pin both ends to silence.
	require.Zero(t, pcm[0])
	require.Zero(t, pcm[1])
	require.Zero(t, pcm[len(pcm)-4])
	require.Zero(t, pcm[len(pcm)-3])

	// Somewhere in the middle the wave is audible.
	mid := 4 * (wantSamples / 2)
	loud := false
	for i := mid; i < mid+400 && i+1 < len(pcm); i += 4 {
		v := int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8)
		if v > 1000 || v < -1000 {
			loud = true
			break
		}
	}
	require.True(t, loud, "tone body should be non-silent")
}

func TestTonePanSplitsChannels(t *testing.T) {
	s := New(&capturePlayer{}, 110)
	pcm := s.tone(220, 50*time.Millisecond, 0.3, 0.9)

	var left, right int64
	for i := 0; i+3 < len(pcm); i += 4 {
		l := int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8)
		r := int16(uint16(pcm[i+2]) | uint16(pcm[i+3])<<8)
		left += abs64(int64(l))
		right += abs64(int64(r))
	}
	require.Greater(t, right, left, "pan 0.9 favors the right channel")
}

func TestUpdatePlaysDroneAndAccent(t *testing.T) {
	p := &capturePlayer{}
	s := New(p, 110)

	s.Update(life.Metrics{Population: 50, Births: 3, Deaths: 2}, 2500, 100*time.Millisecond)
	require.Len(t, p.played, 1, "quiet generation plays only the drone")

	s.Update(life.Metrics{Population: 500, Births: 40, Deaths: 10}, 2500, 100*time.Millisecond)
	require.Len(t, p.played, 3, "a birth burst adds the accent layer")
	require.Less(t, len(p.played[2]), len(p.played[1]), "accent tone is shorter than the drone")
}

func TestUpdateDegenerateInputs(t *testing.T) {
	p := &capturePlayer{}
	s := New(p, 110)

	s.Update(life.Metrics{}, 0, 100*time.Millisecond)
	require.Empty(t, p.played, "zero-size grid stays silent")

	s.Update(life.Metrics{Population: 0, Births: 0, Deaths: 0}, 100, 100*time.Millisecond)
	require.Len(t, p.played, 1, "an empty grid still drones at the base pitch")
}

func TestToggle(t *testing.T) {
	p := &capturePlayer{}
	s := New(p, 0)

	require.True(t, s.Enabled())
	require.False(t, s.Toggle())
	s.Update(life.Metrics{Population: 10}, 100, 100*time.Millisecond)
	require.Empty(t, p.played, "disabled sonifier must not play")
	require.True(t, s.Toggle())

	silent := New(nil, 110)
	require.False(t, silent.Enabled())
	require.False(t, silent.Toggle(), "a player-less sonifier can never enable")
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
