//go:build ebiten

package sonify

import "github.com/hajimehoshi/ebiten/v2/audio"

type audioPlayer struct {
	ctx *audio.Context
}

// NewPlayer opens the process-wide audio context and returns a player for
// synthesized tones. There can be only one audio context per process.
func NewPlayer(sampleRate int) Player {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &audioPlayer{ctx: audio.NewContext(sampleRate)}
}

func (p *audioPlayer) Play(pcm []byte) {
	if len(pcm) == 0 {
		return
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}
