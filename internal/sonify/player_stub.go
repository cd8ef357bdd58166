//go:build !ebiten

package sonify

// NewPlayer returns nil in headless builds, leaving the sonifier disabled.
func NewPlayer(sampleRate int) Player { return nil }
