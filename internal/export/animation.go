// Package export serializes finished simulation runs: animated GIFs, MJPEG
// video, and population charts.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/singer-songwriter/game-of-life/internal/render"
	"github.com/singer-songwriter/game-of-life/pkg/core"
	"github.com/singer-songwriter/game-of-life/pkg/life"
)

// ErrUnsupportedFormat indicates an output path whose extension maps to no
// known encoder.
var ErrUnsupportedFormat = errors.New("export: unsupported output format")

// Animation accumulates per-generation frames as paletted images so both the
// GIF and video encoders can consume them.
type Animation struct {
	w, h     int
	interval time.Duration
	palette  color.Palette
	frames   []*image.Paletted
}

// NewAnimation prepares a frame collector for the given grid size and frame
// interval.
func NewAnimation(size core.Size, interval time.Duration) *Animation {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Animation{
		w:        size.W,
		h:        size.H,
		interval: interval,
		palette:  render.GrayPalette(color.White, color.Black),
	}
}

// AddFrame quantizes the vitality buffer into a new frame. The buffer is
// copied; callers may keep stepping the engine.
func (a *Animation) AddFrame(cells []float64) {
	frame := image.NewPaletted(image.Rect(0, 0, a.w, a.h), a.palette)
	render.FillPaletted(frame.Pix, cells)
	a.frames = append(a.frames, frame)
}

// FrameCount returns the number of collected frames.
func (a *Animation) FrameCount() int { return len(a.frames) }

// Interval returns the configured time between frames.
func (a *Animation) Interval() time.Duration { return a.interval }

// Write encodes the collected frames into the format implied by the path
// extension: .gif or .avi.
func (a *Animation) Write(path string) error {
	switch filepath.Ext(path) {
	case ".gif":
		return a.WriteGIF(path)
	case ".avi":
		return a.WriteAVI(path)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Run drives the engine for the requested number of generations, collecting
// a frame per generation (plus the initial state) and the per-generation
// metrics.
func Run(e *life.Engine, generations int, interval time.Duration) (*Animation, []life.Metrics) {
	anim := NewAnimation(e.Size(), interval)
	metrics := make([]life.Metrics, 0, generations+1)

	anim.AddFrame(e.Vitality())
	metrics = append(metrics, e.Metrics())
	for i := 0; i < generations; i++ {
		e.Step()
		anim.AddFrame(e.Vitality())
		metrics = append(metrics, e.Metrics())
	}
	return anim, metrics
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return f, nil
}
