//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/singer-songwriter/game-of-life/pkg/core"
)

type previousProvider interface {
	Previous() []float64
}

// Overlay draws optional debugging visuals on top of the base grid: a
// vitality heat map (key 1) and a ghost of the previous generation (key 2).
type Overlay struct {
	sim   core.Sim
	scale int

	showHeat  bool
	showGhost bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeat = !o.showHeat
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGhost = !o.showGhost
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}

	if o.showHeat {
		o.drawMask(screen, o.sim.Vitality(), size, heatColor)
	}
	if o.showGhost {
		if provider, ok := o.sim.(previousProvider); ok {
			o.drawMask(screen, provider.Previous(), size, ghostColor)
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, cells []float64, size core.Size, colorFor func(float64) color.RGBA) {
	total := size.W * size.H
	if len(cells) != total || total == 0 {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}

	for i, v := range cells {
		base := i * 4
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		if v == 0 {
			o.buf[base+0] = 0
			o.buf[base+1] = 0
			o.buf[base+2] = 0
			o.buf[base+3] = 0
			continue
		}
		col := colorFor(v)
		o.buf[base+0] = col.R
		o.buf[base+1] = col.G
		o.buf[base+2] = col.B
		o.buf[base+3] = col.A
	}
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}

// heatColor maps vitality onto a cold-to-hot gradient.
func heatColor(t float64) color.RGBA {
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 30, G: 40, B: 120, A: 60}},
		{0.35, color.RGBA{R: 40, G: 150, B: 110, A: 120}},
		{0.7, color.RGBA{R: 230, G: 200, B: 60, A: 170}},
		{1.0, color.RGBA{R: 240, G: 70, B: 40, A: 210}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

// ghostColor tints the previous generation a translucent blue.
func ghostColor(t float64) color.RGBA {
	alpha := uint8(math.Round(110 * t))
	return color.RGBA{R: 70, G: 130, B: 220, A: alpha}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
