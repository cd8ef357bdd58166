//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/singer-songwriter/game-of-life/pkg/core"
	"github.com/singer-songwriter/game-of-life/pkg/life"
)

type metricsProvider interface {
	Metrics() life.Metrics
}

// HUD renders a status panel to the right of the simulation view:
// generation, population, run parameters and whatever notes the app pins.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	snapshot core.ParameterSnapshot
	metrics  life.Metrics
	notes    []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width in pixels, zero for a disabled HUD.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached metrics and parameter snapshot and pins the
// provided status notes.
func (h *HUD) Update(notes ...string) {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	if provider, ok := h.sim.(metricsProvider); ok {
		h.metrics = provider.Metrics()
	}
	h.notes = notes
}

// Draw paints the panel anchored at offsetX with the given pixel height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	line := 0
	put := func(s string) {
		line++
		text.Draw(h.panel, s, face, 8, 14*line, color.White)
	}

	put(h.sim.Name())
	put("")
	put(fmt.Sprintf("generation %d", h.metrics.Generation))
	put(fmt.Sprintf("population %d", h.metrics.Population))
	put(fmt.Sprintf("vitality   %.1f", h.metrics.Vitality))
	put(fmt.Sprintf("births %d / deaths %d", h.metrics.Births, h.metrics.Deaths))
	put("")
	for _, p := range h.snapshot.Params {
		put(fmt.Sprintf("%s: %s", p.Label, p.Value))
	}
	if len(h.notes) > 0 {
		put("")
		for _, n := range h.notes {
			put(n)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
