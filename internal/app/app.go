//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/singer-songwriter/game-of-life/internal/render"
	"github.com/singer-songwriter/game-of-life/internal/sonify"
	"github.com/singer-songwriter/game-of-life/internal/ui"
	"github.com/singer-songwriter/game-of-life/pkg/core"
	"github.com/singer-songwriter/game-of-life/pkg/life"
)

const hudWidth = 172

// Game adapts the engine to the ebiten.Game interface.
type Game struct {
	engine   *life.Engine
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	sonifier *sonify.Sonifier
	timer    *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	maxGen   int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided engine. maxGen stops the run once
// the generation counter reaches it; zero means run forever.
func New(engine *life.Engine, sonifier *sonify.Sonifier, scale, maxGen int, interval time.Duration, seed int64) *Game {
	size := engine.Size()
	return &Game{
		engine:   engine,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(engine, hudWidth),
		overlay:  ui.NewOverlay(engine, scale),
		sonifier: sonifier,
		timer:    core.NewFixedStep(interval),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		maxGen:   maxGen,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.engine.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation on its
// interval.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sonifier != nil {
		g.sonifier.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.engine.SetFloatParameter("certainty", g.engine.Certainty()+0.05)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.engine.SetFloatParameter("certainty", g.engine.Certainty()-0.05)
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	finished := g.maxGen > 0 && g.engine.Generation() >= g.maxGen
	if !finished && g.timer.ShouldStep() && (!g.paused || g.tickOnce) {
		g.engine.Step()
		g.tickOnce = false
		if g.sonifier != nil {
			size := g.engine.Size()
			g.sonifier.Update(g.engine.Metrics(), size.W*size.H, g.timer.Interval())
		}
	}

	g.hud.Update(g.statusNotes(finished)...)
	return nil
}

// Draw renders the current simulation state, the overlays and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Vitality(), g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	size := g.engine.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size: the scaled grid plus the HUD
// panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.engine.Size()
	return size.W*g.scale + g.hud.Width(), size.H * g.scale
}

func (g *Game) statusNotes(finished bool) []string {
	var notes []string
	switch {
	case finished:
		notes = append(notes, fmt.Sprintf("finished at %d", g.maxGen))
	case g.paused:
		notes = append(notes, "paused")
	}
	if g.sonifier != nil && g.sonifier.Enabled() {
		notes = append(notes, "sound on")
	}
	return notes
}
