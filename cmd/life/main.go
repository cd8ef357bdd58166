//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"github.com/singer-songwriter/game-of-life/internal/app"
	"github.com/singer-songwriter/game-of-life/internal/sonify"
)

func main() {
	flaggy.SetName("life")
	flaggy.SetDescription("Game of Life in a window")

	cfg := app.NewConfig()
	cfg.Bind()
	flaggy.Parse()

	engine, err := cfg.Engine()
	if err != nil {
		log.Fatal(err)
	}

	var sonifier *sonify.Sonifier
	if cfg.Sound {
		sonifier = sonify.New(sonify.NewPlayer(sonify.DefaultSampleRate), cfg.BaseFreq)
	}

	game := app.New(engine, sonifier, cfg.Scale, cfg.Generations, cfg.Interval(), cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("life: " + engine.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
