package main

import (
	"log"

	"github.com/integrii/flaggy"

	"github.com/singer-songwriter/game-of-life/internal/app"
	"github.com/singer-songwriter/game-of-life/internal/view"
)

func main() {
	flaggy.SetName("life-tui")
	flaggy.SetDescription("Game of Life in the terminal")

	cfg := app.NewConfig()
	cfg.Bind()
	flaggy.Parse()

	engine, err := cfg.Engine()
	if err != nil {
		log.Fatal(err)
	}

	console, err := view.NewConsole(engine, cfg.Interval(), cfg.Generations, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	console.Start()
}
