package main

import (
	"fmt"
	"log"
	"os"

	"github.com/integrii/flaggy"

	"github.com/singer-songwriter/game-of-life/internal/app"
	"github.com/singer-songwriter/game-of-life/internal/export"
)

func main() {
	flaggy.SetName("life-export")
	flaggy.SetDescription("Run Game of Life headless and save the result as an animation or chart")

	cfg := app.NewConfig()
	cfg.Bind()
	flaggy.Parse()

	if cfg.Output == "" && cfg.Chart == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: pass --output and/or --chart")
		os.Exit(2)
	}

	engine, err := cfg.Engine()
	if err != nil {
		log.Fatal(err)
	}

	anim, metrics := export.Run(engine, cfg.Generations, cfg.Interval())

	if cfg.Output != "" {
		if err := anim.Write(cfg.Output); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s (%d frames)\n", cfg.Output, anim.FrameCount())
	}
	if cfg.Chart != "" {
		if err := export.WriteChart(cfg.Chart, metrics); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", cfg.Chart)
	}

	last := metrics[len(metrics)-1]
	fmt.Printf("rule=%s boundary=%s generations=%d population=%d vitality=%.1f\n",
		engine.Rule(), engine.Boundary(), last.Generation, last.Population, last.Vitality)
}
