//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"iris/internal/app"
	"iris/internal/engine"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	e, err := engine.New(cfg.EngineConfig())
	if err != nil {
		log.Fatalf("iris: %v", err)
	}
	game := app.New(e, cfg)
	log.Printf("iris: %d particles, stages %s", e.Count(), cfg.Stages)

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("iris")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
