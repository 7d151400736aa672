package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/sketchbook/config"
)

func main() {
	configPath := flag.String("config", "", "YAML sketch config; built-in defaults when empty")
	savePath := flag.String("save", "sketch.yaml", "where S writes the running config")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	sim, err := NewSimulation(cfg, *configPath, *savePath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Sketchbook")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}
