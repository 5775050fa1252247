//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifepad/internal/app"
	"lifepad/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl, err := cfg.NewController()
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}

	game := app.New(ctrl, cfg.Cell)
	size := ctrl.Size()

	ebiten.SetWindowTitle("lifepad — Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.Cols*cfg.Cell, size.Rows*cfg.Cell+ui.HUDHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
