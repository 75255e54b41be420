//go:build ebiten

package main

import (
	"errors"
	"flag"

	"langton/internal/ant"
	"langton/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	defer klog.Flush()

	if err := cfg.Validate(); err != nil {
		klog.Exitf("Invalid configuration: %v", err)
	}
	sim, err := ant.NewSim(cfg.Ant)
	if err != nil {
		klog.Exitf("Failed to create simulation: %v", err)
	}

	game := app.New(sim, cfg)
	ebiten.SetWindowTitle("langton — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.ScreenSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		klog.Fatal(err)
	}
}
