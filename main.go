package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nescore/nescore/console"
	"github.com/nescore/nescore/mappers"
	"github.com/nescore/nescore/nesrom"
)

var (
	romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")
	scale   = flag.Int("scale", 3, "Integer window scale factor (NES native resolution is 256x240).")
	mute    = flag.Bool("mute", false, "Disable audio output.")
)

func main() {
	flag.Parse()

	rom, err := nesrom.New(*romFile)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		log.Fatalf("Couldn't Get() mapper: %v", err)
	}

	c := console.New(m)
	c.SetMuted(*mute)

	ebiten.SetWindowSize(256*(*scale), 240*(*scale))
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ctx, cancel := context.WithCancel(context.Background())
	go func(ctx context.Context) {
		c.Run(ctx)
	}(ctx)

	if err := ebiten.RunGame(c); err != nil {
		log.Fatal(err)
	}

	cancel()
	os.Exit(0)
}
