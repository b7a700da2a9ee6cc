package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/molecule-life-go/sim"
)

var (
	configPath = flag.String("config", "molecules.json", "JSON config file, loaded if present and written by the S key")
	width      = flag.Int("width", 1280, "initial window width")
	height     = flag.Int("height", 720, "initial window height")
	nodes      = flag.Int("nodes", 0, "particle count override (0 keeps the config value)")
	playback   = flag.Int("playback", 0, "ticks per frame override (0 keeps the config value)")
	seeding    = flag.String("seeding", "", "placement override: uniform or perlin")
	seed       = flag.Int64("seed", 0, "random seed (0 uses the clock)")
)

func main() {
	flag.Parse()

	cfg, err := sim.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = sim.DefaultConfig()
	} else if err != nil {
		log.Fatal(err)
	}
	if *nodes > 0 {
		cfg.NodeCount = *nodes
	}
	if *playback > 0 {
		cfg.PlaybackSpeed = *playback
	}
	if *seeding != "" {
		cfg.Seeding = *seeding
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	game, err := NewGame(cfg, *configPath, *width, *height, rand.New(rand.NewSource(s)))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Molecule Life")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
