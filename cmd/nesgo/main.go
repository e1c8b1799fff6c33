// Package main implements the nesgo NES emulator executable.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"nesgo/internal/config"
	"nesgo/internal/console"
	"nesgo/internal/graphics"
	"nesgo/internal/inesrom"
	"nesgo/internal/input"
	"nesgo/internal/version"
)

func main() {
	var (
		romFile    = flag.String("rom", "", "path to an iNES ROM file")
		configFile = flag.String("config", "", "path to a configuration file")
		nogui      = flag.Bool("nogui", false, "run headless, without opening a window")
		showVer    = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVer {
		version.PrintBuildInfo()
		return
	}

	if *romFile == "" {
		log.Fatal("nesgo: -rom is required")
	}

	configPath := *configFile
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg := config.New()
	if err := cfg.LoadFromFile(configPath); err != nil {
		log.Fatalf("nesgo: loading config: %v", err)
	}

	cart, err := inesrom.Load(*romFile)
	if err != nil {
		log.Fatalf("nesgo: loading ROM: %v", err)
	}

	nes := console.New(cart)
	nes.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if *nogui {
		if err := nes.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatalf("nesgo: emulation stopped: %v", err)
		}
		return
	}

	runGUI(ctx, cancel, nes, cfg)
}

func runGUI(ctx context.Context, cancel context.CancelFunc, nes *console.Console, cfg *config.Config) {
	backend := graphics.NewEbitenBackend(nes, nes.Controller1(), nes.Controller2())
	backend.SetVideoProcessor(graphics.NewVideoProcessor(
		cfg.Video.Brightness, cfg.Video.Contrast, cfg.Video.Saturation,
	))

	if km, err := input.ParseKeyMapping(input.KeyNames{
		Up: cfg.Input.Player1Keys.Up, Down: cfg.Input.Player1Keys.Down,
		Left: cfg.Input.Player1Keys.Left, Right: cfg.Input.Player1Keys.Right,
		A: cfg.Input.Player1Keys.A, B: cfg.Input.Player1Keys.B,
		Start: cfg.Input.Player1Keys.Start, Select: cfg.Input.Player1Keys.Select,
	}); err == nil {
		backend.SetKeyMapping1(km)
	} else {
		log.Printf("nesgo: player 1 key mapping: %v, using default", err)
	}
	if km, err := input.ParseKeyMapping(input.KeyNames{
		Up: cfg.Input.Player2Keys.Up, Down: cfg.Input.Player2Keys.Down,
		Left: cfg.Input.Player2Keys.Left, Right: cfg.Input.Player2Keys.Right,
		A: cfg.Input.Player2Keys.A, B: cfg.Input.Player2Keys.B,
		Start: cfg.Input.Player2Keys.Start, Select: cfg.Input.Player2Keys.Select,
	}); err == nil {
		backend.SetKeyMapping2(km)
	} else {
		log.Printf("nesgo: player 2 key mapping: %v, using default", err)
	}

	go func() {
		if err := nes.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("nesgo: emulation stopped: %v", err)
		}
	}()

	w, h := cfg.WindowResolution()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("nesgo %s", version.GetVersion()))
	ebiten.SetWindowResizable(cfg.Window.Resizable)

	if err := ebiten.RunGame(backend); err != nil {
		log.Printf("nesgo: window closed: %v", err)
	}
	cancel()
}
