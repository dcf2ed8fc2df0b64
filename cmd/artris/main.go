package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/artris/config"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML settings file.")
	seed := flag.Uint64("seed", 0, "Piece generator seed. 0 picks one from the clock.")
	logLevel := flag.String("log-level", "info", "Log level.")
	logEncoding := flag.String("log-encoding", "console", "Log encoding, json or console.")
	width := flag.Int("width", 1280, "Window width.")
	height := flag.Int("height", 720, "Window height.")
	debug := flag.Bool("debug", true, "Show the debug panels.")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := config.Default()
	cfg.Seed = *seed
	cfg.Log.Level = *logLevel
	cfg.Log.Encoding = *logEncoding
	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	var backend *ebitenbackend.EbitenBackend
	if *debug {
		backend = ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("artris", *width, *height)
		imgui.CurrentIO().SetIniFilename("")
	} else {
		ebiten.SetWindowSize(*width, *height)
		ebiten.SetWindowTitle("artris")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := newHost(cfg, logger, backend)
	logger.Info("starting", zap.Uint64("seed", cfg.Seed), zap.Stringer("session", game.session.ID()))

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
