package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spyrun/arena/internal/game"
	"github.com/spyrun/arena/internal/view"
)

func main() {
	var configPath string
	var logLevel string
	flag.StringVar(&configPath, "config", "config/arena.yaml", "arena YAML config (defaults when missing)")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	session, err := game.NewSession(cfg, game.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Arena")
	ebiten.SetWindowSize(cfg.World.ViewWidth, cfg.World.ViewHeight)
	if err := ebiten.RunGame(view.New(session)); err != nil {
		log.Fatal(err)
	}
}
