package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/not-fl3/particles-editor/internal/config"
	"github.com/not-fl3/particles-editor/internal/game"
	"github.com/not-fl3/particles-editor/internal/gradient"
	"github.com/not-fl3/particles-editor/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	level, _ := cfg.Log.SlogLevel()
	game.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	textures := map[ui.TextureID]*ebiten.Image{
		ui.TextureGradient: ebiten.NewImageFromImage(gradient.Generate(config.GradientSize, config.GradientSize)),
	}
	g := game.New(cfg, textures)
	if cfg.Scene.Preset != "" {
		if err := g.LoadConfig(cfg.Scene.Preset); err != nil {
			game.Logger().Warn("load preset", "path", cfg.Scene.Preset, "err", err)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game.Logger().Info("starting editor", "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		game.Logger().Error("run", "err", err)
		os.Exit(1)
	}
}
