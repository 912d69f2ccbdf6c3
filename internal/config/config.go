package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Particles"

	// Panel placement
	PanelX      = 20
	PanelY      = 20
	PanelWidth  = 420
	PanelHeight = 660

	// Scene defaults, in scene units
	SceneWidth  = 100
	SceneHeight = 100
	EmitterX    = 50
	EmitterY    = 50

	// Flying emitter path
	FlyingRadius = 20
	FlyingSpeed  = 1.0

	// StatsRingSize is how many frames of particle counts the status line keeps.
	StatsRingSize = 240

	// GradientSize is the edge of the colour picker texture in pixels.
	GradientSize = 200
)

// Config holds the settings read at startup.
type Config struct {
	Window WindowConfig
	Log    LogConfig
	Scene  SceneConfig
}

type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

type LogConfig struct {
	Level string
}

// SceneConfig sets the initial camera and an optional emitter file loaded
// on start.
type SceneConfig struct {
	Width  float64
	Height float64
	Preset string
}

// Load reads configuration from file and env. Env var overrides use prefix
// PARTICLES_EDITOR_, e.g. PARTICLES_EDITOR_WINDOW_WIDTH.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.width", WindowWidth)
	v.SetDefault("window.height", WindowHeight)
	v.SetDefault("window.title", WindowTitle)
	v.SetDefault("log.level", "info")
	v.SetDefault("scene.width", SceneWidth)
	v.SetDefault("scene.height", SceneHeight)
	v.SetDefault("scene.preset", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PARTICLES_EDITOR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "particles-editor"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PARTICLES_EDITOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Scene.Width <= 0 || c.Scene.Height <= 0 {
		return fmt.Errorf("scene size %gx%g must be positive", c.Scene.Width, c.Scene.Height)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level as one of debug, info, warn or error.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
