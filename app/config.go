package app

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/museun/mars/terminal"
)

// Config controls the runtime loop and terminal session.
type Config struct {
	// FPS is the target frame rate. Must be at least 1.
	FPS float64 `toml:"fps"`

	// ColorMode forces a color capability: "truecolor", "256", or "16".
	// Empty means detect from the environment.
	ColorMode string `toml:"color_mode"`

	// Title sets the terminal window title when non-empty.
	Title string `toml:"title"`

	// Mouse enables click and drag reporting.
	Mouse bool `toml:"mouse"`
}

// DefaultConfig is the configuration Run-ready out of the box: 30fps,
// detected colors, no mouse.
func DefaultConfig() Config {
	return Config{FPS: 30}
}

// LoadConfig reads a TOML config file, layering it over the defaults. A
// missing file is not an error; the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %s", path, undecoded[0])
	}

	if cfg.FPS < 1.0 {
		return Config{}, fmt.Errorf("load config %s: fps must be at least 1.0, have %v", path, cfg.FPS)
	}
	switch cfg.ColorMode {
	case "", "truecolor", "256", "16":
	default:
		return Config{}, fmt.Errorf("load config %s: unknown color mode %q", path, cfg.ColorMode)
	}
	return cfg, nil
}

// colorMode resolves the configured mode, falling back to detection.
func (c Config) colorMode() terminal.ColorMode {
	switch c.ColorMode {
	case "truecolor":
		return terminal.ColorModeTrueColor
	case "256":
		return terminal.ColorMode256
	case "16":
		return terminal.ColorMode16
	}
	return terminal.DetectColorMode()
}
