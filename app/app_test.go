package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/museun/mars/surface"
	"github.com/museun/mars/terminal"
)

type glyphApp struct {
	Base
}

func (glyphApp) Render(renderer *surface.Renderer) {
	renderer.Draw(surface.WithFg(surface.Glyph('x'), surface.Hex("#ff0000").Color()), surface.BlendReplace)
}

func TestDebugTrace(t *testing.T) {
	out := Debug(glyphApp{})

	if !strings.HasPrefix(out, "begin\n") {
		t.Errorf("Expected trace to open with begin, got %q", out[:min(len(out), 32)])
	}
	if !strings.HasSuffix(out, "end\n") {
		t.Error("Expected trace to close with end")
	}
	if !strings.Contains(out, "set_fg: #ff0000ff") {
		t.Error("Expected the glyph's foreground in the trace")
	}
	if !strings.Contains(out, "x") {
		t.Error("Expected the glyph itself in the trace")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "absent.toml"))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("Expected defaults, got %+v", cfg)
		}
	})

	t.Run("Values layer over defaults", func(t *testing.T) {
		path := filepath.Join(dir, "config.toml")
		data := "fps = 60.0\ncolor_mode = \"256\"\ntitle = \"demo\"\nmouse = true\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.FPS != 60.0 {
			t.Errorf("Expected fps 60, got %v", cfg.FPS)
		}
		if cfg.ColorMode != "256" || cfg.Title != "demo" || !cfg.Mouse {
			t.Errorf("Unexpected config %+v", cfg)
		}
	})

	t.Run("Bad fps rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad_fps.toml")
		if err := os.WriteFile(path, []byte("fps = 0.5\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("Expected an error for fps below 1")
		}
	})

	t.Run("Unknown key rejected", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.toml")
		if err := os.WriteFile(path, []byte("frames = 30\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("Expected an error for an unknown key")
		}
	})

	t.Run("Unknown color mode rejected", func(t *testing.T) {
		path := filepath.Join(dir, "color.toml")
		if err := os.WriteFile(path, []byte("color_mode = \"cga\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("Expected an error for an unknown color mode")
		}
	})
}

func TestConfigColorMode(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected terminal.ColorMode
	}{
		{name: "Truecolor", value: "truecolor", expected: terminal.ColorModeTrueColor},
		{name: "256", value: "256", expected: terminal.ColorMode256},
		{name: "16", value: "16", expected: terminal.ColorMode16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{ColorMode: tt.value}
			if actual := cfg.colorMode(); actual != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, actual)
			}
		})
	}
}

type countingApp struct {
	Base
	updates int
}

func (c *countingApp) Update(Update) ShouldRender {
	c.updates++
	return RenderNo
}

func (c *countingApp) Render(*surface.Renderer) {}

func TestDebugLifecycle(t *testing.T) {
	app := &countingApp{}
	_ = Debug(app)
	// Debug skips Update; it only exercises Start/Render/Stop
	if app.updates != 0 {
		t.Errorf("Expected no updates during Debug, got %d", app.updates)
	}
}

var _ Application = glyphApp{}
