package terminal

import (
	"os"
	"strings"

	"github.com/museun/mars/surface"
)

// ColorMode is the terminal's detected color capability.
type ColorMode uint8

const (
	ColorMode16 ColorMode = iota
	ColorMode256
	ColorModeTrueColor
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	case ColorMode256:
		return "256"
	}
	return "16"
}

// DetectColorMode guesses capability from the environment. Truecolor
// detection errs on the side of the well-known terminals that support it
// without advertising; everything else gets the 256-color palette.
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	termEnv := os.Getenv("TERM")
	if strings.Contains(termEnv, "truecolor") ||
		strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Adapt downsamples a color to what the mode can express. Truecolor passes
// through; 256 quantizes RGBA into the palette; 16 reduces palette entries
// to the base colors. Default and Transparent are left alone.
func (m ColorMode) Adapt(c surface.Color) surface.Color {
	switch m {
	case ColorModeTrueColor:
		return c

	case ColorMode256:
		if rgba, ok := c.Rgba(); ok {
			return surface.ApproximateRgb(rgba.R, rgba.G, rgba.B).Color()
		}
		return c

	default:
		index, ok := c.Index()
		if !ok {
			if rgba, isRgba := c.Rgba(); isRgba {
				index = surface.ApproximateRgb(rgba.R, rgba.G, rgba.B)
				ok = true
			}
		}
		if !ok {
			return c
		}
		return surface.IndexedColor(index.To4Bit()).Color()
	}
}
