// Package theme owns the light/dark preference and the colors each mode uses.
package theme

import (
	"encoding/json"
	"image/color"
	"log/slog"
	"os"
)

// Mode is the applied visual mode. Exactly two values exist; anything else
// read from disk degrades to Light.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Flipped returns the other mode.
func (m Mode) Flipped() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// prefs is the on-disk shape of the preference file.
type prefs struct {
	Theme string `json:"theme"`
}

// Store persists the single preference that survives restarts.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted mode. A missing or unreadable file and any
// unrecognized value all read as Light.
func (s *Store) Load() Mode {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("reading theme preference", "path", s.path, "error", err)
		}
		return Light
	}
	var p prefs
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("parsing theme preference", "path", s.path, "error", err)
		return Light
	}
	if Mode(p.Theme) == Dark {
		return Dark
	}
	return Light
}

// Save writes the mode, one of exactly two string literals.
func (s *Store) Save(m Mode) error {
	data, err := json.Marshal(prefs{Theme: string(m)})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Palette is the full color set of one mode. Swapping the palette is the
// whole of applying a theme, so flag and visuals can never disagree.
type Palette struct {
	BackgroundTop    color.RGBA
	BackgroundBottom color.RGBA

	Panel       color.RGBA
	PanelBorder color.RGBA

	Button        color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	ButtonBorder  color.RGBA

	Overlay color.RGBA

	// HeartHue is the fixed hue (degrees) of the particle hearts.
	HeartHue float64
}

func PaletteFor(m Mode) Palette {
	if m == Dark {
		return Palette{
			BackgroundTop:    color.RGBA{R: 18, G: 14, B: 34, A: 255},
			BackgroundBottom: color.RGBA{R: 46, G: 20, B: 54, A: 255},
			Panel:            color.RGBA{R: 30, G: 22, B: 46, A: 220},
			PanelBorder:      color.RGBA{R: 150, G: 110, B: 170, A: 255},
			Button:           color.RGBA{R: 100, G: 70, B: 130, A: 255},
			ButtonHover:      color.RGBA{R: 120, G: 88, B: 155, A: 255},
			ButtonPressed:    color.RGBA{R: 80, G: 55, B: 105, A: 255},
			ButtonBorder:     color.RGBA{R: 180, G: 150, B: 200, A: 255},
			Overlay:          color.RGBA{R: 10, G: 6, B: 18, A: 215},
			HeartHue:         330,
		}
	}
	return Palette{
		BackgroundTop:    color.RGBA{R: 70, G: 45, B: 80, A: 255},
		BackgroundBottom: color.RGBA{R: 130, G: 70, B: 100, A: 255},
		Panel:            color.RGBA{R: 52, G: 32, B: 56, A: 210},
		PanelBorder:      color.RGBA{R: 220, G: 170, B: 195, A: 255},
		Button:           color.RGBA{R: 170, G: 95, B: 125, A: 255},
		ButtonHover:      color.RGBA{R: 195, G: 115, B: 145, A: 255},
		ButtonPressed:    color.RGBA{R: 140, G: 78, B: 103, A: 255},
		ButtonBorder:     color.RGBA{R: 235, G: 200, B: 215, A: 255},
		Overlay:          color.RGBA{R: 30, G: 15, B: 28, A: 205},
		HeartHue:         350,
	}
}
