// Package config loads editor settings from a TOML file and keeps the user
// toggles in fyne preferences.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"VisionaryBoard/internal/gesture"
	"VisionaryBoard/internal/state"
	"VisionaryBoard/internal/tools"
	"VisionaryBoard/internal/viewer"
)

type Gestures struct {
	GrabRadiusPx float64 `toml:"grab_radius_px"`
	TapSlopPx    float64 `toml:"tap_slop_px"`
	TapWindowMs  int     `toml:"tap_window_ms"`
}

type Viewer struct {
	MinScale       float64 `toml:"min_scale"`
	RasterMaxScale float64 `toml:"raster_max_scale"`
	VectorMaxScale float64 `toml:"vector_max_scale"`
	ResetTaps      int     `toml:"reset_taps"`
}

type Gallery struct {
	DBPath string `toml:"db_path"`
}

// Settings is the full editor configuration.
type Settings struct {
	AllowMorph bool    `toml:"allow_morph"`
	ShowGrid   bool    `toml:"show_grid"`
	SnapToGrid bool    `toml:"snap_to_grid"`
	GridSize   float64 `toml:"grid_size"`

	Gestures Gestures `toml:"gestures"`
	Viewer   Viewer   `toml:"viewer"`
	Gallery  Gallery  `toml:"gallery"`
}

func Default() Settings {
	return Settings{
		AllowMorph: true,
		GridSize:   50,
		Gestures: Gestures{
			GrabRadiusPx: gesture.DefaultGrabPx,
			TapSlopPx:    gesture.DefaultSlop,
			TapWindowMs:  int(gesture.DefaultTapWindow / time.Millisecond),
		},
		Viewer: Viewer{
			MinScale:       1,
			RasterMaxScale: 5,
			VectorMaxScale: 50,
			ResetTaps:      3,
		},
		Gallery: Gallery{DBPath: defaultDBPath()},
	}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "VisionaryBoard", "gallery.db")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return s, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		log.Printf("[CONFIG] Ignoring unknown keys in %s: %v", path, keys)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	log.Printf("[CONFIG] Loaded %s", path)
	return s, nil
}

// Save writes s to path as TOML.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func (s Settings) Validate() error {
	switch {
	case s.GridSize <= 0:
		return errors.New("grid_size must be positive")
	case s.Gestures.GrabRadiusPx <= 0:
		return errors.New("gestures.grab_radius_px must be positive")
	case s.Gestures.TapSlopPx <= 0:
		return errors.New("gestures.tap_slop_px must be positive")
	case s.Gestures.TapWindowMs <= 0:
		return errors.New("gestures.tap_window_ms must be positive")
	case s.Viewer.MinScale <= 0:
		return errors.New("viewer.min_scale must be positive")
	case s.Viewer.RasterMaxScale < s.Viewer.MinScale || s.Viewer.VectorMaxScale < s.Viewer.MinScale:
		return errors.New("viewer max scales must not be below min_scale")
	case s.Viewer.ResetTaps != 2 && s.Viewer.ResetTaps != 3:
		return fmt.Errorf("viewer.reset_taps must be 2 or 3, got %d", s.Viewer.ResetTaps)
	case s.Gallery.DBPath == "":
		return errors.New("gallery.db_path must be set")
	}
	return nil
}

func (s Settings) TapWindow() time.Duration {
	return time.Duration(s.Gestures.TapWindowMs) * time.Millisecond
}

// Snap rounds p to the grid when snapping is on.
func (s Settings) Snap(p state.Point) state.Point {
	if !s.SnapToGrid || s.GridSize <= 0 {
		return p
	}
	g := s.GridSize
	return state.Point{X: math.Round(p.X/g) * g, Y: math.Round(p.Y/g) * g}
}

// ToolOptions builds the tool controller options.
func (s Settings) ToolOptions() tools.Options {
	opts := tools.Options{
		GrabPx:     s.Gestures.GrabRadiusPx,
		TapSlop:    s.Gestures.TapSlopPx,
		TapWindow:  s.TapWindow(),
		AllowMorph: s.AllowMorph,
	}
	if s.SnapToGrid {
		opts.Snap = s.Snap
	}
	return opts
}

// ViewerOptions builds the viewer controller options.
func (s Settings) ViewerOptions() viewer.Options {
	return viewer.Options{
		MinScale:       s.Viewer.MinScale,
		RasterMaxScale: s.Viewer.RasterMaxScale,
		VectorMaxScale: s.Viewer.VectorMaxScale,
		ResetTaps:      s.Viewer.ResetTaps,
		TapSlop:        s.Gestures.TapSlopPx,
		TapWindow:      s.TapWindow(),
	}
}
