package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a tuning file. Sections that are left out keep
// their current values.
type File struct {
	Window Config       `yaml:"window"`
	Player PlayerConfig `yaml:"player"`
	Bounds BoundsConfig `yaml:"bounds"`
	Camera CameraConfig `yaml:"camera"`
	Iso    IsoConfig    `yaml:"iso"`
	Debug  DebugConfig  `yaml:"debug"`
}

// LocalPath is the tuning file looked up relative to the working directory.
const LocalPath = "configs/meltdown.yaml"

// Load overlays a YAML tuning file onto the configuration globals and
// returns the path it was read from, or "" when only defaults are in use.
// Search order: customPath -> ~/.meltdown/config.yaml -> ./configs/meltdown.yaml
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}

func apply(data []byte) error {
	f := File{
		Window: *C,
		Player: Player,
		Bounds: Bounds,
		Camera: Camera,
		Iso:    Iso,
		Debug:  Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}

	window := f.Window
	C = &window
	Player = f.Player
	Bounds = f.Bounds
	Camera = f.Camera
	Iso = f.Iso
	Debug = f.Debug
	return nil
}

// Validate reports the first setting that would break the game loop or the
// bounds invariant.
func (f File) Validate() error {
	switch {
	case !finite(f.Player.Speed, f.Player.Radius, f.Player.SpawnTweenSeconds,
		f.Bounds.Width, f.Bounds.Height, float64(f.Bounds.StrokeWidth), f.Bounds.SpaceMargin,
		f.Camera.FollowSmoothing, f.Iso.TileWidthHalf, f.Iso.TileHeightHalf):
		return fmt.Errorf("config values must be finite numbers")
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height)
	case f.Window.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", f.Window.TPS)
	case f.Player.Speed < 0:
		return fmt.Errorf("player speed must not be negative, got %v", f.Player.Speed)
	case f.Player.Radius <= 0:
		return fmt.Errorf("player radius must be positive, got %v", f.Player.Radius)
	case f.Bounds.Width < 2*f.Player.Radius || f.Bounds.Height < 2*f.Player.Radius:
		return fmt.Errorf("bounds %vx%v cannot hold a player of radius %v", f.Bounds.Width, f.Bounds.Height, f.Player.Radius)
	case f.Bounds.StrokeWidth <= 0:
		return fmt.Errorf("bounds stroke_width must be positive, got %v", f.Bounds.StrokeWidth)
	case f.Bounds.SpaceMargin < 0:
		return fmt.Errorf("bounds space_margin must not be negative, got %v", f.Bounds.SpaceMargin)
	case f.Camera.FollowSmoothing <= 0 || f.Camera.FollowSmoothing > 1:
		return fmt.Errorf("camera follow_smoothing must be in (0, 1], got %v", f.Camera.FollowSmoothing)
	case f.Iso.TileWidthHalf <= 0 || f.Iso.TileHeightHalf <= 0:
		return fmt.Errorf("iso tile half sizes must be positive")
	}
	return nil
}

// finite reports whether none of vs is NaN or infinite.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".meltdown", "config.yaml")
}
