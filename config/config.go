package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 `yaml:"speed"` // pixels per second

	// Combat (declared for later stories, not read by gameplay yet)
	Health       int     `yaml:"health"`
	LastShotTime float64 `yaml:"-"`

	// Dimensions
	Radius float64 `yaml:"radius"`

	// Spawn-in tween
	SpawnTweenSeconds float64 `yaml:"spawn_tween_seconds"`

	Color color.RGBA `yaml:"-"`
}

// BoundsConfig describes the debug box the player is clamped to.
// The box is centred on the world origin.
type BoundsConfig struct {
	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	StrokeWidth float32    `yaml:"stroke_width"`
	Color       color.RGBA `yaml:"-"`

	// Collision space padding around the box, in pixels
	SpaceMargin float64 `yaml:"space_margin"`
}

// MinX returns the left edge of the box in world space.
func (b BoundsConfig) MinX() float64 { return -b.Width / 2 }

// MinY returns the top edge of the box in world space.
func (b BoundsConfig) MinY() float64 { return -b.Height / 2 }

// MaxX returns the right edge of the box in world space.
func (b BoundsConfig) MaxX() float64 { return b.Width / 2 }

// MaxY returns the bottom edge of the box in world space.
func (b BoundsConfig) MaxY() float64 { return b.Height / 2 }

// SpaceOrigin is where world (0, 0) sits inside the collision space. The
// space only indexes non-negative coordinates, so the world is shifted in.
func (b BoundsConfig) SpaceOrigin() (float64, float64) {
	return b.Width/2 + b.SpaceMargin, b.Height/2 + b.SpaceMargin
}

// SpaceSize returns the collision space dimensions.
func (b BoundsConfig) SpaceSize() (int, int) {
	return int(b.Width + 2*b.SpaceMargin), int(b.Height + 2*b.SpaceMargin)
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // 1.0 locks onto the player, lower values lerp
}

// IsoConfig contains the isometric projection constants
type IsoConfig struct {
	TileWidthHalf  float64 `yaml:"tile_width_half"`
	TileHeightHalf float64 `yaml:"tile_height_half"`

	// Debug grid
	GridRadius int        `yaml:"grid_radius"` // tiles drawn each side of the origin
	GridColor  color.RGBA `yaml:"-"`
}

// HUDConfig contains the debug text placement
type HUDConfig struct {
	TextX     int
	TextY     int
	LineGap   int
	TextColor color.RGBA
	FontSize  float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	FadeSeconds       float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // Draw collision outlines and the isometric grid
}

// Config holds general game configuration
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

// DeltaTime returns the duration of one update tick in seconds.
func (c *Config) DeltaTime() float64 {
	return 1.0 / float64(c.TPS)
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bounds BoundsConfig
var Camera CameraConfig
var Iso IsoConfig
var HUD HUDConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DimBlue      = color.RGBA{R: 40, G: 60, B: 110, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every configuration global to its built-in default.
func Reset() {
	C = &Config{
		Title:  "Springfield Meltdown - Prototype",
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:             300.0,
		Health:            100,
		LastShotTime:      0,
		Radius:            16.0,
		SpawnTweenSeconds: 0.35,
		Color:             Gold,
	}

	// 600x400 box at screen (100,100)-(700,500) when the player sits at the origin
	Bounds = BoundsConfig{
		Width:       600,
		Height:      400,
		StrokeWidth: 2,
		Color:       Green,
		SpaceMargin: 32,
	}

	Camera = CameraConfig{
		FollowSmoothing: 1.0,
	}

	Iso = IsoConfig{
		TileWidthHalf:  16.0,
		TileHeightHalf: 8.0,
		GridRadius:     8,
		GridColor:      DimBlue,
	}

	HUD = HUDConfig{
		TextX:     10,
		TextY:     10,
		LineGap:   18,
		TextColor: White,
		FontSize:  14,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Exit"},
		FadeSeconds:       0.15,
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}
