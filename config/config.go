package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 // world units per second

	// Dimensions
	Size float64 // edge length of the player cube in world units

	// Visual
	BaseColor color.RGBA
}

// CameraConfig contains the perspective camera the player is clamped against
type CameraConfig struct {
	X, Y, Z  float64 // camera position
	ForwardX float64
	ForwardY float64
	ForwardZ float64
	FOV      float64 // vertical field of view in radians
	Near     float64
	Far      float64
}

// MenuConfig contains menu layout and colour configuration values
type MenuConfig struct {
	BackgroundColor     color.RGBA
	OverlayColor        color.RGBA
	ButtonColor         color.RGBA
	ButtonSelectedColor color.RGBA
	TextColor           color.RGBA
	ButtonWidth         float64
	ButtonHeight        float64
	ButtonMargin        float64
	FontSize            float64
	FadeSeconds         float64 // menu fade-in duration
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Verbose  bool // Emit debug-level diagnostics
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// RGB converts linear 0-1 channel values to an opaque RGBA colour.
func RGB(r, g, b float64) color.RGBA {
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func init() {
	Reset()
}

// Reset restores every config value to its built-in default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Dorian",
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:     5.0,
		Size:      1.0,
		BaseColor: RGB(0.25, 0.75, 0.25),
	}

	// Looking down -Z at the player plane (z = 0)
	Camera = CameraConfig{
		X: 0, Y: 0, Z: 10,
		ForwardX: 0, ForwardY: 0, ForwardZ: -1,
		FOV:  0.785398, // 45 degrees
		Near: 0.1,
		Far:  1000,
	}

	Menu = MenuConfig{
		BackgroundColor:     color.RGBA{R: 20, G: 20, B: 28, A: 255},
		OverlayColor:        BlackOverlay,
		ButtonColor:         RGB(0.15, 0.15, 0.20),
		ButtonSelectedColor: RGB(0.30, 0.30, 0.45),
		TextColor:           White,
		ButtonWidth:         240,
		ButtonHeight:        44,
		ButtonMargin:        8,
		FontSize:            28,
		FadeSeconds:         0.25,
	}

	Debug = DebugConfig{
		SkipMenu: false,
		Verbose:  false,
	}

	resetInput()
}

// AspectRatio returns the window width divided by its height.
func (c *Config) AspectRatio() float64 {
	if c.Height == 0 {
		return 1
	}
	return float64(c.Width) / float64(c.Height)
}
