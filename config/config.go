package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the scene.
const Default ecs.LayerID = 0

// Config holds general window and map configuration
type Config struct {
	Width    int
	Height   int
	TPS      int // ticks per second of the update loop
	TileSize int
	Cols     int
	Rows     int
	TileFrom int // inclusive lower bound for generated tile codes
	TileTo   int // inclusive upper bound for generated tile codes
}

// CameraConfig contains camera zoom limits
type CameraConfig struct {
	MinZoom  float64 // zoom never drops below this (must be > 0)
	MaxZoom  float64
	ZoomStep float64 // factor applied per zoom key press
}

// ParticleConfig contains particle spawn and fade configuration
type ParticleConfig struct {
	Lifespan   int     // ticks
	SpreadX    float64 // horizontal velocity is drawn from [-SpreadX, SpreadX)
	RiseY      float64 // vertical velocity is drawn from [-RiseY, 0)
	MinSize    float64 // particles at or below this size are culled
	KeepHue    bool    // fade the spawn colour instead of overwriting it with white
	BurstCount int
	BurstSize  float64
	BurstColor string
}

// AnimationConfig contains animated character timing
type AnimationConfig struct {
	StepsPerSecond int // interpolation steps per second of an animated move
	MoveSteps      int // steps per animated move
	FrameTicks     int // ticks each sprite frame stays on screen while moving
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD        bool
	ShowCollisions bool
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Particles ParticleConfig
var Animation AnimationConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:    640,
		Height:   480,
		TPS:      60,
		TileSize: 32,
		Cols:     10,
		Rows:     10,
		TileFrom: 0,
		TileTo:   3,
	}

	Camera = CameraConfig{
		MinZoom:  0.1,
		MaxZoom:  8.0,
		ZoomStep: 1.1,
	}

	Particles = ParticleConfig{
		Lifespan:   100,
		SpreadX:    1.0,
		RiseY:      2.0,
		MinSize:    1.0,
		KeepHue:    false,
		BurstCount: 20,
		BurstSize:  5,
		BurstColor: "orange",
	}

	Animation = AnimationConfig{
		StepsPerSecond: 6,
		MoveSteps:      6,
		FrameTicks:     8,
	}

	Debug = DebugConfig{
		ShowHUD: true,
	}
}
