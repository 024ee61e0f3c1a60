package config

import (
	"image/color"

	"github.com/automoto/skyhop/shared/movement"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// PlayerConfig contains the player's body values. Speeds are pixels per
// second, accelerations pixels per second squared.
type PlayerConfig struct {
	MaxSpeed float64 `yaml:"max_speed"`
	Friction float64 `yaml:"friction"`
	AirDrag  float64 `yaml:"air_drag"`

	// Hazards
	HitDurationMs  float64 `yaml:"hit_duration_ms"`
	HitKnockbackY  float64 `yaml:"hit_knockback_y"`
	RespawnDelayMs float64 `yaml:"respawn_delay_ms"`

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// PhysicsConfig contains the host engine's global values.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MaxRiseSpeed float64 `yaml:"max_rise_speed"`

	// Collision
	CellSize     int     `yaml:"cell_size"`
	ContactProbe float64 `yaml:"contact_probe"`
}

// PlatformConfig holds defaults for moving platforms that leave the TMX
// properties unset.
type PlatformConfig struct {
	Travel      float64
	DurationSec float64
}

// SquashStretchConfig contains the jump feedback scale.
type SquashStretchConfig struct {
	JumpScaleX float64
	JumpScaleY float64
	LandScaleX float64
	LandScaleY float64
	LerpSpeed  float64
}

// CameraConfig contains camera follow and shake values. Durations are
// milliseconds.
type CameraConfig struct {
	FollowSmoothing         float64
	LookAheadDistanceX      float64
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64

	HitShakeIntensity   float64
	DeathShakeIntensity float64
	ShakeMs             float64
}

// DebugConfig contains debug overlay options.
type DebugConfig struct {
	Overlay bool
}

// Config holds window and session settings.
type Config struct {
	Width      int
	Height     int
	TPS        int
	Level      string
	TuningPath string
	LogLevel   string
	LogFile    string
	Watch      bool
}

// TickMs is the fixed simulation step in milliseconds.
func (c *Config) TickMs() float64 {
	return 1000 / float64(c.TPS)
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Movement movement.Tuning
var Platform PlatformConfig
var SquashStretch SquashStretchConfig
var Camera CameraConfig
var Debug DebugConfig

// Debug overlay colors
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Sky       = color.RGBA{R: 24, G: 28, B: 44, A: 255}
	HUDShadow = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TPS:      60,
		Level:    "playground",
		LogLevel: "info",
	}

	Physics = PhysicsConfig{
		Gravity:      1500,
		MaxFallSpeed: 720,
		MaxRiseSpeed: -900,

		CellSize:     16,
		ContactProbe: 1,
	}

	Player = PlayerConfig{
		MaxSpeed: 210,
		Friction: 1400,
		AirDrag:  500,

		HitDurationMs:  400,
		HitKnockbackY:  -260,
		RespawnDelayMs: 750,

		CollisionWidth:  14,
		CollisionHeight: 24,
	}

	Movement = movement.DefaultTuning()

	Platform = PlatformConfig{
		Travel:      96,
		DurationSec: 2,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.8,
		JumpScaleY: 1.25,
		LandScaleX: 1.2,
		LandScaleY: 0.85,
		LerpSpeed:  0.2,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.15,
		LookAheadDistanceX:      40,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 30,

		HitShakeIntensity:   3,
		DeathShakeIntensity: 6,
		ShakeMs:             250,
	}
}
