// Package leveldata parses TMX levels into plain geometry. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

import "errors"

var (
	// ErrNoSpawn is returned for a level without a PlayerSpawn object.
	ErrNoSpawn = errors.New("level has no player spawn")
	// ErrEmptyLevel is returned for a level with no solid geometry.
	ErrEmptyLevel = errors.New("level has no solid geometry")
)

// Object group names read from the TMX file.
const (
	GroupSolids      = "Solids"
	GroupWalls       = "Walls"
	GroupPlatforms   = "Platforms"
	GroupHazards     = "Hazards"
	GroupDeadZones   = "DeadZones"
	GroupGoal        = "Goal"
	GroupPlayerSpawn = "PlayerSpawn"
)

// Platform axes.
const (
	AxisX = "x"
	AxisY = "y"
)

// Level holds everything the world scene builds from a TMX file.
type Level struct {
	Name      string
	Width     int
	Height    int
	Solids    []Rect
	Walls     []Rect
	Platforms []PlatformSpawn
	Hazards   []Rect
	DeadZones []Rect
	Goals     []Rect
	Spawn     Point
}

type Rect struct {
	X, Y, W, H float64
}

// Point is a position in world pixels. A spawn point marks the player's feet.
type Point struct {
	X, Y float64
}

// PlatformSpawn is a moving platform that travels from its rect by Travel
// pixels along Axis and back, taking DurationSec each way. Zero values are
// filled from defaults by the caller.
type PlatformSpawn struct {
	Rect
	Axis        string
	Travel      float64
	DurationSec float64
}
