package components

import (
	"github.com/automoto/skyhop/shared/movement"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is the player's body. Velocities are pixels per second.
type PhysicsData struct {
	VelX     float64
	VelY     float64
	AccelX   float64
	Friction float64
	AirDrag  float64
	MaxSpeed float64

	// Set by collision resolution each tick.
	OnGround *resolv.Object
	Platform *PlatformMotion
	Contacts movement.Contacts

	// Pinned skips horizontal integration for one tick after the body was
	// placed directly.
	Pinned bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
