package components

import (
	"github.com/automoto/skyhop/shared/movement"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64
	SpawnX float64
	SpawnY float64

	Deaths   int
	Finished bool
	Jumps    map[movement.JumpType]int
	LastJump movement.JumpEvent
}

var Player = donburi.NewComponentType[PlayerData]()

// MovementData holds the controller that resolves the player's movement.
type MovementData struct {
	*movement.Controller
}

var Movement = donburi.NewComponentType[MovementData]()

// JumpEventsData queues jump events from the controller until the jump
// event system drains them.
type JumpEventsData struct {
	Queue []movement.JumpEvent
}

var JumpEvents = donburi.NewComponentType[JumpEventsData]()
