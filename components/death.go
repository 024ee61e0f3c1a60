package components

import "github.com/yohamta/donburi"

// DeathData marks a player waiting to respawn.
type DeathData struct {
	TimerMs float64
}

var Death = donburi.NewComponentType[DeathData]()
