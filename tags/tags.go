package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Solid    = donburi.NewTag().SetName("Solid")
	Wall     = donburi.NewTag().SetName("Wall")
	Platform = donburi.NewTag().SetName("Platform")
	Hazard   = donburi.NewTag().SetName("Hazard")
	Goal     = donburi.NewTag().SetName("Goal")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
	ResolvHazard   = "hazard"
	ResolvDeadZone = "deadzone"
	ResolvGoal     = "goal"
)
