package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateDeaths counts down the respawn delay of dead players.
func UpdateDeaths(ecs *ecs.ECS) {
	var ready []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.TimerMs -= cfg.C.TickMs()
		if death.TimerMs <= 0 {
			ready = append(ready, e)
		}
	})

	for _, e := range ready {
		Respawn(ecs, e)
	}
}

// Respawn puts a player back on its spawn point with a fresh controller
// state.
func Respawn(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		e.RemoveComponent(components.Death)
	}

	player := components.Player.Get(e)
	player.Finished = false

	obj := components.Object.Get(e)
	obj.X = player.SpawnX - obj.W/2
	obj.Y = player.SpawnY - obj.H
	obj.Update()

	physics := components.Physics.Get(e)
	physics.VelX, physics.VelY, physics.AccelX = 0, 0, 0
	physics.OnGround = nil
	physics.Platform = nil
	physics.Pinned = false
	physics.Contacts.Down, physics.Contacts.Left, physics.Contacts.Right = false, false, false

	mv := components.Movement.Get(e)
	mv.SetCurrentPlatform(nil)
	mv.ResetState()

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.LookAheadX = 0
	}

	logger.Info("player respawned", zap.Float64("x", player.SpawnX), zap.Float64("y", player.SpawnY))
}
