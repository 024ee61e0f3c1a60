package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/logger"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdatePlayer runs one controller tick per player, then derives facing and
// landing feedback from the result.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePlayer(e)
	})
}

func updateSinglePlayer(e *donburi.Entry) {
	mv := components.Movement.Get(e)
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)

	mv.Update(cfg.C.TickMs())

	switch {
	case physics.AccelX > 0:
		player.Facing = cfg.DirectionRight
	case physics.AccelX < 0:
		player.Facing = cfg.DirectionLeft
	}

	if mv.Sensors().JustLanded {
		TriggerSquashStretch(e, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
	}
}

// UpdateJumpEvents drains each player's jump queue: counts, logs and jump
// squash.
func UpdateJumpEvents(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		q := components.JumpEvents.Get(e)
		if len(q.Queue) == 0 {
			return
		}
		player := components.Player.Get(e)
		for _, ev := range q.Queue {
			player.Jumps[ev.Type]++
			player.LastJump = ev
			logger.Debug("jump",
				zap.String("type", string(ev.Type)),
				zap.Float64("x", ev.X),
				zap.Float64("y", ev.Y),
			)
		}
		q.Queue = q.Queue[:0]
		TriggerSquashStretch(e, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
	})
}

// ApplyTuning pushes the live tuning globals to every player.
func ApplyTuning(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Movement.Get(e).SetTuning(cfg.Movement)

		physics := components.Physics.Get(e)
		physics.Friction = cfg.Player.Friction
		physics.AirDrag = cfg.Player.AirDrag
		physics.MaxSpeed = cfg.Player.MaxSpeed
	})
	logger.Info("tuning applied",
		zap.Float64("jump_force", cfg.Movement.Jump.BaseJumpForce),
		zap.Int("max_wall_jumps", cfg.Movement.Limits.MaxWallJumps),
	)
}
