package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/gamemath"
	"github.com/automoto/skyhop/shared/movement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates acceleration, friction and gravity into velocity.
// Horizontal speed is limited relative to the platform underfoot so riders
// keep the platform's velocity on top of their own.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.C.TickMs() / 1000

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		// Freeze in place during the respawn delay
		if e.HasComponent(components.Death) {
			physics.VelX, physics.VelY, physics.AccelX = 0, 0, 0
			return
		}

		base := 0.0
		if physics.Platform != nil && physics.OnGround != nil {
			base = physics.Platform.VelX
		}
		rel := gamemath.RelativeVelocity(physics.VelX, base)

		if physics.AccelX != 0 {
			rel += physics.AccelX * dt
		} else {
			drag := physics.AirDrag
			if physics.OnGround != nil {
				drag = physics.Friction
			}
			rel = gamemath.ApplyFriction(rel, drag*dt)
		}
		rel = gamemath.ClampSpeed(rel, physics.MaxSpeed)
		physics.VelX = base + rel

		physics.VelY += cfg.Physics.Gravity * dt
		physics.VelY = gamemath.Clamp(physics.VelY, cfg.Physics.MaxRiseSpeed, cfg.Physics.MaxFallSpeed)

		if e.HasComponent(components.Movement) {
			mv := components.Movement.Get(e)
			if mv.State() == movement.StateWallSlide && physics.VelY > mv.Tuning().WallSlideSpeed {
				physics.VelY = mv.Tuning().WallSlideSpeed
			}
		}
	})
}
