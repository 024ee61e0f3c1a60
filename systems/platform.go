package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/leveldata"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances every moving platform's tween and records its
// velocity. Riders are carried vertically here; horizontal co-motion is the
// movement controller's job.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := cfg.C.TickMs() / 1000

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Platform.Get(e)
		obj := components.Object.Get(e)
		if !m.Enabled || m.Tween == nil {
			m.VelX, m.VelY = 0, 0
			return
		}

		offset, _, done := m.Tween.Update(float32(dt))
		if done {
			m.Tween.Reset()
		}

		x, y := m.OriginX, m.OriginY
		if m.Axis == leveldata.AxisY {
			y += float64(offset)
		} else {
			x += float64(offset)
		}
		dx, dy := x-obj.X, y-obj.Y
		m.VelX, m.VelY = dx/dt, dy/dt

		if dy != 0 {
			carryRiders(ecs, obj.Object, dy)
		}

		obj.X, obj.Y = x, y
		obj.Update()
		m.CenterX = obj.X + obj.W/2
	})
}

func carryRiders(ecs *ecs.ECS, platform *resolv.Object, dy float64) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Physics.Get(e).OnGround != platform {
			return
		}
		obj := components.Object.Get(e)
		obj.Y += dy
		obj.Update()
	})
}

// platformOf returns the motion of the platform behind a collision object.
func platformOf(o *resolv.Object) *components.PlatformMotion {
	if o == nil {
		return nil
	}
	entry, ok := o.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() || !entry.HasComponent(components.Platform) {
		return nil
	}
	return components.Platform.Get(entry).PlatformMotion
}
