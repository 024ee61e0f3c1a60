package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation plays the clip named by each player's animation key.
func UpdateAnimation(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		anim.SetAnimation(components.Movement.Get(e).AnimationKey())
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(cfg.C.TickMs())
		}
	})
}
