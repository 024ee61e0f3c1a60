package systems

import (
	"math"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects eases squash and stretch back to rest.
func UpdateEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (1 - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (1 - ss.ScaleY) * ss.LerpSpeed

		// Snap once close enough
		if math.Abs(ss.ScaleX-1) < 0.01 && math.Abs(ss.ScaleY-1) < 0.01 {
			ss.ScaleX, ss.ScaleY = 1, 1
		}
	})
}

// TriggerSquashStretch deforms an entity's sprite; UpdateEffects eases it
// back.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(entry)
	ss.ScaleX = scaleX
	ss.ScaleY = scaleY
	ss.LerpSpeed = cfg.SquashStretch.LerpSpeed
}
