package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every collision object with its space cells
// after the tick's moves.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
