package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolid creates floor or ledge geometry.
func CreateSolid(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createBlock(ecs, archetypes.Solid.Spawn(ecs), x, y, w, h, tags.ResolvSolid)
}

// CreateWall creates a wall. Walls collide like solids; the tag only
// changes how they are drawn.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createBlock(ecs, archetypes.Wall.Spawn(ecs), x, y, w, h, tags.ResolvSolid)
}

// CreateHazard creates a zone that knocks the player into the hit state.
func CreateHazard(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createBlock(ecs, archetypes.Hazard.Spawn(ecs), x, y, w, h, tags.ResolvHazard)
}

// CreateGoal creates the level's finish zone.
func CreateGoal(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createBlock(ecs, archetypes.Goal.Spawn(ecs), x, y, w, h, tags.ResolvGoal)
}

// CreateDeadZone creates an invisible collision zone that kills on touch.
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, obj)
	return obj
}

func createBlock(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tag string) *donburi.Entry {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return entry
}
