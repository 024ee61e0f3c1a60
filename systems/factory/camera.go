package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera starts the camera centred on (x, y).
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
	return camera
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)
	components.Input.Set(input, &components.InputData{})
	return input
}
