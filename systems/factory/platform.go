package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/leveldata"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a one-way moving platform. It travels out by
// Travel pixels and back, each leg taking DurationSec.
func CreatePlatform(ecs *ecs.ECS, spawn leveldata.PlatformSpawn) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, spawn.W, spawn.H))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	travel := spawn.Travel
	if travel == 0 {
		travel = cfg.Platform.Travel
	}
	duration := spawn.DurationSec
	if duration <= 0 {
		duration = cfg.Platform.DurationSec
	}

	// The platform moves using a *gween.Sequence of tweens over its offset,
	// out and back.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(travel), float32(duration), ease.InOutSine),
		gween.New(float32(travel), 0, float32(duration), ease.InOutSine),
	)

	components.Platform.SetValue(platform, components.PlatformData{
		PlatformMotion: &components.PlatformMotion{
			Tween:   tw,
			Axis:    spawn.Axis,
			OriginX: spawn.X,
			OriginY: spawn.Y,
			Enabled: true,
			CenterX: spawn.X + spawn.W/2,
		},
	})

	return platform
}
