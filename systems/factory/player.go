package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/logger"
	"github.com/automoto/skyhop/shared/movement"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y). Passive platform
// riding is clamped to span.
func CreatePlayer(ecs *ecs.ECS, x, y float64, span movement.Span) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.DirectionRight,
		SpawnX: x,
		SpawnY: y,
		Jumps:  make(map[movement.JumpType]int),
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Friction: cfg.Player.Friction,
		AirDrag:  cfg.Player.AirDrag,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX:    1,
		ScaleY:    1,
		LerpSpeed: cfg.SquashStretch.LerpSpeed,
	})

	controller := movement.NewController(components.Body{Entry: player},
		movement.WithLogger(logger.Named("movement")),
		movement.WithTuning(cfg.Movement),
		movement.WithSpan(span),
		movement.WithJumpListener(func(ev movement.JumpEvent) {
			if !player.Valid() {
				return
			}
			q := components.JumpEvents.Get(player)
			q.Queue = append(q.Queue, ev)
		}),
	)
	components.Movement.SetValue(player, components.MovementData{Controller: controller})
	controller.ResetState()

	animData := GenerateAnimations("player")
	animData.SetAnimation(controller.AnimationKey())
	components.Animation.Set(player, animData)

	return player
}
