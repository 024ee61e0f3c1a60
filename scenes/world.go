package scenes

import (
	"sync"

	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/leveldata"
	"github.com/automoto/skyhop/shared/movement"
	"github.com/automoto/skyhop/systems"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// simulation is the fixed per-tick pipeline after input. Order matters:
// platforms move first so riders follow this tick, the controller runs
// against last tick's contacts, physics integrates, collisions refresh the
// contacts for the next tick.
var simulation = []ecs.System{
	systems.UpdatePlatforms,
	systems.UpdatePlayer,
	systems.UpdateJumpEvents,
	systems.UpdatePhysics,
	systems.UpdateCollisions,
	systems.UpdateObjects,
	systems.UpdateDeaths,
	systems.UpdateAnimation,
	systems.UpdateEffects,
	systems.UpdateCamera,
}

type PlatformerScene struct {
	ecs   *ecs.ECS
	level *leveldata.Level
	once  sync.Once
}

func NewPlatformerScene(level *leveldata.Level) *PlatformerScene {
	return &PlatformerScene{level: level}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// ApplyTuning pushes reloaded tuning into the running world.
func (ps *PlatformerScene) ApplyTuning() {
	if ps.ecs == nil {
		return
	}
	systems.ApplyTuning(ps.ecs)
}

func (ps *PlatformerScene) configure() {
	ps.ecs = NewWorld(ps.level)

	ps.ecs.AddSystem(systems.UpdateInput)
	for _, system := range simulation {
		ps.ecs.AddSystem(system)
	}

	ps.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
}

// NewWorld builds the entities for level without registering any systems.
func NewWorld(level *leveldata.Level) *ecs.ECS {
	world := ecs.NewECS(donburi.NewWorld())

	// The level entity and space come first; every collision object is
	// added to the space as it is created.
	factory.CreateLevelFrom(world, level)
	factory.CreateSpace(world, level.Width, level.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	factory.CreateInput(world)

	for _, r := range level.Solids {
		factory.CreateSolid(world, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Walls {
		factory.CreateWall(world, r.X, r.Y, r.W, r.H)
	}
	for _, p := range level.Platforms {
		factory.CreatePlatform(world, p)
	}
	for _, r := range level.Hazards {
		factory.CreateHazard(world, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.DeadZones {
		factory.CreateDeadZone(world, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Goals {
		factory.CreateGoal(world, r.X, r.Y, r.W, r.H)
	}

	span := movement.Span{MinX: 0, MaxX: float64(level.Width)}
	factory.CreatePlayer(world, level.Spawn.X, level.Spawn.Y, span)

	// Snap the camera to the spawn to prevent panning in from (0,0)
	factory.CreateCamera(world, level.Spawn.X, level.Spawn.Y)

	return world
}

// Step runs one simulation tick without polling input.
func Step(world *ecs.ECS) {
	for _, system := range simulation {
		system(world)
	}
}
