package systems

import (
	"math"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/logger"
	"github.com/automoto/skyhop/shared/movement"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// contactEpsilon is the overlap below which two edges count as touching
// rather than overlapping.
const contactEpsilon = 0.5

type zoneHit struct {
	entry *donburi.Entry
	zone  *resolv.Object
}

// UpdateCollisions moves each player through the space, refreshes its
// contact flags and reacts to hazards, dead zones and the goal.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := cfg.C.TickMs() / 1000

	var deaths, hazards, goals []zoneHit
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if e.HasComponent(components.Death) {
			physics.Pinned = false
			return
		}

		dx := physics.VelX * dt
		if physics.Pinned {
			dx = 0
			physics.Pinned = false
		}
		resolveHorizontalCollision(physics, obj.Object, dx)
		resolveVerticalCollision(physics, obj.Object, physics.VelY*dt)
		obj.Update()

		updateContacts(e, physics, obj.Object)

		if zone := touching(obj.Object, tags.ResolvDeadZone); zone != nil {
			deaths = append(deaths, zoneHit{e, zone})
		} else if zone := touching(obj.Object, tags.ResolvHazard); zone != nil {
			hazards = append(hazards, zoneHit{e, zone})
		}
		if zone := touching(obj.Object, tags.ResolvGoal); zone != nil {
			goals = append(goals, zoneHit{e, zone})
		}
	})

	for _, h := range deaths {
		handleDeadZoneHit(ecs, h.entry)
	}
	for _, h := range hazards {
		handleHazardHit(ecs, h.entry, h.zone)
	}
	for _, h := range goals {
		handleGoalReached(h.entry)
	}
}

// resolveHorizontalCollision moves the object by dx, stopping flush against
// the first solid in the way.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if overlap(object.Y, object.Y+object.H, solid.Y, solid.Y+solid.H) <= contactEpsilon {
				continue
			}
			contact := check.ContactWithObject(solid).X()
			if contact*dx >= 0 && math.Abs(contact) < math.Abs(dx) {
				dx = contact
				physics.VelX = 0
			}
		}
	}
	object.X += dx
}

// resolveVerticalCollision moves the object by dy. Solids block both ways;
// platforms only catch a falling object from above.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}
	if check := object.Check(0, dy, tags.ResolvSolid, tags.ResolvPlatform); check != nil {
		blockers := check.ObjectsByTags(tags.ResolvSolid)
		if dy > 0 {
			for _, p := range check.ObjectsByTags(tags.ResolvPlatform) {
				if object.Y+object.H <= p.Y+contactEpsilon {
					blockers = append(blockers, p)
				}
			}
		}
		for _, o := range blockers {
			if overlap(object.X, object.X+object.W, o.X, o.X+o.W) <= contactEpsilon {
				continue
			}
			contact := check.ContactWithObject(o).Y()
			if contact*dy >= 0 && math.Abs(contact) < math.Abs(dy) {
				dy = contact
				physics.VelY = 0
			}
		}
	}
	object.Y += dy
}

// updateContacts probes one pixel around the object and tells the
// controller when the platform underfoot changes.
func updateContacts(e *donburi.Entry, physics *components.PhysicsData, object *resolv.Object) {
	contacts, ground := probeContacts(object, cfg.Physics.ContactProbe)
	physics.Contacts = contacts
	physics.OnGround = ground

	platform := platformOf(ground)
	if platform == physics.Platform {
		return
	}
	physics.Platform = platform

	mv := components.Movement.Get(e)
	if platform == nil {
		mv.SetCurrentPlatform(nil)
		return
	}
	mv.SetCurrentPlatform(platform)
}

// probeContacts reports floor and wall contact. The space only narrows by
// cell, so each candidate gets an exact edge test.
func probeContacts(object *resolv.Object, probe float64) (movement.Contacts, *resolv.Object) {
	var c movement.Contacts
	var ground *resolv.Object

	bottom := object.Y + object.H
	if check := object.Check(0, probe, tags.ResolvSolid, tags.ResolvPlatform); check != nil {
		for _, o := range check.Objects {
			if !o.HasTags(tags.ResolvSolid) && !o.HasTags(tags.ResolvPlatform) {
				continue
			}
			if overlap(object.X, object.X+object.W, o.X, o.X+o.W) <= contactEpsilon {
				continue
			}
			// Feet must sit within the probe of the top edge.
			if bottom < o.Y-probe || bottom > o.Y+contactEpsilon {
				continue
			}
			c.Down = true
			if ground == nil || o.HasTags(tags.ResolvPlatform) {
				ground = o
			}
		}
	}

	if check := object.Check(-probe, 0, tags.ResolvSolid); check != nil {
		for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
			right := o.X + o.W
			if overlap(object.Y, bottom, o.Y, o.Y+o.H) > contactEpsilon &&
				right >= object.X-probe && right <= object.X+contactEpsilon {
				c.Left = true
			}
		}
	}
	if check := object.Check(probe, 0, tags.ResolvSolid); check != nil {
		for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
			edge := object.X + object.W
			if overlap(object.Y, bottom, o.Y, o.Y+o.H) > contactEpsilon &&
				o.X <= edge+probe && o.X >= edge-contactEpsilon {
				c.Right = true
			}
		}
	}

	return c, ground
}

// touching returns the first object with tag that truly overlaps object.
func touching(object *resolv.Object, tag string) *resolv.Object {
	check := object.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(tag) {
		if overlap(object.X, object.X+object.W, o.X, o.X+o.W) > 0 &&
			overlap(object.Y, object.Y+object.H, o.Y, o.Y+o.H) > 0 {
			return o
		}
	}
	return nil
}

// overlap returns the length shared by [a0,a1] and [b0,b1].
func overlap(a0, a1, b0, b1 float64) float64 {
	return math.Min(a1, b1) - math.Max(a0, b0)
}

// handleDeadZoneHit kills the player and starts the respawn delay.
func handleDeadZoneHit(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}

	components.Movement.Get(e).EnterDeath()
	player := components.Player.Get(e)
	player.Deaths++

	physics := components.Physics.Get(e)
	physics.VelX, physics.VelY, physics.AccelX = 0, 0, 0

	e.AddComponent(components.Death)
	components.Death.Set(e, &components.DeathData{TimerMs: cfg.Player.RespawnDelayMs})

	TriggerScreenShake(ecs, cfg.Camera.DeathShakeIntensity, cfg.Camera.ShakeMs)
	logger.Info("player died", zap.Int("deaths", player.Deaths))
}

// handleHazardHit knocks the player up and away from the hazard.
func handleHazardHit(ecs *ecs.ECS, e *donburi.Entry, hazard *resolv.Object) {
	mv := components.Movement.Get(e)
	if mv.Dead() || mv.State() == movement.StateHit {
		return
	}
	mv.EnterHit(cfg.Player.HitDurationMs)

	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	dir := -components.Player.Get(e).Facing
	if cx, _ := obj.Center(); cx != hazard.X+hazard.W/2 {
		dir = math.Copysign(1, cx-(hazard.X+hazard.W/2))
	}
	physics.VelX = dir * physics.MaxSpeed / 2
	physics.VelY = cfg.Player.HitKnockbackY

	TriggerScreenShake(ecs, cfg.Camera.HitShakeIntensity, cfg.Camera.ShakeMs)
	logger.Debug("hazard hit", zap.Float64("x", obj.X), zap.Float64("y", obj.Y))
}

func handleGoalReached(e *donburi.Entry) {
	player := components.Player.Get(e)
	if player.Finished {
		return
	}
	player.Finished = true
	components.Movement.Get(e).EnterVictory()

	total := 0
	for _, n := range player.Jumps {
		total += n
	}
	logger.Info("level complete", zap.Int("deaths", player.Deaths), zap.Int("jumps", total))
}
