package systems

import (
	"math"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(physics.VelX) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.Facing * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	cx, cy := playerObject.Center()
	targetX := cx + camera.LookAheadX
	targetY := cy

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	targetX = clampCamera(targetX, screenWidth/2, levelWidth-screenWidth/2)
	targetY = clampCamera(targetY, screenHeight/2, levelHeight-screenHeight/2)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing

	updateScreenShake(cameraEntry, camera)
}

// clampCamera keeps the level filling the screen. A level smaller than the
// screen is centred.
func clampCamera(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// updateScreenShake applies a decaying shake offset to the camera.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.ElapsedMs += config.C.TickMs()

	progress := 0.0
	if shake.DurationMs > 0 {
		progress = math.Max(0, (shake.DurationMs-shake.ElapsedMs)/shake.DurationMs)
	}
	intensity := shake.Intensity * progress

	// Oscillate on sine/cosine for a smooth shake
	t := shake.ElapsedMs / 16
	camera.Position.X += math.Sin(t*1.1) * intensity
	camera.Position.Y += math.Cos(t*1.3) * intensity

	if shake.ElapsedMs >= shake.DurationMs {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake. A weaker shake never replaces a
// stronger one in progress.
func TriggerScreenShake(ecs *ecs.ECS, intensity, durationMs float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.DurationMs = durationMs
			shake.ElapsedMs = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity:  intensity,
		DurationMs: durationMs,
	})
}
