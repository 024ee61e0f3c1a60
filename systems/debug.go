package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision objects and prints the movement state,
// timers and resources. Toggled with F3 or -debug.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camX, camY := camera.Offset(screen.Bounds().Dx(), screen.Bounds().Dy())

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = cfg.Grey
			case obj.HasTags(tags.ResolvPlatform):
				c = cfg.Blue
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.Green
			case obj.HasTags(tags.ResolvHazard), obj.HasTags(tags.ResolvDeadZone):
				c = cfg.Red
			case obj.HasTags(tags.ResolvGoal):
				c = cfg.Orange
			}
			vector.StrokeRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	mv := components.Movement.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	s := mv.Sensors()
	l := mv.Ledger()

	lines := []string{
		fmt.Sprintf("state %s  anim %s  air %s", mv.State(), mv.AnimationKey(), mv.AirStyle()),
		fmt.Sprintf("vel %.0f,%.0f  floor %t  wall L%t R%t", physics.VelX, physics.VelY, s.OnFloor, s.TouchWallLeft, s.TouchWallRight),
		fmt.Sprintf("coyote %.0f  buffer %.0f  wallcoyote %.0f", l.Coyote, l.JumpBuffer, l.WallCoyote),
		fmt.Sprintf("jumps %d  double %t  wall %s x%d  tired %t", l.JumpsUsed, l.CanDoubleJump, l.WallJumpSide, l.WallJumpCount, l.Fatigued),
		fmt.Sprintf("riding %t  offset %.1f  mult %.2f", mv.Ride().Captured, mv.Ride().Offset, mv.Multiplier()),
	}
	y := float64(screen.Bounds().Dy()) - float64(len(lines))*hudLineHeight - hudMargin
	for i, line := range lines {
		drawText(screen, line, hudMargin, y+float64(i)*hudLineHeight, cfg.White)
	}
}
