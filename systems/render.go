package systems

import (
	"image/color"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/shared/movement"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// stateColors tints the player's body by movement state.
var stateColors = map[movement.StateID]color.RGBA{
	movement.StateGround:    colornames.Whitesmoke,
	movement.StateAirRise:   colornames.Skyblue,
	movement.StateAirFall:   colornames.Lightsteelblue,
	movement.StateWallSlide: colornames.Orange,
	movement.StateHit:       colornames.Tomato,
	movement.StateDead:      colornames.Dimgray,
	movement.StateSpawn:     colornames.Plum,
	movement.StateVictory:   colornames.Gold,
}

// DrawPlayer draws each player as a box scaled by squash and stretch around
// its feet, with a marker on the facing side. The marker steps through the
// current clip's frames.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camX, camY := camera.Offset(screen.Bounds().Dx(), screen.Bounds().Dy())

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		mv := components.Movement.Get(e)
		player := components.Player.Get(e)
		ss := components.SquashStretch.Get(e)
		anim := components.Animation.Get(e)

		c, ok := stateColors[mv.State()]
		if !ok {
			c = colornames.White
		}
		if mv.Fatigued() && mv.State() == movement.StateWallSlide {
			c = colornames.Darkorange
		}

		w := o.W * ss.ScaleX
		h := o.H * ss.ScaleY
		cx, _ := o.Center()
		x := cx - w/2 + camX
		y := o.Y + o.H - h + camY
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)

		frame := 0
		if anim.CurrentAnimation != nil {
			frame = anim.CurrentAnimation.Frame() - anim.CurrentAnimation.First
		}
		eyeX := x + w/2 + player.Facing*(w/4) - 1.5
		eyeY := y + 4 + float64(frame%2)
		vector.FillRect(screen, float32(eyeX), float32(eyeY), 3, 3, colornames.Black, false)
	})
}
