package systems

import (
	"image/color"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// DrawLevel fills the sky and draws level geometry as flat shapes.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	camX, camY := camera.Offset(screen.Bounds().Dx(), screen.Bounds().Dy())

	drawTagged(ecs, screen, tags.Solid, camX, camY, colornames.Slategray)
	drawTagged(ecs, screen, tags.Wall, camX, camY, colornames.Darkslategray)
	drawTagged(ecs, screen, tags.Platform, camX, camY, colornames.Steelblue)
	drawTagged(ecs, screen, tags.Hazard, camX, camY, colornames.Crimson)
	drawTagged(ecs, screen, tags.Goal, camX, camY, colornames.Gold)
}

func drawTagged(ecs *ecs.ECS, screen *ebiten.Image, tag *donburi.ComponentType[donburi.Tag], camX, camY float64, c color.Color) {
	tag.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), c, false)
	})
}
