package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/movement"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 8
	hudLineHeight = 14
	pipSize       = 8
	pipGap        = 3
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// DrawHUD shows jump and wall-jump resources in the top-left corner and a
// banner once the goal is reached.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	mv := components.Movement.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	ledger := mv.Ledger()

	// One pip per jump left before landing
	y := float32(hudMargin)
	for i := 0; i < 2; i++ {
		c := color.Color(colornames.Skyblue)
		if i < ledger.JumpsUsed {
			c = cfg.Grey
		}
		vector.FillRect(screen, float32(hudMargin+i*(pipSize+pipGap)), y, pipSize, pipSize, c, false)
	}

	// Wall jumps left on the current side
	maxWall := ledger.Limits().MaxWallJumps
	for i := 0; i < maxWall; i++ {
		c := color.Color(colornames.Orange)
		if i < ledger.WallJumpCount {
			c = cfg.Grey
		}
		vector.StrokeRect(screen, float32(hudMargin+i*(pipSize+pipGap)), y+pipSize+pipGap, pipSize, pipSize, 1, c, false)
	}

	drawText(screen, fmt.Sprintf("deaths %d", player.Deaths), hudMargin, hudMargin+2*(pipSize+pipGap), cfg.White)

	if mv.State() == movement.StateVictory {
		msg := "LEVEL COMPLETE - press R to run it again"
		w := float64(len(msg) * 7)
		x := (float64(cfg.C.Width) - w) / 2
		by := float64(cfg.C.Height)/2 - hudLineHeight
		vector.FillRect(screen, float32(x-6), float32(by-4), float32(w+12), hudLineHeight+8, cfg.HUDShadow, false)
		drawText(screen, msg, x, by, colornames.Gold)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, hudFace, op)
}
