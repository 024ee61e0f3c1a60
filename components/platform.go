package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformMotion drives a moving platform along one axis with a tween that
// yields its offset from the origin. It lives on the heap so riders can hold
// it across ticks.
type PlatformMotion struct {
	Tween   *gween.Sequence
	Axis    string
	OriginX float64
	OriginY float64
	Enabled bool

	CenterX float64
	VelX    float64
	VelY    float64
}

func (p *PlatformMotion) Active() bool       { return p != nil && p.Enabled }
func (p *PlatformMotion) Moving() bool       { return p.VelX != 0 || p.VelY != 0 }
func (p *PlatformMotion) X() float64         { return p.CenterX }
func (p *PlatformMotion) VelocityX() float64 { return p.VelX }

type PlatformData struct {
	*PlatformMotion
}

var Platform = donburi.NewComponentType[PlatformData]()
