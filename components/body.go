package components

import (
	"github.com/automoto/skyhop/shared/movement"
	"github.com/yohamta/donburi"
)

// Body exposes an entity's Object and Physics components to the movement
// controller.
type Body struct {
	Entry *donburi.Entry
}

var _ movement.Body = Body{}

func (b Body) Contacts() movement.Contacts {
	return Physics.Get(b.Entry).Contacts
}

func (b Body) Velocity() (float64, float64) {
	p := Physics.Get(b.Entry)
	return p.VelX, p.VelY
}

func (b Body) SetVelocity(x, y float64) {
	p := Physics.Get(b.Entry)
	p.VelX, p.VelY = x, y
}

func (b Body) SetAccelerationX(x float64) {
	Physics.Get(b.Entry).AccelX = x
}

func (b Body) Position() (float64, float64) {
	return Object.Get(b.Entry).Center()
}

// SetX places the body's centre and pins it for the rest of the tick.
func (b Body) SetX(x float64) {
	obj := Object.Get(b.Entry)
	obj.X = x - obj.W/2
	obj.Update()
	Physics.Get(b.Entry).Pinned = true
}

func (b Body) Width() float64 {
	return Object.Get(b.Entry).W
}
