package movement

import "math"

// Platform is a moving surface the player can ride. Implementations are not
// owned by the controller; X is the platform's centre.
type Platform interface {
	Active() bool
	Moving() bool
	X() float64
	VelocityX() float64
}

// Span bounds the horizontal playable area. A zero span is unbounded.
type Span struct {
	MinX, MaxX float64
}

func (s Span) bounded() bool {
	return s.MaxX > s.MinX
}

// Clamp keeps a body of the given half width inside the span.
func (s Span) Clamp(x, halfWidth float64) float64 {
	if !s.bounded() {
		return x
	}
	lo, hi := s.MinX+halfWidth, s.MaxX-halfWidth
	if hi < lo {
		return (s.MinX + s.MaxX) / 2
	}
	return math.Max(lo, math.Min(x, hi))
}

// Ride tracks the player's co-motion with one platform.
type Ride struct {
	Platform         Platform
	Offset           float64
	Captured         bool
	LastPlatformVelX float64
}

// RideInput is the player's side of one co-motion step.
type RideInput struct {
	OnFloor   bool
	MoveAxis  float64
	Deadzone  float64
	X         float64
	VelocityX float64
	HalfWidth float64
	Span      Span
}

// RideOutput is the body command for one step. Nothing is commanded unless
// Riding is set; X is only written when SetX is set.
type RideOutput struct {
	Riding    bool
	SetX      bool
	X         float64
	VelocityX float64
}

// StepRide advances the ride by one tick.
func StepRide(r Ride, in RideInput) (Ride, RideOutput) {
	p := r.Platform
	if p == nil || !p.Active() {
		return Ride{}, RideOutput{}
	}
	if !p.Moving() || !in.OnFloor {
		return Ride{Platform: p}, RideOutput{}
	}

	px, pv := p.X(), p.VelocityX()
	if math.Abs(in.MoveAxis) <= in.Deadzone {
		if !r.Captured {
			r.Offset = in.X - px
			r.Captured = true
		}
		r.LastPlatformVelX = pv
		return r, RideOutput{
			Riding:    true,
			SetX:      true,
			X:         in.Span.Clamp(px+r.Offset, in.HalfWidth),
			VelocityX: pv,
		}
	}

	own := in.VelocityX - r.LastPlatformVelX
	r.Offset = in.X - px
	r.Captured = true
	r.LastPlatformVelX = pv
	return r, RideOutput{
		Riding:    true,
		X:         in.X,
		VelocityX: own + pv,
	}
}
