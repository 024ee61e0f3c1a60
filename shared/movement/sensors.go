package movement

// Contacts are the contact flags a physics body reports for the current tick.
type Contacts struct {
	Down  bool
	Left  bool
	Right bool
}

// Body is the physics body the controller reads and commands. Positions are
// the body's centre in world pixels, velocities are pixels per second.
type Body interface {
	Contacts() Contacts
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
	SetAccelerationX(x float64)
	Position() (x, y float64)
	SetX(x float64)
	Width() float64
}

// Sensors is a read-only view of the body for one tick.
type Sensors struct {
	OnFloor        bool
	TouchWallLeft  bool
	TouchWallRight bool
	VelocityX      float64
	VelocityY      float64

	// Edges against the previous snapshot.
	JustLanded     bool
	StartedFalling bool
}

// Next builds the snapshot that follows s from fresh contacts and velocity.
func (s Sensors) Next(c Contacts, vx, vy float64) Sensors {
	next := Sensors{
		OnFloor:        c.Down,
		TouchWallLeft:  c.Left,
		TouchWallRight: c.Right,
		VelocityX:      vx,
		VelocityY:      vy,
	}
	next.JustLanded = next.OnFloor && !s.OnFloor
	next.StartedFalling = !next.OnFloor && next.VelocityY > 0 && (s.OnFloor || s.VelocityY <= 0)
	return next
}

func (s Sensors) TouchingWall() bool {
	return s.TouchWallLeft || s.TouchWallRight
}

// Falling reports an airborne body moving downwards.
func (s Sensors) Falling() bool {
	return !s.OnFloor && s.VelocityY > 0
}

// WallSide picks the touched wall. When both sides are touched the side the
// player is pushing towards wins, defaulting to the left.
func (s Sensors) WallSide(moveAxis float64) WallSide {
	switch {
	case s.TouchWallLeft && s.TouchWallRight:
		if moveAxis > 0 {
			return WallRight
		}
		return WallLeft
	case s.TouchWallLeft:
		return WallLeft
	case s.TouchWallRight:
		return WallRight
	default:
		return WallNone
	}
}
