// Package movement resolves player movement: a sensor-driven state machine
// for standing, double and wall jumps, coyote time, jump buffering and
// co-motion with moving platforms. It has no dependencies on ebitengine,
// donburi, or resolv; the physics body and platforms are reached through
// small interfaces so the package can be driven from any host loop.
package movement

// StateID identifies the single active movement state.
type StateID int

const (
	StateNone StateID = iota
	StateGround
	StateAirRise
	StateAirFall
	StateWallSlide
	StateHit
	StateDead
	StateSpawn
	StateVictory
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	StateGround:    "ground",
	StateAirRise:   "air_rise",
	StateAirFall:   "air_fall",
	StateWallSlide: "wall_slide",
	StateHit:       "hit",
	StateDead:      "dead",
	StateSpawn:     "spawn",
	StateVictory:   "victory",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the defined states.
func (s StateID) Valid() bool {
	_, ok := stateNames[s]
	return ok && s != StateNone
}

// Airborne reports whether s is a free-flight state.
func (s StateID) Airborne() bool {
	return s == StateAirRise || s == StateAirFall
}

// WallSide is the wall a body is touching or last wall-jumped from.
type WallSide int

const (
	WallNone WallSide = iota
	WallLeft
	WallRight
)

func (w WallSide) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	default:
		return "none"
	}
}

// Away returns the horizontal direction pointing away from the wall.
func (w WallSide) Away() float64 {
	switch w {
	case WallLeft:
		return 1
	case WallRight:
		return -1
	default:
		return 0
	}
}

// AirStyle selects jump force bonuses and airborne animation variants.
type AirStyle int

const (
	AirStyleUp AirStyle = iota
	AirStyleSide
	AirStyleWall
)

func (a AirStyle) String() string {
	switch a {
	case AirStyleSide:
		return "side"
	case AirStyleWall:
		return "wall"
	default:
		return "up"
	}
}

// JumpType names the jump that was performed.
type JumpType string

const (
	JumpStanding JumpType = "jump"
	JumpDouble   JumpType = "double_jump"
	JumpWall     JumpType = "wall_jump"
)

// JumpEvent is emitted once per performed jump. X and Y are the body's
// position when the impulse was applied.
type JumpEvent struct {
	Type JumpType
	X, Y float64
}

// JumpListener receives jump events synchronously at the end of a tick.
type JumpListener func(JumpEvent)

// Intent is the device-independent desired action for the current tick.
type Intent struct {
	MoveAxis    float64
	JumpPressed bool
}
