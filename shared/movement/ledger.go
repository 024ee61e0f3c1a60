package movement

import "math"

// Limits caps the grace windows (ms) and the wall-jump count per side.
type Limits struct {
	CoyoteMs     float64 `yaml:"coyote_ms"`
	JumpBufferMs float64 `yaml:"jump_buffer_ms"`
	WallCoyoteMs float64 `yaml:"wall_coyote_ms"`
	MaxWallJumps int     `yaml:"max_wall_jumps"`
}

func DefaultLimits() Limits {
	return Limits{
		CoyoteMs:     120,
		JumpBufferMs: 150,
		WallCoyoteMs: 120,
		MaxWallJumps: 3,
	}
}

// Timers are countdowns in milliseconds. They never go below zero.
type Timers struct {
	Coyote     float64
	JumpBuffer float64
	WallCoyote float64
	Hit        float64
	Spawn      float64
}

// Resources are the jumps available in the current airborne phase.
type Resources struct {
	JumpsUsed     int
	CanDoubleJump bool
	WallJumpSide  WallSide
	WallJumpCount int
}

// Ledger holds the timers and jump resources of one player.
type Ledger struct {
	Timers
	Resources
	Fatigued bool

	limits   Limits
	touching WallSide
}

func NewLedger(limits Limits) Ledger {
	return Ledger{limits: limits}
}

func (l Ledger) Limits() Limits {
	return l.limits
}

func (l *Ledger) SetLimits(limits Limits) {
	l.limits = limits
	l.Coyote = math.Min(l.Coyote, limits.CoyoteMs)
	l.JumpBuffer = math.Min(l.JumpBuffer, limits.JumpBufferMs)
	l.WallCoyote = math.Min(l.WallCoyote, limits.WallCoyoteMs)
	l.clamp()
}

// Refresh applies contact resets from the current snapshot. Floor contact
// wins over wall contact.
func (l *Ledger) Refresh(s Sensors, side WallSide) {
	if s.OnFloor {
		l.Land()
		return
	}
	if side == WallNone {
		l.touching = WallNone
		return
	}
	l.TouchWall(side)
}

// Land restores every jump resource.
func (l *Ledger) Land() {
	l.Coyote = l.limits.CoyoteMs
	l.WallCoyote = 0
	l.touching = WallNone
	l.JumpsUsed = 0
	l.WallJumpSide = WallNone
	l.WallJumpCount = 0
	l.Fatigued = false
}

// TouchWall arms the wall grace window when a side is newly touched; staying
// on the same wall does not re-arm it. Touching a different side than the
// last one wall-jumped from starts a fresh wall-jump count.
func (l *Ledger) TouchWall(side WallSide) {
	if side == WallNone || side == l.touching {
		return
	}
	l.touching = side
	l.WallCoyote = l.limits.WallCoyoteMs
	if side != l.WallJumpSide {
		l.WallJumpSide = side
		l.WallJumpCount = 0
		l.Fatigued = false
	}
}

// Tick advances every timer by dtMs.
func (l *Ledger) Tick(dtMs float64) {
	if !(dtMs > 0) {
		return
	}
	l.Coyote = countdown(l.Coyote, dtMs)
	l.JumpBuffer = countdown(l.JumpBuffer, dtMs)
	l.WallCoyote = countdown(l.WallCoyote, dtMs)
	l.Hit = countdown(l.Hit, dtMs)
	l.Spawn = countdown(l.Spawn, dtMs)
}

func (l *Ledger) PressJump() {
	l.JumpBuffer = l.limits.JumpBufferMs
}

func (l Ledger) Buffered() bool {
	return l.JumpBuffer > 0
}

func (l *Ledger) ConsumeJumpBuffer() {
	l.JumpBuffer = 0
}

func (l *Ledger) ConsumeCoyote() {
	l.Coyote = 0
}

func (l *Ledger) ConsumeWallCoyote() {
	l.WallCoyote = 0
}

func (l *Ledger) SetHit(ms float64) {
	l.Hit = nonNegative(ms)
}

func (l *Ledger) SetSpawn(ms float64) {
	l.Spawn = nonNegative(ms)
}

// Apply stores resources produced by a jump decision, keeping the ledger
// inside its bounds.
func (l *Ledger) Apply(r Resources) {
	l.Resources = r
	l.clamp()
}

// Reset clears everything but the limits.
func (l *Ledger) Reset() {
	*l = Ledger{limits: l.limits}
}

func (l *Ledger) clamp() {
	l.JumpsUsed = clampInt(l.JumpsUsed, 0, 2)
	l.WallJumpCount = clampInt(l.WallJumpCount, 0, l.limits.MaxWallJumps)
}

func countdown(t, dt float64) float64 {
	t -= dt
	if t < 0 {
		return 0
	}
	return t
}

func nonNegative(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
