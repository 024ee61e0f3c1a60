package movement

import "math"

// JumpTuning holds jump forces in pixels per second.
type JumpTuning struct {
	BaseJumpForce       float64 `yaml:"base_jump_force"`
	BaseWallJumpX       float64 `yaml:"base_wall_jump_x"`
	BaseWallJumpY       float64 `yaml:"base_wall_jump_y"`
	SideJumpBonus       float64 `yaml:"side_jump_bonus"`
	SideDoubleJumpBonus float64 `yaml:"side_double_jump_bonus"`
	SideThreshold       float64 `yaml:"side_threshold"`

	// AirborneFirstJump grants a standing jump to a player that left the
	// ground without jumping after coyote time ran out.
	AirborneFirstJump bool `yaml:"airborne_first_jump"`
}

func DefaultJumpTuning() JumpTuning {
	return JumpTuning{
		BaseJumpForce:       580,
		BaseWallJumpX:       320,
		BaseWallJumpY:       540,
		SideJumpBonus:       1.1,
		SideDoubleJumpBonus: 1.05,
		SideThreshold:       0.2,
		AirborneFirstJump:   true,
	}
}

// Impulse is the velocity a jump applies. VelocityX is only meaningful when
// SetsX is true.
type Impulse struct {
	Type      JumpType
	VelocityX float64
	VelocityY float64
	SetsX     bool
}

// StyleFor classifies lateral input. Negligible input always yields UP.
func StyleFor(moveAxis, threshold float64) AirStyle {
	if math.Abs(moveAxis) > threshold {
		return AirStyleSide
	}
	return AirStyleUp
}

// CanAcceptJump reports whether any jump could be granted right now.
func CanAcceptJump(s Sensors, l Ledger, airborneFirstJump bool) bool {
	touching := s.TouchingWall()
	switch {
	case (touching || l.WallCoyote > 0) && l.WallJumpCount < l.limits.MaxWallJumps:
		return true
	case s.OnFloor || l.Coyote > 0:
		return true
	case airborneFirstJump && !s.OnFloor && l.JumpsUsed == 0 && !touching:
		return true
	case l.CanDoubleJump && l.JumpsUsed == 1:
		return true
	}
	return false
}

// StandingJump resolves a ground or coyote jump. It always succeeds.
func StandingJump(r Resources, t JumpTuning, multiplier float64, style AirStyle) (Resources, Impulse) {
	bonus := 1.0
	if style == AirStyleSide {
		bonus = t.SideJumpBonus
	}
	r.JumpsUsed = max(r.JumpsUsed, 1)
	r.CanDoubleJump = true
	return r, Impulse{
		Type:      JumpStanding,
		VelocityY: -t.BaseJumpForce * multiplier * bonus,
	}
}

// DoubleJump resolves the second airborne jump.
func DoubleJump(r Resources, t JumpTuning, multiplier float64, style AirStyle) (Resources, Impulse, bool) {
	if r.JumpsUsed != 1 || !r.CanDoubleJump {
		return r, Impulse{}, false
	}
	bonus := 1.0
	if style == AirStyleSide {
		bonus = t.SideDoubleJumpBonus
	}
	r.JumpsUsed = 2
	r.CanDoubleJump = false
	return r, Impulse{
		Type:      JumpDouble,
		VelocityY: -t.BaseJumpForce * multiplier * bonus,
	}, true
}

// WallJump pushes away from side. It is rejected once that side has used
// maxWallJumps jumps; the caller raises fatigue in that case.
func WallJump(r Resources, t JumpTuning, multiplier float64, side WallSide, maxWallJumps int) (Resources, Impulse, bool) {
	if side == WallNone {
		return r, Impulse{}, false
	}
	if side != r.WallJumpSide {
		r.WallJumpSide = side
		r.WallJumpCount = 0
	}
	if r.WallJumpCount >= maxWallJumps {
		return r, Impulse{}, false
	}
	r.WallJumpCount++
	r.JumpsUsed = max(r.JumpsUsed, 1)
	r.CanDoubleJump = true
	return r, Impulse{
		Type:      JumpWall,
		VelocityX: side.Away() * t.BaseWallJumpX * multiplier,
		VelocityY: -t.BaseWallJumpY * multiplier,
		SetsX:     true,
	}, true
}

// Fatigued reports whether side has no wall jumps left.
func Fatigued(r Resources, side WallSide, maxWallJumps int) bool {
	return side != WallNone && side == r.WallJumpSide && r.WallJumpCount >= maxWallJumps
}
