package movement

// SubStyle refines a state into an animation variant.
type SubStyle int

const (
	SubNone SubStyle = iota
	SubIdle
	SubRun
	SubDecel
	SubUp
	SubSide
	SubWall
	SubDouble
	SubFatigued
)

// Animation keys consumed by the animation player.
const (
	AnimIdle           = "idle"
	AnimRun            = "run"
	AnimSkid           = "skid"
	AnimJump           = "jump"
	AnimJumpSide       = "jump_side"
	AnimWallKick       = "wall_kick"
	AnimDoubleJump     = "double_jump"
	AnimFall           = "fall"
	AnimWallSlide      = "wall_slide"
	AnimWallSlideTired = "wall_slide_tired"
	AnimHit            = "hit"
	AnimDeath          = "death"
	AnimSpawn          = "spawn"
	AnimVictory        = "victory"
)

// SubNone holds the fallback key for each state.
var animationKeys = map[StateID]map[SubStyle]string{
	StateGround: {
		SubNone:  AnimIdle,
		SubIdle:  AnimIdle,
		SubRun:   AnimRun,
		SubDecel: AnimSkid,
	},
	StateAirRise: {
		SubNone:   AnimJump,
		SubUp:     AnimJump,
		SubSide:   AnimJumpSide,
		SubWall:   AnimWallKick,
		SubDouble: AnimDoubleJump,
	},
	StateAirFall: {
		SubNone: AnimFall,
	},
	StateWallSlide: {
		SubNone:     AnimWallSlide,
		SubFatigued: AnimWallSlideTired,
	},
	StateHit:     {SubNone: AnimHit},
	StateDead:    {SubNone: AnimDeath},
	StateSpawn:   {SubNone: AnimSpawn},
	StateVictory: {SubNone: AnimVictory},
}

// Resolve maps a state and sub-style to an animation key. Unknown sub-styles
// fall back to the state's default key; unknown states report false.
func Resolve(state StateID, sub SubStyle) (string, bool) {
	keys, ok := animationKeys[state]
	if !ok {
		return "", false
	}
	if key, ok := keys[sub]; ok {
		return key, true
	}
	return keys[SubNone], true
}

// AnimationKeys lists every key Resolve can return.
func AnimationKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, subs := range animationKeys {
		for _, key := range subs {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys
}
