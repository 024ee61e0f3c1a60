package config

import "github.com/automoto/skyhop/shared/movement"

// AnimationDef describes one clip on a horizontal strip. FrameMs is the time
// each frame stays on screen. Hold keeps the last frame once the clip ends.
type AnimationDef struct {
	First   int
	Last    int
	Step    int
	FrameMs float64
	Hold    bool
}

// CharacterAnimations maps a character key to its clips, keyed by the
// animation keys the movement controller emits.
var CharacterAnimations = map[string]map[string]AnimationDef{
	"player": {
		movement.AnimIdle:           {First: 0, Last: 5, Step: 1, FrameMs: 120},
		movement.AnimRun:            {First: 0, Last: 7, Step: 1, FrameMs: 80},
		movement.AnimSkid:           {First: 0, Last: 1, Step: 1, FrameMs: 100, Hold: true},
		movement.AnimJump:           {First: 0, Last: 2, Step: 1, FrameMs: 90, Hold: true},
		movement.AnimJumpSide:       {First: 0, Last: 3, Step: 1, FrameMs: 80, Hold: true},
		movement.AnimWallKick:       {First: 0, Last: 2, Step: 1, FrameMs: 70, Hold: true},
		movement.AnimDoubleJump:     {First: 0, Last: 5, Step: 1, FrameMs: 50, Hold: true},
		movement.AnimFall:           {First: 0, Last: 1, Step: 1, FrameMs: 120},
		movement.AnimWallSlide:      {First: 0, Last: 3, Step: 1, FrameMs: 100},
		movement.AnimWallSlideTired: {First: 0, Last: 3, Step: 1, FrameMs: 160},
		movement.AnimHit:            {First: 0, Last: 2, Step: 1, FrameMs: 60},
		movement.AnimDeath:          {First: 0, Last: 8, Step: 1, FrameMs: 80, Hold: true},
		movement.AnimSpawn:          {First: 0, Last: 4, Step: 1, FrameMs: 60, Hold: true},
		movement.AnimVictory:        {First: 0, Last: 5, Step: 1, FrameMs: 100},
	},
}
