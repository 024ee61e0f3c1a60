package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		state StateID
		sub   SubStyle
		want  string
	}{
		{StateGround, SubIdle, AnimIdle},
		{StateGround, SubRun, AnimRun},
		{StateGround, SubDecel, AnimSkid},
		{StateGround, SubWall, AnimIdle},
		{StateAirRise, SubUp, AnimJump},
		{StateAirRise, SubSide, AnimJumpSide},
		{StateAirRise, SubWall, AnimWallKick},
		{StateAirRise, SubDouble, AnimDoubleJump},
		{StateAirFall, SubSide, AnimFall},
		{StateWallSlide, SubNone, AnimWallSlide},
		{StateWallSlide, SubFatigued, AnimWallSlideTired},
		{StateHit, SubRun, AnimHit},
		{StateDead, SubNone, AnimDeath},
		{StateSpawn, SubNone, AnimSpawn},
		{StateVictory, SubNone, AnimVictory},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.state, tt.sub)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "%s/%d", tt.state, tt.sub)
	}

	_, ok := Resolve(StateNone, SubNone)
	assert.False(t, ok)
	_, ok = Resolve(StateID(99), SubIdle)
	assert.False(t, ok)
}

func TestAnimationKeysUnique(t *testing.T) {
	keys := AnimationKeys()
	assert.Len(t, keys, 14)
	assert.Contains(t, keys, AnimWallSlideTired)
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "air_rise", StateAirRise.String())
	assert.Equal(t, "unknown", StateID(42).String())
	assert.False(t, StateNone.Valid())
	assert.True(t, StateVictory.Valid())
	assert.True(t, StateAirFall.Airborne())
	assert.False(t, StateWallSlide.Airborne())
}
