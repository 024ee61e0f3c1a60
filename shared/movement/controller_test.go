package movement

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroundJump(t *testing.T) {
	body := newFakeBody().ground()
	events := &eventLog{}
	c := newTestController(body, WithJumpListener(events.listen))

	c.Update(tick)
	require.Equal(t, StateGround, c.State())

	c.SetIntent(0, true)
	c.Update(tick)

	assert.Equal(t, StateAirRise, c.State())
	assert.Equal(t, -580.0, body.vy)
	assert.Equal(t, 1, c.Ledger().JumpsUsed)
	assert.True(t, c.Ledger().CanDoubleJump)
	assert.Equal(t, AnimJump, c.AnimationKey())
	require.Len(t, events.events, 1)
	assert.Equal(t, JumpEvent{Type: JumpStanding, X: 100, Y: 200}, events.events[0])
}

func TestDoubleJumpThenRejected(t *testing.T) {
	body := newFakeBody().ground()
	events := &eventLog{}
	c := newTestController(body, WithJumpListener(events.listen))
	c.Update(tick)
	c.SetIntent(0, true)
	c.Update(tick)

	body.airborne(-540)
	c.SetIntent(0, true)
	c.Update(tick)

	assert.Equal(t, StateAirRise, c.State())
	assert.Equal(t, -580.0, body.vy)
	assert.Equal(t, 2, c.Ledger().JumpsUsed)
	assert.False(t, c.Ledger().CanDoubleJump)
	assert.Equal(t, AnimDoubleJump, c.AnimationKey())

	body.vy = -500
	sets := body.sets
	c.SetIntent(0, true)
	c.Update(tick)

	assert.Equal(t, -500.0, body.vy)
	assert.Equal(t, sets, body.sets)
	assert.Len(t, events.events, 2)
	assert.False(t, c.Ledger().Buffered(), "impossible press must not stay buffered")
}

func TestWallJumpFatigue(t *testing.T) {
	body := newFakeBody().airborne(50)
	events := &eventLog{}
	c := newTestController(body, WithJumpListener(events.listen))

	for i := 1; i <= 3; i++ {
		body.contacts = Contacts{Left: true}
		body.vx, body.vy = 0, 50
		c.SetIntent(0, true)
		c.Update(tick)

		require.Equal(t, StateAirRise, c.State(), "wall jump %d", i)
		assert.Equal(t, 320.0, body.vx)
		assert.Equal(t, -540.0, body.vy)
		assert.Equal(t, i, c.Ledger().WallJumpCount)
		assert.Equal(t, AirStyleWall, c.AirStyle())

		body.airborne(-400)
		c.Update(tick)
	}

	body.contacts = Contacts{Left: true}
	body.vx, body.vy = -10, 50
	sets := body.sets
	c.SetIntent(0, true)
	c.Update(tick)

	assert.Equal(t, StateWallSlide, c.State())
	assert.True(t, c.Fatigued())
	assert.Equal(t, -10.0, body.vx)
	assert.Equal(t, 50.0, body.vy)
	assert.Equal(t, sets, body.sets)
	assert.Equal(t, 3, c.Ledger().WallJumpCount)
	assert.Equal(t, AnimWallSlideTired, c.AnimationKey())
	assert.Len(t, events.events, 3)
}

func TestFatiguedWallPressWhileRising(t *testing.T) {
	body := newFakeBody().airborne(50)
	c := newTestController(body)

	for i := 0; i < 3; i++ {
		body.contacts = Contacts{Left: true}
		body.vy = 50
		c.SetIntent(0, true)
		c.Update(tick)
		body.airborne(-400)
		c.Update(tick)
	}
	c.SetIntent(0, true)
	c.Update(tick)
	require.Equal(t, 2, c.Ledger().JumpsUsed)
	require.False(t, c.Ledger().CanDoubleJump)
	require.Equal(t, 3, c.Ledger().WallJumpCount)

	// Reaching the spent wall again while still rising.
	body.contacts = Contacts{Left: true}
	body.vy = -100
	sets := body.sets
	c.SetIntent(0, true)
	c.Update(tick)

	assert.Equal(t, StateWallSlide, c.State())
	assert.True(t, c.Fatigued())
	assert.False(t, c.Ledger().Buffered())
	assert.Equal(t, sets, body.sets)
	assert.Equal(t, AnimWallSlideTired, c.AnimationKey())
}

func TestWallJumpCountResetsOnOppositeWall(t *testing.T) {
	body := newFakeBody().airborne(50)
	c := newTestController(body)

	for i := 0; i < 3; i++ {
		body.contacts = Contacts{Left: true}
		body.vy = 50
		c.SetIntent(0, true)
		c.Update(tick)
		body.airborne(-400)
		c.Update(tick)
	}
	require.Equal(t, 3, c.Ledger().WallJumpCount)

	body.contacts = Contacts{Right: true}
	body.vy = 50
	c.SetIntent(0, true)
	c.Update(tick)

	assert.Equal(t, StateAirRise, c.State())
	assert.Equal(t, WallRight, c.Ledger().WallJumpSide)
	assert.Equal(t, 1, c.Ledger().WallJumpCount)
	assert.Equal(t, -320.0, body.vx)
}

func TestCoyoteJump(t *testing.T) {
	body := newFakeBody().ground()
	c := newTestController(body)
	c.Update(20)

	body.airborne(30)
	for i := 0; i < 3; i++ {
		c.Update(20)
		require.Equal(t, StateAirFall, c.State())
	}
	assert.InDelta(t, 40.0, c.Ledger().Coyote, 1e-9)

	c.SetIntent(0, true)
	c.Update(20)

	assert.Equal(t, StateAirRise, c.State())
	assert.Equal(t, -580.0, body.vy)
	assert.Equal(t, 1, c.Ledger().JumpsUsed)
	assert.True(t, c.Ledger().CanDoubleJump)
	assert.Zero(t, c.Ledger().Coyote)
}

func TestExpiredCoyoteWithoutForgiveness(t *testing.T) {
	body := newFakeBody().ground()
	tuning := DefaultTuning()
	tuning.SpawnMs = 0
	tuning.Jump.AirborneFirstJump = false
	c := NewController(body, WithTuning(tuning))
	c.Update(20)

	body.airborne(30)
	for i := 0; i < 7; i++ {
		c.Update(20)
	}
	require.Zero(t, c.Ledger().Coyote)
	assert.False(t, c.CanAcceptJump())

	c.SetIntent(0, true)
	c.Update(20)
	assert.Equal(t, StateAirFall, c.State())
	assert.Equal(t, 30.0, body.vy)
}

func TestAirborneFirstJump(t *testing.T) {
	body := newFakeBody().ground()
	c := newTestController(body)
	c.Update(20)

	body.airborne(30)
	for i := 0; i < 10; i++ {
		c.Update(20)
	}
	require.Zero(t, c.Ledger().Coyote)
	require.True(t, c.CanAcceptJump())

	c.SetIntent(0, true)
	c.Update(20)
	assert.Equal(t, StateAirRise, c.State())
	assert.Equal(t, 1, c.Ledger().JumpsUsed)

	// The forgiveness jump behaves like a ground jump: one double remains.
	body.airborne(-300)
	c.SetIntent(0, true)
	c.Update(20)
	assert.Equal(t, 2, c.Ledger().JumpsUsed)

	body.airborne(100)
	c.SetIntent(0, true)
	c.Update(20)
	assert.Equal(t, StateAirFall, c.State())
	assert.Equal(t, 100.0, body.vy)
}

func TestBufferedJumpFiresOnLanding(t *testing.T) {
	body := newFakeBody().ground()
	events := &eventLog{}
	c := newTestController(body, WithJumpListener(events.listen))
	c.Update(15)
	c.SetIntent(0, true)
	c.Update(15)
	body.airborne(-400)
	c.SetIntent(0, true)
	c.Update(15)
	require.Equal(t, 2, c.Ledger().JumpsUsed)

	body.airborne(100)
	c.SetIntent(0, true)
	c.Update(15)
	require.False(t, c.CanAcceptJump())
	require.InDelta(t, 150.0, c.Ledger().JumpBuffer, 1e-9)

	for i := 0; i < 3; i++ {
		c.Update(15)
	}
	assert.InDelta(t, 105.0, c.Ledger().JumpBuffer, 1e-9)
	assert.Equal(t, StateAirFall, c.State())

	body.ground()
	c.Update(15)

	assert.Equal(t, StateAirRise, c.State())
	assert.Equal(t, -580.0, body.vy)
	assert.Equal(t, 1, c.Ledger().JumpsUsed)
	assert.False(t, c.Ledger().Buffered())
	assert.Len(t, events.events, 3)
}

func TestWallCoyoteJump(t *testing.T) {
	body := newFakeBody().airborne(60)
	c := newTestController(body)

	body.contacts = Contacts{Right: true}
	c.Update(20)
	require.Equal(t, StateWallSlide, c.State())

	body.airborne(60)
	c.Update(20)
	c.Update(20)
	require.Equal(t, StateAirFall, c.State())

	c.SetIntent(0, true)
	c.Update(20)
	assert.Equal(t, StateAirRise, c.State())
	assert.Equal(t, JumpWall, c.lastJump)
	assert.Equal(t, -320.0, body.vx)
	assert.Zero(t, c.Ledger().WallCoyote)
}

func TestWallSlideRearmsDoubleJump(t *testing.T) {
	body := newFakeBody().ground()
	c := newTestController(body)
	c.Update(tick)
	c.SetIntent(0, true)
	c.Update(tick)
	body.airborne(-300)
	c.SetIntent(0, true)
	c.Update(tick)
	require.Equal(t, 2, c.Ledger().JumpsUsed)

	body.contacts = Contacts{Left: true}
	body.vy = 400
	c.Update(tick)

	assert.Equal(t, StateWallSlide, c.State())
	assert.Equal(t, 1, c.Ledger().JumpsUsed)
	assert.True(t, c.Ledger().CanDoubleJump)
	assert.Equal(t, 120.0, body.vy, "fall speed is capped while sliding")
}

func TestLockedInputSkipsWallSlide(t *testing.T) {
	body := newFakeBody().airborne(80)
	body.contacts = Contacts{Left: true}
	c := newTestController(body)
	c.LockInput()

	c.SetIntent(1, true)
	c.Update(tick)

	assert.Equal(t, StateAirFall, c.State())
	assert.Zero(t, body.ax)
	assert.False(t, c.Ledger().Buffered())

	c.UnlockInput()
	c.Update(tick)
	assert.Equal(t, StateWallSlide, c.State())
}

func TestSideJumpAndMultiplier(t *testing.T) {
	body := newFakeBody().ground()
	c := newTestController(body)
	c.Update(tick)

	c.SetJumpMultiplier(1.5)
	c.SetIntent(0.8, true)
	c.Update(tick)

	assert.Equal(t, AirStyleSide, c.AirStyle())
	assert.InDelta(t, -580*1.5*1.1, body.vy, 1e-9)
	assert.Equal(t, AnimJumpSide, c.AnimationKey())

	body.airborne(-200)
	c.SetIntent(0.1, true)
	c.Update(tick)
	assert.Equal(t, AirStyleUp, c.AirStyle())
	assert.InDelta(t, -580*1.5, body.vy, 1e-9)

	c.SetJumpMultiplier(-2)
	assert.Equal(t, 1.0, c.Multiplier())
}

func TestHitDoesNotLockMovement(t *testing.T) {
	body := newFakeBody().ground()
	c := newTestController(body)
	c.Update(tick)

	c.EnterHit(100)
	c.Update(tick)
	assert.Equal(t, StateHit, c.State())
	assert.Equal(t, AnimHit, c.AnimationKey())

	// Lateral input makes this a side jump.
	c.SetIntent(1, true)
	c.Update(tick)
	assert.Equal(t, StateHit, c.State())
	assert.InDelta(t, -580*1.1, body.vy, 1e-9)
	assert.Equal(t, 1800.0, body.ax)

	body.airborne(200)
	for i := 0; i < 6; i++ {
		c.Update(tick)
	}
	assert.Equal(t, StateAirFall, c.State())
	assert.Equal(t, AnimFall, c.AnimationKey())
}

func TestDeathAndRespawn(t *testing.T) {
	body := newFakeBody().ground()
	c := NewController(body)
	c.UnlockInput()
	c.Update(tick)

	c.EnterDeath()
	c.EnterHit(500)
	c.SetIntent(1, true)
	c.Update(tick)

	assert.Equal(t, StateDead, c.State())
	assert.Equal(t, AnimDeath, c.AnimationKey())
	assert.Zero(t, body.ax)
	assert.Zero(t, body.vy)

	c.ResetState()
	assert.Equal(t, StateSpawn, c.State())
	assert.True(t, c.InputLocked())

	c.SetIntent(1, true)
	c.Update(100)
	assert.Equal(t, StateSpawn, c.State())
	assert.Zero(t, body.ax)

	c.Update(250)
	assert.Equal(t, StateGround, c.State())
	assert.False(t, c.InputLocked())
}

func TestUnlockInputEndsSpawn(t *testing.T) {
	body := newFakeBody().ground()
	c := NewController(body)
	c.ResetState()
	c.UnlockInput()

	c.SetIntent(0, true)
	c.Update(tick)
	assert.Equal(t, StateAirRise, c.State())
}

func TestVictoryIsTerminal(t *testing.T) {
	body := newFakeBody().ground()
	c := newTestController(body)
	c.EnterVictory()

	c.SetIntent(1, true)
	c.Update(tick)
	assert.Equal(t, StateVictory, c.State())
	assert.Equal(t, AnimVictory, c.AnimationKey())
	assert.Zero(t, body.vy)

	c.ResetState()
	c.Update(tick)
	assert.Equal(t, StateGround, c.State())
}

func TestDecelerationHeldUntilDamped(t *testing.T) {
	body := newFakeBody().ground()
	c := newTestController(body)

	body.vx = 200
	c.SetIntent(1, false)
	c.Update(tick)
	require.Equal(t, AnimRun, c.AnimationKey())

	c.SetIntent(0, false)
	c.Update(tick)
	assert.Equal(t, AnimSkid, c.AnimationKey())

	body.vx = 25
	c.Update(tick)
	assert.Equal(t, AnimSkid, c.AnimationKey())

	body.vx = 5
	c.Update(tick)
	assert.Equal(t, AnimIdle, c.AnimationKey())

	body.vx = 50
	c.Update(tick)
	assert.Equal(t, AnimIdle, c.AnimationKey(), "idle does not flicker into skid")
}

func TestPlatformRideZeroDrift(t *testing.T) {
	body := newFakeBody().ground()
	platform := &fakePlatform{x: 90, vx: 50, moving: true, active: true}
	c := newTestController(body)
	c.SetCurrentPlatform(platform)
	c.Update(tick)
	require.Equal(t, 10.0, c.Ride().Offset)

	for i := 0; i < 100; i++ {
		platform.advance(tick)
		c.Update(tick)
		require.InDelta(t, platform.x+10, body.x, 1e-9, "tick %d", i)
		require.Equal(t, 50.0, body.vx)
	}
	assert.Equal(t, StateGround, c.State())
	assert.Equal(t, AnimIdle, c.AnimationKey())
}

func TestPlatformActiveRide(t *testing.T) {
	body := newFakeBody().ground()
	platform := &fakePlatform{x: 90, vx: 50, moving: true, active: true}
	c := newTestController(body)
	c.SetCurrentPlatform(platform)

	c.Update(tick)
	require.Equal(t, 50.0, body.vx)

	// The engine adds the player's own acceleration on top.
	body.vx = 50 + 30
	platform.vx = -40
	c.SetIntent(1, false)
	c.Update(tick)
	assert.InDelta(t, 30-40, body.vx, 1e-9)
	assert.InDelta(t, body.x-platform.x, c.Ride().Offset, 1e-9)
}

func TestJumpLeavesPlatform(t *testing.T) {
	body := newFakeBody().ground()
	platform := &fakePlatform{x: 90, vx: 50, moving: true, active: true}
	c := newTestController(body)
	c.SetCurrentPlatform(platform)
	c.Update(tick)

	c.SetIntent(0, true)
	c.Update(tick)
	assert.Equal(t, StateAirRise, c.State())
	assert.Nil(t, c.Ride().Platform)
	assert.Equal(t, 50.0, body.vx, "platform momentum is kept")
}

func TestNoBodyIsNoOp(t *testing.T) {
	c := NewController(nil)
	assert.NotPanics(t, func() {
		c.SetIntent(1, true)
		c.EnterHit(100)
		c.EnterDeath()
		c.ResetState()
		c.UnlockInput()
		c.SetCurrentPlatform(&fakePlatform{})
		c.Update(tick)
	})
	assert.Equal(t, StateGround, c.State())

	var nilController *Controller
	assert.NotPanics(t, func() { nilController.Update(tick) })
}

func TestDetachedAndDisabled(t *testing.T) {
	body := newFakeBody().ground()
	c := newTestController(body)
	c.Update(tick)

	c.SetEnabled(false)
	c.SetIntent(0, true)
	c.Update(tick)
	assert.Equal(t, StateGround, c.State())
	assert.Zero(t, body.vy)

	c.SetEnabled(true)
	c.Detach()
	c.SetIntent(0, true)
	c.Update(tick)
	assert.Equal(t, StateGround, c.State())
	assert.Zero(t, body.vy)
}

func TestInvariantsUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	body := newFakeBody()
	platform := &fakePlatform{x: 100, vx: 30, moving: true, active: true}
	c := newTestController(body)

	for i := 0; i < 5000; i++ {
		body.contacts = Contacts{
			Down:  rng.Intn(3) == 0,
			Left:  rng.Intn(4) == 0,
			Right: rng.Intn(5) == 0,
		}
		body.vy = rng.Float64()*1200 - 600
		body.vx = rng.Float64()*600 - 300

		switch rng.Intn(40) {
		case 0:
			c.EnterHit(rng.Float64() * 300)
		case 1:
			c.SetCurrentPlatform(platform)
		case 2:
			c.SetCurrentPlatform(nil)
		case 3:
			c.EnterDeath()
		case 4:
			c.ResetState()
			c.UnlockInput()
		}

		c.SetIntent(rng.Float64()*4-2, rng.Intn(3) == 0)
		c.Update(rng.Float64() * 40)

		l := c.Ledger()
		require.True(t, c.State().Valid())
		require.GreaterOrEqual(t, l.JumpsUsed, 0)
		require.LessOrEqual(t, l.JumpsUsed, 2)
		require.GreaterOrEqual(t, l.WallJumpCount, 0)
		require.LessOrEqual(t, l.WallJumpCount, 3)
		for _, timer := range []float64{l.Coyote, l.JumpBuffer, l.WallCoyote, l.Hit, l.Spawn} {
			require.GreaterOrEqual(t, timer, 0.0)
		}
		if c.Sensors().OnFloor && c.State() == StateGround {
			require.Zero(t, l.JumpsUsed)
			require.Zero(t, l.WallJumpCount)
		}
		require.NotEmpty(t, c.AnimationKey())
	}
}
