package movement

import (
	"math"

	"go.uber.org/zap"
)

// Tuning is the full set of controller parameters. Speeds are pixels per
// second, accelerations pixels per second squared, durations milliseconds.
type Tuning struct {
	Jump   JumpTuning `yaml:"jump"`
	Limits Limits     `yaml:"limits"`

	RunThreshold       float64 `yaml:"run_threshold"`
	DecelThreshold     float64 `yaml:"decel_threshold"`
	RideDeadzone       float64 `yaml:"ride_deadzone"`
	WallSlideSpeed     float64 `yaml:"wall_slide_speed"`
	GroundAcceleration float64 `yaml:"ground_acceleration"`
	AirAcceleration    float64 `yaml:"air_acceleration"`
	SpawnMs            float64 `yaml:"spawn_ms"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Jump:               DefaultJumpTuning(),
		Limits:             DefaultLimits(),
		RunThreshold:       0.1,
		DecelThreshold:     20,
		RideDeadzone:       0.1,
		WallSlideSpeed:     120,
		GroundAcceleration: 1800,
		AirAcceleration:    1400,
		SpawnMs:            300,
	}
}

// Option configures a Controller.
type Option func(*Controller)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func WithJumpListener(fn JumpListener) Option {
	return func(c *Controller) {
		c.onJump = fn
	}
}

func WithTuning(t Tuning) Option {
	return func(c *Controller) {
		c.tuning = t
	}
}

// WithSpan bounds passive platform riding to the level's playable width.
func WithSpan(s Span) Option {
	return func(c *Controller) {
		c.span = s
	}
}

// Controller resolves one player's movement each tick. It is not safe for
// concurrent use; the host loop owns it.
type Controller struct {
	body   Body
	tuning Tuning
	span   Span
	log    *zap.Logger
	onJump JumpListener

	enabled    bool
	multiplier float64

	state   StateID
	sub     SubStyle
	animKey string

	sensors  Sensors
	intent   Intent
	moveAxis float64
	ledger   Ledger
	airStyle AirStyle
	lastJump JumpType
	jumped   bool
	ride     Ride

	dead        bool
	hit         bool
	victory     bool
	inputLocked bool
	spawning    bool

	pending []JumpEvent
}

func NewController(body Body, opts ...Option) *Controller {
	c := &Controller{
		body:       body,
		tuning:     DefaultTuning(),
		log:        zap.NewNop(),
		enabled:    true,
		multiplier: 1,
		state:      StateGround,
		sub:        SubIdle,
		animKey:    AnimIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ledger = NewLedger(c.tuning.Limits)
	return c
}

func (c *Controller) ready() bool {
	return c != nil && c.body != nil && c.enabled
}

// Update runs one tick: sensor refresh, timer decrement, intent merge, state
// evaluation, platform co-motion, then animation and event emission.
func (c *Controller) Update(dtMs float64) {
	if !c.ready() {
		return
	}
	if !(dtMs > 0) || math.IsInf(dtMs, 0) {
		dtMs = 0
	}
	c.jumped = false

	c.refreshSensors()
	c.ledger.Tick(dtMs)
	c.mergeIntent()
	c.evaluate()
	c.coMove()
	c.emitAnimation()
	c.emitEvents()

	c.intent.JumpPressed = false
}

// SetIntent records the desired move axis and a jump-press edge for the next
// tick. Edges accumulate until consumed.
func (c *Controller) SetIntent(moveAxis float64, jumpPressed bool) {
	if !c.ready() {
		return
	}
	if math.IsNaN(moveAxis) {
		moveAxis = 0
	}
	c.intent.MoveAxis = math.Max(-1, math.Min(1, moveAxis))
	c.intent.JumpPressed = c.intent.JumpPressed || jumpPressed
}

// EnterHit overrides the reported state for durationMs without locking
// movement.
func (c *Controller) EnterHit(durationMs float64) {
	if !c.ready() || c.dead {
		return
	}
	c.hit = true
	c.ledger.SetHit(durationMs)
}

func (c *Controller) EnterDeath() {
	if !c.ready() {
		return
	}
	c.dead = true
	c.hit = false
}

// EnterVictory freezes input until ResetState.
func (c *Controller) EnterVictory() {
	if !c.ready() || c.dead {
		return
	}
	c.victory = true
}

// ResetState returns the controller to a fresh spawn. Input stays locked for
// the spawn window unless UnlockInput is called first.
func (c *Controller) ResetState() {
	if !c.ready() {
		return
	}
	c.dead, c.hit, c.victory = false, false, false
	c.intent = Intent{}
	c.ledger.Reset()
	c.ride = Ride{}
	c.airStyle = AirStyleUp
	c.lastJump = ""
	c.sensors = Sensors{}
	c.pending = c.pending[:0]

	c.spawning = c.tuning.SpawnMs > 0
	c.ledger.SetSpawn(c.tuning.SpawnMs)
	if c.spawning {
		c.enter(StateSpawn, SubNone)
	} else {
		c.enter(StateGround, SubIdle)
	}
	c.emitAnimation()
}

func (c *Controller) LockInput() {
	if !c.ready() {
		return
	}
	c.inputLocked = true
}

func (c *Controller) UnlockInput() {
	if !c.ready() {
		return
	}
	c.inputLocked = false
	c.spawning = false
}

// SetCurrentPlatform is called on floor contact begin (p) and end (nil).
// Switching platforms discards the previous ride.
func (c *Controller) SetCurrentPlatform(p Platform) {
	if !c.ready() {
		return
	}
	if p == nil {
		c.ride = Ride{}
		return
	}
	if c.ride.Platform != p {
		c.ride = Ride{Platform: p}
	}
}

// SetJumpMultiplier scales every jump force. Non-positive values reset it.
func (c *Controller) SetJumpMultiplier(m float64) {
	if !c.ready() {
		return
	}
	if !(m > 0) || math.IsInf(m, 0) {
		m = 1
	}
	c.multiplier = m
}

func (c *Controller) SetTuning(t Tuning) {
	if c == nil {
		return
	}
	c.tuning = t
	c.ledger.SetLimits(t.Limits)
}

func (c *Controller) SetEnabled(enabled bool) {
	if c != nil {
		c.enabled = enabled
	}
}

// Detach drops the body. Every later call is a no-op.
func (c *Controller) Detach() {
	if c == nil {
		return
	}
	c.body = nil
	c.ride = Ride{}
	c.pending = nil
}

func (c *Controller) State() StateID       { return c.state }
func (c *Controller) SubStyle() SubStyle   { return c.sub }
func (c *Controller) AnimationKey() string { return c.animKey }
func (c *Controller) Sensors() Sensors     { return c.sensors }
func (c *Controller) Ledger() Ledger       { return c.ledger }
func (c *Controller) AirStyle() AirStyle   { return c.airStyle }
func (c *Controller) Ride() Ride           { return c.ride }
func (c *Controller) Tuning() Tuning       { return c.tuning }
func (c *Controller) Multiplier() float64  { return c.multiplier }
func (c *Controller) Fatigued() bool       { return c.ledger.Fatigued }
func (c *Controller) Dead() bool           { return c.dead }
func (c *Controller) InputLocked() bool    { return c.inputLocked || c.spawning }

// CanAcceptJump reports whether a press made now could be honoured.
func (c *Controller) CanAcceptJump() bool {
	return c.canAcceptJump()
}

func (c *Controller) refreshSensors() {
	contacts := c.body.Contacts()
	vx, vy := c.body.Velocity()
	c.sensors = c.sensors.Next(contacts, vx, vy)
	if c.sensors.OnFloor {
		c.lastJump = ""
	}
	c.ledger.Refresh(c.sensors, c.sensors.WallSide(c.intent.MoveAxis))
}

func (c *Controller) mergeIntent() {
	if c.dead || c.victory || c.InputLocked() {
		c.moveAxis = 0
		c.intent.JumpPressed = false
		c.ledger.ConsumeJumpBuffer()
		return
	}
	c.moveAxis = c.intent.MoveAxis
	if c.intent.JumpPressed {
		c.ledger.PressJump()
	}
}

// evaluate runs the priority chain. Exactly one branch decides the state.
func (c *Controller) evaluate() {
	if c.hit && c.ledger.Hit <= 0 {
		c.hit = false
	}
	if c.spawning && c.ledger.Spawn <= 0 {
		c.spawning = false
	}

	if c.dead {
		c.body.SetAccelerationX(0)
		c.enter(StateDead, SubNone)
		return
	}
	if c.victory {
		c.body.SetAccelerationX(0)
		c.enter(StateVictory, SubNone)
		return
	}
	if c.hit {
		c.move()
		c.enter(StateHit, SubNone)
		return
	}
	if c.spawning {
		c.body.SetAccelerationX(0)
		c.enter(StateSpawn, SubNone)
		return
	}
	c.enter(c.move())
}

// move resolves the contact-driven part of the chain.
func (c *Controller) move() (StateID, SubStyle) {
	c.drive()

	s := c.sensors
	if s.OnFloor {
		return c.ground()
	}
	// Wall slide re-arms resources and consumes the press itself.
	if s.TouchingWall() && !c.InputLocked() {
		return c.wallSlide()
	}
	c.pruneBuffer()
	if s.VelocityY < 0 {
		return c.air(StateAirRise)
	}
	return c.air(StateAirFall)
}

func (c *Controller) ground() (StateID, SubStyle) {
	if c.ledger.Buffered() {
		c.airStyle = StyleFor(c.moveAxis, c.tuning.Jump.SideThreshold)
		c.consumeJumpBuffer()
		c.standingJump()
		return StateAirRise, c.riseSub()
	}

	switch {
	case math.Abs(c.moveAxis) > c.tuning.RunThreshold:
		return StateGround, SubRun
	case c.state == StateGround && (c.sub == SubRun || c.sub == SubDecel) &&
		math.Abs(c.ownVelocityX()) >= c.tuning.DecelThreshold:
		return StateGround, SubDecel
	default:
		return StateGround, SubIdle
	}
}

func (c *Controller) wallSlide() (StateID, SubStyle) {
	side := c.sensors.WallSide(c.moveAxis)

	r := c.ledger.Resources
	r.JumpsUsed = 1
	r.CanDoubleJump = true
	c.ledger.Apply(r)

	if vx, vy := c.body.Velocity(); vy > c.tuning.WallSlideSpeed {
		c.body.SetVelocity(vx, c.tuning.WallSlideSpeed)
		c.sensors.VelocityY = c.tuning.WallSlideSpeed
	}

	if c.ledger.Buffered() {
		c.consumeJumpBuffer()
		if c.wallJump(side) {
			return StateAirRise, SubWall
		}
	}
	if c.ledger.Fatigued {
		return StateWallSlide, SubFatigued
	}
	return StateWallSlide, SubNone
}

func (c *Controller) air(state StateID) (StateID, SubStyle) {
	if c.ledger.Buffered() && c.canAcceptJump() && c.airJump() {
		return StateAirRise, c.riseSub()
	}
	if c.sensors.StartedFalling && c.state == StateAirRise {
		c.log.Debug("apex reached", zap.Float64("vy", c.sensors.VelocityY))
	}
	if state == StateAirRise {
		return state, c.riseSub()
	}
	return state, SubNone
}

// airJump tries a wall-coyote jump, then a first jump, then a double jump.
func (c *Controller) airJump() bool {
	c.airStyle = StyleFor(c.moveAxis, c.tuning.Jump.SideThreshold)
	l := &c.ledger
	switch {
	case l.WallCoyote > 0 && l.WallJumpSide != WallNone && l.WallJumpCount < l.limits.MaxWallJumps:
		c.consumeJumpBuffer()
		return c.wallJump(l.WallJumpSide)
	case l.JumpsUsed == 0 && (l.Coyote > 0 || (c.tuning.Jump.AirborneFirstJump && !c.sensors.TouchingWall())):
		c.consumeJumpBuffer()
		c.standingJump()
		return true
	case l.JumpsUsed == 1 && l.CanDoubleJump:
		c.consumeJumpBuffer()
		r, imp, ok := DoubleJump(l.Resources, c.tuning.Jump, c.multiplier, c.airStyle)
		if !ok {
			return false
		}
		l.Apply(r)
		c.apply(imp)
		return true
	}
	return false
}

func (c *Controller) standingJump() {
	r, imp := StandingJump(c.ledger.Resources, c.tuning.Jump, c.multiplier, c.airStyle)
	c.ledger.Apply(r)
	c.ledger.ConsumeCoyote()
	c.apply(imp)
}

func (c *Controller) wallJump(side WallSide) bool {
	limit := c.ledger.limits.MaxWallJumps
	r, imp, ok := WallJump(c.ledger.Resources, c.tuning.Jump, c.multiplier, side, limit)
	if !ok {
		if Fatigued(r, side, limit) {
			c.ledger.Fatigued = true
			c.log.Debug("wall jump rejected", zap.Stringer("side", side), zap.Int("count", r.WallJumpCount))
		}
		return false
	}
	c.ledger.Apply(r)
	c.ledger.ConsumeWallCoyote()
	c.airStyle = AirStyleWall
	c.apply(imp)
	return true
}

func (c *Controller) apply(imp Impulse) {
	vx, _ := c.body.Velocity()
	if imp.SetsX {
		vx = imp.VelocityX
	}
	c.body.SetVelocity(vx, imp.VelocityY)
	c.sensors.VelocityX, c.sensors.VelocityY = vx, imp.VelocityY

	x, y := c.body.Position()
	c.pending = append(c.pending, JumpEvent{Type: imp.Type, X: x, Y: y})
	c.lastJump = imp.Type
	c.jumped = true
	c.ride = Ride{}
}

func (c *Controller) riseSub() SubStyle {
	switch c.lastJump {
	case JumpDouble:
		return SubDouble
	case JumpWall:
		return SubWall
	}
	if c.airStyle == AirStyleSide {
		return SubSide
	}
	return SubUp
}

// drive turns the move axis into horizontal acceleration.
func (c *Controller) drive() {
	accel := c.tuning.AirAcceleration
	if c.sensors.OnFloor {
		accel = c.tuning.GroundAcceleration
	}
	c.body.SetAccelerationX(c.moveAxis * accel)
}

// pruneBuffer drops a press that cannot be honoured. A falling body keeps it
// since landing or a wall can make it eligible inside the window.
func (c *Controller) pruneBuffer() {
	if !c.ledger.Buffered() || c.canAcceptJump() || c.sensors.Falling() {
		return
	}
	c.consumeJumpBuffer()
}

func (c *Controller) canAcceptJump() bool {
	return CanAcceptJump(c.sensors, c.ledger, c.tuning.Jump.AirborneFirstJump)
}

func (c *Controller) consumeJumpBuffer() {
	c.ledger.ConsumeJumpBuffer()
	c.intent.JumpPressed = false
}

func (c *Controller) ownVelocityX() float64 {
	if c.ride.Platform != nil {
		return c.sensors.VelocityX - c.ride.LastPlatformVelX
	}
	return c.sensors.VelocityX
}

func (c *Controller) coMove() {
	if c.ride.Platform == nil || c.jumped || c.dead {
		return
	}
	x, _ := c.body.Position()
	ride, out := StepRide(c.ride, RideInput{
		OnFloor:   c.sensors.OnFloor,
		MoveAxis:  c.moveAxis,
		Deadzone:  c.tuning.RideDeadzone,
		X:         x,
		VelocityX: c.sensors.VelocityX,
		HalfWidth: c.body.Width() / 2,
		Span:      c.span,
	})
	c.ride = ride
	if !out.Riding {
		return
	}
	if out.SetX {
		c.body.SetX(out.X)
	}
	_, vy := c.body.Velocity()
	c.body.SetVelocity(out.VelocityX, vy)
}

func (c *Controller) enter(state StateID, sub SubStyle) {
	if !state.Valid() {
		c.log.Warn("ignoring unknown state", zap.Int("state", int(state)))
		return
	}
	if state != c.state {
		c.log.Debug("state change",
			zap.Stringer("from", c.state),
			zap.Stringer("to", state),
		)
	}
	c.state = state
	c.sub = sub
}

func (c *Controller) emitAnimation() {
	key, ok := Resolve(c.state, c.sub)
	if !ok {
		c.log.Warn("no animation for state", zap.Stringer("state", c.state))
		return
	}
	c.animKey = key
}

func (c *Controller) emitEvents() {
	if len(c.pending) == 0 {
		return
	}
	events := c.pending
	c.pending = c.pending[:0]
	for _, ev := range events {
		c.log.Debug("jump", zap.String("type", string(ev.Type)), zap.Float64("x", ev.X), zap.Float64("y", ev.Y))
		if c.onJump != nil {
			c.onJump(ev)
		}
	}
}
