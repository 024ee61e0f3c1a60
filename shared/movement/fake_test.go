package movement

type fakeBody struct {
	contacts Contacts
	vx, vy   float64
	ax       float64
	x, y     float64
	width    float64
	sets     int
}

func newFakeBody() *fakeBody {
	return &fakeBody{x: 100, y: 200, width: 16}
}

func (b *fakeBody) Contacts() Contacts           { return b.contacts }
func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) SetAccelerationX(x float64)   { b.ax = x }
func (b *fakeBody) Position() (float64, float64) { return b.x, b.y }
func (b *fakeBody) SetX(x float64)               { b.x = x }
func (b *fakeBody) Width() float64               { return b.width }

func (b *fakeBody) SetVelocity(x, y float64) {
	b.vx, b.vy = x, y
	b.sets++
}

func (b *fakeBody) ground() *fakeBody {
	b.contacts = Contacts{Down: true}
	b.vy = 0
	return b
}

func (b *fakeBody) airborne(vy float64) *fakeBody {
	b.contacts = Contacts{}
	b.vy = vy
	return b
}

type fakePlatform struct {
	x, vx  float64
	moving bool
	active bool
}

func (p *fakePlatform) Active() bool       { return p.active }
func (p *fakePlatform) Moving() bool       { return p.moving }
func (p *fakePlatform) X() float64         { return p.x }
func (p *fakePlatform) VelocityX() float64 { return p.vx }

// advance moves the platform by its velocity over dtMs.
func (p *fakePlatform) advance(dtMs float64) {
	p.x += p.vx * dtMs / 1000
}

type eventLog struct {
	events []JumpEvent
}

func (l *eventLog) listen(ev JumpEvent) {
	l.events = append(l.events, ev)
}

const tick = 1000.0 / 60

// newTestController returns a controller with no spawn window.
func newTestController(body Body, opts ...Option) *Controller {
	t := DefaultTuning()
	t.SpawnMs = 0
	return NewController(body, append([]Option{WithTuning(t)}, opts...)...)
}
