package animations

// Animation plays a strip of frames on a millisecond clock.
type Animation struct {
	First   int
	Last    int
	Step    int     // how many indices do we move per frame
	FrameMs float64 // how long each frame stays on screen
	Hold    bool    // stay on the last frame instead of looping

	elapsed float64
	frame   int
	Looped  bool
}

func (a *Animation) Update(dtMs float64) {
	if a.FrameMs <= 0 || dtMs <= 0 {
		return
	}
	a.elapsed += dtMs
	for a.elapsed >= a.FrameMs {
		a.elapsed -= a.FrameMs
		if a.Looped && a.Hold {
			a.elapsed = 0
			return
		}
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.Hold {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Done reports whether a held clip has reached its last frame.
func (a *Animation) Done() bool {
	return a.Hold && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, frameMs float64, hold bool) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:   first,
		Last:    last,
		Step:    step,
		FrameMs: frameMs,
		Hold:    hold,
		frame:   first,
	}
}
