package animations

// Animation cycles through frames [0, Frames) of a sprite sheet, holding
// each for TicksPerFrame updates.
type Animation struct {
	Frames        int
	TicksPerFrame int
	tickCounter   int
	frame         int
	Looped        bool // set once the cycle has wrapped at least once
}

func (a *Animation) Update() {
	if a.Frames <= 1 {
		return
	}
	a.tickCounter++
	if a.tickCounter < a.TicksPerFrame {
		return
	}
	a.tickCounter = 0
	a.frame++
	if a.frame >= a.Frames {
		a.frame = 0
		a.Looped = true
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to frame 0.
func (a *Animation) Restart() {
	a.frame = 0
	a.tickCounter = 0
	a.Looped = false
}

func NewAnimation(frames, ticksPerFrame int) *Animation {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Animation{
		Frames:        frames,
		TicksPerFrame: ticksPerFrame,
	}
}
