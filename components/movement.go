package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MovementData tracks an animated move in flight. The character snaps to
// the rounded tween value once per step.
type MovementData struct {
	FromX, FromY int
	ToX, ToY     int
	Step         int
	Steps        int
	TicksPerStep int
	Ticks        int
	StepSeconds  float32
	TweenX       *gween.Tween
	TweenY       *gween.Tween
}

var Movement = donburi.NewComponentType[MovementData]()
