package components

import (
	"github.com/automoto/tilecanvas/assets/animations"
	"github.com/automoto/tilecanvas/canvas"
	"github.com/yohamta/donburi"
)

// AnimationData holds the frames sliced from an animated character's sprite
// sheet. Frames stays empty until the background slice finishes and Ready
// flips to true.
type AnimationData struct {
	SheetPath    string
	FrameCount   int
	Frames       []canvas.Image
	CurrentFrame int
	Ready        bool
	Failed       bool
	Cycle        *animations.Animation
}

// Frame returns the image for CurrentFrame, or nil before the frames are ready.
func (a *AnimationData) Frame() canvas.Image {
	if !a.Ready || a.CurrentFrame < 0 || a.CurrentFrame >= len(a.Frames) {
		return nil
	}
	return a.Frames[a.CurrentFrame]
}

var Animation = donburi.NewComponentType[AnimationData]()
