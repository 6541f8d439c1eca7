package components

import (
	"image/color"
	"math/rand/v2"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Particle is a short-lived disc in pixel space.
type Particle struct {
	Position  math.Vec2
	Velocity  math.Vec2
	Size      float64
	Color     color.Color
	BaseColor color.Color // colour passed at spawn
	Alpha     float64
	Lifespan  int
	Age       int
}

// ParticlePoolData owns every live particle of a scene. Loop is the frame
// handle of the pending particle animation tick, 0 when none is scheduled.
type ParticlePoolData struct {
	Particles []Particle
	Rand      *rand.Rand
	Loop      FrameHandle
}

var ParticlePool = donburi.NewComponentType[ParticlePoolData]()
