package systems

import (
	"image/color"
	"math/rand/v2"

	"github.com/automoto/tilecanvas/canvas"
	"github.com/automoto/tilecanvas/components"
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SummonParticles spawns count particles at pixel (x, y). Each gets a size
// in [0, maxSize), a horizontal speed in [-SpreadX, SpreadX) and an upward
// speed in [-RiseY, 0).
func SummonParticles(e *ecs.ECS, x, y float64, count int, maxSize float64, c color.Color) {
	pool := particlePoolOf(e)
	for range count {
		pool.Particles = append(pool.Particles, components.Particle{
			Position: math.NewVec2(x, y),
			Velocity: math.NewVec2(
				(randFloat(pool.Rand)*2-1)*cfg.Particles.SpreadX,
				-randFloat(pool.Rand)*cfg.Particles.RiseY,
			),
			Size:      randFloat(pool.Rand) * maxSize,
			Color:     c,
			BaseColor: c,
			Alpha:     1,
			Lifespan:  cfg.Particles.Lifespan,
		})
	}
}

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

// UpdateParticles moves, ages and fades every particle by one tick, then
// drops the ones that expired or are too small to see.
func UpdateParticles(e *ecs.ECS) {
	pool := particlePoolOf(e)
	for i := len(pool.Particles) - 1; i >= 0; i-- {
		p := &pool.Particles[i]
		p.Position = p.Position.Add(p.Velocity)
		p.Age++

		if p.Lifespan > 0 {
			p.Alpha = 1 - float64(p.Age)/float64(p.Lifespan)
		} else {
			p.Alpha = 0
		}
		p.Color = fadeColor(p.BaseColor, p.Alpha)

		if p.Age >= p.Lifespan || p.Size <= cfg.Particles.MinSize {
			pool.Particles = append(pool.Particles[:i], pool.Particles[i+1:]...)
		}
	}
}

// fadeColor is white at the given alpha, or the spawn colour at that alpha
// when config.Particles.KeepHue is set.
func fadeColor(base color.Color, alpha float64) color.Color {
	a := uint8(max(0, min(1, alpha)) * 255)
	if !cfg.Particles.KeepHue || base == nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: a}
	}
	n := color.NRGBAModel.Convert(base).(color.NRGBA)
	n.A = uint8(float64(n.A) * float64(a) / 255)
	return n
}

// DrawParticles draws every particle as a filled disc in the surface's
// current transform.
func DrawParticles(e *ecs.ECS, surface canvas.Surface) {
	for _, p := range particlePoolOf(e).Particles {
		surface.FillCircle(p.Position.X, p.Position.Y, p.Size, p.Color)
	}
}

// AnimateParticles runs one particle frame and schedules the next while any
// particle is left.
func AnimateParticles(e *ecs.ECS, surface canvas.Surface) {
	pool := particlePoolOf(e)
	pool.Loop = 0

	UpdateParticles(e)
	DrawParticles(e, surface)

	if len(pool.Particles) > 0 {
		scheduleParticleFrame(e, pool)
	}
}

// StartParticleAnimation schedules the particle loop on the next frame,
// replacing any frame it had already scheduled.
func StartParticleAnimation(e *ecs.ECS) {
	pool := particlePoolOf(e)
	if pool.Loop != 0 {
		CancelFrame(e, pool.Loop)
	}
	scheduleParticleFrame(e, pool)
}

// scheduleParticleFrame makes the requested frame the pool's only loop.
func scheduleParticleFrame(e *ecs.ECS, pool *components.ParticlePoolData) {
	var h components.FrameHandle
	h = RequestFrame(e, func(s canvas.Surface) {
		runParticleFrame(e, s, h)
	})
	pool.Loop = h
}

// runParticleFrame runs the frame scheduled as h. RunFrame may already hold
// it when the loop is stopped or restarted: a stopped loop skips the frame,
// a restarted one still updates this frame but leaves rescheduling to the
// new handle.
func runParticleFrame(e *ecs.ECS, surface canvas.Surface, h components.FrameHandle) {
	switch particlePoolOf(e).Loop {
	case 0:
		return
	case h:
		AnimateParticles(e, surface)
	default:
		UpdateParticles(e)
		DrawParticles(e, surface)
	}
}

// ParticleAnimationRunning reports whether a particle frame is scheduled.
func ParticleAnimationRunning(e *ecs.ECS) bool {
	return particlePoolOf(e).Loop != 0
}

// StopParticleAnimation cancels the scheduled particle frame, if any.
// Particles stay where they are.
func StopParticleAnimation(e *ecs.ECS) {
	pool := particlePoolOf(e)
	if pool.Loop != 0 {
		CancelFrame(e, pool.Loop)
		pool.Loop = 0
	}
}

func ParticleCount(e *ecs.ECS) int {
	return len(particlePoolOf(e).Particles)
}
