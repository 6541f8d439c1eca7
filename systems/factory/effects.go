package factory

import (
	"math/rand/v2"

	"github.com/automoto/tilecanvas/archetypes"
	"github.com/automoto/tilecanvas/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateParticlePool spawns the scene's particle pool. A nil rng draws from
// the package-level source.
func CreateParticlePool(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	pool := archetypes.ParticlePool.Spawn(ecs)
	components.ParticlePool.Set(pool, &components.ParticlePoolData{Rand: rng})
	return pool
}

func CreateFrameScheduler(ecs *ecs.ECS) *donburi.Entry {
	scheduler := archetypes.FrameScheduler.Spawn(ecs)
	components.FrameScheduler.Set(scheduler, &components.FrameSchedulerData{})
	return scheduler
}
