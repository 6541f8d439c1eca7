package archetypes

import (
	"github.com/automoto/tilecanvas/components"
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/automoto/tilecanvas/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		components.Camera,
	)
	TileMap = newArchetype(
		components.TileMap,
	)
	ParticlePool = newArchetype(
		components.ParticlePool,
	)
	FrameScheduler = newArchetype(
		components.FrameScheduler,
	)
	Roster = newArchetype(
		components.Roster,
	)
	Assets = newArchetype(
		components.Assets,
	)
	Space = newArchetype(
		components.Space,
	)
	Collision = newArchetype(
		tags.Collision,
		components.Object,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
	)
	AnimatedCharacter = newArchetype(
		tags.Character,
		tags.Animated,
		components.Character,
		components.Animation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
