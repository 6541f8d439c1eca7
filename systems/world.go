package systems

import (
	"github.com/automoto/tilecanvas/components"
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/automoto/tilecanvas/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// The singleton accessors below create their component on first use so a
// scene only has to spawn what it wants to configure.

func cameraOf(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = factory.CreateCamera(e)
	}
	return components.Camera.Get(entry)
}

func particlePoolOf(e *ecs.ECS) *components.ParticlePoolData {
	entry, ok := components.ParticlePool.First(e.World)
	if !ok {
		entry = factory.CreateParticlePool(e, nil)
	}
	return components.ParticlePool.Get(entry)
}

func frameSchedulerOf(e *ecs.ECS) *components.FrameSchedulerData {
	entry, ok := components.FrameScheduler.First(e.World)
	if !ok {
		entry = factory.CreateFrameScheduler(e)
	}
	return components.FrameScheduler.Get(entry)
}

func rosterOf(e *ecs.ECS) *components.RosterData {
	entry, ok := components.Roster.First(e.World)
	if !ok {
		entry = factory.CreateRoster(e)
	}
	return components.Roster.Get(entry)
}

// assetsOf returns nil when the scene has no image source.
func assetsOf(e *ecs.ECS) *components.AssetsData {
	entry, ok := components.Assets.First(e.World)
	if !ok {
		return nil
	}
	return components.Assets.Get(entry)
}

// tileMapOf returns nil when the scene has no map.
func tileMapOf(e *ecs.ECS) *components.TileMapData {
	entry, ok := components.TileMap.First(e.World)
	if !ok {
		return nil
	}
	return components.TileMap.Get(entry)
}

// tileSize is the map's tile size, or the configured default without a map.
func tileSize(e *ecs.ECS) int {
	if level := tileMapOf(e); level != nil && level.TileSize > 0 {
		return level.TileSize
	}
	return cfg.C.TileSize
}
