package factory

import (
	"github.com/automoto/tilecanvas/archetypes"
	"github.com/automoto/tilecanvas/components"
	"github.com/automoto/tilecanvas/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollision registers a solid rectangle (pixels) in the scene's space.
func CreateCollision(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	entry := archetypes.Collision.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = entry
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return entry
}
