package factory

import (
	"github.com/automoto/tilecanvas/archetypes"
	"github.com/automoto/tilecanvas/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	cam := components.DefaultCamera
	components.Camera.Set(camera, &cam)
	return camera
}
