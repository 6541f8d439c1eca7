package systems

import (
	"image/color"

	"github.com/automoto/tilecanvas/canvas"
	"github.com/automoto/tilecanvas/components"
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/automoto/tilecanvas/tags"
	"github.com/yohamta/donburi/ecs"
)

var debugOutline = color.RGBA{255, 60, 60, 255}

// DrawDebug outlines every solid rectangle under the camera when
// config.Debug.ShowCollisions is set.
func DrawDebug(ecs *ecs.ECS, surface canvas.Surface) {
	if !cfg.Debug.ShowCollisions {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	WithCamera(ecs, surface, func() {
		for _, obj := range space.Objects() {
			if !obj.HasTags(tags.ResolvSolid) {
				continue
			}
			surface.FillRect(obj.X, obj.Y, obj.W, 1, debugOutline)         // Top
			surface.FillRect(obj.X, obj.Y+obj.H-1, obj.W, 1, debugOutline) // Bottom
			surface.FillRect(obj.X, obj.Y, 1, obj.H, debugOutline)         // Left
			surface.FillRect(obj.X+obj.W-1, obj.Y, 1, obj.H, debugOutline) // Right
		}
	})
}
