package systems

import (
	"github.com/automoto/tilecanvas/canvas"
	"github.com/yohamta/donburi/ecs"
)

// RenderScene draws every character and particle under the camera
// transform.
func RenderScene(e *ecs.ECS, surface canvas.Surface) {
	WithCamera(e, surface, func() {
		DrawCharacters(e, surface)
		DrawParticles(e, surface)
	})
}
