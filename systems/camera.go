package systems

import (
	"math"

	"github.com/automoto/tilecanvas/canvas"
	"github.com/automoto/tilecanvas/components"
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Camera returns a copy of the scene's camera state.
func Camera(e *ecs.ECS) components.CameraData {
	return *cameraOf(e)
}

// SetCameraPosition centers the viewport on the middle of the character's
// tile.
func SetCameraPosition(e *ecs.ECS, c *components.CharacterData, tileSize int, viewW, viewH float64) {
	if c == nil {
		return
	}
	camera := cameraOf(e)
	ts := float64(tileSize)
	camera.Position.X = float64(c.X)*ts + ts/2 - viewW/2
	camera.Position.Y = float64(c.Y)*ts + ts/2 - viewH/2
}

// ZoomCamera multiplies the zoom by factor. The result is clamped to
// [config.Camera.MinZoom, config.Camera.MaxZoom].
func ZoomCamera(e *ecs.ECS, factor float64) {
	camera := cameraOf(e)
	camera.Zoom = clampZoom(camera.Zoom * factor)
}

func clampZoom(z float64) float64 {
	if math.IsNaN(z) || z < cfg.Camera.MinZoom {
		return cfg.Camera.MinZoom
	}
	if z > cfg.Camera.MaxZoom {
		return cfg.Camera.MaxZoom
	}
	return z
}

// ResetCamera puts the camera back at the origin with zoom 1.
func ResetCamera(e *ecs.ECS) {
	*cameraOf(e) = components.DefaultCamera
}

// CameraTransform maps world pixels to screen pixels: scale by zoom, then
// offset by the camera position.
func CameraTransform(camera components.CameraData) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(camera.Zoom, camera.Zoom)
	m.Translate(-camera.Position.X, -camera.Position.Y)
	return m
}

// WithCamera runs draw with the camera transform applied on top of the
// surface's current transform. The previous transform is restored even if
// draw panics.
func WithCamera(e *ecs.ECS, surface canvas.Surface, draw func()) {
	surface.Save()
	defer surface.Restore()

	m := CameraTransform(*cameraOf(e))
	m.Concat(surface.Transform())
	surface.SetTransform(m)
	draw()
}
