package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the scene's pan/zoom state. Position is the world-space pixel
// offset of the viewport's top-left corner.
type CameraData struct {
	Position math.Vec2
	Zoom     float64
}

// DefaultCamera is the state ResetCamera restores.
var DefaultCamera = CameraData{Zoom: 1}

var Camera = donburi.NewComponentType[CameraData]()
