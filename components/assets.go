package components

import (
	"github.com/automoto/tilecanvas/canvas"
	"github.com/yohamta/donburi"
)

// ImageSource resolves image paths for the renderers. assets.Loader is the
// production implementation.
type ImageSource interface {
	Image(path string) (canvas.Image, error)
	Frames(path string, count, size int) ([]canvas.Image, error)
}

// FrameLoad is the result of slicing one character's sprite sheet.
type FrameLoad struct {
	Entity donburi.Entity
	Path   string
	Frames []canvas.Image
	Err    error
}

// AssetsData is the scene's image source plus the sprite sheets still being
// sliced in the background.
type AssetsData struct {
	Source   ImageSource
	Results  chan FrameLoad
	Pending  int
	Reported map[RenderFailureKey]struct{} // failures already logged
}

// RenderFailureKey identifies a reported failure. CharacterID is -1 for
// tiles.
type RenderFailureKey struct {
	Kind        RenderEventKind
	CharacterID int
	Path        string
}

var Assets = donburi.NewComponentType[AssetsData]()
