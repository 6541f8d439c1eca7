// Package canvas defines the drawing surface every renderer in this module
// paints on. A Surface mirrors a 2D raster context: rect fills and clears,
// scaled image blits, disc fills and an affine transform stack.
package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Image is any decoded raster the surface knows how to draw.
// *ebiten.Image satisfies it.
type Image interface {
	Bounds() image.Rectangle
}

// Surface is a 2D drawing target. Coordinates passed to the drawing methods
// are transformed by the current transform before they hit the target.
type Surface interface {
	Bounds() image.Rectangle
	// Fill paints the whole target, ignoring the transform.
	Fill(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	ClearRect(x, y, w, h float64)
	// DrawImage draws img scaled to w×h with its top-left corner at (x, y).
	DrawImage(img Image, x, y, w, h float64)
	FillCircle(cx, cy, r float64, c color.Color)

	Save()
	Restore()
	SetTransform(m ebiten.GeoM)
	Transform() ebiten.GeoM
}

// TransformStack implements the save/restore half of a Surface.
// The zero value holds the identity transform.
type TransformStack struct {
	current ebiten.GeoM
	saved   []ebiten.GeoM
}

func (s *TransformStack) Save() {
	s.saved = append(s.saved, s.current)
}

// Restore pops the last saved transform. Restoring an empty stack is a no-op.
func (s *TransformStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *TransformStack) SetTransform(m ebiten.GeoM) {
	s.current = m
}

func (s *TransformStack) Transform() ebiten.GeoM {
	return s.current
}

// Depth returns how many transforms are currently saved.
func (s *TransformStack) Depth() int {
	return len(s.saved)
}
