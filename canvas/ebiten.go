package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an *ebiten.Image.
type EbitenSurface struct {
	TransformStack
	dst    *ebiten.Image
	drawOp ebiten.DrawImageOptions
}

func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst}
}

// Target returns the image this surface paints on.
func (s *EbitenSurface) Target() *ebiten.Image {
	return s.dst
}

func (s *EbitenSurface) Bounds() image.Rectangle {
	return s.dst.Bounds()
}

func (s *EbitenSurface) Fill(c color.Color) {
	s.dst.Fill(c)
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	r := s.deviceRect(x, y, w, h)
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.dst,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		c, false)
}

func (s *EbitenSurface) ClearRect(x, y, w, h float64) {
	r := s.deviceRect(x, y, w, h).Intersect(s.dst.Bounds())
	if r.Empty() {
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *EbitenSurface) DrawImage(img Image, x, y, w, h float64) {
	var src *ebiten.Image
	switch v := img.(type) {
	case *ebiten.Image:
		src = v
	case image.Image:
		// Slow path: uploads the image on every call.
		src = ebiten.NewImageFromImage(v)
	default:
		return
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	s.drawOp.GeoM.Reset()
	s.drawOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	s.drawOp.GeoM.Translate(x, y)
	s.drawOp.GeoM.Concat(s.current)
	s.dst.DrawImage(src, &s.drawOp)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	dx, dy := s.current.Apply(cx, cy)
	vector.DrawFilledCircle(s.dst, float32(dx), float32(dy), float32(r*scaleOf(s.current)), c, true)
}

// deviceRect maps a rectangle through the current transform and returns its
// axis-aligned bounds in target pixels.
func (s *EbitenSurface) deviceRect(x, y, w, h float64) image.Rectangle {
	x0, y0 := s.current.Apply(x, y)
	x1, y1 := s.current.Apply(x+w, y+h)
	return image.Rect(
		int(math.Floor(math.Min(x0, x1))), int(math.Floor(math.Min(y0, y1))),
		int(math.Ceil(math.Max(x0, x1))), int(math.Ceil(math.Max(y0, y1))),
	)
}

// scaleOf returns the uniform scale factor of m.
func scaleOf(m ebiten.GeoM) float64 {
	det := m.Element(0, 0)*m.Element(1, 1) - m.Element(0, 1)*m.Element(1, 0)
	return math.Sqrt(math.Abs(det))
}
