// Package canvastest provides a recording canvas.Surface and stand-in images
// for tests that must not touch the GPU.
package canvastest

import (
	"image"
	"image/color"

	"github.com/automoto/tilecanvas/canvas"
	"github.com/hajimehoshi/ebiten/v2"
)

// Image is a named stand-in raster of a fixed size.
type Image struct {
	Name string
	W, H int
}

func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.W, i.H)
}

// Op kinds recorded by Recorder.
const (
	OpFill       = "fill"
	OpFillRect   = "fillRect"
	OpClearRect  = "clearRect"
	OpDrawImage  = "drawImage"
	OpFillCircle = "fillCircle"
)

// Op is one recorded drawing call, in the caller's coordinates, together
// with the transform that was current when it was issued.
type Op struct {
	Kind       string
	X, Y, W, H float64
	R          float64
	Image      canvas.Image
	Color      color.Color
	Transform  ebiten.GeoM
}

// Recorder is a canvas.Surface that records every call.
type Recorder struct {
	canvas.TransformStack
	W, H int
	Ops  []Op
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.W, r.H)
}

func (r *Recorder) Fill(c color.Color) {
	r.record(Op{Kind: OpFill, W: float64(r.W), H: float64(r.H), Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.record(Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(Op{Kind: OpClearRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawImage(img canvas.Image, x, y, w, h float64) {
	r.record(Op{Kind: OpDrawImage, X: x, Y: y, W: w, H: h, Image: img})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.record(Op{Kind: OpFillCircle, X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) record(op Op) {
	op.Transform = r.Transform()
	r.Ops = append(r.Ops, op)
}

// Filter returns the recorded ops of the given kind, in call order.
func (r *Recorder) Filter(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset forgets all recorded ops. The transform stack is left alone.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
