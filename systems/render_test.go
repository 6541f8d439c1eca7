package systems

import (
	"testing"

	"github.com/automoto/tilecanvas/canvas/canvastest"
	"github.com/automoto/tilecanvas/systems/factory"
)

func TestRenderSceneDrawsCharactersAndParticlesUnderCamera(t *testing.T) {
	e, pool := newParticleScene(t)
	factory.CreateAssets(e, newFakeSource())
	rec := canvastest.NewRecorder(128, 128)
	if err := AddCharacter(e, rec, 1, 1, 1, "chars/a.png"); err != nil {
		t.Fatalf("add: %v", err)
	}
	SummonParticles(e, 10, 10, 2, 5, red)
	setSizes(pool, 2)
	ZoomCamera(e, 2)
	rec.Reset()

	RenderScene(e, rec)

	want := CameraTransform(Camera(e))
	if len(rec.Ops) != 3 {
		t.Fatalf("expected character + 2 particles, got %d ops", len(rec.Ops))
	}
	if rec.Ops[0].Kind != canvastest.OpDrawImage {
		t.Fatalf("expected character drawn first, got %s", rec.Ops[0].Kind)
	}
	for i, op := range rec.Ops {
		if !geoMEqual(op.Transform, want) {
			t.Fatalf("op %d: expected camera transform", i)
		}
	}
	if rec.Depth() != 0 {
		t.Fatalf("expected transform stack restored, got depth %d", rec.Depth())
	}
}
