package systems

import (
	"errors"
	"testing"

	"github.com/automoto/tilecanvas/canvas/canvastest"
	"github.com/automoto/tilecanvas/components"
)

func TestAddCharacterDrawsAtItsCell(t *testing.T) {
	e := newTestScene(t, newFakeSource(), uniformMap(4, 4, 0))
	rec := canvastest.NewRecorder(128, 128)

	if err := AddCharacter(e, rec, 1, 2, 3, "chars/knight.png"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(rec.Ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(rec.Ops))
	}
	op := rec.Ops[0]
	if op.Kind != canvastest.OpDrawImage || op.X != 64 || op.Y != 96 || op.W != 32 || op.H != 32 ||
		imageName(op) != "chars/knight.png" {
		t.Fatalf("unexpected op %+v", op)
	}
}

func TestAddCharacterRejectsDuplicateID(t *testing.T) {
	e := newTestScene(t, newFakeSource(), uniformMap(4, 4, 0))
	rec := canvastest.NewRecorder(128, 128)

	if err := AddCharacter(e, rec, 1, 0, 0, "chars/a.png"); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := AddCharacter(e, rec, 1, 1, 1, "chars/b.png")
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if err := AddAnimatedCharacter(e, 1, 1, 1, "chars/walk.png", 4); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID for animated add, got %v", err)
	}

	if n := len(charactersByID(e)); n != 1 {
		t.Fatalf("expected 1 character, got %d", n)
	}
	entry, _ := FindCharacter(e, 1)
	if c := components.Character.Get(entry); c.ImagePath != "chars/a.png" {
		t.Fatalf("expected first character kept, got %+v", c)
	}
}

func TestMoveCharacterUnknownIDIsNoOp(t *testing.T) {
	e := newTestScene(t, newFakeSource(), uniformMap(4, 4, 0))
	rec := canvastest.NewRecorder(128, 128)

	if err := MoveCharacter(e, rec, 42, 1, 1); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(rec.Ops) != 0 {
		t.Fatalf("expected nothing drawn, got %d ops", len(rec.Ops))
	}
}

func TestMoveCharacterClearsRedrawsGridThenCharacter(t *testing.T) {
	e := newTestScene(t, newFakeSource(), uniformMap(2, 3, 1))
	rec := canvastest.NewRecorder(96, 64)
	if err := AddCharacter(e, rec, 7, 0, 0, "chars/knight.png"); err != nil {
		t.Fatalf("add: %v", err)
	}
	rec.Reset()

	if err := MoveCharacter(e, rec, 7, 2, 1); err != nil {
		t.Fatalf("move: %v", err)
	}

	if len(rec.Ops) != 1+6+1 {
		t.Fatalf("expected clear + 6 tiles + character, got %d ops", len(rec.Ops))
	}
	clear := rec.Ops[0]
	if clear.Kind != canvastest.OpClearRect || clear.X != 0 || clear.Y != 0 || clear.W != 32 || clear.H != 32 {
		t.Fatalf("expected old cell cleared first, got %+v", clear)
	}
	for _, op := range rec.Ops[1:7] {
		if imageName(op) != "tiles/dirt.png" {
			t.Fatalf("expected grid tile, got %+v", op)
		}
	}
	last := rec.Ops[7]
	if imageName(last) != "chars/knight.png" || last.X != 64 || last.Y != 32 {
		t.Fatalf("expected character at (64,32) last, got %+v", last)
	}

	entry, _ := FindCharacter(e, 7)
	if c := components.Character.Get(entry); c.X != 2 || c.Y != 1 {
		t.Fatalf("expected position (2,1), got (%d,%d)", c.X, c.Y)
	}
}

func TestMoveCharacterOntoBlockedCellIsRejected(t *testing.T) {
	e := newTestScene(t, newFakeSource(), uniformMap(4, 4, 0))
	rec := canvastest.NewRecorder(128, 128)
	if err := AddCharacter(e, rec, 1, 0, 0, "chars/knight.png"); err != nil {
		t.Fatalf("add: %v", err)
	}
	AddCollision(e, 32, 0, 32, 32)
	rec.Reset()

	err := MoveCharacter(e, rec, 1, 1, 0)
	if !errors.Is(err, ErrBlocked) {
		t.Fatalf("expected ErrBlocked, got %v", err)
	}
	if len(rec.Ops) != 0 {
		t.Fatalf("expected nothing drawn, got %d ops", len(rec.Ops))
	}
	entry, _ := FindCharacter(e, 1)
	if c := components.Character.Get(entry); c.X != 0 || c.Y != 0 {
		t.Fatalf("expected character to stay at (0,0), got (%d,%d)", c.X, c.Y)
	}
}

func TestMoveCharacterWithBrokenImageStillMoves(t *testing.T) {
	src := newFakeSource("chars/ghost.png")
	e := newTestScene(t, src, uniformMap(2, 2, 0))
	events := collectRenderEvents(e)
	rec := canvastest.NewRecorder(64, 64)

	if err := AddCharacter(e, rec, 3, 0, 0, "chars/ghost.png"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := MoveCharacter(e, rec, 3, 1, 1); err != nil {
		t.Fatalf("move: %v", err)
	}
	ProcessRenderEvents(e)

	for _, op := range rec.Filter(canvastest.OpDrawImage) {
		if imageName(op) == "chars/ghost.png" {
			t.Fatalf("expected broken character skipped, got %+v", op)
		}
	}
	if len(*events) != 1 || (*events)[0].CharacterID != 3 {
		t.Fatalf("expected one event for character 3, got %+v", *events)
	}
	entry, _ := FindCharacter(e, 3)
	if c := components.Character.Get(entry); c.X != 1 || c.Y != 1 {
		t.Fatalf("expected position (1,1), got (%d,%d)", c.X, c.Y)
	}
}

func TestRemoveCharacter(t *testing.T) {
	e := newTestScene(t, newFakeSource(), uniformMap(2, 2, 0))
	rec := canvastest.NewRecorder(64, 64)
	if err := AddCharacter(e, rec, 1, 0, 0, "chars/a.png"); err != nil {
		t.Fatalf("add: %v", err)
	}

	if !RemoveCharacter(e, 1) {
		t.Fatal("expected remove to report a known id")
	}
	if _, ok := FindCharacter(e, 1); ok {
		t.Fatal("expected character gone")
	}
	if RemoveCharacter(e, 1) {
		t.Fatal("expected second remove to report an unknown id")
	}
	if err := AddCharacter(e, rec, 1, 1, 1, "chars/a.png"); err != nil {
		t.Fatalf("expected id reusable after removal, got %v", err)
	}
}

func TestDrawCharactersInIDOrder(t *testing.T) {
	e := newTestScene(t, newFakeSource(), uniformMap(4, 4, 0))
	rec := canvastest.NewRecorder(128, 128)
	for _, id := range []int{5, 1, 3} {
		if err := AddCharacter(e, rec, id, id%4, 0, "chars/a.png"); err != nil {
			t.Fatalf("add %d: %v", id, err)
		}
	}
	rec.Reset()

	DrawCharacters(e, rec)

	draws := rec.Filter(canvastest.OpDrawImage)
	want := []float64{32, 96, 32} // ids 1, 3, 5
	if len(draws) != 3 {
		t.Fatalf("expected 3 draws, got %d", len(draws))
	}
	for i, op := range draws {
		if op.X != want[i] {
			t.Fatalf("draw %d: expected x %v, got %v", i, want[i], op.X)
		}
	}
}

func TestSameBrokenImageIsReportedPerCharacter(t *testing.T) {
	e := newTestScene(t, newFakeSource("chars/ghost.png"), uniformMap(2, 2, 0))
	events := collectRenderEvents(e)
	rec := canvastest.NewRecorder(64, 64)

	if err := AddCharacter(e, rec, 3, 0, 0, "chars/ghost.png"); err != nil {
		t.Fatalf("add 3: %v", err)
	}
	if err := AddCharacter(e, rec, 4, 1, 0, "chars/ghost.png"); err != nil {
		t.Fatalf("add 4: %v", err)
	}
	DrawCharacters(e, rec)
	ProcessRenderEvents(e)

	if len(*events) != 2 {
		t.Fatalf("expected one event per character, got %+v", *events)
	}
	if (*events)[0].CharacterID != 3 || (*events)[1].CharacterID != 4 {
		t.Fatalf("unexpected events %+v", *events)
	}
}
