package scenes

import (
	"testing"

	"github.com/automoto/tilecanvas/canvas"
	"github.com/automoto/tilecanvas/canvas/canvastest"
	"github.com/automoto/tilecanvas/components"
	"github.com/automoto/tilecanvas/systems"
	"github.com/automoto/tilecanvas/systems/factory"
	"github.com/automoto/tilecanvas/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testTileSize = 32

type imageSource struct{}

func (imageSource) Image(path string) (canvas.Image, error) {
	return &canvastest.Image{Name: path, W: testTileSize, H: testTileSize}, nil
}

func (imageSource) Frames(path string, count, size int) ([]canvas.Image, error) {
	frames := make([]canvas.Image, count)
	for i := range frames {
		frames[i] = &canvastest.Image{Name: path, W: size, H: size}
	}
	return frames, nil
}

var testAtlas = tilemap.Atlas{0: "tiles/grass.png", 2: "tiles/water.png"}

func newTestWorld(t *testing.T, tiles tilemap.TileMap) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateAssets(e, imageSource{})
	factory.CreateTileMap(e, tiles, testAtlas, testTileSize)
	return e
}

func position(t *testing.T, e *ecs.ECS, id int) (int, int) {
	t.Helper()
	entry, ok := systems.FindCharacter(e, id)
	if !ok {
		t.Fatalf("character %d not found", id)
	}
	c := components.Character.Get(entry)
	return c.X, c.Y
}

func TestOpenCell(t *testing.T) {
	e := newTestWorld(t, tilemap.TileMap{{2, 0}, {0, 2}})
	systems.BlockTiles(e, map[int]bool{2: true})

	if x, y := openCell(e, false); x != 1 || y != 0 {
		t.Fatalf("expected (1,0) from the start, got (%d,%d)", x, y)
	}
	if x, y := openCell(e, true); x != 0 || y != 1 {
		t.Fatalf("expected (0,1) from the end, got (%d,%d)", x, y)
	}
}

func TestRelocateCharactersAfterTheMapChanges(t *testing.T) {
	e := newTestWorld(t, tilemap.TileMap{{0, 0}, {0, 0}})
	rec := canvastest.NewRecorder(64, 64)
	if err := systems.AddCharacter(e, rec, playerID, 0, 0, "chars/player.png"); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := systems.AddCharacter(e, rec, villagerID, 1, 1, "chars/villager.png"); err != nil {
		t.Fatalf("add villager: %v", err)
	}
	if err := systems.MoveAnimatedCharacter(e, playerID, 1, 0); err != nil {
		t.Fatalf("move: %v", err)
	}

	systems.SetTileMap(e, tilemap.TileMap{{2, 0}, {0, 2}}, testAtlas, testTileSize)
	systems.RemoveCollisions(e)
	systems.BlockTiles(e, map[int]bool{2: true})
	relocateCharacters(e, rec)

	if systems.IsMoving(e, playerID) {
		t.Fatal("expected the player's walk to be cancelled")
	}
	if x, y := position(t, e, playerID); x != 1 || y != 0 {
		t.Fatalf("expected player on (1,0), got (%d,%d)", x, y)
	}
	if x, y := position(t, e, villagerID); x != 0 || y != 1 {
		t.Fatalf("expected villager on (0,1), got (%d,%d)", x, y)
	}
}

func TestRelocateCharactersKeepsOpenCells(t *testing.T) {
	e := newTestWorld(t, tilemap.TileMap{{0, 0}, {0, 2}})
	rec := canvastest.NewRecorder(64, 64)
	if err := systems.AddCharacter(e, rec, villagerID, 0, 1, "chars/villager.png"); err != nil {
		t.Fatalf("add villager: %v", err)
	}
	systems.BlockTiles(e, map[int]bool{2: true})

	relocateCharacters(e, rec)

	if x, y := position(t, e, villagerID); x != 0 || y != 1 {
		t.Fatalf("expected villager to stay on (0,1), got (%d,%d)", x, y)
	}
}
