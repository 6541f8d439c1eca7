package systems

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"testing"

	"github.com/automoto/tilecanvas/canvas"
	"github.com/automoto/tilecanvas/canvas/canvastest"
	"github.com/automoto/tilecanvas/components"
	"github.com/automoto/tilecanvas/systems/factory"
	"github.com/automoto/tilecanvas/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testTileSize = 32

// fakeSource serves canvastest images by path. Paths in missing fail with
// fs.ErrNotExist. When gate is set, Frames blocks until it is closed.
type fakeSource struct {
	mu      sync.Mutex
	missing map[string]bool
	gate    chan struct{}
	loads   map[string]int
	images  map[string]*canvastest.Image
}

func newFakeSource(missing ...string) *fakeSource {
	f := &fakeSource{
		missing: make(map[string]bool),
		loads:   make(map[string]int),
		images:  make(map[string]*canvastest.Image),
	}
	for _, p := range missing {
		f.missing[p] = true
	}
	return f
}

func (f *fakeSource) Image(path string) (canvas.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads[path]++
	if f.missing[path] {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	img, ok := f.images[path]
	if !ok {
		img = &canvastest.Image{Name: path, W: testTileSize, H: testTileSize}
		f.images[path] = img
	}
	return img, nil
}

func (f *fakeSource) Frames(path string, count, size int) ([]canvas.Image, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missing[path] {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	if count < 1 {
		return nil, errors.New("no frames")
	}
	frames := make([]canvas.Image, count)
	for i := range frames {
		frames[i] = &canvastest.Image{Name: fmt.Sprintf("%s#%d", path, i), W: size, H: size}
	}
	return frames, nil
}

func (f *fakeSource) loadCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads[path]
}

var testAtlas = tilemap.Atlas{
	0: "tiles/grass.png",
	1: "tiles/dirt.png",
	2: "tiles/water.png",
}

// newTestScene returns a world with src as its image source and tiles as
// its map.
func newTestScene(t *testing.T, src components.ImageSource, tiles tilemap.TileMap) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	if src != nil {
		factory.CreateAssets(e, src)
	}
	if tiles != nil {
		factory.CreateTileMap(e, tiles, testAtlas, testTileSize)
	}
	return e
}

// uniformMap is rows×cols of code.
func uniformMap(rows, cols, code int) tilemap.TileMap {
	m := make(tilemap.TileMap, rows)
	for y := range m {
		m[y] = make([]int, cols)
		for x := range m[y] {
			m[y][x] = code
		}
	}
	return m
}

func imageName(op canvastest.Op) string {
	if img, ok := op.Image.(*canvastest.Image); ok {
		return img.Name
	}
	return ""
}

func geoMEqual(a, b ebiten.GeoM) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if a.Element(i, j) != b.Element(i, j) {
				return false
			}
		}
	}
	return true
}

func collectRenderEvents(e *ecs.ECS) *[]components.RenderEventData {
	var got []components.RenderEventData
	OnRenderEvent(e, func(ev components.RenderEventData) {
		got = append(got, ev)
	})
	return &got
}
