package systems

import (
	"github.com/automoto/tilecanvas/canvas"
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/automoto/tilecanvas/systems/factory"
	"github.com/automoto/tilecanvas/tilemap"
	"github.com/yohamta/donburi/ecs"
)

// InitializeEngine paints the whole surface black.
func InitializeEngine(surface canvas.Surface) {
	surface.Fill(cfg.Black)
}

// PlaceGrid draws every cell of the scene's tile map at (x*tileSize,
// y*tileSize), row by row. Codes without an atlas entry stay blank. Images
// that fail to load are reported and skipped; the rest of the grid is still
// drawn.
func PlaceGrid(e *ecs.ECS, surface canvas.Surface) {
	level := tileMapOf(e)
	if level == nil {
		return
	}

	ts := float64(level.TileSize)
	for y, row := range level.Tiles {
		for x, code := range row {
			path := level.Atlas.Path(code)
			if path == "" {
				continue
			}
			img, ok := loadImage(e, path, -1)
			if !ok {
				continue
			}
			surface.DrawImage(img, float64(x)*ts, float64(y)*ts, ts, ts)
		}
	}
}

// SetTileMap makes tiles the scene's map, replacing the previous one whole.
func SetTileMap(e *ecs.ECS, tiles tilemap.TileMap, atlas tilemap.Atlas, tileSize int) {
	if level := tileMapOf(e); level != nil {
		level.Tiles = tiles
		level.Atlas = atlas
		level.TileSize = tileSize
		return
	}
	factory.CreateTileMap(e, tiles, atlas, tileSize)
}
