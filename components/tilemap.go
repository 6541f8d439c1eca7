package components

import (
	"github.com/automoto/tilecanvas/tilemap"
	"github.com/yohamta/donburi"
)

type TileMapData struct {
	Tiles    tilemap.TileMap
	Atlas    tilemap.Atlas
	TileSize int
}

// PixelSize returns the map's size in pixels.
func (t *TileMapData) PixelSize() (int, int) {
	return t.Tiles.Width() * t.TileSize, t.Tiles.Height() * t.TileSize
}

var TileMap = donburi.NewComponentType[TileMapData]()
