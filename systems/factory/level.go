package factory

import (
	"math/rand/v2"

	"github.com/automoto/tilecanvas/archetypes"
	"github.com/automoto/tilecanvas/components"
	"github.com/automoto/tilecanvas/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTileMap spawns the scene's map from an existing grid and atlas.
func CreateTileMap(ecs *ecs.ECS, tiles tilemap.TileMap, atlas tilemap.Atlas, tileSize int) *donburi.Entry {
	level := archetypes.TileMap.Spawn(ecs)
	components.TileMap.Set(level, &components.TileMapData{
		Tiles:    tiles,
		Atlas:    atlas,
		TileSize: tileSize,
	})
	return level
}

// CreateRandomTileMap generates a col×row map of codes in [from, to].
func CreateRandomTileMap(ecs *ecs.ECS, col, row, from, to int, atlas tilemap.Atlas, tileSize int, rng *rand.Rand) (*donburi.Entry, error) {
	tiles, err := tilemap.Generate(col, row, from, to, rng)
	if err != nil {
		return nil, err
	}
	return CreateTileMap(ecs, tiles, atlas, tileSize), nil
}
