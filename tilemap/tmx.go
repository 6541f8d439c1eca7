package tilemap

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

// LoadTMX reads a Tiled map from fsys. The tile layer named layerName (or the
// first tile layer when layerName is empty) becomes a TileMap of global tile
// IDs, with 0 for empty cells. Tiles of image-collection tilesets become atlas
// entries keyed by their global ID; tiles cut from a single tileset image have
// no entry and draw blank.
func LoadTMX(fsys fs.FS, tmxPath, layerName string) (TileMap, Atlas, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if len(l.Tiles) == 0 {
			continue
		}
		if layerName == "" || l.Name == layerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, nil, fmt.Errorf("load TMX %s: no tile layer %q", tmxPath, layerName)
	}

	m := make(TileMap, levelMap.Height)
	for y := range m {
		row := make([]int, levelMap.Width)
		for x := range row {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			row[x] = int(tile.Tileset.FirstGID + tile.ID)
		}
		m[y] = row
	}

	baseDir := path.Dir(tmxPath)
	atlas := make(Atlas)
	for _, ts := range levelMap.Tilesets {
		dir := baseDir
		if ts.Source != "" {
			dir = path.Join(baseDir, path.Dir(ts.Source))
		}
		for _, t := range ts.Tiles {
			if t.Image == nil || t.Image.Source == "" {
				continue
			}
			atlas[int(ts.FirstGID+t.ID)] = path.Join(dir, t.Image.Source)
		}
	}

	return m, atlas, nil
}
