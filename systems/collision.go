package systems

import (
	"github.com/automoto/tilecanvas/components"
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/automoto/tilecanvas/systems/factory"
	"github.com/automoto/tilecanvas/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddCollision marks the pixel rectangle (x, y, w, h) as solid. Characters
// can not move onto a cell that overlaps it.
func AddCollision(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	spaceOf(e)
	return factory.CreateCollision(e, x, y, w, h)
}

// BlockTiles adds a collision over every map cell whose code is in solid
// and returns how many were added.
func BlockTiles(e *ecs.ECS, solid map[int]bool) int {
	level := tileMapOf(e)
	if level == nil {
		return 0
	}

	ts := float64(level.TileSize)
	n := 0
	for y, row := range level.Tiles {
		for x, code := range row {
			if !solid[code] {
				continue
			}
			AddCollision(e, float64(x)*ts, float64(y)*ts, ts, ts)
			n++
		}
	}
	return n
}

// RemoveCollisions clears every solid rectangle together with the space, so
// the next AddCollision sizes a new space to the current map.
func RemoveCollisions(e *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.Collision.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	if entry, ok := components.Space.First(e.World); ok {
		doomed = append(doomed, entry)
	}

	for _, entry := range doomed {
		entry.Remove()
	}
}

// IsBlocked reports whether cell (col, row) overlaps a solid rectangle.
// The probe is inset by a pixel so rectangles that only touch the cell's
// edge do not block it.
func IsBlocked(e *ecs.ECS, col, row int) bool {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return false
	}
	space := components.Space.Get(entry)

	ts := float64(tileSize(e))
	probe := resolv.NewObject(float64(col)*ts+1, float64(row)*ts+1, ts-2, ts-2)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	// Check only narrows by shared space cells.
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(probe, o) {
			return true
		}
	}
	return false
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// spaceOf returns the scene's collision space, creating one that covers the
// map (or the default grid without a map) on first use.
func spaceOf(e *ecs.ECS) *resolv.Space {
	if entry, ok := components.Space.First(e.World); ok {
		return components.Space.Get(entry)
	}

	ts := tileSize(e)
	w, h := cfg.C.Cols*ts, cfg.C.Rows*ts
	if level := tileMapOf(e); level != nil {
		w, h = level.PixelSize()
	}
	return components.Space.Get(factory.CreateSpace(e, w, h, ts, ts))
}
