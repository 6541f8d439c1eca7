package systems

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/tilecanvas/canvas"
	"github.com/automoto/tilecanvas/components"
	"github.com/automoto/tilecanvas/systems/factory"
	"github.com/automoto/tilecanvas/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrDuplicateID    = errors.New("character id already registered")
	ErrMoveInProgress = errors.New("character is already moving")
	ErrBlocked        = errors.New("target cell is blocked")
)

// AddCharacter registers a static character at cell (x, y) and draws it once.
func AddCharacter(e *ecs.ECS, surface canvas.Surface, id, x, y int, imagePath string) error {
	roster := rosterOf(e)
	if _, ok := roster.Lookup(id); ok {
		return fmt.Errorf("add character %d: %w", id, ErrDuplicateID)
	}

	entry := factory.CreateCharacter(e, id, x, y, imagePath)
	roster.Add(id, entry.Entity())

	drawCharacter(e, surface, entry)
	return nil
}

// FindCharacter looks a character up by id.
func FindCharacter(e *ecs.ECS, id int) (*donburi.Entry, bool) {
	entity, ok := rosterOf(e).Lookup(id)
	if !ok || !e.World.Valid(entity) {
		return nil, false
	}
	return e.World.Entry(entity), true
}

// RemoveCharacter deletes a character. It reports whether id was known.
func RemoveCharacter(e *ecs.ECS, id int) bool {
	roster := rosterOf(e)
	entry, ok := FindCharacter(e, id)
	roster.Remove(id)
	if !ok {
		return false
	}
	entry.Remove()
	return true
}

// MoveCharacter jumps a character to cell (x, y): its old cell is cleared,
// the whole grid is redrawn and the character is drawn at the new cell.
// An unknown id is a no-op.
func MoveCharacter(e *ecs.ECS, surface canvas.Surface, id, x, y int) error {
	entry, ok := FindCharacter(e, id)
	if !ok {
		return nil
	}
	if IsBlocked(e, x, y) {
		return fmt.Errorf("move character %d to (%d,%d): %w", id, x, y, ErrBlocked)
	}

	c := components.Character.Get(entry)
	ts := float64(tileSize(e))
	surface.ClearRect(float64(c.X)*ts, float64(c.Y)*ts, ts, ts)

	c.X, c.Y = x, y

	PlaceGrid(e, surface)
	drawCharacter(e, surface, entry)
	return nil
}

// DrawCharacters draws every character in id order.
func DrawCharacters(e *ecs.ECS, surface canvas.Surface) {
	for _, entry := range charactersByID(e) {
		drawCharacter(e, surface, entry)
	}
}

func charactersByID(e *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Character.Get(entries[i]).ID < components.Character.Get(entries[j]).ID
	})
	return entries
}

// drawCharacter draws an animated character's current frame, or a static
// character's image, at its cell.
func drawCharacter(e *ecs.ECS, surface canvas.Surface, entry *donburi.Entry) {
	if entry.HasComponent(components.Animation) {
		RenderCharacter(e, surface, entry)
		return
	}

	c := components.Character.Get(entry)
	img, ok := loadImage(e, c.ImagePath, c.ID)
	if !ok {
		return
	}
	ts := float64(tileSize(e))
	surface.DrawImage(img, float64(c.X)*ts, float64(c.Y)*ts, ts, ts)
}
