package systems

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/automoto/tilecanvas/assets/animations"
	"github.com/automoto/tilecanvas/canvas"
	"github.com/automoto/tilecanvas/components"
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/automoto/tilecanvas/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errNoImageSource = errors.New("scene has no image source")

// AddAnimatedCharacter registers a character whose look comes from a
// horizontal sprite sheet of frameCount frames. The sheet is sliced in the
// background; until UpdateFrameLoads applies the result the character has
// no frames and draws nothing.
func AddAnimatedCharacter(e *ecs.ECS, id, x, y int, sheetPath string, frameCount int) error {
	roster := rosterOf(e)
	if _, ok := roster.Lookup(id); ok {
		return fmt.Errorf("add animated character %d: %w", id, ErrDuplicateID)
	}

	entry := factory.CreateAnimatedCharacter(e, id, x, y, sheetPath, frameCount)
	roster.Add(id, entry.Entity())

	anim := components.Animation.Get(entry)
	anim.Cycle = animations.NewAnimation(frameCount, cfg.Animation.FrameTicks)

	a := assetsOf(e)
	if a == nil || a.Source == nil {
		anim.Failed = true
		reportRenderFailure(e, components.FrameLoadFailure, id, sheetPath, errNoImageSource)
		return nil
	}

	a.Pending++
	entity := entry.Entity()
	source, results, size := a.Source, a.Results, tileSize(e)
	go func() {
		frames, err := source.Frames(sheetPath, frameCount, size)
		results <- components.FrameLoad{Entity: entity, Path: sheetPath, Frames: frames, Err: err}
	}()
	return nil
}

// UpdateFrameLoads attaches every sprite sheet sliced since the last tick.
// It never blocks.
func UpdateFrameLoads(e *ecs.ECS) {
	a := assetsOf(e)
	if a == nil {
		return
	}
	for a.Pending > 0 {
		select {
		case r := <-a.Results:
			applyFrameLoad(e, a, r)
		default:
			return
		}
	}
}

// AwaitFrameLoads blocks until every pending sprite sheet has been applied
// or ctx is done.
func AwaitFrameLoads(ctx context.Context, e *ecs.ECS) error {
	a := assetsOf(e)
	if a == nil {
		return nil
	}
	for a.Pending > 0 {
		select {
		case r := <-a.Results:
			applyFrameLoad(e, a, r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func applyFrameLoad(e *ecs.ECS, a *components.AssetsData, r components.FrameLoad) {
	a.Pending--
	if !e.World.Valid(r.Entity) {
		return // removed while its sheet was loading
	}
	entry := e.World.Entry(r.Entity)
	if !entry.HasComponent(components.Animation) {
		return
	}
	anim := components.Animation.Get(entry)
	c := components.Character.Get(entry)

	if r.Err != nil {
		anim.Failed = true
		reportRenderFailure(e, components.FrameLoadFailure, c.ID, r.Path, r.Err)
		return
	}
	anim.Frames = r.Frames
	anim.CurrentFrame = 0
	anim.Ready = true
	c.Redraw = true
}

// RenderCharacter draws an animated character's current frame at its cell.
// Before its frames are ready this draws nothing.
func RenderCharacter(e *ecs.ECS, surface canvas.Surface, entry *donburi.Entry) {
	anim := components.Animation.Get(entry)
	img := anim.Frame()
	if img == nil {
		return
	}
	c := components.Character.Get(entry)
	ts := float64(tileSize(e))
	surface.DrawImage(img, float64(c.X)*ts, float64(c.Y)*ts, ts, ts)
}

// MoveAnimatedCharacter starts a stepped move to cell (x, y). The move runs
// config.Animation.MoveSteps steps at config.Animation.StepsPerSecond; each
// step snaps the character to the nearest cell on the straight line and the
// last step lands on the target. An unknown id is a no-op. A second move
// while one is running is rejected.
func MoveAnimatedCharacter(e *ecs.ECS, id, x, y int) error {
	entry, ok := FindCharacter(e, id)
	if !ok {
		return nil
	}
	if entry.HasComponent(components.Movement) {
		return fmt.Errorf("move character %d: %w", id, ErrMoveInProgress)
	}
	if IsBlocked(e, x, y) {
		return fmt.Errorf("move character %d to (%d,%d): %w", id, x, y, ErrBlocked)
	}

	c := components.Character.Get(entry)

	steps := max(cfg.Animation.MoveSteps, 1)
	stepsPerSecond := max(cfg.Animation.StepsPerSecond, 1)
	stepSeconds := 1 / float32(stepsPerSecond)
	duration := stepSeconds * float32(steps)

	entry.AddComponent(components.Movement)
	components.Movement.Set(entry, &components.MovementData{
		FromX:        c.X,
		FromY:        c.Y,
		ToX:          x,
		ToY:          y,
		Steps:        steps,
		TicksPerStep: max(cfg.C.TPS/stepsPerSecond, 1),
		StepSeconds:  stepSeconds,
		TweenX:       gween.New(float32(c.X), float32(x), duration, ease.Linear),
		TweenY:       gween.New(float32(c.Y), float32(y), duration, ease.Linear),
	})

	if entry.HasComponent(components.Animation) {
		components.Animation.Get(entry).Cycle.Restart()
	}
	return nil
}

// IsMoving reports whether a character has a move in flight.
func IsMoving(e *ecs.ECS, id int) bool {
	entry, ok := FindCharacter(e, id)
	return ok && entry.HasComponent(components.Movement)
}

// StopMovement drops a character's move in flight, leaving it on the cell it
// last stepped onto. It reports whether a move was dropped.
func StopMovement(e *ecs.ECS, id int) bool {
	entry, ok := FindCharacter(e, id)
	if !ok || !entry.HasComponent(components.Movement) {
		return false
	}
	entry.RemoveComponent(components.Movement)
	if entry.HasComponent(components.Animation) {
		anim := components.Animation.Get(entry)
		anim.Cycle.Restart()
		anim.CurrentFrame = 0
	}
	components.Character.Get(entry).Redraw = true
	return true
}

// UpdateMovement advances every move in flight by one tick. Sprite frames
// cycle while a character moves and return to frame 0 when it arrives.
func UpdateMovement(e *ecs.ECS) {
	var arrived []*donburi.Entry

	components.Movement.Each(e.World, func(entry *donburi.Entry) {
		mv := components.Movement.Get(entry)
		c := components.Character.Get(entry)

		if entry.HasComponent(components.Animation) {
			anim := components.Animation.Get(entry)
			anim.Cycle.Update()
			if anim.Ready && len(anim.Frames) > 0 {
				anim.CurrentFrame = anim.Cycle.Frame() % len(anim.Frames)
			}
		}

		mv.Ticks++
		if mv.Ticks < mv.TicksPerStep {
			return
		}
		mv.Ticks = 0
		mv.Step++

		fx, doneX := mv.TweenX.Update(mv.StepSeconds)
		fy, doneY := mv.TweenY.Update(mv.StepSeconds)
		c.X = int(math.Round(float64(fx)))
		c.Y = int(math.Round(float64(fy)))
		c.Redraw = true

		if mv.Step >= mv.Steps || (doneX && doneY) {
			c.X, c.Y = mv.ToX, mv.ToY
			arrived = append(arrived, entry)
		}
	})

	for _, entry := range arrived {
		entry.RemoveComponent(components.Movement)
		if entry.HasComponent(components.Animation) {
			anim := components.Animation.Get(entry)
			anim.Cycle.Restart()
			anim.CurrentFrame = 0
		}
	}
}

// DrawMovement repaints the map surface once any character changed cell
// since the last call: the grid is redrawn once, then every character in id
// order, so characters that stood still are not left painted over.
func DrawMovement(e *ecs.ECS, surface canvas.Surface) {
	entries := charactersByID(e)
	moved := false
	for _, entry := range entries {
		c := components.Character.Get(entry)
		moved = moved || c.Redraw
		c.Redraw = false
	}
	if !moved {
		return
	}

	PlaceGrid(e, surface)
	for _, entry := range entries {
		drawCharacter(e, surface, entry)
	}
}
