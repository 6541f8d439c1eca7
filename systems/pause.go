package systems

import (
	"github.com/automoto/tilecanvas/components"
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/automoto/tilecanvas/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces are font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the pause action.
// This system should run AFTER UpdateInput but BEFORE the systems it gates.
func UpdatePause(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !IsPaused(ecs))
	}
}

// SetPaused stops the particle loop on pause and restarts it on resume if
// any particle is left.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	if paused {
		StopParticleAnimation(ecs)
	} else if ParticleCount(ecs) > 0 {
		StartParticleAnimation(ecs)
	}
}

func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// WhenRunning wraps a system so it is skipped while paused.
func WhenRunning(fn func(*ecs.ECS)) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		if IsPaused(ecs) {
			return
		}
		fn(ecs)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	label := "PAUSED"
	textWidth := len(label) * 9 // approximate for the 14pt face
	text.Draw(screen, label, fonts.Regular.Get(), int((width-float64(textWidth))/2), int(height/2), cfg.Yellow)
}

func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
