package systems

import (
	"fmt"

	"github.com/automoto/tilecanvas/config"
	"github.com/automoto/tilecanvas/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces are font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 8
	hudLineHeight = 14
	hudWidth      = 220
)

// HUDLines returns the status lines shown in the corner of the demo.
func HUDLines(e *ecs.ECS) []string {
	camera := cameraOf(e)
	lines := []string{
		fmt.Sprintf("camera %.0f,%.0f  zoom %.2f", camera.Position.X, camera.Position.Y, camera.Zoom),
		fmt.Sprintf("particles %d", ParticleCount(e)),
	}
	if level := tileMapOf(e); level != nil {
		lines = append(lines, fmt.Sprintf("map %dx%d  tile %d", level.Tiles.Width(), level.Tiles.Height(), level.TileSize))
	}
	if a := assetsOf(e); a != nil && a.Pending > 0 {
		lines = append(lines, fmt.Sprintf("loading %d sheets", a.Pending))
	}
	return lines
}

// DrawHUD draws HUDLines over a translucent panel, in screen space.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.ShowHUD {
		return
	}
	lines := HUDLines(e)

	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudWidth), float32(len(lines)*hudLineHeight+hudMargin),
		config.BlackOverlay, false)

	face := fonts.Mono.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin*2, hudMargin+(i+1)*hudLineHeight, config.White)
	}
}
