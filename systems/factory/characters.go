package factory

import (
	"github.com/automoto/tilecanvas/archetypes"
	"github.com/automoto/tilecanvas/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateRoster(ecs *ecs.ECS) *donburi.Entry {
	roster := archetypes.Roster.Spawn(ecs)
	components.Roster.Set(roster, &components.RosterData{})
	return roster
}

// CreateAssets spawns the scene's image source. Sprite-sheet results are
// buffered so background slicers never block on the game loop.
func CreateAssets(ecs *ecs.ECS, source components.ImageSource) *donburi.Entry {
	assets := archetypes.Assets.Spawn(ecs)
	components.Assets.Set(assets, &components.AssetsData{
		Source:  source,
		Results: make(chan components.FrameLoad, 64),
	})
	return assets
}

func CreateCharacter(ecs *ecs.ECS, id, x, y int, imagePath string) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)
	components.Character.Set(character, &components.CharacterData{
		ID:        id,
		X:         x,
		Y:         y,
		ImagePath: imagePath,
	})
	return character
}

func CreateAnimatedCharacter(ecs *ecs.ECS, id, x, y int, sheetPath string, frameCount int) *donburi.Entry {
	character := archetypes.AnimatedCharacter.Spawn(ecs)
	components.Character.Set(character, &components.CharacterData{
		ID:        id,
		X:         x,
		Y:         y,
		ImagePath: sheetPath,
	})
	components.Animation.Set(character, &components.AnimationData{
		SheetPath:  sheetPath,
		FrameCount: frameCount,
	})
	return character
}
