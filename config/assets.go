package config

// SpriteSheetDef describes a horizontal strip of equally sized frames.
type SpriteSheetDef struct {
	Path   string
	Frames int
}

// TileImages maps a generated tile code to its image inside the asset
// directory. Codes with no entry are drawn as blank cells.
var TileImages = map[int]string{
	0: "tiles/grass.png",
	1: "tiles/dirt.png",
	2: "tiles/water.png",
	3: "tiles/stone.png",
}

// Characters maps a character key to its static image and its walk sheet.
var Characters = map[string]struct {
	Image string
	Sheet SpriteSheetDef
}{
	"player": {
		Image: "characters/player.png",
		Sheet: SpriteSheetDef{Path: "characters/player_walk.png", Frames: 4},
	},
	"villager": {
		Image: "characters/villager.png",
		Sheet: SpriteSheetDef{Path: "characters/villager_walk.png", Frames: 4},
	},
}

// SolidTiles are the generated tile codes characters can not walk onto.
var SolidTiles = map[int]bool{
	2: true,
}
