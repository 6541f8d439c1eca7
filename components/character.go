package components

import "github.com/yohamta/donburi"

// CharacterData places an entity on the tile grid. X and Y are cell
// coordinates, not pixels.
type CharacterData struct {
	ID        int
	X, Y      int
	ImagePath string
	Redraw    bool // moved since it was last painted on the map surface
}

var Character = donburi.NewComponentType[CharacterData]()
