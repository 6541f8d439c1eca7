package components

import "github.com/yohamta/donburi"

// PauseData freezes moves and particles while set.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
