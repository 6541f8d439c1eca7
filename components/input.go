package components

import (
	cfg "github.com/automoto/tilecanvas/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous tick's pressed state for all
// actions, plus the cursor for pointer actions.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	CursorX  int
	CursorY  int
	Clicked  bool // left button went down this tick
}

var Input = donburi.NewComponentType[InputData]()
