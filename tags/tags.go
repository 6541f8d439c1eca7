package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Animated  = donburi.NewTag().SetName("Animated")
	Collision = donburi.NewTag().SetName("Collision")
)

// Resolv tags for blocked-cell probes
const (
	ResolvSolid = "solid"
)
