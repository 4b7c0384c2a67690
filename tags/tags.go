package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvFighter = "fighter"
)
