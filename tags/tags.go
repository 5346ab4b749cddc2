package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision objects
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
