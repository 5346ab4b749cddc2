package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Velocity     math.Vec2 // unit direction of travel, zero when idle
	Speed        float64   // pixels per second
	Radius       float64
	LastShotTime float64 // shooting cooldown, not used yet
	AgainstWall  bool    // broadphase contact with a bounds wall after the last move
}

var Player = donburi.NewComponentType[PlayerData]()
