package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world point shown at the screen centre
}

// Offset is added to world coordinates to get screen coordinates.
func (c *CameraData) Offset(screenWidth, screenHeight int) math.Vec2 {
	return math.Vec2{
		X: float64(screenWidth)/2 - c.Position.X,
		Y: float64(screenHeight)/2 - c.Position.Y,
	}
}

var Camera = donburi.NewComponentType[CameraData]()
