package gamemath

import "github.com/yohamta/donburi/features/math"

// Projection is a 2:1 isometric projection described by half a tile's size.
type Projection struct {
	TileWidthHalf  float64
	TileHeightHalf float64
}

// WorldToScreen projects a world position onto the screen and shifts it by
// the camera offset.
func (p Projection) WorldToScreen(world, cameraOffset math.Vec2) math.Vec2 {
	return math.Vec2{
		X: (world.X-world.Y)*p.TileWidthHalf + cameraOffset.X,
		Y: (world.X+world.Y)*p.TileHeightHalf + cameraOffset.Y,
	}
}

// ScreenToWorld is the inverse of WorldToScreen for the same camera offset.
func (p Projection) ScreenToWorld(screen, cameraOffset math.Vec2) math.Vec2 {
	a := (screen.X - cameraOffset.X) / p.TileWidthHalf  // x - y
	b := (screen.Y - cameraOffset.Y) / p.TileHeightHalf // x + y
	return math.Vec2{
		X: (a + b) / 2,
		Y: (b - a) / 2,
	}
}
