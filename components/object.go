package components

import (
	"github.com/solarlune/resolv"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData wraps a collision object. The object itself is stored in
// space coordinates (see BoundsConfig.SpaceOrigin); the helpers below speak
// world coordinates.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Center returns the middle of the object's bounding box in world space.
func (o ObjectData) Center() math.Vec2 {
	ox, oy := cfg.Bounds.SpaceOrigin()
	return math.Vec2{X: o.X + o.W/2 - ox, Y: o.Y + o.H/2 - oy}
}

// SetCenter moves the object so its bounding box is centred on world (x, y).
func (o ObjectData) SetCenter(x, y float64) {
	ox, oy := cfg.Bounds.SpaceOrigin()
	o.X = x + ox - o.W/2
	o.Y = y + oy - o.H/2
	o.Update()
}

// WorldRect returns the bounding box's top-left corner in world space.
func (o ObjectData) WorldRect() (x, y, w, h float64) {
	ox, oy := cfg.Bounds.SpaceOrigin()
	return o.X - ox, o.Y - oy, o.W, o.H
}

// NewWorldObject creates a collision object from a world-space rectangle.
func NewWorldObject(x, y, w, h float64, tags ...string) *resolv.Object {
	ox, oy := cfg.Bounds.SpaceOrigin()
	obj := resolv.NewObject(x+ox, y+oy, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// Space holds the collision space shared by every Object in a scene.
var Space = donburi.NewComponentType[resolv.Space]()
