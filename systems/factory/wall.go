package factory

import (
	"github.com/springfieldmeltdown/meltdown/archetypes"
	"github.com/springfieldmeltdown/meltdown/components"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/springfieldmeltdown/meltdown/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns a solid from a world-space rectangle.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := components.NewWorldObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateBounds walls off the debug box with four thin solids lying just
// outside its edges.
func CreateBounds(ecs *ecs.ECS, bounds cfg.BoundsConfig) []*donburi.Entry {
	t := float64(bounds.StrokeWidth)
	if t <= 0 {
		t = 1
	}
	minX, minY := bounds.MinX(), bounds.MinY()

	return []*donburi.Entry{
		CreateWall(ecs, minX-t, minY-t, bounds.Width+2*t, t),        // top
		CreateWall(ecs, minX-t, bounds.MaxY(), bounds.Width+2*t, t), // bottom
		CreateWall(ecs, minX-t, minY, t, bounds.Height),             // left
		CreateWall(ecs, bounds.MaxX(), minY, t, bounds.Height),      // right
	}
}
