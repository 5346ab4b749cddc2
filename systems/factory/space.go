package factory

import (
	"github.com/solarlune/resolv"
	"github.com/springfieldmeltdown/meltdown/archetypes"
	"github.com/springfieldmeltdown/meltdown/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the collision space. Create it before anything that
// should be added to it.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
