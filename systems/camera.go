package systems

import (
	"github.com/springfieldmeltdown/meltdown/components"
	"github.com/springfieldmeltdown/meltdown/config"
	"github.com/springfieldmeltdown/meltdown/shared/gamemath"
	"github.com/springfieldmeltdown/meltdown/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the camera centred on the player.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Object.Get(playerEntry).Center()

	camera.Position.X = gamemath.Lerp(camera.Position.X, target.X, config.Camera.FollowSmoothing)
	camera.Position.Y = gamemath.Lerp(camera.Position.Y, target.Y, config.Camera.FollowSmoothing)
}

// SnapCamera moves the camera onto the player without smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	components.Camera.Get(cameraEntry).Position = components.Object.Get(playerEntry).Center()
}

// cameraOffset returns the translation from world to screen space, or false
// if the scene has no camera yet.
func cameraOffset(e *ecs.ECS, width, height int) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	offset := components.Camera.Get(cameraEntry).Offset(width, height)
	return offset.X, offset.Y, true
}
