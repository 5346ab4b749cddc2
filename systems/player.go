package systems

import (
	"github.com/springfieldmeltdown/meltdown/components"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/springfieldmeltdown/meltdown/shared/gamemath"
	"github.com/springfieldmeltdown/meltdown/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer turns the held movement actions into a velocity and moves
// every player, keeping it inside the debug bounds.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := cfg.C.DeltaTime()

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		movePlayer(input, playerEntry, dt)
	})
}

func movePlayer(input *components.InputData, playerEntry *donburi.Entry, dt float64) {
	player := components.Player.Get(playerEntry)
	object := components.Object.Get(playerEntry)

	// Screen-space direction, equal perceived speed in every direction
	dx, dy := gamemath.Normalize(movementDirection(input))
	player.Velocity = math.Vec2{X: dx, Y: dy}

	pos := object.Center()
	x := pos.X + dx*player.Speed*dt
	y := pos.Y + dy*player.Speed*dt

	x, y = gamemath.ClampToRect(x, y, player.Radius,
		cfg.Bounds.MinX(), cfg.Bounds.MinY(), cfg.Bounds.MaxX(), cfg.Bounds.MaxY())
	object.SetCenter(x, y)

	player.AgainstWall = object.Space != nil && object.Check(dx, dy, tags.ResolvSolid) != nil
}

// movementDirection returns the raw, unnormalised direction. y grows downward.
func movementDirection(input *components.InputData) (x, y float64) {
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		y--
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		y++
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		x--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		x++
	}
	return x, y
}

// UpdateSpawnTween advances spawn-in scale tweens and drops finished ones.
func UpdateSpawnTween(ecs *ecs.ECS) {
	dt := float32(cfg.C.DeltaTime())

	components.SpawnTween.Each(ecs.World, func(e *donburi.Entry) {
		spawn := components.SpawnTween.Get(e)
		if spawn.Tween == nil {
			return
		}
		scale, finished := spawn.Tween.Update(dt)
		spawn.Scale = float64(scale)
		if finished {
			spawn.Scale = 1
			spawn.Tween = nil
		}
	})
}
