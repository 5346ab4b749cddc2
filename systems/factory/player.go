package factory

import (
	"github.com/springfieldmeltdown/meltdown/archetypes"
	"github.com/springfieldmeltdown/meltdown/components"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/springfieldmeltdown/meltdown/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (x, y) in world space.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	r := cfg.Player.Radius
	obj := components.NewWorldObject(x-r, y-r, 2*r, 2*r, "character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Speed:        cfg.Player.Speed,
		Radius:       r,
		LastShotTime: cfg.Player.LastShotTime,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	spawn := components.SpawnTweenData{Scale: 1}
	if cfg.Player.SpawnTweenSeconds > 0 {
		spawn.Scale = 0
		spawn.Tween = gween.New(0, 1, float32(cfg.Player.SpawnTweenSeconds), ease.OutBack)
	}
	components.SpawnTween.SetValue(player, spawn)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
