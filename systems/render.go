package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/springfieldmeltdown/meltdown/components"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBounds strokes the debug box the player is clamped to. The box lives
// in world space, so it moves with the camera.
func DrawBounds(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY, ok := cameraOffset(ecs, width, height)
	if !ok {
		return // No camera yet
	}

	vector.StrokeRect(screen,
		float32(cfg.Bounds.MinX()+camX), float32(cfg.Bounds.MinY()+camY),
		float32(cfg.Bounds.Width), float32(cfg.Bounds.Height),
		cfg.Bounds.StrokeWidth, cfg.Bounds.Color, false)
}

// DrawPlayers renders every player as a filled circle.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY, ok := cameraOffset(ecs, width, height)
	if !ok {
		return // No camera yet
	}

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		center := components.Object.Get(e).Center()

		radius := player.Radius
		if e.HasComponent(components.SpawnTween) {
			radius *= components.SpawnTween.Get(e).Scale
		}
		if radius <= 0 {
			return
		}

		vector.FillCircle(screen,
			float32(center.X+camX), float32(center.Y+camY),
			float32(radius), cfg.Player.Color, true)
	})
}
