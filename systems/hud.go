package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/springfieldmeltdown/meltdown/components"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/springfieldmeltdown/meltdown/fonts"
	"github.com/springfieldmeltdown/meltdown/shared/gamemath"
	"github.com/springfieldmeltdown/meltdown/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DrawHUD prints the player position and frame rate in the top-left corner,
// plus a detail line when the debug overlay is on.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	pos := components.Object.Get(playerEntry).Center()

	face := fonts.Regular.Get()
	x := cfg.HUD.TextX
	y := cfg.HUD.TextY + face.Metrics().Ascent.Ceil() // text.Draw takes the baseline

	text.Draw(screen, statusLine(pos, ebiten.ActualFPS()), face, x, y, cfg.HUD.TextColor)

	if !GetOrCreateSettings(ecs).Debug {
		return
	}

	camX, camY, ok := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	hp := components.Health.Get(playerEntry)
	iso := isoProjection().WorldToScreen(pos, math.Vec2{X: camX, Y: camY})

	text.Draw(screen, debugLine(hp, player, iso), face, x, y+cfg.HUD.LineGap, cfg.HUD.TextColor)
}

func statusLine(pos math.Vec2, fps float64) string {
	return fmt.Sprintf("Pos: (%.1f, %.1f) | FPS: %.0f", pos.X, pos.Y, fps)
}

func debugLine(hp *components.HealthData, player *components.PlayerData, iso math.Vec2) string {
	wall := "no"
	if player.AgainstWall {
		wall = "yes"
	}
	return fmt.Sprintf("HP: %d/%d | Vel: (%.2f, %.2f) | Wall: %s | Iso: (%.0f, %.0f)",
		hp.Current, hp.Max, player.Velocity.X, player.Velocity.Y, wall, iso.X, iso.Y)
}

func isoProjection() gamemath.Projection {
	return gamemath.Projection{
		TileWidthHalf:  cfg.Iso.TileWidthHalf,
		TileHeightHalf: cfg.Iso.TileHeightHalf,
	}
}
