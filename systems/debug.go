package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/springfieldmeltdown/meltdown/components"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/springfieldmeltdown/meltdown/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY, ok := cameraOffset(ecs, width, height)
	if !ok {
		return // No camera yet
	}

	drawIsoGrid(screen, math.Vec2{X: camX, Y: camY})

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// Viewport in world coordinates
	viewX, viewY := -camX, -camY
	viewW, viewH := float64(width), float64(height)

	for _, obj := range space.Objects() {
		ox, oy, ow, oh := components.ObjectData{Object: obj}.WorldRect()

		// Cull objects outside viewport
		if ox+ow < viewX || ox > viewX+viewW || oy+oh < viewY || oy > viewY+viewH {
			continue
		}

		x := ox + camX
		y := oy + camY

		c := debugColor(obj.HasTags(tags.ResolvSolid), obj.HasTags(tags.ResolvPlayer), nearWall(obj))

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(ow), 1, c, false)      // Top
		vector.FillRect(screen, float32(x), float32(y+oh-1), float32(ow), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(oh), c, false)      // Left
		vector.FillRect(screen, float32(x+ow-1), float32(y), 1, float32(oh), c, false) // Right
	}
}

func debugColor(solid, player, againstWall bool) color.RGBA {
	switch {
	case solid:
		return cfg.Grey
	case player && againstWall:
		return cfg.Magenta
	case player:
		return cfg.Blue
	}
	return cfg.Cyan
}

func nearWall(obj *resolv.Object) bool {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.HasComponent(components.Player) {
		return false
	}
	return components.Player.Get(entry).AgainstWall
}

// drawIsoGrid draws the isometric tile lattice around the world origin. It
// is the only place the projection reaches the screen.
func drawIsoGrid(screen *ebiten.Image, offset math.Vec2) {
	for _, seg := range isoGridSegments(cfg.Iso.GridRadius, offset) {
		vector.StrokeLine(screen,
			float32(seg[0].X), float32(seg[0].Y),
			float32(seg[1].X), float32(seg[1].Y),
			1, cfg.Iso.GridColor, false)
	}
}

// isoGridSegments returns the projected end points of every grid line for
// tile coordinates in [-radius, radius].
func isoGridSegments(radius int, offset math.Vec2) [][2]math.Vec2 {
	if radius <= 0 {
		return nil
	}
	proj := isoProjection()
	r := float64(radius)
	segments := make([][2]math.Vec2, 0, 2*(2*radius+1))

	for i := -radius; i <= radius; i++ {
		k := float64(i)
		segments = append(segments,
			[2]math.Vec2{
				proj.WorldToScreen(math.Vec2{X: k, Y: -r}, offset),
				proj.WorldToScreen(math.Vec2{X: k, Y: r}, offset),
			},
			[2]math.Vec2{
				proj.WorldToScreen(math.Vec2{X: -r, Y: k}, offset),
				proj.WorldToScreen(math.Vec2{X: r, Y: k}, offset),
			},
		)
	}
	return segments
}
