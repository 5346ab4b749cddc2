package systems

import (
	"testing"

	"github.com/springfieldmeltdown/meltdown/components"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/springfieldmeltdown/meltdown/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds the scene entities without the ebiten-polling input
// system, so tests drive InputData directly.
func newTestWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	w, h := cfg.Bounds.SpaceSize()
	factory.CreateSpace(e, w, h, 16, 16)
	factory.CreateBounds(e, cfg.Bounds)
	player := factory.CreatePlayer(e, 0, 0)
	factory.CreateCamera(e, 0, 0)
	return e, player
}

// press advances the input buffers by one frame with only the given
// actions held, mirroring what UpdateInput does with real devices.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

// step runs one gameplay tick with the given actions held.
func step(e *ecs.ECS, actions ...cfg.ActionID) {
	press(e, actions...)
	UpdateSettings(e)
	UpdatePause(e)
	WithPauseCheck(UpdatePlayer)(e)
	WithPauseCheck(UpdateSpawnTween)(e)
	WithPauseCheck(UpdateCamera)(e)
}

func playerPos(entry *donburi.Entry) (float64, float64) {
	c := components.Object.Get(entry).Center()
	return c.X, c.Y
}
