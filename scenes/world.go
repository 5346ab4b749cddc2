package scenes

import (
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/springfieldmeltdown/meltdown/components"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/springfieldmeltdown/meltdown/systems"
	"github.com/springfieldmeltdown/meltdown/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collision grid cell size in pixels
const cellSize = 16

// WorldScene is the prototype's only scene: one player inside the debug box.
type WorldScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.QuitRequested(ws.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSpawnTween))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawBounds)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs
	populate(ws.ecs)
}

// populate creates the scene's entities. Split out from configure so the
// world can be built without registering ebiten-driven systems.
func populate(e *ecs.ECS) {
	spaceW, spaceH := cfg.Bounds.SpaceSize()
	factory.CreateSpace(e, spaceW, spaceH, cellSize, cellSize)

	factory.CreateBounds(e, cfg.Bounds)

	// The player starts at the world origin; the camera puts it at the screen centre
	player := factory.CreatePlayer(e, 0, 0)
	factory.CreateCamera(e, 0, 0)
	systems.SnapCamera(e)

	// Singletons read by the first update
	systems.GetOrCreateSettings(e)
	systems.GetOrCreatePause(e)

	pos := components.Object.Get(player).Center()
	log.Debug("world scene configured",
		"player", pos,
		"bounds", [2]float64{cfg.Bounds.Width, cfg.Bounds.Height},
		"debug", cfg.Debug.Overlay)
}
