package systems

import (
	"github.com/charmbracelet/log"
	"github.com/springfieldmeltdown/meltdown/components"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the global hotkeys: debug overlay toggle and quit.
// Runs while paused.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		log.Debug("debug overlay toggled", "enabled", settings.Debug)
	}

	if GetAction(input, cfg.ActionQuit).JustPressed {
		RequestQuit(ecs, "escape")
	}
}

// RequestQuit marks the scene as finished; the game returns
// ebiten.Termination on its next update.
func RequestQuit(ecs *ecs.ECS, reason string) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Quit {
		log.Info("quit requested", "reason", reason)
	}
	settings.Quit = true
}

// QuitRequested reports whether a system asked the game to exit.
func QuitRequested(ecs *ecs.ECS) bool {
	return GetOrCreateSettings(ecs).Quit
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.Overlay,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
