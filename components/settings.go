package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles that are not part of the tuning file.
type SettingsData struct {
	Debug bool // debug overlay visible
	Quit  bool // set once a quit was requested, read by the scene
}

var Settings = donburi.NewComponentType[SettingsData]()
