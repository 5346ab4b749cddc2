package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuExit
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption

	// Overlay fade-in, restarted every time the game is paused
	Fade  *gween.Tween
	Alpha float32
}

var Pause = donburi.NewComponentType[PauseData]()
