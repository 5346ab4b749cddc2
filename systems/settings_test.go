package systems

import (
	"testing"

	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestToggleDebug(t *testing.T) {
	e, _ := newTestWorld(t)
	assert.False(t, GetOrCreateSettings(e).Debug)

	step(e, cfg.ActionToggleDebug)
	assert.True(t, GetOrCreateSettings(e).Debug)

	// Holding the key does not toggle again
	step(e, cfg.ActionToggleDebug)
	assert.True(t, GetOrCreateSettings(e).Debug)

	step(e)
	step(e, cfg.ActionToggleDebug)
	assert.False(t, GetOrCreateSettings(e).Debug)
}

func TestDebugDefaultFromConfig(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	cfg.Debug.Overlay = true

	e := ecs.NewECS(donburi.NewWorld())
	assert.True(t, GetOrCreateSettings(e).Debug)
}

func TestQuit(t *testing.T) {
	e, _ := newTestWorld(t)
	assert.False(t, QuitRequested(e))

	step(e)
	assert.False(t, QuitRequested(e))

	step(e, cfg.ActionQuit)
	assert.True(t, QuitRequested(e))

	// Quitting is sticky
	step(e)
	assert.True(t, QuitRequested(e))
}

func TestQuitWhilePaused(t *testing.T) {
	e, _ := newTestWorld(t)

	step(e, cfg.ActionPause)
	step(e, cfg.ActionQuit)
	assert.True(t, QuitRequested(e))
}
