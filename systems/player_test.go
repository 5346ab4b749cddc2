package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/springfieldmeltdown/meltdown/components"
	cfg "github.com/springfieldmeltdown/meltdown/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestPlayerStartsAtOrigin(t *testing.T) {
	_, player := newTestWorld(t)

	x, y := playerPos(player)
	assert.InDelta(t, 0, x, eps)
	assert.InDelta(t, 0, y, eps)

	data := components.Player.Get(player)
	assert.Equal(t, 300.0, data.Speed)
	assert.Equal(t, 16.0, data.Radius)
	assert.Zero(t, data.LastShotTime)
	assert.Zero(t, data.Velocity)

	hp := components.Health.Get(player)
	assert.Equal(t, 100, hp.Current)
	assert.Equal(t, 100, hp.Max)
}

func TestMovementDirections(t *testing.T) {
	perFrame := 300.0 / 60.0
	diag := perFrame / math.Sqrt2

	tests := []struct {
		name    string
		actions []cfg.ActionID
		wantX   float64
		wantY   float64
	}{
		{"idle", nil, 0, 0},
		{"up", []cfg.ActionID{cfg.ActionMoveUp}, 0, -perFrame},
		{"down", []cfg.ActionID{cfg.ActionMoveDown}, 0, perFrame},
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, -perFrame, 0},
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, perFrame, 0},
		{"up right", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveRight}, diag, -diag},
		{"down left", []cfg.ActionID{cfg.ActionMoveDown, cfg.ActionMoveLeft}, -diag, diag},
		{"up and down cancel", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveDown}, 0, 0},
		{"all four cancel", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveDown, cfg.ActionMoveLeft, cfg.ActionMoveRight}, 0, 0},
		{"three keys", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveLeft, cfg.ActionMoveRight}, 0, -perFrame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newTestWorld(t)

			step(e, tt.actions...)

			x, y := playerPos(player)
			assert.InDelta(t, tt.wantX, x, eps)
			assert.InDelta(t, tt.wantY, y, eps)
		})
	}
}

func TestDiagonalIsNotFaster(t *testing.T) {
	e, player := newTestWorld(t)
	step(e, cfg.ActionMoveDown, cfg.ActionMoveRight)

	x, y := playerPos(player)
	assert.InDelta(t, 5.0, math.Hypot(x, y), eps)

	v := components.Player.Get(player).Velocity
	assert.InDelta(t, 1.0, math.Hypot(v.X, v.Y), eps)
}

func TestVelocityIsResetWhenIdle(t *testing.T) {
	e, player := newTestWorld(t)

	step(e, cfg.ActionMoveLeft)
	assert.Equal(t, -1.0, components.Player.Get(player).Velocity.X)

	step(e)
	assert.Zero(t, components.Player.Get(player).Velocity)
}

func TestMovementIsFrameRateIndependent(t *testing.T) {
	e, player := newTestWorld(t)
	cfg.C.TPS = 30

	for i := 0; i < 15; i++ {
		step(e, cfg.ActionMoveRight)
	}

	x, _ := playerPos(player)
	assert.InDelta(t, 150.0, x, 1e-6, "half a second at 300 px/s")
}

func TestPlayerIsClampedToBounds(t *testing.T) {
	corners := []struct {
		name    string
		actions []cfg.ActionID
		wantX   float64
		wantY   float64
	}{
		{"top left", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveLeft}, -284, -184},
		{"top right", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveRight}, 284, -184},
		{"bottom left", []cfg.ActionID{cfg.ActionMoveDown, cfg.ActionMoveLeft}, -284, 184},
		{"bottom right", []cfg.ActionID{cfg.ActionMoveDown, cfg.ActionMoveRight}, 284, 184},
	}
	for _, tt := range corners {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newTestWorld(t)

			for i := 0; i < 600; i++ {
				step(e, tt.actions...)
			}

			x, y := playerPos(player)
			assert.InDelta(t, tt.wantX, x, eps)
			assert.InDelta(t, tt.wantY, y, eps)
		})
	}
}

func TestBoundsInvariantUnderRandomInput(t *testing.T) {
	e, player := newTestWorld(t)
	rng := rand.New(rand.NewPCG(7, 42))

	moves := []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveDown, cfg.ActionMoveLeft, cfg.ActionMoveRight}
	r := cfg.Player.Radius

	var held []cfg.ActionID
	for frame := 0; frame < 20000; frame++ {
		// Change the held keys every few frames so the player gets somewhere
		if frame%7 == 0 {
			held = held[:0]
			for _, m := range moves {
				if rng.IntN(2) == 0 {
					held = append(held, m)
				}
			}
		}
		step(e, held...)

		x, y := playerPos(player)
		require.GreaterOrEqual(t, x, cfg.Bounds.MinX()+r-eps, "frame %d", frame)
		require.LessOrEqual(t, x, cfg.Bounds.MaxX()-r+eps, "frame %d", frame)
		require.GreaterOrEqual(t, y, cfg.Bounds.MinY()+r-eps, "frame %d", frame)
		require.LessOrEqual(t, y, cfg.Bounds.MaxY()-r+eps, "frame %d", frame)
	}
}

func TestAgainstWall(t *testing.T) {
	e, player := newTestWorld(t)

	step(e)
	assert.False(t, components.Player.Get(player).AgainstWall, "origin is far from every wall")

	for i := 0; i < 120; i++ {
		step(e, cfg.ActionMoveRight)
	}
	assert.True(t, components.Player.Get(player).AgainstWall)

	for i := 0; i < 60; i++ {
		step(e, cfg.ActionMoveLeft)
	}
	assert.False(t, components.Player.Get(player).AgainstWall)
}

func TestSpawnTween(t *testing.T) {
	e, player := newTestWorld(t)

	spawn := components.SpawnTween.Get(player)
	require.NotNil(t, spawn.Tween)
	assert.Zero(t, spawn.Scale)

	step(e)
	assert.Greater(t, components.SpawnTween.Get(player).Scale, 0.0)

	for i := 0; i < 60; i++ {
		step(e)
	}
	spawn = components.SpawnTween.Get(player)
	assert.Nil(t, spawn.Tween)
	assert.Equal(t, 1.0, spawn.Scale)
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}

	input.Current[cfg.ActionPause] = true
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionPause))

	input.Previous = input.Current
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(input, cfg.ActionPause))

	input.Previous = input.Current
	input.Current[cfg.ActionPause] = false
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionPause))
}
