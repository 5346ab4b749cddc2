package systems

import (
	"testing"

	"github.com/springfieldmeltdown/meltdown/components"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		pos  math.Vec2
		fps  float64
		want string
	}{
		{math.Vec2{}, 60, "Pos: (0.0, 0.0) | FPS: 60"},
		{math.Vec2{X: 12.34, Y: -3}, 59.7, "Pos: (12.3, -3.0) | FPS: 60"},
		{math.Vec2{X: 284, Y: 184}, 0, "Pos: (284.0, 184.0) | FPS: 0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusLine(tt.pos, tt.fps))
	}
}

func TestDebugLine(t *testing.T) {
	hp := &components.HealthData{Current: 100, Max: 100}
	player := &components.PlayerData{Velocity: math.Vec2{X: 1}, AgainstWall: true}

	assert.Equal(t,
		"HP: 100/100 | Vel: (1.00, 0.00) | Wall: yes | Iso: (400, 300)",
		debugLine(hp, player, math.Vec2{X: 400, Y: 300}))

	player.AgainstWall = false
	player.Velocity = math.Vec2{}
	assert.Equal(t,
		"HP: 100/100 | Vel: (0.00, 0.00) | Wall: no | Iso: (-16, 8)",
		debugLine(hp, player, math.Vec2{X: -16, Y: 8}))
}
