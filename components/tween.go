package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SpawnTweenData scales an entity in after it is created.
type SpawnTweenData struct {
	Tween *gween.Tween
	Scale float64
}

var SpawnTween = donburi.NewComponentType[SpawnTweenData]()
