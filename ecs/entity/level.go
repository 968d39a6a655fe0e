package entity

import (
	"fmt"

	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/level"
)

// DefaultLevel is the embedded cliff layout.
const DefaultLevel = "cliff.json"

// NewLevel loads the named embedded layout into the world.
func NewLevel(w *ecs.World, name string, gridUnit float64) (*level.Store, error) {
	if name == "" {
		name = DefaultLevel
	}
	store, err := level.Load(name, gridUnit)
	if err != nil {
		return nil, err
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelComponent.Kind(), &component.Level{Name: name, Store: store}); err != nil {
		return nil, fmt.Errorf("level: add level: %w", err)
	}
	return store, nil
}
