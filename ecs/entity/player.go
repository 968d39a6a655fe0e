package entity

import (
	"fmt"

	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/grapple"
)

// NewPlayer creates the circle at the spawn point with a fresh arm.
func NewPlayer(w *ecs.World, tuning *component.Tuning) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	body := &component.Body{R: tuning.Radius}
	body.Place(tuning.Spawn)
	if err := ecs.Add(w, player, component.BodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}

	arm := grapple.NewArm(tuning.BaseLen)
	arm.Reach.Palette = tuning.Palette
	arm.Tip = tuning.Spawn
	if err := ecs.Add(w, player, component.ArmComponent.Kind(), arm); err != nil {
		return 0, fmt.Errorf("player: add arm: %w", err)
	}

	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{
		Pointer: tuning.Spawn,
	}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	return player, nil
}
