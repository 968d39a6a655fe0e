package system

import (
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/level"
)

// player gathers the components nearly every gameplay system touches.
type player struct {
	entity ecs.Entity
	body   *component.Body
	arm    *component.Arm
	input  *component.Input
}

func findPlayer(w *ecs.World) (player, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return player{}, false
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return player{}, false
	}
	arm, ok := ecs.Get(w, e, component.ArmComponent.Kind())
	if !ok {
		return player{}, false
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		input = &component.Input{}
	}
	return player{entity: e, body: body, arm: arm, input: input}, true
}

func single[T any](w *ecs.World, kind component.ComponentKind[T]) *T {
	_, v, ok := ecs.Single(w, kind)
	if !ok {
		return nil
	}
	return v
}

func levelStore(w *ecs.World) *level.Store {
	if lvl := single(w, component.LevelComponent.Kind()); lvl != nil {
		return lvl.Store
	}
	return nil
}

func pushCue(w *ecs.World, c component.Cue) {
	if q := single(w, component.CueQueueComponent.Kind()); q != nil {
		q.Push(c)
	}
}

func endingTriggered(w *ecs.World) bool {
	story := single(w, component.StoryComponent.Kind())
	return story != nil && story.Ending.Triggered
}

func brushActive(w *ecs.World) bool {
	dbg := single(w, component.DebugComponent.Kind())
	return dbg != nil && dbg.Active && dbg.Brush
}
