package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/physics"
)

// PhysicsSystem moves the body: a free step when loose, the rope
// constraint when latched.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	lvl := single(w, component.LevelComponent.Kind())
	tuning := single(w, component.TuningComponent.Kind())
	if lvl == nil || tuning == nil || endingTriggered(w) {
		return
	}

	if dbg := single(w, component.DebugComponent.Kind()); dbg != nil && dbg.Active && dbg.FreeMove {
		p.body.Vel = cp.Vector{}
		p.body.Pos = p.body.Pos.Add(p.input.Move.Mult(tuning.DebugMoveStep))
		return
	}

	if p.arm.Latched {
		p.arm.Swing(p.body, p.input.Pointer, p.input.Screen, p.input.Pressed, lvl.Store, tuning.Grapple, tuning.Physics)
		return
	}
	physics.Step(p.body, lvl.Store, tuning.Physics)
}
