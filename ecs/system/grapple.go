package system

import (
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
)

// GrappleSystem aims the arm at the pointer, latches on press and lets go
// on release.
type GrappleSystem struct{}

func NewGrappleSystem() *GrappleSystem {
	return &GrappleSystem{}
}

func (g *GrappleSystem) Update(w *ecs.World) {
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	lvl := single(w, component.LevelComponent.Kind())
	tuning := single(w, component.TuningComponent.Kind())
	if lvl == nil || tuning == nil || endingTriggered(w) || brushActive(w) {
		return
	}

	p.arm.Aim(p.body.Pos, p.input.Pointer, lvl.Store, tuning.Grapple)

	if p.input.JustPressed {
		res := p.arm.TryLatch(p.body, p.input.Screen, lvl.Store, tuning.Grapple)
		switch {
		case res.Latched:
			pushCue(w, component.CueGrass)
		case res.Rejected, res.Wall:
			pushCue(w, component.CueStone)
		}
	}

	if p.arm.Latched && (p.input.JustReleased || !p.input.Pressed) {
		p.arm.Release()
	}
}
