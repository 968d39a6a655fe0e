package system

import (
	"github.com/milk9111/climb/common"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
)

// CameraSystem eases the view so the body sits at mid-screen, lifting
// slowly and dropping quickly.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	tuning := single(w, component.TuningComponent.Kind())
	if tuning == nil {
		return
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		Follow(cam, p.body.Pos.Y, tuning)
	})
}

// Follow advances cam one frame toward centring y.
func Follow(cam *component.Camera, y float64, tuning *component.Tuning) {
	mid := tuning.ViewH * 0.5
	rel := y - cam.Y
	desired := y - mid
	switch {
	case rel < mid:
		cam.Y = common.Lerp(cam.Y, desired, tuning.LiftSpeed)
	case rel > mid:
		cam.Y = common.Lerp(cam.Y, desired, tuning.DropSpeed)
	}
}
