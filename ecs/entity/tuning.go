package entity

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/grapple"
	"github.com/milk9111/climb/level"
	"github.com/milk9111/climb/physics"
	"github.com/milk9111/climb/prefabs"
)

// TuningFromSpec converts the tuning prefab. The spawn rests on the ground
// platform of store, or on the bottom of the view when the level has none.
func TuningFromSpec(spec *prefabs.TuningSpec, store *level.Store) component.Tuning {
	ph := physics.DefaultParams()
	ph.Gravity = spec.Physics.Gravity
	ph.Friction = spec.Physics.Friction
	ph.InnerX = spec.World.InnerX
	ph.SweepEps = spec.Physics.SweepEps
	ph.SweepClamp = spec.Physics.SweepClamp
	ph.LandDampFree = spec.Physics.LandDampFree
	ph.LandDampLatched = spec.Physics.LandDampLatched
	ph.SideDampFree = spec.Physics.SideDampFree
	ph.SideDampLatched = spec.Physics.SideDampLatched
	ph.MaxStepFactor = spec.Physics.MaxStepFactor

	gp := grapple.Params{
		EdgeTol:     spec.Arm.EdgeTol,
		MinLen:      spec.Arm.MinLen,
		InnerX:      spec.World.InnerX,
		Sensitivity: spec.Arm.Sensitivity,
		Ease:        spec.Arm.Ease,
	}

	var palette []color.NRGBA
	for _, c := range spec.Arm.Palette {
		palette = append(palette, c.NRGBA())
	}

	groundY := spec.World.Height
	if store != nil {
		if g, ok := store.Ground(); ok {
			groundY = g.Y
		}
	}
	r := spec.Player.Radius

	return component.Tuning{
		Physics: ph,
		Grapple: gp,
		Radius:  r,
		BaseLen: spec.Arm.BaseLen,
		Palette: palette,
		Spawn: cp.Vector{
			X: spec.Player.SpawnLaneFrac * spec.World.InnerX,
			Y: groundY - r,
		},
		ViewW:         spec.World.Width,
		ViewH:         spec.World.Height,
		Scale:         spec.World.Scale,
		LiftSpeed:     spec.Camera.LiftSpeed,
		DropSpeed:     spec.Camera.DropSpeed,
		EndingPos:     cp.Vector{X: spec.Ending.X, Y: spec.Ending.Y},
		EndingPad:     spec.Ending.Pad,
		DebugLongArm:  spec.Debug.LongArm,
		DebugTeleport: cp.Vector{X: spec.Debug.TeleportX, Y: spec.Debug.TeleportY},
		DebugMoveStep: spec.Debug.MoveStep,
	}
}

// ApplyTuning copies a reloaded spec over dst, keeping the debug gravity and
// friction switches as they are.
func ApplyTuning(dst *component.Tuning, spec *prefabs.TuningSpec, store *level.Store) {
	gravityOn, frictionOn := dst.Physics.GravityOn, dst.Physics.FrictionOn
	*dst = TuningFromSpec(spec, store)
	dst.Physics.GravityOn = gravityOn
	dst.Physics.FrictionOn = frictionOn
}
