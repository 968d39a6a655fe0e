package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/grapple"
	"github.com/milk9111/climb/physics"
)

// Tuning is the session-wide set of gameplay constants. Debug toggles and
// hot reload write to it in place.
type Tuning struct {
	Physics physics.Params
	Grapple grapple.Params

	Radius  float64
	BaseLen float64
	Palette []color.NRGBA
	Spawn   cp.Vector

	ViewW float64
	ViewH float64
	Scale float64

	LiftSpeed float64
	DropSpeed float64

	EndingPos cp.Vector
	EndingPad float64

	DebugLongArm  float64
	DebugTeleport cp.Vector
	DebugMoveStep float64
}

var TuningComponent = NewComponent[Tuning]()
