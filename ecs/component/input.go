package component

import "github.com/jakecoffman/cp"

// Action is a bit set of discrete commands raised this frame.
type Action uint32

const (
	ActionRespawn Action = 1 << iota
	ActionConfirm
	ActionDebugToggle
	ActionGrid
	ActionFreeMove
	ActionBrush
	ActionBrushPrev
	ActionBrushNext
	ActionBrushHalf
	ActionBrushSide
	ActionLongArm
	ActionHitboxes
	ActionTeleport
	ActionGravity
	ActionFriction
	ActionBounds
	ActionLanes
)

func (a Action) Has(b Action) bool {
	return a&b != 0
}

// Input stores per-frame pointer and command state.
type Input struct {
	// Pointer is in world space, Screen in window pixels.
	Pointer cp.Vector
	Screen  cp.Vector

	Pressed      bool
	JustPressed  bool
	JustReleased bool

	Actions Action
	// Move is the held arrow-key direction, each axis in {-1, 0, 1}.
	Move cp.Vector
}

var InputComponent = NewComponent[Input]()
