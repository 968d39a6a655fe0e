package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/level"
)

type Debug struct {
	Active   bool
	Grid     bool
	FreeMove bool
	Hitboxes bool
	Bounds   bool
	Lanes    bool
	LongArm  bool

	Brush      bool
	BrushKind  level.Kind
	BrushHalf  bool
	// BrushStart is the snapped press point of a stroke in progress.
	BrushStart *cp.Vector
	// Painted lists layout rows placed by the brush this session.
	Painted []string
}

var DebugComponent = NewComponent[Debug]()
