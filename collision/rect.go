package collision

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/common"
)

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no collision area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains is an inclusive point test.
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Pad grows the rectangle by d on every side.
func (r Rect) Pad(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Closest returns the point of r nearest to p.
func (r Rect) Closest(p cp.Vector) cp.Vector {
	return cp.Vector{
		X: common.Clamp(p.X, r.X, r.Right()),
		Y: common.Clamp(p.Y, r.Y, r.Bottom()),
	}
}

// BB converts to a chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.Right(), T: r.Bottom()}
}

// Overlaps reports whether r and o share area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}
