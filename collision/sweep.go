package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// SegmentRectTOI returns the normalized time in [0,1] at which a circle of the
// given radius moving from a to b first touches r. The test runs against r
// padded by radius on all sides, one slab per axis. A segment that starts
// inside the padded rectangle reports no hit.
func SegmentRectTOI(a, b cp.Vector, r Rect, radius float64) (float64, bool) {
	p := r.Pad(radius)
	d := b.Sub(a)

	enter := math.Inf(-1)
	exit := math.Inf(1)

	if !slab(a.X, d.X, p.X, p.Right(), &enter, &exit) {
		return 0, false
	}
	if !slab(a.Y, d.Y, p.Y, p.Bottom(), &enter, &exit) {
		return 0, false
	}

	if enter > exit {
		return 0, false
	}
	if enter < 0 || enter > 1 {
		return 0, false
	}
	return enter, true
}

func slab(origin, delta, lo, hi float64, enter, exit *float64) bool {
	if delta == 0 {
		return origin >= lo && origin <= hi
	}
	inv := 1.0 / delta
	t1 := (lo - origin) * inv
	t2 := (hi - origin) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	*enter = math.Max(*enter, t1)
	*exit = math.Min(*exit, t2)
	return true
}
