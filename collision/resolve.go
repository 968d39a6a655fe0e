package collision

import "github.com/jakecoffman/cp"

// Contact describes a discrete push-out.
type Contact struct {
	Push  cp.Vector
	Depth float64
	// Up is set when the correction moves the circle upward (a landing).
	Up bool
}

// ResolveCircleRect computes the correction that moves a circle centred at
// pos out of r. A centre touching or inside the rectangle is lifted straight
// up until it rests on the top face.
func ResolveCircleRect(pos cp.Vector, radius float64, r Rect) (Contact, bool) {
	if r.Empty() || radius <= 0 {
		return Contact{}, false
	}
	closest := r.Closest(pos)
	delta := pos.Sub(closest)
	d := delta.Length()
	if d >= radius {
		return Contact{}, false
	}

	if d == 0 {
		lift := pos.Y - (r.Y - radius)
		return Contact{Push: cp.Vector{X: 0, Y: -lift}, Depth: lift, Up: true}, true
	}

	overlap := radius - d
	push := delta.Mult(overlap / d)
	return Contact{Push: push, Depth: overlap, Up: push.Y < 0}, true
}
