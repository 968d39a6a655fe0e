package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/collision"
	"github.com/milk9111/climb/level"
)

// Step advances a free body by one frame: integrate, guard against
// tunnelling through platform tops, then settle in bounded sub-steps.
func Step(b *Body, store *level.Store, p Params) {
	Integrate(b, p)
	Sweep(b, store, p)
	Settle(b, store, p, false)
}

func Integrate(b *Body, p Params) {
	if p.GravityOn {
		b.Vel.Y += p.Gravity
	}
	if p.FrictionOn {
		b.Vel = b.Vel.Mult(p.Friction)
	}
}

// Sweep stops a predominantly downward move at the earliest platform top it
// would cross this frame. It reports whether the body was clamped.
func Sweep(b *Body, store *level.Store, p Params) bool {
	old := b.Pos
	next := old.Add(b.Vel)
	mv := next.Sub(old)
	if mv.Y <= 0 || math.Abs(mv.Y) <= math.Abs(mv.X) {
		return false
	}

	oldBottom := old.Y + b.R
	nextBottom := next.Y + b.R
	best := math.Inf(1)
	for _, plat := range store.Platforms() {
		if !plat.Solid() {
			continue
		}
		if oldBottom > plat.Y || nextBottom < plat.Y {
			continue
		}
		if next.X < plat.X || next.X > plat.X+plat.W {
			continue
		}
		toi, ok := collision.SegmentRectTOI(old, next, plat.Hit(), b.R)
		if !ok || toi <= p.SweepEps || toi >= 1 {
			continue
		}
		best = math.Min(best, toi)
	}
	if math.IsInf(best, 1) {
		return false
	}

	b.Pos = old.Lerp(next, best*p.SweepClamp)
	b.Vel.Y = 0
	return true
}

// Settle moves the body by its velocity in sub-steps of at most half its
// radius, resolving platforms and the lane after each one.
func Settle(b *Body, store *level.Store, p Params, latched bool) {
	steps := int(math.Ceil(b.Vel.Length() / p.maxStep(b.R)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		b.Pos = b.Pos.Add(b.Vel.Mult(1 / float64(steps)))
		ResolvePlatforms(b, store, p, latched)
		ClampLane(b, p)
	}
}

// ResolvePlatforms pushes the body out of every solid platform in order.
// Overlaps with several platforms are relaxed pairwise and may not fully
// converge in narrow gaps.
func ResolvePlatforms(b *Body, store *level.Store, p Params, latched bool) {
	for _, plat := range store.Platforms() {
		if !plat.Solid() {
			continue
		}
		Resolve(b, plat.Hit(), p, latched)
	}
}

// Resolve applies one circle-vs-rect push-out and its velocity response.
func Resolve(b *Body, r collision.Rect, p Params, latched bool) bool {
	c, ok := collision.ResolveCircleRect(b.Pos, b.R, r)
	if !ok {
		return false
	}
	b.Pos = b.Pos.Add(c.Push)

	if c.Up {
		b.Vel.Y = 0
		if latched {
			b.Vel.X *= p.LandDampLatched
		} else {
			b.Vel.X *= p.LandDampFree
		}
		return true
	}

	if b.Vel.Y < 0 {
		b.Vel.Y = 0
	}
	if latched {
		b.Vel = b.Vel.Mult(p.SideDampLatched)
	} else {
		b.Vel.X *= p.SideDampFree
	}
	return true
}

// ClampLane keeps the body inside [R, InnerX-R] and stops sliding into the
// side it was clamped against.
func ClampLane(b *Body, p Params) {
	left := b.R
	right := p.InnerX - b.R
	switch {
	case b.Pos.X < left:
		b.Pos.X = left
		if b.Vel.X < 0 {
			b.Vel.X = 0
		}
	case b.Pos.X > right:
		b.Pos.X = right
		if b.Vel.X > 0 {
			b.Vel.X = 0
		}
	}
}

// CollideWall pushes the body back out of the right-hand wall.
func CollideWall(b *Body, p Params) {
	over := b.Pos.X + b.R - p.InnerX
	if over <= 0 {
		return
	}
	b.Pos.X -= over
	if b.Vel.X > 0 {
		b.Vel.X = 0
	}
}

// ApplyAnchorConstraint holds the body ropeLen+R away from anchor along
// -dir. The body is walked to its target in bounded sub-steps so the rope
// never drags it through geometry; afterwards the velocity component along
// the rope is removed.
func ApplyAnchorConstraint(b *Body, anchor, dir cp.Vector, ropeLen float64, store *level.Store, p Params) {
	target := anchor.Sub(dir.Mult(ropeLen + b.R))
	correction := target.Sub(b.Pos)
	if mag := correction.Length(); mag > 0 {
		steps := int(math.Ceil(mag / p.maxStep(b.R)))
		sub := correction.Mult(1 / float64(steps))
		for i := 0; i < steps; i++ {
			b.Pos = b.Pos.Add(sub)
			ResolvePlatforms(b, store, p, true)
			ClampLane(b, p)
			CollideWall(b, p)
		}
	}

	radial := b.Vel.Dot(dir)
	b.Vel = b.Vel.Sub(dir.Mult(radial))
}
