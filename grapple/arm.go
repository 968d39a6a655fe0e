package grapple

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/common"
	"github.com/milk9111/climb/level"
	"github.com/milk9111/climb/physics"
)

type Params struct {
	// EdgeTol is the catch forgiveness around platform edges. The aim ray
	// marches in steps of EdgeTol/2.
	EdgeTol     float64
	MinLen      float64
	InnerX      float64
	Sensitivity float64
	Ease        float64
}

func DefaultParams() Params {
	return Params{
		EdgeTol:     2,
		MinLen:      0,
		InnerX:      640,
		Sensitivity: 0.4,
		Ease:        0.25,
	}
}

func (p Params) step() float64 {
	if p.EdgeTol <= 0 {
		return 1
	}
	return p.EdgeTol * 0.5
}

// Arm is the grapple. Anchor is non-nil exactly when Latched.
type Arm struct {
	Reach Reach

	Angle float64
	Tip   cp.Vector
	// Candidate is where the arm would anchor this frame, if anywhere.
	Candidate *cp.Vector
	AtWall    bool

	Latched bool
	Anchor  *cp.Vector
	RopeLen float64

	Frozen        bool
	FreezePointer cp.Vector
}

func NewArm(base float64) *Arm {
	return &Arm{Reach: NewReach(base), RopeLen: base}
}

func (a *Arm) Dir() cp.Vector {
	return cp.ForAngle(a.Angle)
}

// Aim points the arm from pos toward pointer and ray-marches the tip up to
// the reach. The march stops short of the first platform or of the right
// wall.
func (a *Arm) Aim(pos, pointer cp.Vector, store *level.Store, p Params) {
	d := pointer.Sub(pos)
	a.Angle = math.Atan2(d.Y, d.X)
	a.Candidate = nil
	a.AtWall = false

	if a.Latched {
		a.Tip = *a.Anchor
		return
	}

	reach := common.Clamp(d.Length(), 0, a.Reach.Max)
	dir := a.Dir()
	step := p.step()
	stop := reach

	for n := 0.0; n < reach; n += step {
		probe := pos.Add(dir.Mult(n + step))
		if probe.X > p.InnerX {
			stop = n
			a.Candidate = &cp.Vector{X: p.InnerX, Y: probe.Y}
			a.AtWall = true
			break
		}
		if _, ok := store.InsideHit(probe); ok {
			stop = n
			if store.OnEdge(probe, p.EdgeTol) {
				c := probe
				a.Candidate = &c
			}
			break
		}
	}

	a.Tip = pos.Add(dir.Mult(stop))
}

// LatchResult reports what a latch attempt did.
type LatchResult struct {
	Latched  bool
	Rejected bool
	Wall     bool
	Platform level.Platform
}

// TryLatch anchors the arm at the current tip if the first platform whose
// tolerance-padded hit box holds the tip is latchable. It does nothing when
// already latched.
func (a *Arm) TryLatch(b *physics.Body, screen cp.Vector, store *level.Store, p Params) LatchResult {
	var res LatchResult
	if a.Latched {
		return res
	}

	tip := a.Tip
	if plat, ok := store.FirstPadded(tip, p.EdgeTol); ok {
		res.Platform = plat
		if !plat.Latchable {
			res.Rejected = true
		} else {
			anchor := tip
			a.Anchor = &anchor
			a.Latched = true
			a.RopeLen = common.Clamp(tip.Distance(b.Pos)-b.R, p.MinLen, a.Reach.Max)
			a.Frozen = true
			a.FreezePointer = screen
			res.Latched = true
		}
	}
	if !res.Latched && tip.X >= p.InnerX-p.EdgeTol {
		res.Wall = true
	}
	return res
}

// Release lets go. Safe to call when not latched.
func (a *Arm) Release() bool {
	was := a.Latched
	a.Latched = false
	a.Anchor = nil
	a.Frozen = false
	return was
}

// Thaw ends the post-latch freeze once the screen pointer has moved.
func (a *Arm) Thaw(screen cp.Vector) bool {
	if !a.Frozen || screen == a.FreezePointer {
		return false
	}
	a.Frozen = false
	return true
}

// Adjust eases the rope toward a length derived from the pointer while it
// is pressed. Dragging below the anchor maps through a joystick-like radius
// of Max*Sensitivity; other directions use the raw distance.
func (a *Arm) Adjust(b *physics.Body, pointer cp.Vector, pressed bool, p Params) {
	if !a.Latched || a.Frozen || !pressed {
		return
	}
	maxLen := a.Reach.Max
	d := pointer.Sub(*a.Anchor)
	raw := d.Length() - b.R

	var target float64
	if d.Y > 0 {
		radius := maxLen * p.Sensitivity
		norm := 1.0
		if radius > 0 {
			norm = common.Clamp(raw/radius, 0, 1)
		}
		target = norm * maxLen
	} else {
		target = common.Clamp(raw, p.MinLen, maxLen)
	}
	a.RopeLen += (target - a.RopeLen) * p.Ease
	a.clampRope(p)
}

// Swing runs one latched frame: thaw or adjust, then enforce the rope.
func (a *Arm) Swing(b *physics.Body, pointer, screen cp.Vector, pressed bool, store *level.Store, p Params, pp physics.Params) {
	if !a.Latched {
		return
	}
	if a.Frozen {
		a.Thaw(screen)
	} else {
		a.Adjust(b, pointer, pressed, p)
	}
	physics.ApplyAnchorConstraint(b, *a.Anchor, a.Dir(), a.RopeLen, store, pp)
}

// Grant grows the reach and keeps the rope inside it.
func (a *Arm) Grant(delta float64, p Params) bool {
	ok := a.Reach.Grant(delta)
	a.clampRope(p)
	return ok
}

// UnlockTo grows the reach to length if shorter.
func (a *Arm) UnlockTo(length float64, p Params) bool {
	ok := a.Reach.UnlockTo(length)
	a.clampRope(p)
	return ok
}

// Respawn releases and pays the rope out to the full reach.
func (a *Arm) Respawn() {
	a.Release()
	a.RopeLen = a.Reach.Max
}

// Reset returns the arm to its base reach.
func (a *Arm) Reset() {
	a.Reach.Reset()
	a.Respawn()
	a.Candidate = nil
	a.AtWall = false
}

func (a *Arm) clampRope(p Params) {
	a.RopeLen = common.Clamp(a.RopeLen, p.MinLen, a.Reach.Max)
}
