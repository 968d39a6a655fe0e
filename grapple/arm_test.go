package grapple

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/level"
	"github.com/milk9111/climb/physics"
)

func grassStore() *level.Store {
	s := level.NewStore(64)
	s.Add(192, 200, 64, 32, 32, false, level.TinyGrass)
	s.Add(448, 200, 64, 64, 64, false, level.StoneBlock)
	return s
}

func body(x, y float64) *physics.Body {
	return &physics.Body{Pos: cp.Vector{X: x, Y: y}, R: 24}
}

func TestAimStopsShortOfPlatform(t *testing.T) {
	store := grassStore()
	arm := NewArm(120)
	b := body(224, 160)

	arm.Aim(b.Pos, cp.Vector{X: 224, Y: 260}, store, DefaultParams())

	if arm.Tip != (cp.Vector{X: 224, Y: 199}) {
		t.Fatalf("expected tip (224,199), got %v", arm.Tip)
	}
	if arm.Candidate == nil || *arm.Candidate != (cp.Vector{X: 224, Y: 200}) {
		t.Fatalf("expected top-edge candidate, got %v", arm.Candidate)
	}
}

func TestAimClampsToReach(t *testing.T) {
	arm := NewArm(120)
	b := body(100, 0)
	arm.Aim(b.Pos, cp.Vector{X: 100, Y: -500}, level.NewStore(64), DefaultParams())
	if d := arm.Tip.Distance(b.Pos); math.Abs(d-120) > 1e-9 {
		t.Fatalf("expected tip at full reach, got %v", d)
	}
	if arm.Candidate != nil {
		t.Fatalf("expected no candidate in open air")
	}
}

func TestTryLatch(t *testing.T) {
	p := DefaultParams()
	cases := []struct {
		name         string
		pos, pointer cp.Vector
		wantLatched  bool
		wantRejected bool
		wantWall     bool
		wantRope     float64
	}{
		{"grass_from_above", cp.Vector{X: 224, Y: 160}, cp.Vector{X: 224, Y: 260}, true, false, false, 15},
		{"stone_rejected", cp.Vector{X: 480, Y: 160}, cp.Vector{X: 480, Y: 260}, false, true, false, 0},
		{"wall_rejected", cp.Vector{X: 600, Y: 100}, cp.Vector{X: 700, Y: 100}, false, false, true, 0},
		{"open_air", cp.Vector{X: 100, Y: 0}, cp.Vector{X: 100, Y: -50}, false, false, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := grassStore()
			arm := NewArm(120)
			b := body(c.pos.X, c.pos.Y)
			arm.Aim(b.Pos, c.pointer, store, p)
			res := arm.TryLatch(b, cp.Vector{X: 1, Y: 2}, store, p)

			if res.Latched != c.wantLatched || res.Rejected != c.wantRejected || res.Wall != c.wantWall {
				t.Fatalf("unexpected result %+v", res)
			}
			if arm.Latched != (arm.Anchor != nil) {
				t.Fatalf("anchor must be set iff latched")
			}
			if c.wantLatched {
				if math.Abs(arm.RopeLen-c.wantRope) > 1e-9 {
					t.Fatalf("expected rope %v, got %v", c.wantRope, arm.RopeLen)
				}
				if *arm.Anchor != arm.Tip {
					t.Fatalf("anchor %v should equal tip %v", *arm.Anchor, arm.Tip)
				}
				if !arm.Frozen {
					t.Fatalf("expected freeze after latch")
				}
			}
		})
	}
}

func TestLatchReleaseIdempotence(t *testing.T) {
	p := DefaultParams()
	store := grassStore()
	arm := NewArm(120)
	b := body(224, 160)

	if arm.Release() {
		t.Fatalf("release while free should report no change")
	}
	if arm.Latched || arm.Anchor != nil || arm.Frozen {
		t.Fatalf("release while free changed state")
	}

	arm.Aim(b.Pos, cp.Vector{X: 224, Y: 260}, store, p)
	if !arm.TryLatch(b, cp.Vector{}, store, p).Latched {
		t.Fatalf("expected latch")
	}
	anchor := *arm.Anchor

	// Aim elsewhere and try again: the anchor must not move.
	arm.Aim(b.Pos, cp.Vector{X: 480, Y: 260}, store, p)
	if res := arm.TryLatch(b, cp.Vector{}, store, p); res.Latched || res.Rejected {
		t.Fatalf("TryLatch while latched should be a no-op, got %+v", res)
	}
	if *arm.Anchor != anchor {
		t.Fatalf("anchor moved from %v to %v", anchor, *arm.Anchor)
	}
	if arm.Tip != anchor {
		t.Fatalf("latched tip should be the anchor")
	}

	if !arm.Release() {
		t.Fatalf("expected release to report a change")
	}
	if arm.Latched || arm.Anchor != nil || arm.Frozen {
		t.Fatalf("release left latch state behind")
	}
}

func TestFreezeAndAdjust(t *testing.T) {
	p := DefaultParams()
	store := grassStore()
	arm := NewArm(120)
	b := body(224, 160)
	screen := cp.Vector{X: 10, Y: 10}

	arm.Aim(b.Pos, cp.Vector{X: 224, Y: 260}, store, p)
	arm.TryLatch(b, screen, store, p)

	below := cp.Vector{X: 224, Y: 199 + 24 + 24}
	arm.Adjust(b, below, true, p)
	if arm.RopeLen != 15 {
		t.Fatalf("frozen arm must not adjust, rope %v", arm.RopeLen)
	}
	if arm.Thaw(screen) {
		t.Fatalf("unchanged pointer must not thaw")
	}
	if !arm.Thaw(cp.Vector{X: 11, Y: 10}) {
		t.Fatalf("moved pointer should thaw")
	}

	// Downward drag: raw 24 over a 48px radius maps to half of 120.
	arm.Adjust(b, below, true, p)
	if math.Abs(arm.RopeLen-(15+(60-15)*0.25)) > 1e-9 {
		t.Fatalf("unexpected eased rope %v", arm.RopeLen)
	}

	// Not pressed: unchanged.
	before := arm.RopeLen
	arm.Adjust(b, cp.Vector{X: 0, Y: 0}, false, p)
	if arm.RopeLen != before {
		t.Fatalf("release of pointer changed rope")
	}

	// Upward drag far away clamps to Max.
	for i := 0; i < 100; i++ {
		arm.Adjust(b, cp.Vector{X: 224, Y: -1000}, true, p)
	}
	if math.Abs(arm.RopeLen-120) > 1e-6 {
		t.Fatalf("expected rope to approach max, got %v", arm.RopeLen)
	}
}

func TestReachMonotonic(t *testing.T) {
	p := DefaultParams()
	store := grassStore()
	arm := NewArm(120)
	b := body(224, 160)
	arm.Aim(b.Pos, cp.Vector{X: 224, Y: 260}, store, p)
	arm.TryLatch(b, cp.Vector{}, store, p)
	arm.Thaw(cp.Vector{X: 1})

	ops := []func(){
		func() { arm.Grant(18, p) },
		func() { arm.Grant(-5, p) },
		func() { arm.UnlockTo(100, p) },
		func() { arm.Grant(0, p) },
		func() { arm.UnlockTo(174, p) },
		func() { arm.UnlockTo(174, p) },
		func() { arm.Grant(14, p) },
	}
	pointers := []cp.Vector{{X: 224, Y: 400}, {X: 0, Y: 0}, {X: 224, Y: 201}, {X: 900, Y: -900}}

	last := arm.Reach.Max
	for i, op := range ops {
		op()
		if arm.Reach.Max < last {
			t.Fatalf("op %d: max decreased from %v to %v", i, last, arm.Reach.Max)
		}
		last = arm.Reach.Max
		for _, ptr := range pointers {
			arm.Swing(b, ptr, ptr, true, store, p, physics.DefaultParams())
			if arm.RopeLen < 0 || arm.RopeLen > arm.Reach.Max {
				t.Fatalf("op %d: rope %v outside [0,%v]", i, arm.RopeLen, arm.Reach.Max)
			}
		}
	}
	if arm.Reach.Max != 188 {
		t.Fatalf("expected max 188, got %v", arm.Reach.Max)
	}
	var sum float64
	for _, s := range arm.Reach.Segments {
		sum += s.Len
	}
	if arm.Reach.Total != 120+sum {
		t.Fatalf("segments %v do not add up to total %v", sum, arm.Reach.Total)
	}
	if arm.Reach.Segments[0].Len != 14 {
		t.Fatalf("newest segment should be first")
	}
}

func TestSwingHoldsRope(t *testing.T) {
	p := DefaultParams()
	store := level.NewStore(64)
	store.Add(256, 0, 64, 32, 32, false, level.TinyGrass)
	arm := NewArm(120)
	b := body(288, 100)

	arm.Aim(b.Pos, cp.Vector{X: 288, Y: -50}, store, p)
	if !arm.TryLatch(b, cp.Vector{}, store, p).Latched {
		t.Fatalf("expected latch on underside")
	}
	b.Vel = cp.Vector{X: 2, Y: 3}
	pointer := cp.Vector{X: 288, Y: -50}
	arm.Aim(b.Pos, pointer, store, p)
	arm.Swing(b, pointer, cp.Vector{}, false, store, p, physics.DefaultParams())

	if d := b.Pos.Distance(*arm.Anchor); math.Abs(d-(arm.RopeLen+b.R)) > 1e-6 {
		t.Fatalf("expected distance %v, got %v", arm.RopeLen+b.R, d)
	}
	if r := b.Vel.Dot(arm.Dir()); math.Abs(r) > 1e-9 {
		t.Fatalf("radial velocity left: %v", r)
	}
}
