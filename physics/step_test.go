package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/collision"
	"github.com/milk9111/climb/level"
)

func newBody(x, y float64) *Body {
	return &Body{Pos: cp.Vector{X: x, Y: y}, R: 24}
}

func TestStepFastFallDoesNotTunnel(t *testing.T) {
	store := level.NewStore(64)
	store.Add(0, 100, 128, 16, 16, false, level.GrassySurfaceT)

	b := newBody(100, 50)
	b.Vel = cp.Vector{X: 0, Y: 80}
	Step(b, store, DefaultParams())

	if b.Bottom() > 100 {
		t.Fatalf("body bottom %v passed platform top 100", b.Bottom())
	}
	if b.Bottom() < 99 {
		t.Fatalf("body stopped too early at %v", b.Bottom())
	}
	if b.Vel.Y != 0 {
		t.Fatalf("expected vertical velocity zeroed, got %v", b.Vel.Y)
	}
}

func TestSweepPicksEarliestPlatform(t *testing.T) {
	store := level.NewStore(64)
	store.Add(0, 140, 128, 16, 16, false, level.GrassySurfaceT)
	store.Add(0, 100, 128, 16, 16, false, level.GrassySurfaceT)

	b := newBody(100, 50)
	b.Vel = cp.Vector{X: 0, Y: 120}
	if !Sweep(b, store, DefaultParams()) {
		t.Fatalf("expected sweep clamp")
	}
	if b.Bottom() > 100 {
		t.Fatalf("expected to stop above the upper platform, bottom %v", b.Bottom())
	}
}

func TestSweepSkipsDiagonalAndUpward(t *testing.T) {
	store := level.NewStore(64)
	store.Add(0, 100, 640, 16, 16, false, level.GrassySurfaceT)

	cases := []struct {
		name string
		vel  cp.Vector
	}{
		{"upward", cp.Vector{X: 0, Y: -80}},
		{"diagonal", cp.Vector{X: 90, Y: 80}},
		{"still", cp.Vector{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newBody(100, 50)
			b.Vel = c.vel
			if Sweep(b, store, DefaultParams()) {
				t.Fatalf("sweep should not run for %v", c.vel)
			}
		})
	}
}

func TestStepRestsOnGround(t *testing.T) {
	store := level.NewStore(64)
	store.Add(0, 400, 640, 100, 100, true, level.Grass16)

	b := newBody(96, 0)
	p := DefaultParams()
	for i := 0; i < 300; i++ {
		Step(b, store, p)
	}
	if math.Abs(b.Bottom()-400) > 1e-6 {
		t.Fatalf("expected to rest on ground, bottom %v", b.Bottom())
	}
}

func TestStepIgnoresDecoration(t *testing.T) {
	store := level.NewStore(64)
	store.Add(0, 100, 640, 0, 4096, false, level.GroundFill)

	b := newBody(96, 90)
	Step(b, store, DefaultParams())
	if b.Pos.Y <= 90 {
		t.Fatalf("decoration must not stop the body, y=%v", b.Pos.Y)
	}
}

func TestClampLane(t *testing.T) {
	p := DefaultParams()
	cases := []struct {
		name    string
		pos     cp.Vector
		vel     cp.Vector
		wantX   float64
		wantVel float64
	}{
		{"left_clamped", cp.Vector{X: 10}, cp.Vector{X: -5}, 24, 0},
		{"right_clamped", cp.Vector{X: 700}, cp.Vector{X: 4}, 616, 0},
		{"right_clamped_moving_back", cp.Vector{X: 700}, cp.Vector{X: -3}, 616, -3},
		{"inside_moving_left", cp.Vector{X: 300}, cp.Vector{X: -2}, 300, -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := &Body{Pos: c.pos, Vel: c.vel, R: 24}
			ClampLane(b, p)
			if b.Pos.X != c.wantX || b.Vel.X != c.wantVel {
				t.Fatalf("expected x=%v vx=%v, got x=%v vx=%v", c.wantX, c.wantVel, b.Pos.X, b.Vel.X)
			}
		})
	}
}

func TestResolveVelocityResponse(t *testing.T) {
	p := DefaultParams()
	r := collision.Rect{X: 0, Y: 100, W: 64, H: 32}

	cases := []struct {
		name    string
		pos     cp.Vector
		vel     cp.Vector
		latched bool
		want    cp.Vector
	}{
		{"land_free", cp.Vector{X: 32, Y: 80}, cp.Vector{X: 10, Y: 3}, false, cp.Vector{X: 3, Y: 0}},
		{"land_latched", cp.Vector{X: 32, Y: 80}, cp.Vector{X: 10, Y: 3}, true, cp.Vector{X: 10, Y: 0}},
		{"ceiling_free", cp.Vector{X: 32, Y: 150}, cp.Vector{X: 10, Y: -4}, false, cp.Vector{X: 8, Y: 0}},
		{"side_latched", cp.Vector{X: -20, Y: 116}, cp.Vector{X: 10, Y: 2}, true, cp.Vector{X: 9, Y: 1.8}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := &Body{Pos: c.pos, Vel: c.vel, R: 24}
			if !Resolve(b, r, p, c.latched) {
				t.Fatalf("expected contact")
			}
			if math.Abs(b.Vel.X-c.want.X) > 1e-9 || math.Abs(b.Vel.Y-c.want.Y) > 1e-9 {
				t.Fatalf("expected vel %v, got %v", c.want, b.Vel)
			}
		})
	}
}

func TestApplyAnchorConstraint(t *testing.T) {
	store := level.NewStore(64)
	p := DefaultParams()

	anchor := cp.Vector{X: 300, Y: 0}
	dir := cp.Vector{X: 0, Y: -1}
	b := newBody(250, 200)
	b.Vel = cp.Vector{X: 3, Y: 5}

	ApplyAnchorConstraint(b, anchor, dir, 100, store, p)

	if d := b.Pos.Distance(anchor); math.Abs(d-124) > 1e-6 {
		t.Fatalf("expected body 124 from anchor, got %v", d)
	}
	if radial := b.Vel.Dot(dir); math.Abs(radial) > 1e-9 {
		t.Fatalf("expected no radial velocity, got %v", radial)
	}
	if b.Vel.X != 3 {
		t.Fatalf("tangential velocity should survive, got %v", b.Vel.X)
	}
}

func TestApplyAnchorConstraintRespectsGeometry(t *testing.T) {
	store := level.NewStore(64)
	store.Add(256, 100, 128, 64, 64, false, level.StoneBlock)
	p := DefaultParams()

	anchor := cp.Vector{X: 320, Y: 0}
	dir := cp.Vector{X: 0, Y: -1}
	b := newBody(320, 60)

	// The target lies inside the block; the body must stop on top of it.
	ApplyAnchorConstraint(b, anchor, dir, 110, store, p)
	if b.Bottom() > 100+1e-9 {
		t.Fatalf("rope dragged body into block, bottom %v", b.Bottom())
	}
}
