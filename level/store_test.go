package level

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/climb/levels"
)

func TestStoreAddSnapsAndAligns(t *testing.T) {
	cases := []struct {
		name          string
		laneX, w, hit float64
		art           float64
		kind          Kind
		wantX, wantW  float64
		wantHit       float64
		wantLatchable bool
	}{
		{"tiny_grass_snaps", 500, 70, 32, 32, TinyGrass, 512, 64, 32, true},
		{"stone_not_latchable", 448, 64, 64, 64, StoneBlock, 448, 64, 64, false},
		{"surface_left_keeps_width", 384, 16, 32, 32, GrassySurfaceL, 384, 16, 32, true},
		{"surface_right_aligned", 576, 16, 32, 32, GrassySurfaceR, 624, 16, 32, true},
		{"top_right_aligned", 320, 32, 16, 16, GrassySurfaceTR, 352, 32, 16, true},
		{"hit_clamped_to_art", 0, 64, 64, 32, TinyGrass, 0, 64, 32, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStore(64)
			p := s.Add(c.laneX, -100, c.w, c.hit, c.art, false, c.kind)
			if p.X != c.wantX || p.W != c.wantW {
				t.Fatalf("expected x=%v w=%v, got x=%v w=%v", c.wantX, c.wantW, p.X, p.W)
			}
			if p.HitH != c.wantHit {
				t.Fatalf("expected hit %v, got %v", c.wantHit, p.HitH)
			}
			if p.HitH > p.ArtH {
				t.Fatalf("hit %v exceeds art %v", p.HitH, p.ArtH)
			}
			if p.Latchable != c.wantLatchable {
				t.Fatalf("expected latchable=%v, got %v", c.wantLatchable, p.Latchable)
			}
		})
	}
}

func TestStoreQueries(t *testing.T) {
	s := NewStore(64)
	s.Add(0, 0, 64, 32, 32, false, TinyGrass)
	s.Add(128, 0, 64, 0, 64, false, GroundFill)

	cases := []struct {
		name   string
		pt     cp.Vector
		inside bool
		onEdge bool
		padded bool
	}{
		{"center", cp.Vector{X: 32, Y: 16}, true, false, true},
		{"top_band", cp.Vector{X: 32, Y: 1}, true, true, true},
		{"left_band", cp.Vector{X: 1, Y: 20}, true, true, true},
		{"right_band", cp.Vector{X: 63, Y: 20}, true, true, true},
		{"bottom_band_not_edge", cp.Vector{X: 32, Y: 31}, true, false, true},
		{"just_above", cp.Vector{X: 32, Y: -1}, false, false, true},
		{"outside", cp.Vector{X: 32, Y: -10}, false, false, false},
		{"decoration_ignored", cp.Vector{X: 150, Y: 0}, false, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, ok := s.InsideHit(c.pt); ok != c.inside {
				t.Fatalf("InsideHit: expected %v, got %v", c.inside, ok)
			}
			if ok := s.OnEdge(c.pt, 2); ok != c.onEdge {
				t.Fatalf("OnEdge: expected %v, got %v", c.onEdge, ok)
			}
			if _, ok := s.FirstPadded(c.pt, 2); ok != c.padded {
				t.Fatalf("FirstPadded: expected %v, got %v", c.padded, ok)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("round trip %v: got %v err=%v", k, got, err)
		}
	}
	if _, err := ParseKind("lava"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestLoadEmbeddedCliff(t *testing.T) {
	s, err := Load("cliff.json", 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Len() < 100 {
		t.Fatalf("expected full layout, got %d platforms", s.Len())
	}
	ground, ok := s.Ground()
	if !ok {
		t.Fatalf("expected a ground platform")
	}
	if ground.Y != 400 || ground.W != 640 {
		t.Fatalf("unexpected ground %+v", ground)
	}
	for i, p := range s.Platforms() {
		if p.HitH > p.ArtH {
			t.Fatalf("platform %d: hit %v exceeds art %v", i, p.HitH, p.ArtH)
		}
	}
	if s.Space() == nil {
		t.Fatalf("expected debug space")
	}
}

func TestAddSpaced(t *testing.T) {
	s := NewStore(64)
	s.AddSpaced(0, 3, 640, 64, 32, 32, TinyGrass)
	ps := s.Platforms()
	if len(ps) != 3 {
		t.Fatalf("expected 3 platforms, got %d", len(ps))
	}
	if ps[0].X != 0 || ps[2].X != 576 {
		t.Fatalf("unexpected spread %v .. %v", ps[0].X, ps[2].X)
	}
}

func TestKindMirror(t *testing.T) {
	cases := []struct {
		in   Kind
		want Kind
		ok   bool
	}{
		{GrassySurfaceT, GrassySurfaceTR, true},
		{GrassySurfaceTR, GrassySurfaceT, true},
		{GrassySurfaceB, GrassySurfaceBR, true},
		{GrassySurfaceL, GrassySurfaceL, false},
		{TinyGrass, TinyGrass, false},
	}
	for _, c := range cases {
		t.Run(c.in.String(), func(t *testing.T) {
			got, ok := c.in.Mirror()
			if got != c.want || ok != c.ok {
				t.Fatalf("Mirror(%s) = %s,%v want %s,%v", c.in, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestBuildGridUnit(t *testing.T) {
	cases := []struct {
		name     string
		layout   float64
		fallback float64
		want     float64
	}{
		{"layout_wins", 32, 48, 32},
		{"fallback", 0, 48, 48},
		{"default", 0, 0, DefaultGridUnit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Build(&levels.Layout{Name: "grid", GridUnit: c.layout}, c.fallback)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got := s.GridUnit(); got != c.want {
				t.Fatalf("expected grid unit %v, got %v", c.want, got)
			}
		})
	}
}
