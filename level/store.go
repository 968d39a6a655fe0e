package level

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/common"
)

const DefaultGridUnit = 64

// Store owns the platforms of one level in insertion order. Iteration order
// is significant: latch evaluation takes the first match.
type Store struct {
	gridUnit  float64
	platforms []Platform
	space     *cp.Space
}

func NewStore(gridUnit float64) *Store {
	if gridUnit <= 0 {
		gridUnit = DefaultGridUnit
	}
	return &Store{gridUnit: gridUnit}
}

func (s *Store) GridUnit() float64 {
	return s.gridUnit
}

// Add snaps laneX (and the width, unless the kind opts out) to the grid and
// appends the platform. Right-aligned kinds are shifted so their right edge
// sits on the grid boundary. Hit height is clamped to the art height.
func (s *Store) Add(laneX, yTop, w, hit, art float64, ground bool, kind Kind) Platform {
	prof := kind.Profile()
	x := common.Snap(laneX, s.gridUnit)
	if prof.SnapWidth {
		w = common.Snap(w, s.gridUnit)
	}
	if prof.AlignRight {
		x += s.gridUnit - w
	}
	if hit < 0 {
		hit = 0
	}
	if hit > art {
		hit = art
	}

	p := Platform{
		X:         x,
		Y:         yTop,
		W:         w,
		HitH:      hit,
		ArtH:      art,
		Ground:    ground,
		Latchable: prof.Latchable,
		Kind:      kind,
	}
	s.platforms = append(s.platforms, p)
	if s.space != nil {
		addStaticBox(s.space, p)
	}
	return p
}

// AddRow places one platform per lane x on the row at y.
func (s *Store) AddRow(y float64, xs []float64, w, hit, art float64, kind Kind) {
	for _, x := range xs {
		s.Add(x, y, w, hit, art, false, kind)
	}
}

// AddSpaced spreads count platforms evenly across a lane of the given width.
func (s *Store) AddSpaced(y float64, count int, laneW, w, hit, art float64, kind Kind) {
	if count <= 0 {
		return
	}
	if count == 1 {
		s.Add(0, y, w, hit, art, false, kind)
		return
	}
	gap := (laneW - w) / float64(count-1)
	for i := 0; i < count; i++ {
		s.Add(float64(i)*gap, y, w, hit, art, false, kind)
	}
}

// Platforms returns the backing slice. Callers must not modify it.
func (s *Store) Platforms() []Platform {
	if s == nil {
		return nil
	}
	return s.platforms
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.platforms)
}

// Ground returns the first platform flagged as ground.
func (s *Store) Ground() (Platform, bool) {
	for _, p := range s.Platforms() {
		if p.Ground {
			return p, true
		}
	}
	return Platform{}, false
}

// InsideHit returns the first solid platform whose hit rectangle contains
// pt, edges included.
func (s *Store) InsideHit(pt cp.Vector) (Platform, bool) {
	for _, p := range s.Platforms() {
		if p.Solid() && p.Hit().Contains(pt) {
			return p, true
		}
	}
	return Platform{}, false
}

// FirstPadded returns the first solid platform whose hit rectangle, grown by
// tol on every side, contains pt.
func (s *Store) FirstPadded(pt cp.Vector, tol float64) (Platform, bool) {
	for _, p := range s.Platforms() {
		if p.Solid() && p.Hit().Pad(tol).Contains(pt) {
			return p, true
		}
	}
	return Platform{}, false
}

// OnEdge reports whether pt lies in the tol-wide band just inside the top,
// left or right edge of any solid platform. Bottom edges do not count, so
// corners are catchable from above and from the sides only.
func (s *Store) OnEdge(pt cp.Vector, tol float64) bool {
	for _, p := range s.Platforms() {
		if !p.Solid() {
			continue
		}
		r := p.Hit()
		inX := pt.X >= r.X && pt.X <= r.Right()
		inY := pt.Y >= r.Y && pt.Y <= r.Bottom()

		onTop := inX && pt.Y >= r.Y && pt.Y <= r.Y+tol
		onLeft := inY && pt.X >= r.X-tol && pt.X <= r.X+tol
		onRight := inY && pt.X >= r.Right()-tol && pt.X <= r.Right()+tol
		if onTop || onLeft || onRight {
			return true
		}
	}
	return false
}
