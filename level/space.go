package level

import "github.com/jakecoffman/cp"

// Space returns a static chipmunk space mirroring the solid platforms for the
// hitbox overlay. Once built it is kept in sync with Add.
func (s *Store) Space() *cp.Space {
	if s.space != nil {
		return s.space
	}
	s.space = cp.NewSpace()
	for _, p := range s.platforms {
		addStaticBox(s.space, p)
	}
	return s.space
}

func addStaticBox(space *cp.Space, p Platform) {
	if !p.Solid() {
		return
	}
	shape := cp.NewBox2(space.StaticBody, p.Hit().BB(), 0)
	shape.SetFriction(0)
	// Read back by the hitbox overlay to colour stone apart.
	shape.UserData = p.Latchable
	space.AddShape(shape)
}

