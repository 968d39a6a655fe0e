package physics

import "github.com/jakecoffman/cp"

// Body is the player's circle. Y grows downward.
type Body struct {
	Pos cp.Vector
	Vel cp.Vector
	R   float64
}

func (b *Body) Bottom() float64 {
	return b.Pos.Y + b.R
}

// Place moves the body and stops it.
func (b *Body) Place(pos cp.Vector) {
	b.Pos = pos
	b.Vel = cp.Vector{}
}
