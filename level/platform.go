package level

import "github.com/milk9111/climb/collision"

// Platform is a static rectangle of the level. Hit height may be zero, in
// which case the platform is decoration only.
type Platform struct {
	X, Y      float64
	W         float64
	HitH      float64
	ArtH      float64
	Ground    bool
	Latchable bool
	Kind      Kind
}

func (p Platform) Hit() collision.Rect {
	return collision.Rect{X: p.X, Y: p.Y, W: p.W, H: p.HitH}
}

func (p Platform) Art() collision.Rect {
	return collision.Rect{X: p.X, Y: p.Y, W: p.W, H: p.ArtH}
}

// Solid reports whether the platform takes part in collision.
func (p Platform) Solid() bool {
	return p.HitH > 0 && p.W > 0
}
