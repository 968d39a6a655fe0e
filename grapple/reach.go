package grapple

import "image/color"

// Palette colours successive growth rings of the arm.
var Palette = []color.NRGBA{
	{R: 0xff, G: 0x59, B: 0x5e, A: 0xff},
	{R: 0xff, G: 0x85, B: 0x60, A: 0xff},
	{R: 0xff, G: 0xca, B: 0x3a, A: 0xff},
	{R: 0x8a, G: 0xc9, B: 0x26, A: 0xff},
	{R: 0x0f, G: 0xa9, B: 0x58, A: 0xff},
	{R: 0x4b, G: 0xae, B: 0xd9, A: 0xff},
	{R: 0x19, G: 0x82, B: 0xc4, A: 0xff},
	{R: 0x6a, G: 0x4c, B: 0x93, A: 0xff},
}

// Segment is one granted piece of reach, newest first.
type Segment struct {
	Len   float64
	Color color.NRGBA
}

// Reach tracks the maximum legal rope length. Max only grows, except
// through Reset.
type Reach struct {
	Base     float64
	Max      float64
	Total    float64
	Segments []Segment
	// Palette overrides the default ring colours when set.
	Palette []color.NRGBA

	nextColor int
}

func NewReach(base float64) Reach {
	return Reach{Base: base, Max: base, Total: base}
}

func (r *Reach) Len() float64 {
	return r.Max
}

// Grant adds delta to the reach and records a growth ring. Non-positive
// grants are ignored.
func (r *Reach) Grant(delta float64) bool {
	if delta <= 0 {
		return false
	}
	pal := r.Palette
	if len(pal) == 0 {
		pal = Palette
	}
	col := pal[r.nextColor%len(pal)]
	r.nextColor++
	r.Segments = append([]Segment{{Len: delta, Color: col}}, r.Segments...)
	r.Total += delta
	r.Max += delta
	return true
}

// UnlockTo grows the reach to length if it is currently shorter.
func (r *Reach) UnlockTo(length float64) bool {
	if length <= r.Max {
		return false
	}
	return r.Grant(length - r.Max)
}

func (r *Reach) Reset() {
	pal := r.Palette
	*r = NewReach(r.Base)
	r.Palette = pal
}
