package physics

// Params are the tunables of the free step and of the rope constraint.
type Params struct {
	Gravity    float64
	Friction   float64
	GravityOn  bool
	FrictionOn bool

	// InnerX is the x of the right-hand wall face. The lane spans
	// [R, InnerX-R].
	InnerX float64

	SweepEps   float64
	SweepClamp float64

	LandDampFree    float64
	LandDampLatched float64
	SideDampFree    float64
	SideDampLatched float64

	// MaxStepFactor bounds a sub-step to MaxStepFactor*R.
	MaxStepFactor float64
}

func DefaultParams() Params {
	return Params{
		Gravity:         0.4,
		Friction:        0.98,
		GravityOn:       true,
		FrictionOn:      true,
		InnerX:          640,
		SweepEps:        0.01,
		SweepClamp:      0.99,
		LandDampFree:    0.3,
		LandDampLatched: 1,
		SideDampFree:    0.8,
		SideDampLatched: 0.9,
		MaxStepFactor:   0.5,
	}
}

func (p Params) maxStep(r float64) float64 {
	f := p.MaxStepFactor
	if f <= 0 {
		f = 0.5
	}
	return r * f
}
