package level

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("level: unknown platform kind")

// Kind is the closed set of platform variants. Each variant fixes the
// collision profile and whether the grapple may latch onto it.
type Kind int

const (
	TinyGrass Kind = iota
	Grass16
	GroundFill
	CliffStone
	StoneBlock
	GrassySurfaceL
	GrassySurfaceR
	GrassySurfaceT
	GrassySurfaceTR
	GrassySurfaceB
	GrassySurfaceBR

	kindCount
)

// Profile is the static description of a Kind.
type Profile struct {
	Name       string
	Latchable  bool
	SnapWidth  bool
	AlignRight bool
	// Hit and Art are the default collision and render heights used by the
	// paint brush. Zero means the caller decides.
	Hit float64
	Art float64
	// BrushW is the default painted width.
	BrushW float64
}

var profiles = [kindCount]Profile{
	TinyGrass:       {Name: "tinyGrass", Latchable: true, SnapWidth: true, Art: 32, BrushW: 64},
	Grass16:         {Name: "grass16", Latchable: true, SnapWidth: true, Art: 64, BrushW: 64},
	GroundFill:      {Name: "groundFill", Latchable: true, SnapWidth: true, BrushW: 64},
	CliffStone:      {Name: "cliffStone", SnapWidth: true, BrushW: 64},
	StoneBlock:      {Name: "stoneBlock", SnapWidth: true, Hit: 64, Art: 64, BrushW: 64},
	GrassySurfaceL:  {Name: "grassySurfaceL", Latchable: true, Hit: 32, Art: 32, BrushW: 16},
	GrassySurfaceR:  {Name: "grassySurfaceR", Latchable: true, AlignRight: true, Hit: 32, Art: 32, BrushW: 16},
	GrassySurfaceT:  {Name: "grassySurfaceT", Latchable: true, Hit: 16, Art: 16, BrushW: 32},
	GrassySurfaceTR: {Name: "grassySurfaceTR", Latchable: true, AlignRight: true, Hit: 16, Art: 16, BrushW: 32},
	GrassySurfaceB:  {Name: "grassySurfaceB", Latchable: true, Hit: 16, Art: 16, BrushW: 32},
	GrassySurfaceBR: {Name: "grassySurfaceBR", Latchable: true, AlignRight: true, Hit: 16, Art: 16, BrushW: 32},
}

func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) Profile() Profile {
	if !k.Valid() {
		return Profile{}
	}
	return profiles[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return profiles[k].Name
}

// Kinds lists every variant in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func ParseKind(name string) (Kind, error) {
	for k, p := range profiles {
		if p.Name == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Mirror returns the left/right twin of a side-specific kind.
func (k Kind) Mirror() (Kind, bool) {
	name := k.String()
	other := name + "R"
	if trimmed, ok := strings.CutSuffix(name, "R"); ok {
		other = trimmed
	}
	m, err := ParseKind(other)
	if err != nil {
		return k, false
	}
	return m, true
}
