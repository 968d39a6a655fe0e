package level

import (
	"fmt"

	"github.com/milk9111/climb/levels"
)

// Build creates a store from an embedded layout. gridUnit is used when the
// layout does not name its own.
func Build(layout *levels.Layout, gridUnit float64) (*Store, error) {
	if layout == nil {
		return nil, fmt.Errorf("level: build: nil layout")
	}
	if layout.GridUnit > 0 {
		gridUnit = layout.GridUnit
	}
	s := NewStore(gridUnit)
	for i, row := range layout.Platforms {
		kind, err := ParseKind(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("level: build %s row %d: %w", layout.Name, i, err)
		}
		s.Add(row.X, row.Y, row.W, row.Hit, row.Art, row.Ground, kind)
	}
	return s, nil
}

// Load builds the named embedded level.
func Load(name string, gridUnit float64) (*Store, error) {
	layout, err := levels.LoadLayoutFromFS(name)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", name, err)
	}
	return Build(layout, gridUnit)
}

// Row renders a platform back into the layout row that would recreate it,
// in lane coordinates. Used by the paint brush to log placements.
func Row(laneX, yTop, w, hit, art float64, kind Kind) string {
	return fmt.Sprintf(`{"x": %g, "y": %g, "w": %g, "hit": %g, "art": %g, "kind": %q}`, laneX, yTop, w, hit, art, kind.String())
}
