package level

import "fmt"

// Issue is one problem found in a level, by platform index.
type Issue struct {
	Index int
	Msg   string
}

func (i Issue) String() string {
	return fmt.Sprintf("platform %d: %s", i.Index, i.Msg)
}

// Check reports platforms outside the view [0, width], platforms without
// width, and solid platforms overlapping an earlier solid one. Platforms may
// extend past the wall into the gutter.
func Check(s *Store, width float64) []Issue {
	var issues []Issue
	plats := s.Platforms()
	for i, p := range plats {
		if p.W <= 0 {
			issues = append(issues, Issue{Index: i, Msg: "no width"})
			continue
		}
		if p.X < 0 || p.X+p.W > width {
			issues = append(issues, Issue{Index: i, Msg: fmt.Sprintf("x range [%g, %g] outside view [0, %g]", p.X, p.X+p.W, width)})
		}
		if !p.Solid() {
			continue
		}
		for j := 0; j < i; j++ {
			if plats[j].Solid() && plats[j].Hit().Overlaps(p.Hit()) {
				issues = append(issues, Issue{Index: i, Msg: fmt.Sprintf("overlaps platform %d", j)})
				break
			}
		}
	}
	return issues
}
