package component

// Toast is a single-slot message. A new toast replaces the old one.
type Toast struct {
	Text   string
	Frames int
	Total  int
}

func (t *Toast) Show(text string, frames int) {
	t.Text = text
	t.Frames = frames
	t.Total = frames
}

func (t *Toast) Active() bool {
	return t.Frames > 0
}

// Alpha fades linearly with the remaining frames.
func (t *Toast) Alpha() float64 {
	if t.Total <= 0 || t.Frames <= 0 {
		return 0
	}
	return float64(t.Frames) / float64(t.Total)
}

type Tutorial struct {
	Active bool
	Step   int
	Alpha  float64
	Text   string
}

type Ending struct {
	Triggered bool
	Frame     int
	// Next is the index of the next timed line to show.
	Next    int
	Fails   int
	Title   string
	Summary string
	Prompt  string
}

type Story struct {
	Toast Toast
	// Guide counts down the on-screen guide ring after the last hint.
	Guide      int
	GuideTotal int

	MarkersSeen []bool
	Tutorial    Tutorial
	Ending      Ending
}

var StoryComponent = NewComponent[Story]()
