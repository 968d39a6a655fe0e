package component

type Cue string

const (
	CueGrass       Cue = "grass"
	CueStone       Cue = "stone"
	CueArmGrow     Cue = "arm_grow"
	CueArmUnlock   Cue = "arm_unlock"
	CueArmShortcut Cue = "arm_shortcut"
	CueEnding      Cue = "ending"
)

func Cues() []Cue {
	return []Cue{CueGrass, CueStone, CueArmGrow, CueArmUnlock, CueArmShortcut, CueEnding}
}

// CueQueue collects sound cues raised during a frame.
type CueQueue struct {
	Pending []Cue
}

func (q *CueQueue) Push(c Cue) {
	q.Pending = append(q.Pending, c)
}

func (q *CueQueue) Drain() []Cue {
	out := q.Pending
	q.Pending = nil
	return out
}

var CueQueueComponent = NewComponent[CueQueue]()
