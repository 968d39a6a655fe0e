package progression

import (
	"math"

	"github.com/milk9111/climb/common"
)

// Reach is the part of the arm the state machine may grow.
type Reach interface {
	Len() float64
	Grant(delta float64) bool
	UnlockTo(length float64) bool
}

type EventKind int

const (
	EventCheckpoint EventKind = iota + 1
	EventFail
	EventGrow
	EventUnlock
	EventShortcut
	EventHint
	EventGuide
	EventAdvance
	EventComplete
)

func (k EventKind) String() string {
	switch k {
	case EventCheckpoint:
		return "checkpoint"
	case EventFail:
		return "fail"
	case EventGrow:
		return "grow"
	case EventUnlock:
		return "unlock"
	case EventShortcut:
		return "shortcut"
	case EventHint:
		return "hint"
	case EventGuide:
		return "guide"
	case EventAdvance:
		return "advance"
	case EventComplete:
		return "complete"
	}
	return "unknown"
}

// Event is one observable transition. Key carries the copy key for toast
// events, Amount the reach granted.
type Event struct {
	Kind   EventKind
	Stage  int
	Fails  int
	Amount float64
	Key    string
}

const (
	hintFirstFail = 6
	hintGuideFail = 8
	targetEps     = 0.01
)

// Cursor walks the stages.
type Cursor struct {
	stages []Stage

	Index        int
	Checkpointed bool
	Fails        int
	HintIdx      int
	TotalFails   int

	// counted is consumed by the first qualifying fall and re-armed while
	// the checkpoint is not held.
	counted common.Edge
}

func NewCursor(stages []Stage) *Cursor {
	return &Cursor{stages: append([]Stage(nil), stages...)}
}

func (c *Cursor) Stages() []Stage {
	return c.stages
}

// Stage returns the active stage.
func (c *Cursor) Stage() (Stage, bool) {
	if c.Done() {
		return Stage{}, false
	}
	return c.stages[c.Index], true
}

func (c *Cursor) Done() bool {
	return c.Index >= len(c.stages)
}

// Reset rewinds to the first stage and forgets every count.
func (c *Cursor) Reset() {
	c.Index = 0
	c.Checkpointed = false
	c.Fails = 0
	c.HintIdx = 0
	c.TotalFails = 0
	c.counted.Arm()
}

// Observe feeds one frame of body height and latch state. Grants are
// applied to reach directly; the returned events describe what happened.
func (c *Cursor) Observe(y float64, latched bool, reach Reach) []Event {
	if c.Done() {
		return nil
	}
	st := c.stages[c.Index]
	var evs []Event

	if !c.Checkpointed && y <= st.CheckpointY {
		c.Checkpointed = true
		evs = append(evs, c.event(EventCheckpoint))
	}

	if !c.Checkpointed {
		c.counted.Arm()
		return evs
	}

	switch {
	case y >= st.BottomBoundY:
		if latched || c.counted.Fired() {
			return evs
		}
		return c.fall(st, reach, evs)
	case y <= st.TopBoundY:
		return c.escape(st, reach, evs)
	}
	return evs
}

func (c *Cursor) fall(st Stage, reach Reach, evs []Event) []Event {
	c.counted.Fire()
	c.Fails++
	evs = append(evs, c.event(EventFail))

	cur := reach.Len()
	next := math.Min(cur+st.StepLen, st.TargetLen)
	if next > cur {
		reach.Grant(next - cur)
		ev := c.event(EventGrow)
		ev.Amount = next - cur
		ev.Key = st.ToastStep
		evs = append(evs, ev)
		c.Checkpointed = false
	}

	if next < st.TargetLen {
		return evs
	}

	// The grant that lands on the target counts as the unlock.
	if cur < st.TargetLen-targetEps {
		before := reach.Len()
		reach.UnlockTo(st.TargetLen)
		ev := c.event(EventUnlock)
		ev.Amount = reach.Len() - before
		ev.Key = st.ToastUnlock
		evs = append(evs, ev)
	}
	c.Checkpointed = false

	if c.Fails >= hintFirstFail && c.Fails <= hintGuideFail && c.HintIdx < len(st.Hints) {
		ev := c.event(EventHint)
		ev.Key = st.Hints[c.HintIdx]
		evs = append(evs, ev)
		c.HintIdx++
		if c.Fails == hintGuideFail {
			evs = append(evs, c.event(EventGuide))
		}
	}
	return evs
}

func (c *Cursor) escape(st Stage, reach Reach, evs []Event) []Event {
	// Any reach off target cues the shortcut, even one already past it.
	if before := reach.Len(); before != st.TargetLen {
		reach.UnlockTo(st.TargetLen)
		ev := c.event(EventShortcut)
		ev.Amount = reach.Len() - before
		ev.Key = st.ToastUnlock
		evs = append(evs, ev)
	}

	evs = append(evs, c.event(EventAdvance))
	c.TotalFails += c.Fails
	c.Index++
	c.Checkpointed = false
	c.Fails = 0
	c.HintIdx = 0
	c.counted.Arm()

	if c.Done() {
		evs = append(evs, c.event(EventComplete))
	}
	return evs
}

func (c *Cursor) event(kind EventKind) Event {
	return Event{Kind: kind, Stage: c.Index, Fails: c.Fails}
}
