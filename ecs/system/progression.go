package system

import (
	"log"

	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/grapple"
	"github.com/milk9111/climb/progression"
)

// ProgressionSystem feeds the body height to the fail-state cursor and
// republishes its transitions on the world event queue.
type ProgressionSystem struct{}

func NewProgressionSystem() *ProgressionSystem {
	return &ProgressionSystem{}
}

// armReach lets the cursor grow the arm while keeping the rope in range.
type armReach struct {
	arm *grapple.Arm
	p   grapple.Params
}

func (r armReach) Len() float64                 { return r.arm.Reach.Len() }
func (r armReach) Grant(delta float64) bool     { return r.arm.Grant(delta, r.p) }
func (r armReach) UnlockTo(length float64) bool { return r.arm.UnlockTo(length, r.p) }

var progressCues = map[progression.EventKind]component.Cue{
	progression.EventGrow:     component.CueArmGrow,
	progression.EventUnlock:   component.CueArmUnlock,
	progression.EventShortcut: component.CueArmShortcut,
}

func (s *ProgressionSystem) Update(w *ecs.World) {
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	progress := single(w, component.ProgressComponent.Kind())
	tuning := single(w, component.TuningComponent.Kind())
	if progress == nil || progress.Cursor == nil || tuning == nil || endingTriggered(w) {
		return
	}

	events := progress.Cursor.Observe(p.body.Pos.Y, p.arm.Latched, armReach{arm: p.arm, p: tuning.Grapple})
	for _, ev := range events {
		w.Events().Push(ecs.Event{Type: component.ProgressEventType, Data: ev})
		if cue, ok := progressCues[ev.Kind]; ok {
			pushCue(w, cue)
		}
		switch ev.Kind {
		case progression.EventAdvance:
			log.Printf("progression: cleared stage %d after %d fails", ev.Stage, ev.Fails)
		case progression.EventComplete:
			log.Printf("progression: all stages cleared, %d fails total", progress.Cursor.TotalFails)
		}
	}
}

// progressEvents returns this frame's progression events.
func progressEvents(w *ecs.World) []progression.Event {
	var out []progression.Event
	for _, e := range w.Events().Peek(component.ProgressEventType) {
		if ev, ok := e.Data.(progression.Event); ok {
			out = append(out, ev)
		}
	}
	return out
}
