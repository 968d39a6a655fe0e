package system

import (
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
)

// SessionSystem handles respawn on Escape and the full reset offered once
// the ending has played out.
type SessionSystem struct{}

func NewSessionSystem() *SessionSystem {
	return &SessionSystem{}
}

func (s *SessionSystem) Update(w *ecs.World) {
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	story := single(w, component.StoryComponent.Kind())

	if story != nil && story.Ending.Triggered {
		if story.Ending.Prompt != "" && (p.input.Actions.Has(component.ActionConfirm) || p.input.JustPressed) {
			ResetSession(w)
		}
		return
	}

	if p.input.Actions.Has(component.ActionRespawn) {
		Respawn(w)
	}
}

// Respawn puts the body back on the spawn point and recentres the camera.
// Progression and reach are kept.
func Respawn(w *ecs.World) {
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	if tuning := single(w, component.TuningComponent.Kind()); tuning != nil {
		p.body.Place(tuning.Spawn)
	}
	p.arm.Respawn()
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.Y = 0
	})
}

// ResetSession starts a fresh climb: base reach, first stage, story
// forgotten. The tutorial is not replayed.
func ResetSession(w *ecs.World) {
	Respawn(w)
	if p, ok := findPlayer(w); ok {
		p.arm.Reset()
	}
	if progress := single(w, component.ProgressComponent.Kind()); progress != nil && progress.Cursor != nil {
		progress.Cursor.Reset()
	}
	if story := single(w, component.StoryComponent.Kind()); story != nil {
		*story = component.Story{MarkersSeen: make([]bool, len(story.MarkersSeen))}
	}
	if dbg := single(w, component.DebugComponent.Kind()); dbg != nil {
		dbg.LongArm = false
	}
	if q := single(w, component.CueQueueComponent.Kind()); q != nil {
		q.Drain()
	}
}
