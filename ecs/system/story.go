package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/prefabs"
	"github.com/milk9111/climb/progression"
	"github.com/milk9111/climb/save"
)

const tutorialAlpha = 255

// StorySystem drives the narrative layer: height markers, the one-time
// tutorial, progression toasts and the ending sequence.
type StorySystem struct {
	copy *CopyRuntime
	spec *prefabs.StorySpec
}

func NewStorySystem(copy *CopyRuntime, spec *prefabs.StorySpec) *StorySystem {
	return &StorySystem{copy: copy, spec: spec}
}

// SetSpec swaps in reloaded copy.
func (s *StorySystem) SetSpec(spec *prefabs.StorySpec) {
	s.spec = spec
	s.copy.SetLines(spec.Lines)
}

func (s *StorySystem) Copy() *CopyRuntime {
	return s.copy
}

// StartTutorial shows the first tutorial step unless it was seen before.
func (s *StorySystem) StartTutorial(story *component.Story, seen bool) {
	if seen || len(s.spec.Tutorial) == 0 {
		story.Tutorial = component.Tutorial{}
		return
	}
	story.Tutorial = component.Tutorial{
		Active: true,
		Alpha:  tutorialAlpha,
		Text:   s.copy.Line(s.spec.Tutorial[0]),
	}
}

func (s *StorySystem) Update(w *ecs.World) {
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	story := single(w, component.StoryComponent.Kind())
	tuning := single(w, component.TuningComponent.Kind())
	if story == nil || tuning == nil {
		return
	}

	if story.Ending.Triggered {
		s.updateEnding(story)
		tick(story)
		return
	}

	s.updateMarkers(story, p.body.Pos.Y)
	s.updateProgress(w, story)
	s.updateTutorial(w, story, p)

	if p.body.Pos.Distance(tuning.EndingPos) <= p.body.R+tuning.EndingPad {
		s.triggerEnding(w, story, p)
	}
	tick(story)
}

func tick(story *component.Story) {
	if story.Toast.Frames > 0 {
		story.Toast.Frames--
	}
	if story.Guide > 0 {
		story.Guide--
	}
}

// updateMarkers shows at most one newly passed height marker per frame.
func (s *StorySystem) updateMarkers(story *component.Story, y float64) {
	if len(story.MarkersSeen) != len(s.spec.Markers) {
		story.MarkersSeen = make([]bool, len(s.spec.Markers))
	}
	for i, m := range s.spec.Markers {
		if story.MarkersSeen[i] || y > m.Y {
			continue
		}
		story.MarkersSeen[i] = true
		story.Toast.Show(s.copy.Line(m.Key), s.spec.ToastFrames)
		return
	}
}

func (s *StorySystem) updateProgress(w *ecs.World, story *component.Story) {
	for _, ev := range progressEvents(w) {
		switch ev.Kind {
		case progression.EventGrow, progression.EventUnlock, progression.EventShortcut, progression.EventHint:
			if ev.Key != "" {
				story.Toast.Show(s.copy.Line(ev.Key), s.spec.ToastFrames)
			}
		case progression.EventGuide:
			story.GuideTotal = 2*s.spec.GuideFadeFrames + s.spec.GuideFrames
			story.Guide = story.GuideTotal
		}
	}
}

func (s *StorySystem) updateTutorial(w *ecs.World, story *component.Story, p player) {
	tut := &story.Tutorial
	if !tut.Active {
		return
	}
	switch {
	case tut.Step == 0 && p.arm.Latched:
		s.tutorialStep(tut, 1)
	case tut.Step == 1 && !p.arm.Latched && !p.input.Pressed:
		s.tutorialStep(tut, 2)
	case tut.Step >= 2:
		tut.Alpha--
		if tut.Alpha <= 0 {
			tut.Active = false
			markTutorialSeen(w)
		}
	}
}

func (s *StorySystem) tutorialStep(tut *component.Tutorial, step int) {
	tut.Step = step
	tut.Alpha = tutorialAlpha
	if step < len(s.spec.Tutorial) {
		tut.Text = s.copy.Line(s.spec.Tutorial[step])
	}
}

func markTutorialSeen(w *ecs.World) {
	session := single(w, component.SessionComponent.Kind())
	if session == nil || session.Flags.TutorialSeen {
		return
	}
	session.Flags.TutorialSeen = true
	if !session.Persist {
		return
	}
	if err := save.Store(session.SaveDir, session.Flags); err != nil {
		log.Printf("story: save flags: %v", err)
	}
}

func (s *StorySystem) triggerEnding(w *ecs.World, story *component.Story, p player) {
	p.arm.Release()
	p.body.Vel = cp.Vector{}
	story.Tutorial.Active = false

	fails := 0
	if progress := single(w, component.ProgressComponent.Kind()); progress != nil && progress.Cursor != nil {
		fails = progress.Cursor.TotalFails + progress.Cursor.Fails
	}
	story.Ending = component.Ending{Triggered: true, Fails: fails}
	pushCue(w, component.CueEnding)
	log.Printf("story: ending reached after %d fails", fails)
}

// updateEnding plays the timed ending lines, then the title, the fail
// summary and the replay prompt.
func (s *StorySystem) updateEnding(story *component.Story) {
	end := &story.Ending
	end.Frame++
	lines := s.spec.Ending.Lines
	if end.Next < len(lines) && end.Frame >= lines[end.Next].Frame {
		story.Toast.Show(s.copy.Line(lines[end.Next].Key), s.spec.ToastFrames)
		end.Next++
	}
	if end.Frame >= s.spec.Ending.TitleFrame {
		end.Title = s.spec.Ending.Title
	}
	if end.Frame >= s.spec.Ending.SummaryFrame && end.Summary == "" {
		end.Summary = s.copy.Summary(end.Fails)
	}
	if end.Frame >= s.spec.Ending.PromptFrame {
		end.Prompt = s.spec.Ending.Prompt
	}
}
