package system

import (
	"log"
	"path/filepath"

	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/ecs/entity"
	"github.com/milk9111/climb/prefabs"
	"github.com/milk9111/climb/progression"
)

// ChangeSource reports changed prefab paths without blocking.
type ChangeSource interface {
	Poll() []string
}

// ReloadSystem applies prefab edits to the running session. A failed
// reload is logged and the previous values stay in effect.
type ReloadSystem struct {
	source ChangeSource
	story  *StorySystem
}

func NewReloadSystem(source ChangeSource, story *StorySystem) *ReloadSystem {
	return &ReloadSystem{source: source, story: story}
}

func (r *ReloadSystem) Update(w *ecs.World) {
	if r.source == nil {
		return
	}
	seen := make(map[string]bool)
	for _, path := range r.source.Poll() {
		name := filepath.Base(path)
		if seen[name] {
			continue
		}
		seen[name] = true
		if err := r.reload(w, name); err != nil {
			log.Printf("reload: %s: %v", name, err)
			continue
		}
		if mod, ok := prefabs.ModTime(name); ok {
			log.Printf("reload: %s (modified %s)", name, mod.Format("15:04:05"))
			continue
		}
		log.Printf("reload: %s", name)
	}
}

func (r *ReloadSystem) reload(w *ecs.World, name string) error {
	switch name {
	case "tuning.yaml":
		return reloadTuning(w)
	case "fail_states.yaml":
		return reloadStages(w)
	case "story.yaml":
		if r.story == nil {
			return nil
		}
		spec, err := prefabs.LoadStorySpec()
		if err != nil {
			return err
		}
		r.story.SetSpec(spec)
	case copyScriptPath:
		if r.story == nil {
			return nil
		}
		return r.story.Copy().Reload()
	}
	return nil
}

func reloadTuning(w *ecs.World) error {
	spec, err := prefabs.LoadTuningSpec()
	if err != nil {
		return err
	}
	tuning := single(w, component.TuningComponent.Kind())
	if tuning == nil {
		return nil
	}
	entity.ApplyTuning(tuning, spec, levelStore(w))
	if p, ok := findPlayer(w); ok {
		p.body.R = tuning.Radius
		p.arm.Reach.Palette = tuning.Palette
	}
	return nil
}

// reloadStages swaps in the new fail states. Progress restarts from the
// first stage.
func reloadStages(w *ecs.World) error {
	stages, err := prefabs.LoadStages()
	if err != nil {
		return err
	}
	if prog := single(w, component.ProgressComponent.Kind()); prog != nil {
		prog.Cursor = progression.NewCursor(stages)
	}
	return nil
}
