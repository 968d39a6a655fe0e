package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/prefabs"
	"github.com/milk9111/climb/progression"
	"github.com/milk9111/climb/save"
)

type Options struct {
	Level string
	// SaveDir holds the persisted flags. Empty disables persistence.
	SaveDir string
	// Name overrides the saved player name when set.
	Name  string
	Debug bool
	Muted bool
}

// Session is what NewSession built, for the caller to wire into systems.
type Session struct {
	Player ecs.Entity
	Camera ecs.Entity
	Tuning *component.Tuning
	Story  *prefabs.StorySpec
	Flags  save.Flags
}

// NewSession fills w with every singleton a run needs: tuning, level,
// progression, story, audio, debug and the player with its camera.
func NewSession(w *ecs.World, opts Options) (*Session, error) {
	tuningSpec, err := prefabs.LoadTuningSpec()
	if err != nil {
		return nil, fmt.Errorf("session: load tuning: %w", err)
	}
	stages, err := prefabs.LoadStages()
	if err != nil {
		return nil, fmt.Errorf("session: load stages: %w", err)
	}
	storySpec, err := prefabs.LoadStorySpec()
	if err != nil {
		return nil, fmt.Errorf("session: load story: %w", err)
	}

	store, err := NewLevel(w, opts.Level, tuningSpec.World.GridUnit)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	tuning := TuningFromSpec(tuningSpec, store)
	root := ecs.CreateEntity(w)
	if err := ecs.Add(w, root, component.TuningComponent.Kind(), &tuning); err != nil {
		return nil, fmt.Errorf("session: add tuning: %w", err)
	}
	if err := ecs.Add(w, root, component.ProgressComponent.Kind(), &component.Progress{
		Cursor: progression.NewCursor(stages),
	}); err != nil {
		return nil, fmt.Errorf("session: add progress: %w", err)
	}
	if err := ecs.Add(w, root, component.StoryComponent.Kind(), &component.Story{
		MarkersSeen: make([]bool, len(storySpec.Markers)),
	}); err != nil {
		return nil, fmt.Errorf("session: add story: %w", err)
	}
	if err := ecs.Add(w, root, component.DebugComponent.Kind(), &component.Debug{Active: opts.Debug}); err != nil {
		return nil, fmt.Errorf("session: add debug: %w", err)
	}

	flags := save.Flags{Name: save.DefaultName}
	if opts.SaveDir != "" {
		flags, err = save.Load(opts.SaveDir)
		if err != nil {
			log.Printf("session: %v", err)
		}
	}
	if opts.Name != "" {
		flags.Name = opts.Name
	}
	if err := ecs.Add(w, root, component.SessionComponent.Kind(), &component.Session{
		Flags:   flags,
		SaveDir: opts.SaveDir,
		Persist: opts.SaveDir != "",
	}); err != nil {
		return nil, fmt.Errorf("session: add session: %w", err)
	}

	if _, err := NewAudio(w, opts.Muted); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	player, err := NewPlayer(w, &tuning)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	camera, err := NewCamera(w)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &Session{
		Player: player,
		Camera: camera,
		Tuning: &tuning,
		Story:  storySpec,
		Flags:  flags,
	}, nil
}
