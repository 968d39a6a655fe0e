package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
)

const defaultVolume = 0.6

// NewAudio creates the cue queue and the player table. Players are built
// lazily on first use so headless sessions never open an audio device.
func NewAudio(w *ecs.World, muted bool) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CueQueueComponent.Kind(), &component.CueQueue{}); err != nil {
		return 0, fmt.Errorf("audio: add cue queue: %w", err)
	}
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{
		Players: make(map[component.Cue]*audio.Player),
		Volume:  defaultVolume,
		Muted:   muted,
	}); err != nil {
		return 0, fmt.Errorf("audio: add audio: %w", err)
	}
	return e, nil
}
