package system

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/climb/assets"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
)

// AudioSystem plays the cues queued this frame. Players are built on first
// use so headless sessions never open an audio device.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	q := single(w, component.CueQueueComponent.Kind())
	if q == nil {
		return
	}
	cues := q.Drain()

	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		if audioComp.Muted {
			return
		}
		for _, cue := range cues {
			player := audioComp.Players[cue]
			if player == nil {
				var err error
				player, err = assets.LoadTonePlayer(string(cue))
				if err != nil {
					log.Printf("audio: load %s: %v", cue, err)
					continue
				}
				if audioComp.Players == nil {
					audioComp.Players = make(map[component.Cue]*audio.Player)
				}
				audioComp.Players[cue] = player
			}
			player.SetVolume(audioComp.Volume)
			if err := player.Rewind(); err != nil {
				log.Printf("audio: rewind %s: %v", cue, err)
				continue
			}
			player.Play()
		}
	})
}
