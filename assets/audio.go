package assets

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context, creating it on first
// use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		if ctx := audio.CurrentContext(); ctx != nil {
			audioContext = ctx
			return
		}
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadTonePlayer renders the named cue and wraps it in a player.
func LoadTonePlayer(name string) (*audio.Player, error) {
	b, err := ToneBytes(name)
	if err != nil {
		return nil, err
	}
	return AudioContext().NewPlayerFromBytes(b), nil
}
