package component

import "github.com/hajimehoshi/ebiten/v2/audio"

type Audio struct {
	Players map[Cue]*audio.Player
	Volume  float64
	Muted   bool
}

var AudioComponent = NewComponent[Audio]()
