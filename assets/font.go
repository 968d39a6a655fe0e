package assets

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	faceOnce sync.Once
	face     *text.GoXFace
)

// Face is the monospace face used for toasts and the HUD.
func Face() text.Face {
	faceOnce.Do(func() {
		face = text.NewGoXFace(basicfont.Face7x13)
	})
	return face
}
