package component

import "github.com/milk9111/climb/save"

type Session struct {
	Flags   save.Flags
	SaveDir string
	// Persist is false in tests and when no save dir could be resolved.
	Persist bool
}

var SessionComponent = NewComponent[Session]()
