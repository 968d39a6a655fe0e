package component

import "github.com/milk9111/climb/progression"

type Progress struct {
	Cursor *progression.Cursor
}

var ProgressComponent = NewComponent[Progress]()

// ProgressEventType tags progression.Event payloads on the world queue.
const ProgressEventType = "progression"
