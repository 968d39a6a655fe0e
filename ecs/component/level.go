package component

import "github.com/milk9111/climb/level"

type Level struct {
	Name  string
	Store *level.Store
}

var LevelComponent = NewComponent[Level]()
