package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

// Layout is the static platform table of one level.
type Layout struct {
	Name      string        `json:"name"`
	GridUnit  float64       `json:"grid_unit"`
	Platforms []PlatformRow `json:"platforms"`
}

// PlatformRow mirrors the arguments of level.Store.Add.
type PlatformRow struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	Hit    float64 `json:"hit"`
	Art    float64 `json:"art"`
	Ground bool    `json:"ground,omitempty"`
	Kind   string  `json:"kind"`
}

func LoadLayoutFromFS(name string) (*Layout, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Layout
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}
