package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/common"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/level"
)

const (
	defaultBrushHit = 32
	defaultBrushArt = 64
)

// DebugSystem applies the developer shortcuts. Everything except the
// master toggle is ignored while debug is off.
type DebugSystem struct{}

func NewDebugSystem() *DebugSystem {
	return &DebugSystem{}
}

func (d *DebugSystem) Update(w *ecs.World) {
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	dbg := single(w, component.DebugComponent.Kind())
	tuning := single(w, component.TuningComponent.Kind())
	if dbg == nil || tuning == nil {
		return
	}
	act := p.input.Actions

	if act.Has(component.ActionDebugToggle) {
		dbg.Active = !dbg.Active
		log.Printf("debug: active=%v", dbg.Active)
	}
	if !dbg.Active {
		return
	}

	toggles := []struct {
		action component.Action
		flag   *bool
	}{
		{component.ActionGrid, &dbg.Grid},
		{component.ActionFreeMove, &dbg.FreeMove},
		{component.ActionBrush, &dbg.Brush},
		{component.ActionHitboxes, &dbg.Hitboxes},
		{component.ActionBounds, &dbg.Bounds},
		{component.ActionLanes, &dbg.Lanes},
		{component.ActionGravity, &tuning.Physics.GravityOn},
		{component.ActionFriction, &tuning.Physics.FrictionOn},
	}
	for _, t := range toggles {
		if act.Has(t.action) {
			*t.flag = !*t.flag
		}
	}

	if act.Has(component.ActionLongArm) {
		dbg.LongArm = !dbg.LongArm
		// Reach never shrinks, so switching off keeps the long arm.
		if dbg.LongArm && p.arm.UnlockTo(tuning.DebugLongArm, tuning.Grapple) {
			log.Printf("debug: long arm %v", tuning.DebugLongArm)
		}
	}
	if act.Has(component.ActionTeleport) {
		p.arm.Release()
		p.body.Place(tuning.DebugTeleport)
	}

	if dbg.Brush {
		d.updateBrush(w, dbg, p)
	} else {
		dbg.BrushStart = nil
	}
}

func (d *DebugSystem) updateBrush(w *ecs.World, dbg *component.Debug, p player) {
	act := p.input.Actions
	kinds := level.Kinds()
	switch {
	case act.Has(component.ActionBrushNext):
		dbg.BrushKind = kinds[(int(dbg.BrushKind)+1)%len(kinds)]
	case act.Has(component.ActionBrushPrev):
		dbg.BrushKind = kinds[(int(dbg.BrushKind)-1+len(kinds))%len(kinds)]
	}
	if act.Has(component.ActionBrushHalf) {
		dbg.BrushHalf = !dbg.BrushHalf
	}
	if act.Has(component.ActionBrushSide) {
		if m, ok := dbg.BrushKind.Mirror(); ok {
			dbg.BrushKind = m
		}
	}

	lvl := single(w, component.LevelComponent.Kind())
	if lvl == nil {
		return
	}
	grid := lvl.Store.GridUnit()

	if p.input.JustPressed {
		start := cp.Vector{X: common.Snap(p.input.Pointer.X, grid), Y: common.Snap(p.input.Pointer.Y, grid)}
		dbg.BrushStart = &start
	}
	if p.input.JustReleased && dbg.BrushStart != nil {
		row := Paint(lvl.Store, *dbg.BrushStart, dbg.BrushKind, dbg.BrushHalf)
		dbg.Painted = append(dbg.Painted, row)
		dbg.BrushStart = nil
		log.Printf("debug: paint %s", row)
		copyRows(dbg.Painted)
	}
}

// Paint places one brush platform at the snapped point and returns the
// layout row that reproduces it.
func Paint(store *level.Store, at cp.Vector, kind level.Kind, half bool) string {
	prof := kind.Profile()
	w := prof.BrushW
	hit := prof.Hit
	if hit == 0 {
		hit = defaultBrushHit
	}
	art := prof.Art
	if art == 0 {
		art = defaultBrushArt
	}
	art = math.Max(art, hit)
	y := at.Y
	if grid := store.GridUnit(); half && art < grid {
		y += grid - art
	}
	store.Add(at.X, y, w, hit, art, false, kind)
	return level.Row(at.X, y, w, hit, art, kind)
}
