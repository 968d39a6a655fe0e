package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

// DrawPhysicsDebug outlines every static shape of space. Shapes the grapple
// cannot hold are drawn in red.
func DrawPhysicsDebug(space *cp.Space, camY, scale float64, screen *ebiten.Image) {
	if space == nil || screen == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	drawer := &physicsDebugDrawer{
		screen: screen,
		view:   view{camY: camY, scale: scale},
	}
	cp.DrawSpace(space, drawer)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   view
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	d.drawLine(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], fill)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if latchable, ok := shape.UserData.(bool); ok && !latchable {
		return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
	}
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, color cp.FColor) {
	x1, y1 := d.view.point(a)
	x2, y2 := d.view.point(b)
	ebitenutil.DrawLine(d.screen, float64(x1), float64(y1), float64(x2), float64(y2), toNRGBA(color))
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, color cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], color)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, color cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, center.Add(cp.ForAngle(t).Mult(radius)))
	}
	d.drawPolygon(points, color)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func drawDebug(w *ecs.World, screen *ebiten.Image, v view, tuning *component.Tuning, dbg *component.Debug) {
	lvl := single(w, component.LevelComponent.Kind())
	b := screen.Bounds()
	sw, sh := float32(b.Dx()), float32(b.Dy())

	if dbg.Grid && lvl != nil {
		grid := lvl.Store.GridUnit()
		gridColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}
		for x := 0.0; x <= tuning.ViewW; x += grid {
			sx, _ := v.point(cp.Vector{X: x})
			vector.StrokeLine(screen, sx, 0, sx, sh, 1, gridColor, false)
		}
		first := math.Floor(v.camY/grid) * grid
		for y := first; y <= v.camY+tuning.ViewH; y += grid {
			_, sy := v.point(cp.Vector{Y: y})
			vector.StrokeLine(screen, 0, sy, sw, sy, 1, gridColor, false)
		}
	}

	if dbg.Lanes {
		for _, x := range []float64{tuning.Radius, tuning.Physics.InnerX - tuning.Radius} {
			sx, _ := v.point(cp.Vector{X: x})
			vector.StrokeLine(screen, sx, 0, sx, sh, 1, colornames.Cyan, false)
		}
	}

	if dbg.Bounds {
		if prog := single(w, component.ProgressComponent.Kind()); prog != nil && prog.Cursor != nil {
			current, hasCurrent := prog.Cursor.Stage()
			for _, st := range prog.Cursor.Stages() {
				c := colornames.Gray
				if hasCurrent && st.Name == current.Name {
					c = colornames.Yellow
				}
				for _, y := range []float64{st.TopBoundY, st.CheckpointY, st.BottomBoundY} {
					_, sy := v.point(cp.Vector{Y: y})
					vector.StrokeLine(screen, 0, sy, sw, sy, 1, c, false)
				}
			}
		}
	}

	if dbg.Hitboxes && lvl != nil {
		DrawPhysicsDebug(lvl.Store.Space(), v.camY, v.scale, screen)
	}

	if dbg.Brush && dbg.BrushStart != nil {
		if p, ok := findPlayer(w); ok {
			x0, y0 := v.point(*dbg.BrushStart)
			x1, y1 := v.point(p.input.Pointer)
			vector.StrokeRect(screen, min(x0, x1), min(y0, y1), float32(math.Abs(float64(x1-x0))), float32(math.Abs(float64(y1-y0))), 1, colornames.Orange, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, debugStatus(w, tuning, dbg), 10, 10)
}

func debugStatus(w *ecs.World, tuning *component.Tuning, dbg *component.Debug) string {
	status := fmt.Sprintf("DEBUG grid:%v free:%v hit:%v bounds:%v lanes:%v long:%v gravity:%v friction:%v",
		dbg.Grid, dbg.FreeMove, dbg.Hitboxes, dbg.Bounds, dbg.Lanes, dbg.LongArm,
		tuning.Physics.GravityOn, tuning.Physics.FrictionOn)
	if dbg.Brush {
		side := "L"
		if dbg.BrushKind.Profile().AlignRight {
			side = "R"
		}
		status += fmt.Sprintf("\nbrush:%s half:%v side:%s painted:%d", dbg.BrushKind, dbg.BrushHalf, side, len(dbg.Painted))
	}
	if p, ok := findPlayer(w); ok {
		status += fmt.Sprintf("\npos:(%.1f, %.1f) vel:(%.2f, %.2f) reach:%.0f latched:%v",
			p.body.Pos.X, p.body.Pos.Y, p.body.Vel.X, p.body.Vel.Y, p.arm.Reach.Len(), p.arm.Latched)
	}
	if prog := single(w, component.ProgressComponent.Kind()); prog != nil && prog.Cursor != nil {
		if st, ok := prog.Cursor.Stage(); ok {
			status += fmt.Sprintf("\nstage:%s fails:%d checkpointed:%v", st.Name, prog.Cursor.Fails, prog.Cursor.Checkpointed)
		} else {
			status += "\nstage:done"
		}
	}
	return status
}
