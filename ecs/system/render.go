package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/assets"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
	"github.com/milk9111/climb/level"
	"golang.org/x/image/colornames"
)

const (
	armWidth       = 6
	textLineHeight = 18
	guideRadius    = 128
	endingItemR    = 12
)

var (
	backgroundColor = color.NRGBA{R: 0x13, G: 0x00, B: 0x22, A: 0xff}
	gutterColor     = color.NRGBA{R: 0x0b, G: 0x00, B: 0x14, A: 0xff}
	grassColor      = color.NRGBA{R: 0x4c, G: 0x9a, B: 0x2a, A: 0xff}
	soilColor       = color.NRGBA{R: 0x5a, G: 0x3b, B: 0x22, A: 0xff}
	stoneColor      = color.NRGBA{R: 0x6b, G: 0x6b, B: 0x78, A: 0xff}
	armBaseColor    = color.NRGBA{R: 0xe0, G: 0xc0, B: 0xa0, A: 0xff}
)

// view maps world coordinates to screen pixels.
type view struct {
	camY  float64
	scale float64
}

func (v view) point(p cp.Vector) (float32, float32) {
	return float32(p.X * v.scale), float32((p.Y - math.Round(v.camY)) * v.scale)
}

func (v view) length(l float64) float32 {
	return float32(l * v.scale)
}

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	tuning := single(w, component.TuningComponent.Kind())
	if tuning == nil {
		return
	}
	v := view{scale: tuning.Scale}
	if cam := single(w, component.CameraComponent.Kind()); cam != nil {
		v.camY = cam.Y
	}

	screen.Fill(backgroundColor)

	if lvl := single(w, component.LevelComponent.Kind()); lvl != nil {
		drawPlatforms(screen, v, lvl.Store, tuning.ViewH)
	}
	gx, _ := v.point(cp.Vector{X: tuning.Physics.InnerX})
	vector.FillRect(screen, gx, 0, float32(screen.Bounds().Dx())-gx, float32(screen.Bounds().Dy()), gutterColor, false)

	ex, ey := v.point(tuning.EndingPos)
	vector.DrawFilledCircle(screen, ex, ey, v.length(endingItemR), colornames.Gold, true)

	story := single(w, component.StoryComponent.Kind())
	if p, ok := findPlayer(w); ok {
		drawArm(screen, v, p)
		bx, by := v.point(p.body.Pos)
		vector.DrawFilledCircle(screen, bx, by, v.length(p.body.R), colornames.Crimson, true)
		vector.StrokeCircle(screen, bx, by, v.length(p.body.R), 2, colornames.Black, true)
		if story != nil {
			drawStory(screen, v, tuning, story, p)
		}
	}

	if dbg := single(w, component.DebugComponent.Kind()); dbg != nil && dbg.Active {
		drawDebug(w, screen, v, tuning, dbg)
	}

	if story != nil && story.Ending.Triggered {
		drawEnding(screen, &story.Ending)
	}
}

func kindColor(k level.Kind) color.NRGBA {
	switch {
	case k == level.GroundFill:
		return soilColor
	case !k.Profile().Latchable:
		return stoneColor
	}
	return grassColor
}

func drawPlatforms(screen *ebiten.Image, v view, store *level.Store, viewH float64) {
	top := v.camY - viewH
	bottom := v.camY + 2*viewH
	for _, plat := range store.Platforms() {
		art := plat.Art()
		if art.Bottom() < top || art.Y > bottom || art.Empty() {
			continue
		}
		x, y := v.point(cp.Vector{X: art.X, Y: art.Y})
		vector.FillRect(screen, x, y, v.length(art.W), v.length(art.H), kindColor(plat.Kind), false)
	}
}

// drawArm draws the reach as coloured growth rings from the tip inward,
// newest ring outermost.
func drawArm(screen *ebiten.Image, v view, p player) {
	arm := p.arm
	from := p.body.Pos
	to := arm.Tip
	total := to.Distance(from)
	x0, y0 := v.point(from)
	x1, y1 := v.point(to)
	vector.StrokeLine(screen, x0, y0, x1, y1, armWidth, armBaseColor, true)
	if total <= 0 {
		return
	}

	dir := to.Sub(from).Mult(1 / total)
	at := total
	for _, seg := range arm.Reach.Segments {
		if at <= 0 {
			break
		}
		start := math.Max(0, at-seg.Len)
		sx, sy := v.point(from.Add(dir.Mult(start)))
		ex, ey := v.point(from.Add(dir.Mult(at)))
		vector.StrokeLine(screen, sx, sy, ex, ey, armWidth, seg.Color, true)
		at = start
	}

	if arm.Latched && arm.Anchor != nil {
		ax, ay := v.point(*arm.Anchor)
		vector.DrawFilledCircle(screen, ax, ay, 4, colornames.White, true)
		return
	}
	if arm.Candidate != nil {
		cx, cy := v.point(*arm.Candidate)
		c := colornames.Lightgreen
		if arm.AtWall {
			c = colornames.Orangered
		}
		vector.StrokeCircle(screen, cx, cy, 5, 2, c, true)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, alpha float32, align text.Align) {
	if s == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	op.LineSpacing = textLineHeight
	op.PrimaryAlign = align
	text.Draw(screen, s, assets.Face(), op)
}

func drawStory(screen *ebiten.Image, v view, tuning *component.Tuning, story *component.Story, p player) {
	bx, by := v.point(p.body.Pos)
	r := float64(v.length(p.body.R))

	if story.Toast.Active() {
		x := tuning.ViewW * tuning.Scale / 4
		if story.Ending.Triggered {
			x = float64(bx)
		}
		drawText(screen, story.Toast.Text, x, float64(by)+r+20, float32(story.Toast.Alpha()), text.AlignCenter)
	}

	if tut := story.Tutorial; tut.Active {
		drawText(screen, tut.Text, tuning.ViewW*tuning.Scale/2, float64(by)-r-60, float32(tut.Alpha/tutorialAlpha), text.AlignCenter)
	}

	if story.Guide > 0 && story.GuideTotal > 0 {
		alpha := guideAlpha(story.Guide, story.GuideTotal)
		c := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(alpha * 255)}
		cx := float32(tuning.ViewW * tuning.Scale / 2)
		cy := float32(tuning.ViewH * tuning.Scale / 2)
		vector.StrokeCircle(screen, cx, cy, guideRadius, 3, c, true)
	}
}

// guideAlpha fades in over the first third of the guide and out over the
// last third.
func guideAlpha(left, total int) float64 {
	fade := float64(total) / 3
	elapsed := float64(total - left)
	switch {
	case elapsed < fade:
		return elapsed / fade
	case float64(left) < fade:
		return float64(left) / fade
	}
	return 1
}

func drawEnding(screen *ebiten.Image, end *component.Ending) {
	if end.Title == "" {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colornames.Black, false)
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	drawText(screen, end.Title, cx, cy-150, 1, text.AlignCenter)
	drawText(screen, end.Summary, cx, cy-60, 1, text.AlignCenter)
	drawText(screen, end.Prompt, cx, cy+20, 1, text.AlignCenter)
}
