package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climb/ecs"
	"github.com/milk9111/climb/ecs/component"
)

// InputSource is the device the input system samples each frame.
type InputSource interface {
	Pointer() (int, int)
	Pressed() bool
	JustPressed() bool
	JustReleased() bool
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
}

// EbitenInput reads the left mouse button, or the first touch, and the
// keyboard.
type EbitenInput struct {
	touches []ebiten.TouchID
	// released defaults to inpututil.AppendJustReleasedTouchIDs.
	released func([]ebiten.TouchID) []ebiten.TouchID
}

func (in *EbitenInput) Pointer() (int, int) {
	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	if len(in.touches) > 0 {
		return ebiten.TouchPosition(in.touches[0])
	}
	return ebiten.CursorPosition()
}

func (in *EbitenInput) Pressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || len(in.touches) > 0
}

func (in *EbitenInput) JustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (in *EbitenInput) JustReleased() bool {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return true
	}
	released := in.released
	if released == nil {
		released = inpututil.AppendJustReleasedTouchIDs
	}
	return len(released(nil)) > 0
}

func (in *EbitenInput) KeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (in *EbitenInput) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

var actionKeys = []struct {
	key    ebiten.Key
	action component.Action
}{
	{ebiten.KeyEscape, component.ActionRespawn},
	{ebiten.KeyEnter, component.ActionConfirm},
	{ebiten.KeyBackquote, component.ActionDebugToggle},
	{ebiten.KeyG, component.ActionGrid},
	{ebiten.KeyF, component.ActionFreeMove},
	{ebiten.KeyB, component.ActionBrush},
	{ebiten.KeyBracketLeft, component.ActionBrushPrev},
	{ebiten.KeyBracketRight, component.ActionBrushNext},
	{ebiten.KeyV, component.ActionBrushHalf},
	{ebiten.KeyX, component.ActionBrushSide},
	{ebiten.KeyL, component.ActionLongArm},
	{ebiten.KeyH, component.ActionHitboxes},
	{ebiten.KeyT, component.ActionTeleport},
	{ebiten.Key1, component.ActionGravity},
	{ebiten.Key2, component.ActionFriction},
	{ebiten.Key3, component.ActionBounds},
	{ebiten.Key4, component.ActionLanes},
}

type InputSystem struct {
	src InputSource
}

func NewInputSystem(src InputSource) *InputSystem {
	if src == nil {
		src = &EbitenInput{}
	}
	return &InputSystem{src: src}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	sx, sy := i.src.Pointer()
	screen := cp.Vector{X: float64(sx), Y: float64(sy)}

	scale := 1.0
	if _, tuning, ok := ecs.Single(w, component.TuningComponent.Kind()); ok && tuning.Scale > 0 {
		scale = tuning.Scale
	}
	camY := 0.0
	if _, cam, ok := ecs.Single(w, component.CameraComponent.Kind()); ok {
		camY = cam.Y
	}

	var actions component.Action
	for _, b := range actionKeys {
		if i.src.KeyJustPressed(b.key) {
			actions |= b.action
		}
	}

	var move cp.Vector
	if i.src.KeyPressed(ebiten.KeyArrowLeft) {
		move.X--
	}
	if i.src.KeyPressed(ebiten.KeyArrowRight) {
		move.X++
	}
	if i.src.KeyPressed(ebiten.KeyArrowUp) {
		move.Y--
	}
	if i.src.KeyPressed(ebiten.KeyArrowDown) {
		move.Y++
	}

	pressed := i.src.Pressed()
	justPressed := i.src.JustPressed()
	justReleased := i.src.JustReleased()

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Screen = screen
		input.Pointer = cp.Vector{X: screen.X / scale, Y: screen.Y/scale + camY}
		input.Pressed = pressed
		input.JustPressed = justPressed
		input.JustReleased = justReleased
		input.Actions = actions
		input.Move = move
	})
}
