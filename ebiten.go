package radial

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultStickDeadZone = 0.25 // axis magnitude

// EbitenInput is an InputSource backed by ebiten's mouse and the first
// connected standard-layout gamepad. Call Update once per frame from the
// game's Update, before ticking menus.
//
// The select input is the left mouse button or the gamepad's bottom face
// button; bound click callbacks fire on the frame it goes down.
type EbitenInput struct {
	// StickDeadZone is the stick magnitude below which the stick reads as
	// centered.
	StickDeadZone float64

	cursorX, cursorY float64
	hasCursor        bool
	stickX, stickY   float64
	hasStick         bool
	down             bool

	handlers    handlerRegistry
	gamepadIDs  []ebiten.GamepadID
	injectQueue []syntheticEvent
	testRunner  *TestRunner
}

// NewEbitenInput creates an input source with the default stick dead zone.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{StickDeadZone: defaultStickDeadZone}
}

// CursorPosition implements InputSource.
func (in *EbitenInput) CursorPosition() (x, y float64, ok bool) {
	return in.cursorX, in.cursorY, in.hasCursor
}

// BindClick implements InputSource.
func (in *EbitenInput) BindClick(fn func()) Binding {
	return in.handlers.addPress(fn)
}

// Stick returns the stick deflection of the last Update in the axis
// convention TickGamepad expects, or false when the stick is inside the dead
// zone or no gamepad is connected.
func (in *EbitenInput) Stick() (x, y float64, ok bool) {
	return in.stickX, in.stickY, in.hasStick
}

// Feed drives m for this frame: the stick when it is deflected, otherwise
// the pointer.
func (in *EbitenInput) Feed(m *Menu) {
	if x, y, ok := in.Stick(); ok {
		m.TickGamepad(x, y)
		return
	}
	m.Tick()
}

// Update polls ebiten (or consumes one injected event) and fires click
// bindings on a press edge.
func (in *EbitenInput) Update() {
	if in.testRunner != nil {
		in.testRunner.step(in)
	}
	if in.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	in.cursorX, in.cursorY = float64(mx), float64(my)
	in.hasCursor = true

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.stickX, in.stickY, in.hasStick = 0, 0, false
	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])
	for _, id := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		sx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		sy := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		in.setStick(sx, sy)
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			pressed = true
		}
		break
	}
	in.setPressed(pressed)
}

// setStick stores an ebiten stick reading (X right, Y down). The stick angle
// formula measures X mirrored relative to the pointer, so X is negated here
// to make a physical direction select the same slot as the cursor would.
func (in *EbitenInput) setStick(sx, sy float64) {
	if math.Hypot(sx, sy) < in.StickDeadZone {
		in.stickX, in.stickY, in.hasStick = 0, 0, false
		return
	}
	in.stickX, in.stickY, in.hasStick = -sx, sy, true
}

// setPressed runs the select-button state machine.
func (in *EbitenInput) setPressed(pressed bool) {
	if pressed && !in.down {
		in.down = true
		for _, h := range in.handlers.press {
			h.fn()
		}
		return
	}
	if !pressed {
		in.down = false
	}
}
