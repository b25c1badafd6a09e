package radial

// syntheticEvent represents a single injected frame of input. Screen
// coordinates are used, identical to real mouse input.
type syntheticEvent struct {
	cursorX, cursorY float64
	hasCursor        bool
	stickX, stickY   float64 // raw ebiten axes, X right, Y down
	pressed          bool
}

// InjectMove queues a frame with the pointer at (x, y) and the select button
// up. The event is consumed on the next Update.
func (in *EbitenInput) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{
		cursorX: x, cursorY: y, hasCursor: true,
	})
}

// InjectPress queues a frame with the pointer at (x, y) and the select
// button down.
func (in *EbitenInput) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{
		cursorX: x, cursorY: y, hasCursor: true,
		pressed: true,
	})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same screen coordinates. Consumes two frames.
func (in *EbitenInput) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectMove(x, y)
}

// InjectStick queues frames with the stick held at raw axes (x, y), X right
// and Y down as ebiten reports them, and no pointer. Minimum frames is 1.
func (in *EbitenInput) InjectStick(x, y float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		in.injectQueue = append(in.injectQueue, syntheticEvent{stickX: x, stickY: y})
	}
}

// InjectSweep queues a pointer sweep from (fromX, fromY) to (toX, toY),
// linearly interpolated over frames frames. Minimum frames is 2.
func (in *EbitenInput) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of injected frames not yet consumed.
func (in *EbitenInput) Pending() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (in *EbitenInput) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	if evt.hasCursor {
		in.cursorX, in.cursorY, in.hasCursor = evt.cursorX, evt.cursorY, true
	}
	in.setStick(evt.stickX, evt.stickY)
	in.setPressed(evt.pressed)
	return true
}
