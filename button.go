package radial

// Button is the menu's record of one ButtonWidget: its slot and its current
// state. State changes go through ChangeState so the host is restyled.
type Button struct {
	Widget ButtonWidget

	slot  int
	state ButtonState
	host  Host
}

func newButton(w ButtonWidget, host Host) *Button {
	return &Button{Widget: w, slot: w.Slot(), state: StateNormal, host: host}
}

// Slot returns the segment this button occupies.
func (b *Button) Slot() int { return b.slot }

// State returns the button's current state.
func (b *Button) State() ButtonState { return b.state }

// ChangeState sets the state unconditionally and restyles the widget.
// Out-of-range states are treated as StateDisabled.
func (b *Button) ChangeState(state ButtonState) {
	if state >= numButtonStates {
		state = StateDisabled
	}
	b.state = state
	b.Refresh()
}

// Refresh re-applies the visual for the current state.
func (b *Button) Refresh() {
	if b.host != nil {
		b.host.SetVisual(b.Widget, b.state)
	}
}

// hoverEnter moves Normal and Disabled into their hovered variants. Active
// buttons are never shown as hovered.
func (b *Button) hoverEnter() {
	switch b.state {
	case StateNormal:
		b.ChangeState(StateHoveredNormal)
	case StateDisabled:
		b.ChangeState(StateHoveredDisabled)
	}
}

// hoverExit undoes hoverEnter; other states are left alone.
func (b *Button) hoverExit() {
	switch b.state {
	case StateHoveredNormal:
		b.ChangeState(StateNormal)
	case StateHoveredDisabled:
		b.ChangeState(StateDisabled)
	}
}
