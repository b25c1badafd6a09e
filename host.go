package radial

// Host is the UI framework a menu lives in. The menu reads the viewport size
// to center itself, enumerates its buttons once per Setup, and pushes state
// changes back so the host can restyle them.
type Host interface {
	// ViewportSize returns the size of the screen area the menu is drawn in.
	ViewportSize() (w, h float64)
	// ForEachChild calls visit for every button widget owned by the menu.
	ForEachChild(visit func(ButtonWidget))
	// SetVisual restyles w for state.
	SetVisual(w ButtonWidget, state ButtonState)
}

// ButtonWidget is a host-side child that can be placed in a menu slot.
// Widgets with a negative slot are ignored by Setup. Implementations must be
// comparable, typically a pointer type.
type ButtonWidget interface {
	Slot() int
	// Clicked is called when the menu is clicked while this widget's
	// segment is hovered.
	Clicked()
}

// InputSource supplies the pointer position and the click binding.
type InputSource interface {
	// CursorPosition returns the pointer in screen coordinates. ok is false
	// when no pointer is available.
	CursorPosition() (x, y float64, ok bool)
	// BindClick registers fn to run on the select input (a primary button
	// press). The returned Binding releases it.
	BindClick(fn func()) Binding
}

// Binding is a registered input or callback that can be released.
type Binding interface {
	Remove()
}

// Listener receives menu notifications. At most one OnHover is delivered per
// segment change and at most one OnClick per click.
type Listener interface {
	OnHover(m *Menu)
	OnClick(m *Menu)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Hover func(m *Menu)
	Click func(m *Menu)
}

// OnHover implements Listener.
func (l ListenerFuncs) OnHover(m *Menu) {
	if l.Hover != nil {
		l.Hover(m)
	}
}

// OnClick implements Listener.
func (l ListenerFuncs) OnClick(m *Menu) {
	if l.Click != nil {
		l.Click(m)
	}
}

// EventStore is the interface for optional ECS integration.
// When set on a Menu, hover and click events are forwarded to it.
type EventStore interface {
	EmitEvent(event MenuEvent)
}

// MenuEvent carries menu event data for the ECS bridge.
type MenuEvent struct {
	Type  EventType
	Menu  string
	Slot  int
	Angle float64
	State ButtonState // state of the button in Slot after the event
}
