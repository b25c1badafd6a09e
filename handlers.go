package radial

// HoverContext carries hover event data.
type HoverContext struct {
	Menu     *Menu
	Button   *Button
	Slot     int
	Previous int // slot hovered before this change, or NoSegment
	Angle    float64
}

// ClickContext carries click event data. Button is nil and Slot is
// NoSegment when nothing was hovered.
type ClickContext struct {
	Menu   *Menu
	Button *Button
	Slot   int
}

// --- Handler registry ---

type hoverHandler struct {
	id uint32
	fn func(HoverContext)
}

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type menuHandler struct {
	id uint32
	fn func(*Menu)
}

type pressHandler struct {
	id uint32
	fn func()
}

type handlerRegistry struct {
	hover  []hoverHandler
	click  []clickHandler
	setup  []menuHandler
	press  []pressHandler
	nextID uint32
}

// handlerKind selects the slice a CallbackHandle belongs to.
type handlerKind uint8

const (
	kindHover handlerKind = iota
	kindClick
	kindSetup
	kindPress
)

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing a zero CallbackHandle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case kindHover:
		h.reg.hover = removeHandler(h.reg.hover, h.id, func(x hoverHandler) uint32 { return x.id })
	case kindClick:
		h.reg.click = removeHandler(h.reg.click, h.id, func(x clickHandler) uint32 { return x.id })
	case kindSetup:
		h.reg.setup = removeHandler(h.reg.setup, h.id, func(x menuHandler) uint32 { return x.id })
	case kindPress:
		h.reg.press = removeHandler(h.reg.press, h.id, func(x pressHandler) uint32 { return x.id })
	}
}

// removeHandler returns s without the entry carrying id, keeping order. The
// result is a fresh slice: dispatch loops ranging over the old one while a
// callback removes itself or a sibling still see every original entry.
func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			out := make([]T, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func (r *handlerRegistry) addHover(fn func(HoverContext)) CallbackHandle {
	r.nextID++
	r.hover = append(r.hover, hoverHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: kindHover}
}

func (r *handlerRegistry) addClick(fn func(ClickContext)) CallbackHandle {
	r.nextID++
	r.click = append(r.click, clickHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: kindClick}
}

func (r *handlerRegistry) addSetup(fn func(*Menu)) CallbackHandle {
	r.nextID++
	r.setup = append(r.setup, menuHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: kindSetup}
}

func (r *handlerRegistry) addPress(fn func()) CallbackHandle {
	r.nextID++
	r.press = append(r.press, pressHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: kindPress}
}

// --- Menu-level event registration ---

// OnHover registers a callback for hovered-segment changes. It runs after
// the Listener.
func (m *Menu) OnHover(fn func(HoverContext)) CallbackHandle {
	return m.handlers.addHover(fn)
}

// OnClick registers a callback for clicks. It runs after the Listener and
// the hovered button's own Clicked.
func (m *Menu) OnClick(fn func(ClickContext)) CallbackHandle {
	return m.handlers.addClick(fn)
}

// OnSetup registers a callback that runs at the end of every Setup.
func (m *Menu) OnSetup(fn func(*Menu)) CallbackHandle {
	return m.handlers.addSetup(fn)
}
