package radial

import "sort"

// Menu is a radial selection menu. It owns the segment table and the button
// records for one host, resolves the pointer or stick to a segment every
// tick, and drives button hover states and notifications.
//
// A Menu is inert until Setup. It is not safe for concurrent use; call it
// from the game loop.
type Menu struct {
	name  string
	cfg   Config
	host  Host
	input InputSource
	log   Logger

	listener Listener
	store    EventStore
	handlers handlerRegistry
	binding  Binding
	debug    bool

	table   *SegmentTable
	buttons map[int]*Button
	order   []int // ascending slots of buttons

	active        bool
	current       int
	center        Vec2
	centerPending bool // CenterPointer found no pointer yet
}

// NewMenu creates a menu. input may be nil, in which case no pointer is ever
// available and only TickGamepad can select. A nil logger writes to stderr.
func NewMenu(name string, cfg Config, host Host, input InputSource, logger Logger) *Menu {
	if logger == nil {
		logger = defaultLogger
	}
	return &Menu{
		name:    name,
		cfg:     cfg,
		host:    host,
		input:   input,
		log:     logger,
		buttons: make(map[int]*Button),
		current: NoSegment,
	}
}

// Setup partitions the circle, registers the host's buttons, binds the click
// input, activates the menu and computes its center. Calling it again
// re-registers buttons and rebinds input.
func (m *Menu) Setup() {
	m.table = Partition(m.cfg.Segments, m.cfg.MinSegmentAngle, m.cfg.MaxSegmentAngle)
	m.warnPartition()
	for _, o := range m.cfg.Overrides {
		m.table.Override(o.Slot, o.MinAngle, o.MaxAngle)
	}
	m.collectButtons()
	m.bindDefaultInput()
	m.active = true
	m.current = NoSegment
	m.UpdateCenter()
	m.debugDumpTable()

	for _, h := range m.handlers.setup {
		h.fn(m)
	}
	m.emit(EventSetup, NoSegment, 0)
}

// collectButtons rebuilds the slot→button map from the host's children.
// Widgets already known to the menu keep their state.
func (m *Menu) collectButtons() {
	prev := make(map[ButtonWidget]*Button, len(m.buttons))
	for _, b := range m.buttons {
		prev[b.Widget] = b
	}
	clear(m.buttons)
	m.order = m.order[:0]
	if m.host == nil {
		return
	}
	m.host.ForEachChild(func(w ButtonWidget) {
		if w == nil {
			return
		}
		slot := w.Slot()
		if slot < 0 {
			return
		}
		if _, dup := m.buttons[slot]; dup {
			m.warnDuplicateSlot(slot)
		} else {
			m.order = append(m.order, slot)
		}
		b, ok := prev[w]
		if ok && b.slot == slot {
			// Setup clears the current segment, so no kept button may stay
			// hovered. Active and Disabled survive.
			b.hoverExit()
			b.Refresh()
		} else {
			b = newButton(w, m.host)
			b.Refresh()
		}
		m.buttons[slot] = b
	})
	sort.Ints(m.order)
}

// bindDefaultInput binds the select input to Click, releasing any binding
// from an earlier Setup.
func (m *Menu) bindDefaultInput() {
	if m.binding != nil {
		m.binding.Remove()
		m.binding = nil
	}
	if m.input != nil {
		m.binding = m.input.BindClick(m.Click)
	}
}

// Deactivate releases the input binding and deactivates the menu.
func (m *Menu) Deactivate() {
	if m.binding != nil {
		m.binding.Remove()
		m.binding = nil
	}
	m.active = false
}

// SetActive gates all interaction without touching bindings. Useful when
// several menus share one screen.
func (m *Menu) SetActive(active bool) {
	m.active = active
}

// Active reports whether the menu reacts to input.
func (m *Menu) Active() bool { return m.active }

// --- Center and angle ---

// UpdateCenter recomputes the menu center from the configured center mode.
// The center is left unchanged when its source is unavailable. For
// CenterPointer that is common at Setup, since an EbitenInput has no cursor
// before its first Update; the next Tick that sees a pointer then takes the
// center from it.
func (m *Menu) UpdateCenter() {
	m.centerPending = false
	switch m.cfg.CenterMode {
	case CenterScreen:
		if m.host == nil {
			return
		}
		w, h := m.host.ViewportSize()
		m.center = ScreenCenter(w, h, m.cfg.CenterOffset)
	case CenterPointer:
		if p, ok := m.pointer(); ok {
			m.center = PointerCenter(p, m.cfg.CenterOffset)
		} else {
			m.centerPending = true
		}
	}
}

// Center returns the point angles are measured around.
func (m *Menu) Center() Vec2 { return m.center }

func (m *Menu) pointer() (Vec2, bool) {
	if m.input == nil {
		return Vec2{}, false
	}
	x, y, ok := m.input.CursorPosition()
	return Vec2{x, y}, ok
}

// Angle returns the pointer angle around the center, or 0 when no pointer is
// available.
func (m *Menu) Angle() float64 {
	p, ok := m.pointer()
	if !ok {
		return 0
	}
	return AngleFromPointer(p, m.center, m.cfg.StartRotation, m.cfg.Clockwise)
}

// OutsideDeadZone reports whether the pointer is far enough from the center
// to select. It is false when no pointer is available.
func (m *Menu) OutsideDeadZone() bool {
	p, ok := m.pointer()
	if !ok {
		return false
	}
	return OutsideDeadZone(p, m.center, m.cfg.DeadZoneRadius)
}

// Segment returns the slot owning angle, or NoSegment. Before Setup every
// angle resolves to NoSegment.
func (m *Menu) Segment(angle float64) int {
	return m.table.Segment(angle)
}

// --- Per-frame selection ---

// Tick updates the hovered segment from the pointer. Call it once per frame.
func (m *Menu) Tick() {
	if !m.active {
		return
	}
	if m.centerPending {
		m.UpdateCenter()
	}
	if !m.OutsideDeadZone() {
		return
	}
	angle := m.Angle()
	m.selectSegment(m.Segment(angle), angle)
}

// TickGamepad updates the hovered segment from a thumbstick deflection. A
// centered stick changes nothing. There is no dead zone beyond that; filter
// noisy axes before calling.
func (m *Menu) TickGamepad(x, y float64) {
	if !m.active {
		return
	}
	angle, ok := AngleFromStick(x, y, m.cfg.Clockwise)
	if !ok {
		return
	}
	m.selectSegment(m.Segment(angle), angle)
}

// selectSegment moves the hover to slot when it differs from the current one
// and a button occupies it. It reports whether the hover changed.
func (m *Menu) selectSegment(slot int, angle float64) bool {
	if slot == m.current {
		return false
	}
	next, ok := m.buttons[slot]
	if !ok {
		return false
	}
	for _, s := range m.order {
		m.buttons[s].hoverExit()
	}
	prev := m.current
	m.current = slot
	next.hoverEnter()
	m.debugHover(prev, slot, angle)

	if m.listener != nil {
		m.listener.OnHover(m)
	}
	ctx := HoverContext{Menu: m, Button: next, Slot: slot, Previous: prev, Angle: angle}
	for _, h := range m.handlers.hover {
		h.fn(ctx)
	}
	m.emit(EventHover, slot, angle)
	return true
}

// Click delivers a click to the listener, the hovered button and the OnClick
// callbacks, in that order. When nothing is hovered only the listener and
// the callbacks run. Inactive menus ignore clicks.
func (m *Menu) Click() {
	if !m.active {
		return
	}
	m.debugClick(m.current)
	if m.listener != nil {
		m.listener.OnClick(m)
	}
	ctx := ClickContext{Menu: m, Slot: NoSegment}
	if b, ok := m.buttons[m.current]; ok {
		b.Widget.Clicked()
		ctx.Button = b
		ctx.Slot = m.current
	}
	for _, h := range m.handlers.click {
		h.fn(ctx)
	}
	m.emit(EventClick, ctx.Slot, 0)
}

// --- Button state ---

// Activate forces the button in slot to StateActive. It does nothing while
// the menu is inactive or when the slot is empty.
func (m *Menu) Activate(slot int) {
	if b, ok := m.buttons[slot]; ok && m.active {
		b.ChangeState(StateActive)
	}
}

// Disable forces the button in slot to StateDisabled. It does nothing while
// the menu is inactive or when the slot is empty.
func (m *Menu) Disable(slot int) {
	if b, ok := m.buttons[slot]; ok && m.active {
		b.ChangeState(StateDisabled)
	}
}

// DeactivateAll returns every active button to StateNormal.
func (m *Menu) DeactivateAll() {
	for _, s := range m.order {
		if b := m.buttons[s]; b.state == StateActive {
			b.ChangeState(StateNormal)
		}
	}
}

// ManualOverride replaces the angular bounds of one slot after Setup. It is
// a no-op before Setup.
func (m *Menu) ManualOverride(slot int, minAngle, maxAngle float64) {
	if m.table == nil {
		return
	}
	m.table.Override(slot, minAngle, maxAngle)
}

// --- Accessors ---

// Name returns the name given to NewMenu.
func (m *Menu) Name() string { return m.name }

// Config returns the menu's configuration.
func (m *Menu) Config() Config { return m.cfg }

// Table returns the segment table built by Setup, or nil before Setup.
func (m *Menu) Table() *SegmentTable { return m.table }

// CurrentSegment returns the hovered slot, or NoSegment.
func (m *Menu) CurrentSegment() int { return m.current }

// Button returns the button registered for slot.
func (m *Menu) Button(slot int) (*Button, bool) {
	b, ok := m.buttons[slot]
	return b, ok
}

// Buttons returns the registered buttons in ascending slot order.
func (m *Menu) Buttons() []*Button {
	out := make([]*Button, 0, len(m.order))
	for _, s := range m.order {
		out = append(out, m.buttons[s])
	}
	return out
}

// SetListener sets the listener that receives OnHover and OnClick. Pass nil
// to remove it.
func (m *Menu) SetListener(l Listener) {
	m.listener = l
}

// SetEventStore sets the optional ECS bridge.
func (m *Menu) SetEventStore(store EventStore) {
	m.store = store
}

// SetLogger replaces the logger. nil restores the stderr logger.
func (m *Menu) SetLogger(l Logger) {
	if l == nil {
		l = defaultLogger
	}
	m.log = l
}

func (m *Menu) emit(typ EventType, slot int, angle float64) {
	if m.store == nil {
		return
	}
	ev := MenuEvent{Type: typ, Menu: m.name, Slot: slot, Angle: angle}
	if b, ok := m.buttons[slot]; ok {
		ev.State = b.state
	}
	m.store.EmitEvent(ev)
}
