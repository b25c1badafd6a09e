package radial

// Looks holds one color per ButtonState.
type Looks [numButtonStates]Color

// DefaultLooks is a neutral palette: grey buttons, light hover, green active.
var DefaultLooks = Looks{
	StateActive:          {R: 0.3, G: 0.8, B: 0.4, A: 1},
	StateNormal:          {R: 0.35, G: 0.35, B: 0.4, A: 1},
	StateDisabled:        {R: 0.2, G: 0.2, B: 0.2, A: 0.6},
	StateHoveredNormal:   {R: 0.6, G: 0.6, B: 0.7, A: 1},
	StateHoveredDisabled: {R: 0.35, G: 0.25, B: 0.25, A: 0.8},
}

// ColorButton is a ButtonWidget whose visual is a single color picked from
// Looks by state. WidgetHost keeps Color up to date.
type ColorButton struct {
	Label     string
	Position  int // slot; negative keeps the button out of the menu
	Looks     Looks
	Color     Color // current color, set by SetVisual
	OnClicked func(b *ColorButton)
}

// NewColorButton creates a button for slot with DefaultLooks.
func NewColorButton(label string, slot int) *ColorButton {
	return &ColorButton{
		Label:    label,
		Position: slot,
		Looks:    DefaultLooks,
		Color:    DefaultLooks[StateNormal],
	}
}

// Slot implements ButtonWidget.
func (b *ColorButton) Slot() int { return b.Position }

// Clicked implements ButtonWidget.
func (b *ColorButton) Clicked() {
	if b.OnClicked != nil {
		b.OnClicked(b)
	}
}

// WidgetHost is a minimal Host for ebiten games: a fixed list of
// ColorButtons and the current layout size.
type WidgetHost struct {
	Width, Height float64
	Buttons       []*ColorButton
}

// Add appends buttons to the host. Call Menu.Setup afterwards to register
// them.
func (h *WidgetHost) Add(buttons ...*ColorButton) {
	h.Buttons = append(h.Buttons, buttons...)
}

// Layout records the screen size; call it from the game's Layout.
func (h *WidgetHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.Width, h.Height = float64(outsideWidth), float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// ViewportSize implements Host.
func (h *WidgetHost) ViewportSize() (w, hgt float64) {
	return h.Width, h.Height
}

// ForEachChild implements Host.
func (h *WidgetHost) ForEachChild(visit func(ButtonWidget)) {
	for _, b := range h.Buttons {
		if b != nil {
			visit(b)
		}
	}
}

// SetVisual implements Host. Widgets other than *ColorButton are ignored.
func (h *WidgetHost) SetVisual(w ButtonWidget, state ButtonState) {
	if b, ok := w.(*ColorButton); ok && state < numButtonStates {
		b.Color = b.Looks[state]
	}
}
