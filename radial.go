package radial

import (
	"fmt"
	"math"
)

// NoSegment is returned by segment lookups that resolve to no slot, and is
// the current segment of a menu before anything has been hovered.
const NoSegment = -1

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. Screen space has its origin at the top-left with Y
// increasing downward.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rotated returns v rotated by deg degrees.
func (v Vec2) Rotated(deg float64) Vec2 {
	if deg == 0 {
		return v
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec2{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ButtonState is the visual and logical state of a radial button.
type ButtonState uint8

const (
	StateActive          ButtonState = iota // toggled on
	StateNormal                             // available, not active
	StateDisabled                           // not available
	StateHoveredNormal                      // available and under the pointer
	StateHoveredDisabled                    // not available and under the pointer

	numButtonStates
)

var buttonStateNames = [numButtonStates]string{
	StateActive:          "active",
	StateNormal:          "normal",
	StateDisabled:        "disabled",
	StateHoveredNormal:   "hovered-normal",
	StateHoveredDisabled: "hovered-disabled",
}

func (s ButtonState) String() string {
	if s < numButtonStates {
		return buttonStateNames[s]
	}
	return fmt.Sprintf("ButtonState(%d)", uint8(s))
}

// Hovered reports whether s is one of the two hovered states.
func (s ButtonState) Hovered() bool {
	return s == StateHoveredNormal || s == StateHoveredDisabled
}

// CenterMode selects how a menu computes its center point during Setup.
type CenterMode uint8

const (
	CenterScreen  CenterMode = iota // viewport center plus offset
	CenterPointer                   // pointer position plus offset
)

func (m CenterMode) String() string {
	switch m {
	case CenterScreen:
		return "screen"
	case CenterPointer:
		return "pointer"
	default:
		return fmt.Sprintf("CenterMode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m CenterMode) MarshalText() ([]byte, error) {
	switch m {
	case CenterScreen, CenterPointer:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("unknown center mode %d", uint8(m))
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "screen" and
// "pointer" (and "mouse" as an alias for "pointer").
func (m *CenterMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "screen", "":
		*m = CenterScreen
	case "pointer", "mouse":
		*m = CenterPointer
	default:
		return fmt.Errorf("unknown center mode %q", text)
	}
	return nil
}

// EventType identifies a kind of menu event.
type EventType uint8

const (
	EventHover EventType = iota // the hovered segment changed
	EventClick                  // the menu was clicked
	EventSetup                  // Setup completed
)

func (e EventType) String() string {
	switch e {
	case EventHover:
		return "hover"
	case EventClick:
		return "click"
	case EventSetup:
		return "setup"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(e))
	}
}
