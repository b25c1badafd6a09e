package radial

import "math"

const radToDeg = 180 / math.Pi

// AngleFromPointer returns the angle in [0, 360) of pointer around center,
// in the convention used by SegmentTable: 0° points up and angles grow
// clockwise when clockwise is true, counter-clockwise otherwise. The offset
// vector is first rotated by rotation degrees, which turns where slot 0
// sits on the circle.
func AngleFromPointer(pointer, center Vec2, rotation float64, clockwise bool) float64 {
	v := pointer.Sub(center).Rotated(rotation)
	// X and Y are swapped on purpose so that 0° is straight up.
	alpha := math.Atan2(v.X, v.Y) * radToDeg
	return foldAngle(orient(alpha, clockwise))
}

// ScreenDirection is the inverse of AngleFromPointer: it returns the unit
// screen-space vector that a pointer would have to point along, relative to
// the center, to produce angle.
func ScreenDirection(angle, rotation float64, clockwise bool) Vec2 {
	sin, cos := math.Sincos(angle / radToDeg)
	if !clockwise {
		sin = -sin
	}
	return Vec2{X: sin, Y: -cos}.Rotated(-rotation)
}

// AngleFromStick returns the angle of a thumbstick deflection, or false when
// the stick is centered. The stick path ignores the menu's start rotation.
//
// x and y are the stick axes as the ebiten adapter reports them (see
// EbitenInput.Stick): the result for a given physical direction matches the
// pointer angle of the same direction.
func AngleFromStick(x, y float64, clockwise bool) (float64, bool) {
	if math.Hypot(x, y) <= 0 {
		return 0, false
	}
	yaw := math.Atan2(y, x) * radToDeg
	return foldAngle(orient(yaw-90, clockwise)), true
}

// orient maps an atan2 result in (-180, 180] onto [0, 360] with the winding
// direction baked in.
func orient(alpha float64, clockwise bool) float64 {
	if clockwise {
		return -(alpha - 180)
	}
	return alpha + 180
}

func foldAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// OutsideDeadZone reports whether pointer is farther than radius from center.
// Selection only happens outside the dead zone.
func OutsideDeadZone(pointer, center Vec2, radius float64) bool {
	return pointer.Sub(center).Len() > radius
}

// ScreenCenter returns the center of a w×h viewport shifted by offset.
// Offset X points right and offset Y points up.
func ScreenCenter(w, h float64, offset Vec2) Vec2 {
	return Vec2{X: w/2 + offset.X, Y: h/2 - offset.Y}
}

// PointerCenter returns pointer shifted by offset, with the same axis
// convention as ScreenCenter.
func PointerCenter(pointer, offset Vec2) Vec2 {
	return Vec2{X: pointer.X + offset.X, Y: pointer.Y - offset.Y}
}
