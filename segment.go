package radial

import "sort"

// SegmentTable partitions the full circle into angular ranges, one per button
// slot, and maps an angle in degrees to the slot that owns it.
//
// Slot 0 is centered on 0° and wraps around 360°. Slots 1..N-1 follow in
// increasing angle. A table is built once by Partition and is immutable
// afterwards except through Override.
type SegmentTable struct {
	segments    int
	minAngle    float64
	maxAngle    float64
	width       float64
	minBound    map[int]float64
	maxBound    map[int]float64
	order       []int // ascending slots with both bounds; nil when stale
	partitioned bool
}

// Partition builds a table of segments slots. The slot width is
// 360/segments, clamped down to maxAngle. When the width would fall below
// minAngle, or segments < 1, no bounds are written at all.
//
// The returned table is marked partitioned in every case; use Degenerate to
// tell a table without bounds apart from a usable one.
func Partition(segments int, minAngle, maxAngle float64) *SegmentTable {
	t := &SegmentTable{
		segments: segments,
		minAngle: minAngle,
		maxAngle: maxAngle,
		minBound: make(map[int]float64, max(segments, 0)),
		maxBound: make(map[int]float64, max(segments, 0)),
	}
	if segments > 0 {
		w := 360 / float64(segments)
		if w >= minAngle {
			if w > maxAngle {
				w = maxAngle
			}
			t.width = w
			t.minBound[0] = 360 - w/2
			t.maxBound[0] = w / 2
			for i := segments - 1; i > 0; i-- {
				t.minBound[i] = float64(i)*w - w/2
				t.maxBound[i] = float64(i)*w + w/2
			}
		}
	}
	t.partitioned = true
	return t
}

// Segment returns the slot owning angle (degrees, expected in [0, 360)), or
// NoSegment when the table is not partitioned or no slot contains the angle.
//
// Slot 0's wraparound range is tested first. The remaining slots are scanned
// in descending index order with inclusive bounds, so when overridden ranges
// overlap the highest slot wins.
func (t *SegmentTable) Segment(angle float64) int {
	if t == nil || !t.partitioned {
		return NoSegment
	}
	if lo, hi, ok := t.Bounds(0); ok && (angle > lo || angle < hi) {
		return 0
	}
	slots := t.sortedSlots()
	for i := len(slots) - 1; i >= 0; i-- {
		slot := slots[i]
		if slot <= 0 {
			break
		}
		if t.minBound[slot] <= angle && angle <= t.maxBound[slot] {
			return slot
		}
	}
	return NoSegment
}

// Override replaces the bounds of slot unconditionally. Overlaps with other
// slots are not checked.
func (t *SegmentTable) Override(slot int, minAngle, maxAngle float64) {
	if t.minBound == nil {
		t.minBound = make(map[int]float64)
		t.maxBound = make(map[int]float64)
	}
	t.minBound[slot] = minAngle
	t.maxBound[slot] = maxAngle
	t.order = nil
}

// Bounds returns the lower and upper angle of slot. For slot 0 the lower
// bound is greater than the upper bound because the range wraps 0°.
func (t *SegmentTable) Bounds(slot int) (minAngle, maxAngle float64, ok bool) {
	if t == nil {
		return 0, 0, false
	}
	lo, okLo := t.minBound[slot]
	hi, okHi := t.maxBound[slot]
	if !okLo || !okHi {
		return 0, 0, false
	}
	return lo, hi, true
}

// Mid returns the angle halfway through slot's range, following the
// wraparound for slot 0.
func (t *SegmentTable) Mid(slot int) (float64, bool) {
	lo, hi, ok := t.Bounds(slot)
	if !ok {
		return 0, false
	}
	span := hi - lo
	if span <= 0 {
		span += 360
	}
	return foldAngle(lo + span/2), true
}

// Slots returns every slot that has bounds, in ascending order.
func (t *SegmentTable) Slots() []int {
	return append([]int(nil), t.sortedSlots()...)
}

func (t *SegmentTable) sortedSlots() []int {
	if t == nil {
		return nil
	}
	if t.order != nil {
		return t.order
	}
	t.order = make([]int, 0, len(t.minBound))
	for slot := range t.minBound {
		if _, ok := t.maxBound[slot]; ok {
			t.order = append(t.order, slot)
		}
	}
	sort.Ints(t.order)
	return t.order
}

// Partitioned reports whether Partition has run on this table.
func (t *SegmentTable) Partitioned() bool {
	return t != nil && t.partitioned
}

// Degenerate reports whether the table is partitioned but owns no bounds,
// which happens when the requested width fell below the minimum angle or
// the segment count was not positive. Every lookup on such a table misses.
func (t *SegmentTable) Degenerate() bool {
	return t.Partitioned() && t.Len() == 0
}

// Len returns the number of slots with bounds.
func (t *SegmentTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.sortedSlots())
}

// Width returns the computed per-slot width in degrees, or 0 if Partition
// wrote no bounds.
func (t *SegmentTable) Width() float64 {
	if t == nil {
		return 0
	}
	return t.width
}

// Segments returns the slot count the table was partitioned for, or 0 for a
// nil table.
func (t *SegmentTable) Segments() int {
	if t == nil {
		return 0
	}
	return t.segments
}
