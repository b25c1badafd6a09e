package radial

import (
	"math"
	"testing"
)

func TestPartition_FourSegments(t *testing.T) {
	tbl := Partition(4, 10, 360)

	if !tbl.Partitioned() {
		t.Fatal("table should be partitioned")
	}
	if tbl.Width() != 90 {
		t.Errorf("Width() = %v, want 90", tbl.Width())
	}

	want := map[int][2]float64{
		0: {315, 45},
		1: {45, 135},
		2: {135, 225},
		3: {225, 315},
	}
	for slot, b := range want {
		lo, hi, ok := tbl.Bounds(slot)
		if !ok {
			t.Fatalf("slot %d has no bounds", slot)
		}
		if lo != b[0] || hi != b[1] {
			t.Errorf("Bounds(%d) = [%v, %v], want [%v, %v]", slot, lo, hi, b[0], b[1])
		}
	}
}

func TestSegment_FourSegments(t *testing.T) {
	tbl := Partition(4, 10, 360)

	tests := []struct {
		name  string
		angle float64
		want  int
	}{
		{"slot 0 right of top", 10, 0},
		{"slot 0 left of top", 350, 0},
		{"zero", 0, 0},
		{"right", 90, 1},
		{"bottom", 180, 2},
		{"left", 270, 3},
		{"slot 1 lower edge", 45, 1},
		{"slot 1 upper edge is slot 2 lower edge", 135, 2},
		{"slot 3 upper edge", 315, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tbl.Segment(tt.angle); got != tt.want {
				t.Errorf("Segment(%v) = %d, want %d", tt.angle, got, tt.want)
			}
		})
	}
}

func TestSegment_WrapsZero(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 12, 36} {
		tbl := Partition(n, 0.2, 360)
		if got := tbl.Segment(359.9); got != 0 {
			t.Errorf("n=%d: Segment(359.9) = %d, want 0", n, got)
		}
		if got := tbl.Segment(0.1); got != 0 {
			t.Errorf("n=%d: Segment(0.1) = %d, want 0", n, got)
		}
	}
}

func TestSegment_CoversCircle(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 6, 8, 9, 12, 16} {
		tbl := Partition(n, 10, 360)
		w := 360 / float64(n)
		for a := 0.0; a < 360; a += 0.5 {
			got := tbl.Segment(a)
			if n == 1 && a == 180 {
				// Single slot: 180° is both bounds of slot 0 and excluded.
				continue
			}
			if got == NoSegment {
				t.Fatalf("n=%d: Segment(%v) = NoSegment", n, a)
			}
			// The slot's center must be within half a width of the angle.
			center := float64(got) * w
			d := math.Abs(math.Mod(a-center+540, 360) - 180)
			if d > w/2+1e-9 {
				t.Errorf("n=%d: Segment(%v) = %d, center %v is %v° away", n, a, got, center, d)
			}
		}
	}
}

func TestPartition_SingleSegment(t *testing.T) {
	tbl := Partition(1, 10, 360)
	lo, hi, ok := tbl.Bounds(0)
	if !ok || lo != 180 || hi != 180 {
		t.Fatalf("Bounds(0) = [%v, %v] %v, want [180, 180] true", lo, hi, ok)
	}
	if got := tbl.Segment(90); got != 0 {
		t.Errorf("Segment(90) = %d, want 0", got)
	}
	if got := tbl.Segment(180); got != NoSegment {
		t.Errorf("Segment(180) = %d, want NoSegment", got)
	}
}

func TestPartition_ClampedToMaxAngle(t *testing.T) {
	tbl := Partition(4, 10, 60)
	if tbl.Width() != 60 {
		t.Fatalf("Width() = %v, want 60", tbl.Width())
	}

	tests := []struct {
		angle float64
		want  int
	}{
		{0, 0},
		{29, 0},
		{331, 0},
		{45, NoSegment}, // gap between slot 0 and slot 1
		{60, 1},
		{90, 1},
		{120, 1},
		{121, NoSegment},
		{180, 2},
		{270, 3},
		{310, NoSegment},
	}
	for _, tt := range tests {
		if got := tbl.Segment(tt.angle); got != tt.want {
			t.Errorf("Segment(%v) = %d, want %d", tt.angle, got, tt.want)
		}
	}
}

func TestPartition_WidthBelowMinimum(t *testing.T) {
	tbl := Partition(40, 10, 360) // 9° per slot

	if !tbl.Partitioned() {
		t.Error("table should be marked partitioned even without bounds")
	}
	if !tbl.Degenerate() {
		t.Error("table should be degenerate")
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
	for _, a := range []float64{0, 1, 90, 359} {
		if got := tbl.Segment(a); got != NoSegment {
			t.Errorf("Segment(%v) = %d, want NoSegment", a, got)
		}
	}
}

func TestPartition_NonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -3} {
		tbl := Partition(n, 10, 360)
		if !tbl.Degenerate() {
			t.Errorf("n=%d: table should be degenerate", n)
		}
		if got := tbl.Segment(10); got != NoSegment {
			t.Errorf("n=%d: Segment(10) = %d, want NoSegment", n, got)
		}
	}
}

func TestSegment_Unpartitioned(t *testing.T) {
	var tbl SegmentTable
	if got := tbl.Segment(10); got != NoSegment {
		t.Errorf("zero table Segment(10) = %d, want NoSegment", got)
	}
	var nilTable *SegmentTable
	if got := nilTable.Segment(10); got != NoSegment {
		t.Errorf("nil table Segment(10) = %d, want NoSegment", got)
	}
	if nilTable.Partitioned() {
		t.Error("nil table should not be partitioned")
	}
}

func TestSegment_Idempotent(t *testing.T) {
	tbl := Partition(6, 10, 360)
	before := tbl.Slots()
	for a := 0.0; a < 360; a += 7.3 {
		first := tbl.Segment(a)
		second := tbl.Segment(a)
		if first != second {
			t.Errorf("Segment(%v) changed between calls: %d then %d", a, first, second)
		}
	}
	after := tbl.Slots()
	if len(before) != len(after) {
		t.Fatalf("slot count changed: %d -> %d", len(before), len(after))
	}
	for _, slot := range before {
		lo0, hi0, _ := Partition(6, 10, 360).Bounds(slot)
		lo1, hi1, _ := tbl.Bounds(slot)
		if lo0 != lo1 || hi0 != hi1 {
			t.Errorf("slot %d bounds changed by reads", slot)
		}
	}
}

func TestOverride(t *testing.T) {
	tbl := Partition(4, 10, 360)
	tbl.Override(1, 30, 60)

	lo, hi, ok := tbl.Bounds(1)
	if !ok || lo != 30 || hi != 60 {
		t.Fatalf("Bounds(1) = [%v, %v] %v, want [30, 60] true", lo, hi, ok)
	}
	// Slot 0 still wins inside its own range: it is tested first.
	if got := tbl.Segment(40); got != 0 {
		t.Errorf("Segment(40) = %d, want 0", got)
	}
	if got := tbl.Segment(50); got != 1 {
		t.Errorf("Segment(50) = %d, want 1", got)
	}
	if got := tbl.Segment(90); got != NoSegment {
		t.Errorf("Segment(90) = %d, want NoSegment after override", got)
	}
}

func TestOverride_OverlapHighestSlotWins(t *testing.T) {
	tbl := Partition(4, 10, 360)
	tbl.Override(3, 100, 200) // overlaps slots 1 and 2

	if got := tbl.Segment(120); got != 3 {
		t.Errorf("Segment(120) = %d, want 3", got)
	}
	if got := tbl.Segment(60); got != 1 {
		t.Errorf("Segment(60) = %d, want 1", got)
	}
}

func TestOverride_NewSlot(t *testing.T) {
	tbl := Partition(2, 10, 360)
	tbl.Override(5, 200, 220)

	if tbl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tbl.Len())
	}
	if got := tbl.Segment(210); got != 5 {
		t.Errorf("Segment(210) = %d, want 5", got)
	}
	slots := tbl.Slots()
	want := []int{0, 1, 5}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("Slots() = %v, want %v", slots, want)
		}
	}
}

func TestOverride_DegenerateTable(t *testing.T) {
	tbl := Partition(100, 10, 360)
	tbl.Override(2, 80, 100)

	if tbl.Degenerate() {
		t.Error("table with an override should not be degenerate")
	}
	if got := tbl.Segment(90); got != 2 {
		t.Errorf("Segment(90) = %d, want 2", got)
	}
	if got := tbl.Segment(0); got != NoSegment {
		t.Errorf("Segment(0) = %d, want NoSegment", got)
	}
}

func TestMid(t *testing.T) {
	tbl := Partition(4, 10, 360)
	tbl.Override(3, 250, 290)

	tests := []struct {
		slot int
		want float64
	}{
		{0, 0},
		{1, 90},
		{2, 180},
		{3, 270},
	}
	for _, tt := range tests {
		got, ok := tbl.Mid(tt.slot)
		if !ok || !approxAngle(got, tt.want) {
			t.Errorf("Mid(%d) = %v %v, want %v", tt.slot, got, ok, tt.want)
		}
	}
	if _, ok := tbl.Mid(7); ok {
		t.Error("Mid(7) should report a missing slot")
	}

	single := Partition(1, 10, 360)
	if got, _ := single.Mid(0); !approxAngle(got, 0) {
		t.Errorf("single-slot Mid(0) = %v, want 0", got)
	}
}

func TestSegmentTable_Nil(t *testing.T) {
	var tbl *SegmentTable
	if tbl.Width() != 0 || tbl.Segments() != 0 || tbl.Len() != 0 {
		t.Errorf("nil table: Width=%v Segments=%d Len=%d, want zeros", tbl.Width(), tbl.Segments(), tbl.Len())
	}
	if tbl.Partitioned() || tbl.Degenerate() {
		t.Error("nil table reports partitioned")
	}
	if got := tbl.Segment(0); got != NoSegment {
		t.Errorf("Segment(0) = %d, want NoSegment", got)
	}
	if _, _, ok := tbl.Bounds(0); ok {
		t.Error("Bounds(0) ok on nil table")
	}
	if _, ok := tbl.Mid(0); ok {
		t.Error("Mid(0) ok on nil table")
	}
	if s := tbl.Slots(); len(s) != 0 {
		t.Errorf("Slots() = %v, want empty", s)
	}
}
