package radial

import (
	"log"
	"os"
)

// Logger receives configuration warnings and, in debug mode, a trace of
// segment changes. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// defaultLogger writes tagged lines to stderr.
var defaultLogger Logger = log.New(os.Stderr, "[radial] ", 0)

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// NopLogger returns a Logger that discards all output.
func NopLogger() Logger { return nopLogger{} }

// SetDebugMode enables or disables debug mode. When enabled, the partition
// table is dumped after Setup and every hover and click is traced through
// the menu's Logger.
func (m *Menu) SetDebugMode(enabled bool) {
	m.debug = enabled
}

// warnPartition reports a table that resolves no segments.
func (m *Menu) warnPartition() {
	if !m.table.Degenerate() {
		return
	}
	if m.cfg.Segments < 1 {
		m.log.Printf("menu %q: segment count %d is below 1; no segment can be selected",
			m.name, m.cfg.Segments)
		return
	}
	m.log.Printf("menu %q: segment width %.2f° is below the minimum %.2f°; no segment can be selected",
		m.name, 360/float64(m.cfg.Segments), m.cfg.MinSegmentAngle)
}

// warnDuplicateSlot reports two widgets claiming the same slot.
func (m *Menu) warnDuplicateSlot(slot int) {
	m.log.Printf("menu %q: more than one button uses slot %d; slots must be unique", m.name, slot)
}

// debugDumpTable prints the bounds of every slot.
func (m *Menu) debugDumpTable() {
	if !m.debug {
		return
	}
	m.log.Printf("menu %q: %d slots, width %.2f°", m.name, m.table.Len(), m.table.Width())
	for _, slot := range m.table.Slots() {
		lo, hi, _ := m.table.Bounds(slot)
		_, hasButton := m.buttons[slot]
		m.log.Printf("menu %q:   slot %d [%.2f, %.2f] button=%v", m.name, slot, lo, hi, hasButton)
	}
}

func (m *Menu) debugHover(prev, next int, angle float64) {
	if m.debug {
		m.log.Printf("menu %q: hover %d -> %d at %.2f°", m.name, prev, next, angle)
	}
}

func (m *Menu) debugClick(slot int) {
	if m.debug {
		m.log.Printf("menu %q: click on slot %d", m.name, slot)
	}
}
