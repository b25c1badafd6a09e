package radial

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a menu reads during Setup and Tick.
type Config struct {
	// Segments is the number of buttons the circle is divided into.
	Segments int `yaml:"segments"`
	// MinSegmentAngle is the smallest acceptable slot width in degrees. If
	// 360/Segments is smaller, the menu gets no segments at all.
	MinSegmentAngle float64 `yaml:"minSegmentAngle"`
	// MaxSegmentAngle caps the slot width. Leave at 360 to split the full
	// circle; smaller values leave gaps between slots.
	MaxSegmentAngle float64 `yaml:"maxSegmentAngle"`
	// DeadZoneRadius is the pointer distance from the center below which
	// nothing is selected.
	DeadZoneRadius float64 `yaml:"deadZoneRadius"`

	CenterMode   CenterMode `yaml:"centerMode"`
	CenterOffset Vec2       `yaml:"centerOffset"` // X right, Y up

	// StartRotation turns slot 0 away from the 12 o'clock position, in
	// degrees. Only the pointer path applies it.
	StartRotation float64 `yaml:"startRotation"`
	Clockwise     bool    `yaml:"clockwise"`

	// Overrides are applied to the segment table after partitioning.
	Overrides []SegmentOverride `yaml:"overrides,omitempty"`
}

// SegmentOverride replaces the automatic bounds of one slot.
type SegmentOverride struct {
	Slot     int     `yaml:"slot"`
	MinAngle float64 `yaml:"min"`
	MaxAngle float64 `yaml:"max"`
}

// DefaultConfig returns a single-segment, full-circle, clockwise menu
// centered on the screen.
func DefaultConfig() Config {
	return Config{
		Segments:        1,
		MinSegmentAngle: 10,
		MaxSegmentAngle: 360,
		CenterMode:      CenterScreen,
		Clockwise:       true,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted keys keep
// their defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse menu config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid menu config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML menu config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read menu config: %w", err)
	}
	return ParseConfig(data)
}

// Validate rejects values that cannot describe a menu. A segment count or
// minimum angle that leaves the menu without segments is not an error; Setup
// logs it and keeps running.
func (c Config) Validate() error {
	if c.DeadZoneRadius < 0 {
		return fmt.Errorf("deadZoneRadius must not be negative, got %v", c.DeadZoneRadius)
	}
	if c.MinSegmentAngle < 0 {
		return fmt.Errorf("minSegmentAngle must not be negative, got %v", c.MinSegmentAngle)
	}
	if c.MaxSegmentAngle <= 0 || c.MaxSegmentAngle > 360 {
		return fmt.Errorf("maxSegmentAngle must be in (0, 360], got %v", c.MaxSegmentAngle)
	}
	if c.CenterMode != CenterScreen && c.CenterMode != CenterPointer {
		return fmt.Errorf("unknown centerMode %d", c.CenterMode)
	}
	for _, o := range c.Overrides {
		if o.Slot < 0 {
			return fmt.Errorf("override slot must not be negative, got %d", o.Slot)
		}
	}
	return nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode menu config: %w", err)
	}
	return data, nil
}
