package uikit

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ============================================================================
// Settings
// ============================================================================

// Settings holds the tunable dispatch parameters. The double-click window is
// intentionally not here: it is a fixed 0.3s constant in the input package.
type Settings struct {
	// DragThreshold is the distance in screen units a pointer must travel
	// from its press position before a drag starts, for targets that honor
	// the threshold. Compared on squared distance.
	DragThreshold float32 `toml:"drag_threshold"`

	// MoveRepeatDelay is the pause in seconds after the first axis move
	// before it starts repeating in the same direction.
	MoveRepeatDelay float32 `toml:"move_repeat_delay"`

	// MoveActionsPerSecond limits how often repeated axis moves fire.
	MoveActionsPerSecond float32 `toml:"move_actions_per_second"`

	// AxisDeadZone is the minimum axis vector magnitude that produces a
	// move direction.
	AxisDeadZone float32 `toml:"axis_dead_zone"`

	// HoverToParent selects the hover bubbling policy: true propagates
	// enter/exit up the full ancestor chain, false stops at the first
	// ancestor that declares its own handler.
	HoverToParent bool `toml:"hover_to_parent"`
}

// DefaultSettings returns the defaults used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		DragThreshold:        10,
		MoveRepeatDelay:      0.5,
		MoveActionsPerSecond: 10,
		AxisDeadZone:         0.6,
		HoverToParent:        true,
	}
}

// DecodeSettings parses TOML settings, applying defaults for absent keys.
func DecodeSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// LoadSettings reads TOML settings from a file, applying defaults for absent
// keys.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return DecodeSettings(data)
}
