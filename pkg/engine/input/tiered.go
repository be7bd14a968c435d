// Package input turns key presses into browsing actions.
//
// Input flows through four layers: a RawInput from a device, a
// DebouncedInput, the bindings table and finally an Intent.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceTerminal
)

// Action represents a high-level intent while browsing mazes.
type Action int

const (
	ActionNone Action = iota

	// Seed navigation
	ActionNextSeed
	ActionPrevSeed
	ActionRandomSeed

	// Meta / UI
	ActionSave
	ActionHelp
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "n", "arrow_right").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Terminal raw mode already delivers one event per key press, so this is
// currently a straight copy.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"n":           ActionNextSeed,
	"arrow_right": ActionNextSeed,
	"space":       ActionNextSeed,
	"p":           ActionPrevSeed,
	"arrow_left":  ActionPrevSeed,
	"r":           ActionRandomSeed,

	"s":      ActionSave,
	"?":      ActionHelp,
	"h":      ActionHelp,
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionNextSeed:
		return "Next Seed"
	case ActionPrevSeed:
		return "Previous Seed"
	case ActionRandomSeed:
		return "Random Seed"
	case ActionSave:
		return "Save"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so help text doesn't change.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
