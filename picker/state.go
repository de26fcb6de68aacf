// Package picker implements the color model behind the hue wheel: a small
// HSV-style state, the events that change it, and the projection of that
// state into values the UI draws from.
package picker

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports a state component outside its domain.
var ErrOutOfRange = errors.New("value out of range")

// State is the color currently selected. Hue is a fraction of a full turn
// around the wheel in [0,1). Saturation and Luminance are in [0,1], with
// Luminance 1 at the wheel's center and 0 at its edge.
//
// Values are stored exactly as they arrive; Project clamps them.
type State struct {
	Hue        float32
	Saturation float32
	Luminance  float32
}

// DefaultState is the state a new picker starts in.
func DefaultState() State {
	return State{
		Hue:        0.5,
		Saturation: 0.5,
		Luminance:  0.5,
	}
}

// Validate reports whether every component of s lies within its domain.
func (s State) Validate() error {
	if !(s.Hue >= 0 && s.Hue < 1) {
		return fmt.Errorf("hue %v: %w [0,1)", s.Hue, ErrOutOfRange)
	}
	if !(s.Saturation >= 0 && s.Saturation <= 1) {
		return fmt.Errorf("saturation %v: %w [0,1]", s.Saturation, ErrOutOfRange)
	}
	if !(s.Luminance >= 0 && s.Luminance <= 1) {
		return fmt.Errorf("luminance %v: %w [0,1]", s.Luminance, ErrOutOfRange)
	}
	return nil
}
