package picker

import "gioui.org/f32"

// Event is a normalized interaction delivered by the UI. The set of events is
// closed: only the types in this file implement it.
type Event interface {
	isEvent()
}

type (
	// HueSet replaces the hue, typically from a slider.
	HueSet struct {
		Value float32
	}
	// SaturationSet replaces the saturation.
	SaturationSet struct {
		Value float32
	}
	// LuminanceSet replaces the luminance.
	LuminanceSet struct {
		Value float32
	}
	// WheelTouch reports a pointer press or drag on the wheel. Center and
	// Touch share one coordinate space, and Size is the longer side of the
	// wheel's bounding box.
	WheelTouch struct {
		Center f32.Point
		Size   float32
		Touch  f32.Point
	}
)

func (HueSet) isEvent()        {}
func (SaturationSet) isEvent() {}
func (LuminanceSet) isEvent()  {}
func (WheelTouch) isEvent()    {}
