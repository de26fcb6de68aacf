package picker

import "math"

// Reduce returns the state that results from applying ev to s. It never
// fails; events it cannot interpret leave the state as it was.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case HueSet:
		s.Hue = ev.Value
	case SaturationSet:
		s.Saturation = ev.Value
	case LuminanceSet:
		s.Luminance = ev.Value
	case WheelTouch:
		hue, distance, ok := ev.Polar()
		if !ok {
			return s
		}
		s.Hue = hue
		s.Luminance = 1 - distance
	}
	return s
}

// Polar converts the touch into wheel coordinates. The hue is the touch
// angle as a fraction of a full turn, and distance is the distance from the
// center measured in radii, where the radius is half of Size. Touches in the
// corners of the bounding box yield distances above one.
//
// ok is false when the wheel geometry is degenerate.
func (w WheelTouch) Polar() (hue, distance float32, ok bool) {
	size := float64(w.Size)
	if !(size > 0) || math.IsInf(size, 0) {
		return 0, 0, false
	}
	dx := float64(w.Touch.X - w.Center.X)
	dy := float64(w.Touch.Y - w.Center.Y)
	distance = float32(math.Hypot(dx, dy) / (size / 2))
	angle := math.Atan2(dy, dx)
	return angleToHue(angle), distance, true
}

// angleToHue maps an angle in radians onto [0,1).
func angleToHue(angle float64) float32 {
	return Wrap(float32((angle / math.Pi) / 2))
}
