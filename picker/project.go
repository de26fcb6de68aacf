package picker

import (
	"image/color"
	"math"
	"strconv"

	"gioui.org/f32"
	"github.com/lucasb-eyer/go-colorful"
)

// ViewModel holds everything the UI displays for a State.
type ViewModel struct {
	// Hue, Saturation and Luminance echo the state, for slider positions.
	Hue, Saturation, Luminance float32
	// Color is the selected color, always opaque.
	Color color.NRGBA
	// ARGB is Color packed as 0xAARRGGBB.
	ARGB uint32
	// Hex is "#" followed by ARGB in lowercase hexadecimal.
	Hex string
	// MarkerOffset is the position of the selection marker relative to the
	// wheel center, in units of the wheel radius.
	MarkerOffset f32.Point
}

// Project computes the ViewModel for s.
func Project(s State) ViewModel {
	hue := Wrap(s.Hue)
	sat := Clamp(s.Saturation, 0, 1)
	lum := Clamp(s.Luminance, 0, 1)
	c := HSV(float64(hue)*360, float64(sat), float64(lum))
	argb := Pack(c)
	return ViewModel{
		Hue:          s.Hue,
		Saturation:   s.Saturation,
		Luminance:    s.Luminance,
		Color:        c,
		ARGB:         argb,
		Hex:          "#" + strconv.FormatUint(uint64(argb), 16),
		MarkerOffset: MarkerOffset(hue),
	}
}

// MarkerOffset places hue on the unit circle. Hue is scaled by π rather than
// 2π, so the whole hue range covers half a turn of the marker.
func MarkerOffset(hue float32) f32.Point {
	sin, cos := math.Sincos(float64(hue) * math.Pi)
	return f32.Point{X: float32(cos), Y: float32(sin)}
}

// HSV converts hue in degrees [0,360) with saturation and value in [0,1] to
// an opaque color. Inputs outside those ranges are brought into them first.
func HSV(h, s, v float64) color.NRGBA {
	h = float64(Wrap(h/360)) * 360
	c := colorful.Hsv(h, Clamp(s, 0, 1), Clamp(v, 0, 1)).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Pack returns c as a 0xAARRGGBB integer.
func Pack(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
