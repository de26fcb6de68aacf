package main

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"git.sr.ht/~whereswaldon/hue-wheel/picker"
)

// Wheel is the circular hue/luminance input. It reports presses and drags as
// picker.WheelTouch events and draws the selection marker from a view model.
type Wheel struct {
	// side is the edge length of the square the wheel was last laid out in.
	side int

	// images caches rasterized wheels by saturation level for rasterSide.
	images     map[int]paint.ImageOp
	rasterSide int
}

const (
	// maxRasterSide bounds the wheel image; larger wheels scale it up.
	maxRasterSide = 256
	// saturationLevels is the number of distinct wheel images per size.
	saturationLevels = 64
)

// wheelImage returns the wheel image for a wheel of the given side, rasterizing
// it only the first time a saturation level is needed at that size.
func (w *Wheel) wheelImage(side int, sat float32) (paint.ImageOp, int) {
	rasterSide := min(side, maxRasterSide)
	if w.images == nil || w.rasterSide != rasterSide {
		w.images = make(map[int]paint.ImageOp)
		w.rasterSide = rasterSide
	}
	level := int(math.Round(float64(picker.Clamp(sat, 0, 1)) * saturationLevels))
	img, ok := w.images[level]
	if !ok {
		img = paint.NewImageOp(rasterizeWheel(rasterSide, float32(level)/saturationLevels))
		w.images[level] = img
	}
	return img, rasterSide
}

// Update returns the next touch on the wheel. Must be called until the
// second return value is false each frame.
func (w *Wheel) Update(gtx C) (picker.Event, bool) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Press | pointer.Drag,
		})
		if !ok {
			return nil, false
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press, pointer.Drag:
			side := float32(w.side)
			return picker.WheelTouch{
				Center: f32.Pt(side/2, side/2),
				Size:   side,
				Touch:  e.Position,
			}, true
		}
	}
}

var (
	markerOuter = color.NRGBA{A: 0xff}
	markerInner = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Layout draws the wheel as the largest square that fits the constraints.
func (w *Wheel) Layout(gtx C, vm picker.ViewModel) D {
	side := min(gtx.Constraints.Max.X, gtx.Constraints.Max.Y)
	w.side = side
	size := image.Pt(side, side)
	if side <= 0 {
		return D{Size: size}
	}
	img, rasterSide := w.wheelImage(side, vm.Saturation)

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	pointer.CursorCrosshair.Add(gtx.Ops)
	scale := float32(side) / float32(rasterSide)
	t := op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(scale, scale))).Push(gtx.Ops)
	img.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	t.Pop()
	area.Pop()

	half := float32(side) / 2
	marker := f32.Pt(half, half).Add(vm.MarkerOffset.Mul(half))
	fillDot(gtx.Ops, marker, float32(gtx.Dp(12)), markerOuter)
	fillDot(gtx.Ops, marker, float32(gtx.Dp(9)), markerInner)
	return D{Size: size}
}

func fillDot(ops *op.Ops, center f32.Point, radius float32, col color.NRGBA) {
	r := image.Rect(
		int(center.X-radius), int(center.Y-radius),
		int(center.X+radius), int(center.Y+radius),
	)
	paint.FillShape(ops, col, clip.Ellipse(r).Op(ops))
}

// rasterizeWheel renders the wheel at the given saturation. Every pixel
// shows the color a touch at its center would select, so the image and the
// touch mapping can never disagree. Pixels outside the circle are
// transparent, and the rim is faded over one pixel.
func rasterizeWheel(side int, sat float32) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	radius := float64(side) / 2
	center := f32.Pt(float32(radius), float32(radius))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			touch := picker.WheelTouch{
				Center: center,
				Size:   float32(side),
				Touch:  f32.Pt(float32(x)+.5, float32(y)+.5),
			}
			hue, distance, _ := touch.Polar()
			coverage := (1 - float64(distance)) * radius
			if coverage <= 0 {
				continue
			}
			c := picker.HSV(float64(hue)*360, float64(sat), math.Max(0, 1-float64(distance)))
			c.A = uint8(picker.Clamp(coverage, 0, 1) * 0xff)
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
