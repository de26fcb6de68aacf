package picker

import (
	"math"
	"testing"

	"gioui.org/f32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

func TestReduceSetters(t *testing.T) {
	start := State{Hue: 0.1, Saturation: 0.2, Luminance: 0.3}
	for _, v := range []float32{0, 0.25, 0.5, 0.999, 1} {
		got := Reduce(start, HueSet{Value: v})
		if diff := cmp.Diff(State{Hue: v, Saturation: 0.2, Luminance: 0.3}, got); diff != "" {
			t.Errorf("HueSet(%v) mismatch (-want +got):\n%s", v, diff)
		}
		got = Reduce(start, SaturationSet{Value: v})
		if diff := cmp.Diff(State{Hue: 0.1, Saturation: v, Luminance: 0.3}, got); diff != "" {
			t.Errorf("SaturationSet(%v) mismatch (-want +got):\n%s", v, diff)
		}
		got = Reduce(start, LuminanceSet{Value: v})
		if diff := cmp.Diff(State{Hue: 0.1, Saturation: 0.2, Luminance: v}, got); diff != "" {
			t.Errorf("LuminanceSet(%v) mismatch (-want +got):\n%s", v, diff)
		}
	}
}

func TestReduceHueSetIdempotent(t *testing.T) {
	once := Reduce(DefaultState(), HueSet{Value: 0.7})
	twice := Reduce(once, HueSet{Value: 0.7})
	if once != twice {
		t.Errorf("applying HueSet twice gave %+v, once gave %+v", twice, once)
	}
}

func TestReduceSettersKeepOutOfRange(t *testing.T) {
	got := Reduce(DefaultState(), LuminanceSet{Value: 1.5})
	if got.Luminance != 1.5 {
		t.Errorf("expected reducer to store luminance as given, got %v", got.Luminance)
	}
}

func TestReduceWheelTouch(t *testing.T) {
	const size = 200
	center := f32.Pt(150, 120)
	r := float32(size / 2)
	type res struct {
		name     string
		touch    f32.Point
		hue, lum float32
	}
	for _, tc := range []res{
		{name: "center", touch: center, hue: 0, lum: 1},
		{name: "right edge", touch: center.Add(f32.Pt(r, 0)), hue: 0, lum: 0},
		{name: "bottom edge", touch: center.Add(f32.Pt(0, r)), hue: 0.25, lum: 0},
		{name: "left edge", touch: center.Add(f32.Pt(-r, 0)), hue: 0.5, lum: 0},
		{name: "top edge", touch: center.Add(f32.Pt(0, -r)), hue: 0.75, lum: 0},
		{name: "halfway right", touch: center.Add(f32.Pt(r/2, 0)), hue: 0, lum: 0.5},
		{name: "corner", touch: center.Add(f32.Pt(r, r)), hue: 0.125, lum: 1 - float32(math.Sqrt2)},
	} {
		start := State{Hue: 0.9, Saturation: 0.3, Luminance: 0.2}
		got := Reduce(start, WheelTouch{Center: center, Size: size, Touch: tc.touch})
		want := State{Hue: tc.hue, Saturation: 0.3, Luminance: tc.lum}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestReduceWheelTouchHueInRange(t *testing.T) {
	center := f32.Pt(0, 0)
	for i := 0; i < 720; i++ {
		angle := float64(i) * math.Pi / 360
		touch := f32.Pt(float32(math.Cos(angle)*50), float32(math.Sin(angle)*50))
		got := Reduce(DefaultState(), WheelTouch{Center: center, Size: 100, Touch: touch})
		if got.Hue < 0 || got.Hue >= 1 {
			t.Errorf("angle %f produced hue %v outside [0,1)", angle, got.Hue)
		}
	}
	// Just below the positive x axis the angle is a tiny negative number.
	got := Reduce(DefaultState(), WheelTouch{Center: center, Size: 100, Touch: f32.Pt(50, -1e-7)})
	if got.Hue < 0 || got.Hue >= 1 {
		t.Errorf("tiny negative angle produced hue %v outside [0,1)", got.Hue)
	}
}

func TestReduceDegenerateWheel(t *testing.T) {
	start := DefaultState()
	for _, size := range []float32{0, -10, float32(math.NaN()), float32(math.Inf(1))} {
		got := Reduce(start, WheelTouch{Center: f32.Pt(5, 5), Size: size, Touch: f32.Pt(7, 9)})
		if got != start {
			t.Errorf("size %v: expected state to be unchanged, got %+v", size, got)
		}
	}
}

func TestReduceNilEvent(t *testing.T) {
	start := DefaultState()
	if got := Reduce(start, nil); got != start {
		t.Errorf("expected nil event to be ignored, got %+v", got)
	}
}

func TestReduceSequence(t *testing.T) {
	const size = 300
	center := f32.Pt(size/2, size/2)
	s := DefaultState()
	s = Reduce(s, WheelTouch{Center: center, Size: size, Touch: center.Add(f32.Pt(size/2, 0))})
	if diff := cmp.Diff(State{Hue: 0, Saturation: 0.5, Luminance: 0}, s, approx); diff != "" {
		t.Errorf("after touch (-want +got):\n%s", diff)
	}
	s = Reduce(s, SaturationSet{Value: 0.9})
	if diff := cmp.Diff(State{Hue: 0, Saturation: 0.9, Luminance: 0}, s, approx); diff != "" {
		t.Errorf("after saturation (-want +got):\n%s", diff)
	}
}
