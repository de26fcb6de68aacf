package main

import (
	"context"
	"image/color"
	"io"
	"log"
	"strings"

	"gioui.org/font/gofont"
	"gioui.org/io/clipboard"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"git.sr.ht/~whereswaldon/hue-wheel/backend"
	"git.sr.ht/~whereswaldon/hue-wheel/picker"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// darkPalette follows the Material 3 baseline dark scheme.
var darkPalette = material.Palette{
	Bg:         color.NRGBA{R: 0x1c, G: 0x1b, B: 0x1f, A: 0xff},
	Fg:         color.NRGBA{R: 0xe6, G: 0xe1, B: 0xe5, A: 0xff},
	ContrastBg: color.NRGBA{R: 0xd0, G: 0xbc, B: 0xff, A: 0xff},
	ContrastFg: color.NRGBA{R: 0x38, G: 0x1e, B: 0x72, A: 0xff},
}

func newTheme(light bool) *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	if !light {
		th.Palette = darkPalette
	}
	return th
}

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	appCtx context.Context
	ws     backend.WindowState
	expl   *explorer.Explorer
	th     *material.Theme

	wheel      Wheel
	hue        widget.Float
	saturation widget.Float
	luminance  widget.Float
	copyBtn    widget.Clickable
	openBtn    widget.Clickable

	viewStream *stream.Stream[picker.ViewModel]
	view       picker.ViewModel
}

func NewUI(appCtx context.Context, ws backend.WindowState, expl *explorer.Explorer, th *material.Theme) *UI {
	return &UI{
		appCtx:     appCtx,
		ws:         ws,
		expl:       expl,
		th:         th,
		view:       ws.Store.Current(),
		viewStream: stream.New(ws.Controller, ws.Store.Stream),
	}
}

func (ui *UI) accept(ev picker.Event) {
	ui.ws.Store.Accept(ev)
}

// Update delivers this frame's input to the store and refreshes the view
// model the frame is drawn from.
func (ui *UI) Update(gtx C) {
	accepted := false
	for {
		ev, ok := ui.wheel.Update(gtx)
		if !ok {
			break
		}
		ui.accept(ev)
		accepted = true
	}
	if ui.hue.Update(gtx) {
		ui.accept(picker.HueSet{Value: ui.hue.Value})
		accepted = true
	}
	if ui.saturation.Update(gtx) {
		ui.accept(picker.SaturationSet{Value: ui.saturation.Value})
		accepted = true
	}
	if ui.luminance.Update(gtx) {
		ui.accept(picker.LuminanceSet{Value: ui.luminance.Value})
		accepted = true
	}
	ui.viewStream.ReadInto(gtx, &ui.view, ui.ws.Store.Current())
	if accepted {
		// Don't wait for the stream to echo our own input back.
		ui.view = ui.ws.Store.Current()
	}
	hue, sat, lum := sliderPositions(ui.view)
	if !ui.hue.Dragging() {
		ui.hue.Value = hue
	}
	if !ui.saturation.Dragging() {
		ui.saturation.Value = sat
	}
	if !ui.luminance.Dragging() {
		ui.luminance.Value = lum
	}

	if ui.copyBtn.Clicked(gtx) {
		gtx.Execute(clipboard.WriteCmd{
			Type: "application/text",
			Data: io.NopCloser(strings.NewReader(ui.view.Hex)),
		})
	}
	if ui.openBtn.Clicked(gtx) {
		go ui.openTrace()
	}
}

// sliderPositions places the sliders for vm. Hue is clamped rather than
// wrapped so a slider released at its end stays there.
func sliderPositions(vm picker.ViewModel) (hue, sat, lum float32) {
	return picker.Clamp(vm.Hue, 0, 1), picker.Clamp(vm.Saturation, 0, 1), picker.Clamp(vm.Luminance, 0, 1)
}

// openTrace asks the user for a trace file and replays it into the store.
func (ui *UI) openTrace() {
	f, err := ui.expl.ChooseFile("csv", "txt")
	if err != nil {
		log.Printf("failed choosing trace: %v", err)
		return
	}
	defer f.Close()
	applied, err := ui.ws.Trace.Replay(ui.appCtx, f, false)
	if err != nil {
		log.Printf("failed replaying trace: %v", err)
		return
	}
	log.Printf("replayed %d events", applied)
}

func (ui *UI) layoutSlider(gtx C, label string, f *widget.Float) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Dp(40)
			return material.Body2(ui.th, label).Layout(gtx)
		}),
		layout.Flexed(1, material.Slider(ui.th, f).Layout),
	)
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	paint.FillShape(gtx.Ops, ui.th.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())
	return layout.UniformInset(16).Layout(gtx, func(gtx C) D {
		return layout.Flex{
			Axis:    layout.Vertical,
			Spacing: layout.SpaceBetween,
		}.Layout(gtx,
			layout.Flexed(1, func(gtx C) D {
				return layout.Center.Layout(gtx, func(gtx C) D {
					return ui.wheel.Layout(gtx, ui.view)
				})
			}),
			layout.Rigid(layout.Spacer{Height: 8}.Layout),
			layout.Rigid(func(gtx C) D {
				return ui.layoutSlider(gtx, "H", &ui.hue)
			}),
			layout.Rigid(func(gtx C) D {
				return ui.layoutSlider(gtx, "S", &ui.saturation)
			}),
			layout.Rigid(func(gtx C) D {
				return ui.layoutSlider(gtx, "L", &ui.luminance)
			}),
			layout.Rigid(layout.Spacer{Height: 8}.Layout),
			layout.Rigid(Readout(ui.th, ui.view, &ui.copyBtn).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				gtx.Constraints.Min.X = 0
				return layout.E.Layout(gtx, material.IconButton(ui.th, &ui.openBtn, openIcon, "Open trace").Layout)
			}),
		)
	})
}
