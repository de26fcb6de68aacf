package main

import (
	"image"

	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"git.sr.ht/~whereswaldon/hue-wheel/picker"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var copyIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ContentContentCopy)
	return icon
}()

var openIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.FileFolderOpen)
	return icon
}()

// ReadoutStyle shows the selected color as a swatch next to its hex code.
type ReadoutStyle struct {
	View    picker.ViewModel
	Copy    *widget.Clickable
	Label   material.LabelStyle
	Border  widget.Border
	Button  material.IconButtonStyle
	Spacing unit.Dp
}

func Readout(th *material.Theme, vm picker.ViewModel, copyBtn *widget.Clickable) ReadoutStyle {
	rs := ReadoutStyle{
		View:  vm,
		Copy:  copyBtn,
		Label: material.H6(th, vm.Hex),
		Border: widget.Border{
			Color:        th.Fg,
			CornerRadius: 16,
			Width:        2,
		},
		Button:  material.IconButton(th, copyBtn, copyIcon, "Copy hex code"),
		Spacing: 16,
	}
	rs.Label.Alignment = text.Middle
	rs.Label.MaxLines = 1
	rs.Button.Size = 20
	rs.Button.Inset = layout.UniformInset(8)
	return rs
}

func (r ReadoutStyle) Layout(gtx C) D {
	swatch := component.Rect{
		Color: r.View.Color,
		Size:  image.Pt(gtx.Dp(100), gtx.Dp(50)),
	}
	return layout.Flex{
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Rigid(swatch.Layout),
		layout.Rigid(layout.Spacer{Width: r.Spacing}.Layout),
		layout.Flexed(1, func(gtx C) D {
			gtx.Constraints.Min.Y = gtx.Dp(50)
			return r.Border.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return layout.Center.Layout(gtx, r.Label.Layout)
			})
		}),
		layout.Rigid(layout.Spacer{Width: r.Spacing / 2}.Layout),
		layout.Rigid(r.Button.Layout),
	)
}
