// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"k8s.io/klog/v2"

	"github.com/trueconf/toggle/widget"
	"github.com/trueconf/toggle/widget/themed"
)

var background = color.NRGBA{R: 0x1f, G: 0x2d, B: 0x3a, A: 0xff}

type ui struct {
	shaper *text.Shaper

	// The configured switch, and a second one with a filled track.
	style, accent themed.Style
	off, on       string
	main, media   widget.Toggle
	width, height unit.Dp
}

func newUI(attrs themed.Attributes, opts options) (*ui, error) {
	style, err := attrs.Style()
	if err != nil {
		return nil, err
	}
	accent := style
	accent.TrackColor = color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}
	accent.StrokeWidth = 0

	u := &ui{
		shaper: text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection())),
		style:  style,
		accent: accent,
		off:    attrs.TextOff,
		on:     attrs.TextOn,
		width:  unit.Dp(opts.width),
		height: unit.Dp(opts.height),
	}
	u.main.SetChecked(attrs.Checked)
	u.main.OnChange(func(checked bool) {
		klog.InfoS("Switch changed", "switch", "main", "checked", checked)
	})
	u.media.OnChange(func(checked bool) {
		klog.InfoS("Switch changed", "switch", "media", "checked", checked)
	})
	return u, nil
}

func (u *ui) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, background)
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return u.switchStyle(u.style, &u.main, u.off, u.on).Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: 16}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return u.switchStyle(u.accent, &u.media, "AUDIO", "VIDEO").Layout(gtx)
			}),
		)
	})
}

func (u *ui) switchStyle(s themed.Style, t *widget.Toggle, off, on string) themed.SwitchStyle {
	sw := themed.Switch(s, u.shaper, t, off, on)
	sw.Width, sw.Height = u.width, u.height
	return sw
}
