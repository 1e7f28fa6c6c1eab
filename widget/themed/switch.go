// SPDX-License-Identifier: Unlicense OR MIT

package themed

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"

	"github.com/trueconf/toggle/widget"
)

// SwitchStyle lays out a toggle as a rounded track showing both labels,
// with a thumb that slides over the active one.
type SwitchStyle struct {
	Style  Style
	Shaper *text.Shaper
	Toggle *widget.Toggle
	// Off and On are the labels of the left and right halves.
	Off, On string
	// Width and Height are used when the constraints leave the size
	// open.
	Width, Height unit.Dp
}

// Switch returns a SwitchStyle for toggle with the given labels.
func Switch(s Style, sh *text.Shaper, toggle *widget.Toggle, off, on string) SwitchStyle {
	return SwitchStyle{
		Style:  s,
		Shaper: sh,
		Toggle: toggle,
		Off:    off,
		On:     on,
		Width:  120,
		Height: 36,
	}
}

// Layout handles input and draws the switch. The track and thumb are
// recomputed from the current size on every call.
func (sw SwitchStyle) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Constrain(image.Pt(gtx.Dp(sw.Width), gtx.Dp(sw.Height)))
	var g widget.Geometry
	g.Resize(size, gtx.Dp(sw.Style.CornerRadius), gtx.Dp(sw.Style.ThumbInset))

	st := sw.Style
	if !gtx.Enabled() {
		st = st.disabled()
	}
	gtx.Constraints = layout.Exact(size)
	return sw.Toggle.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		st.PaintTrack(gtx, sw.Shaper, g, sw.Off, sw.On)
		pos, moving := sw.Toggle.Position(gtx, st.SlideDuration)
		st.PaintThumb(gtx, g.ThumbAt(pos), g.Radius)
		if moving {
			gtx.Execute(op.InvalidateCmd{})
		}
		return layout.Dimensions{Size: size}
	})
}
